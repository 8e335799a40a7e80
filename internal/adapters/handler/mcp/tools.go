package mcp

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/comitanigiacomo/lifeboard/internal/core/domain"
)

var toolGetDashboard = mcp.NewTool("get_dashboard",
	mcp.WithDescription("Summary of the loaded dashboard: habits with streaks and today's completion, weekly energy, annual goals and the wheel of life."),
	mcp.WithString("date", mcp.Description("Reference date (YYYY-MM-DD). Defaults to today.")),
)

var toolRefreshDashboard = mcp.NewTool("refresh_dashboard",
	mcp.WithDescription("Reload every list from the store and return the fresh summary. On failure the previous data is kept."),
)

var toolToggleHabit = mcp.NewTool("toggle_habit",
	mcp.WithDescription("Flip the completion of a habit on a date. Creates a completed log when none exists."),
	mcp.WithString("habit_id", mcp.Required(), mcp.Description("Habit ID")),
	mcp.WithString("date", mcp.Description("Date (YYYY-MM-DD). Defaults to today.")),
)

var toolGetHabitStreak = mcp.NewTool("get_habit_streak",
	mcp.WithDescription("Current streak of consecutive completed days for a habit. A streak survives until the end of the day after the last completion."),
	mcp.WithString("habit_id", mcp.Required(), mcp.Description("Habit ID")),
	mcp.WithString("date", mcp.Description("Reference date (YYYY-MM-DD). Defaults to today.")),
)

var toolGetMonthlyReport = mcp.NewTool("get_monthly_report",
	mcp.WithDescription("Monthly goals summary, energy, wheel of life compared with the previous month, and goals grouped by category."),
	mcp.WithNumber("month", mcp.Description("Month 1-12. Defaults to the current month."), mcp.Min(1), mcp.Max(12)),
	mcp.WithNumber("year", mcp.Description("Year. Defaults to the current year.")),
)

// dateArg reads an optional YYYY-MM-DD argument, defaulting to today.
func (h *handlers) dateArg(req mcp.CallToolRequest) (time.Time, error) {
	raw := req.GetString("date", "")
	if raw == "" {
		return h.dash.Today(), nil
	}
	return domain.ParseDate(raw)
}

func (h *handlers) ensureLoaded(ctx context.Context) error {
	if h.dash.Loaded() {
		return nil
	}
	return h.dash.Refresh(ctx)
}

func (h *handlers) getDashboard(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ref, err := h.dateArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := h.ensureLoaded(ctx); err != nil {
		return mcp.NewToolResultError("loading dashboard failed: " + err.Error()), nil
	}

	return jsonResult(h.dash.Summarize(ref))
}

func (h *handlers) refreshDashboard(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := h.dash.Refresh(ctx); err != nil {
		return mcp.NewToolResultError("refresh failed: " + err.Error()), nil
	}

	return jsonResult(h.dash.Summarize(h.dash.Today()))
}

type toggleResult struct {
	HabitID   string `json:"habit_id"`
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

func (h *handlers) toggleHabit(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	habitID, err := req.RequireString("habit_id")
	if err != nil {
		return mcp.NewToolResultError("habit_id parameter is required"), nil
	}
	date, err := h.dateArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := h.ensureLoaded(ctx); err != nil {
		return mcp.NewToolResultError("loading dashboard failed: " + err.Error()), nil
	}

	completed, err := h.dash.ToggleHabitLog(ctx, habitID, date)
	if err != nil {
		return mcp.NewToolResultError("toggle failed: " + err.Error()), nil
	}

	h.log.Info().Str("habit_id", habitID).Str("date", domain.DateKey(date)).Bool("completed", completed).Msg("Habit toggled")
	return jsonResult(toggleResult{HabitID: habitID, Date: domain.DateKey(date), Completed: completed})
}

type streakResult struct {
	HabitID string `json:"habit_id"`
	Name    string `json:"name"`
	Date    string `json:"date"`
	Streak  int    `json:"streak"`
}

func (h *handlers) getHabitStreak(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	habitID, err := req.RequireString("habit_id")
	if err != nil {
		return mcp.NewToolResultError("habit_id parameter is required"), nil
	}
	ref, err := h.dateArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := h.ensureLoaded(ctx); err != nil {
		return mcp.NewToolResultError("loading dashboard failed: " + err.Error()), nil
	}

	for _, habit := range h.dash.Snapshot().Habits {
		if habit.ID == habitID {
			return jsonResult(streakResult{
				HabitID: habitID,
				Name:    habit.Name,
				Date:    domain.DateKey(ref),
				Streak:  h.dash.StreakFor(habitID, ref),
			})
		}
	}
	return mcp.NewToolResultError(domain.ErrHabitNotFound.Error()), nil
}

func (h *handlers) getMonthlyReport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	now := h.dash.Today()
	month := req.GetInt("month", int(now.Month()))
	year := req.GetInt("year", now.Year())

	report, err := h.reports.MonthlyReport(ctx, month, year, now)
	if err != nil {
		h.log.Error().Err(err).Int("month", month).Int("year", year).Msg("mcp get_monthly_report")
		return mcp.NewToolResultError("report failed: " + err.Error()), nil
	}

	return jsonResult(report)
}
