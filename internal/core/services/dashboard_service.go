package services

import (
	"context"
	"errors"
	"time"

	"github.com/comitanigiacomo/lifeboard/internal/core/domain"
	"github.com/comitanigiacomo/lifeboard/internal/core/metrics"
)

// DashboardService loads record snapshots through the other services and
// hands them to the metrics engine.
type DashboardService struct {
	days    *DayService
	habits  *HabitService
	goals   *GoalService
	monthly *MonthlyGoalService
	wheels  *WheelService
}

func NewDashboardService(days *DayService, habits *HabitService, goals *GoalService, monthly *MonthlyGoalService, wheels *WheelService) *DashboardService {
	return &DashboardService{
		days:    days,
		habits:  habits,
		goals:   goals,
		monthly: monthly,
		wheels:  wheels,
	}
}

func values[T any](ptrs []*T) []T {
	out := make([]T, 0, len(ptrs))
	for _, p := range ptrs {
		out = append(out, *p)
	}
	return out
}

type Overview struct {
	Date             string                  `json:"date"`
	Today            *domain.Day             `json:"today"`
	TodayActivities  metrics.ActivitySummary `json:"today_activities"`
	WeekEnergy       metrics.EnergySummary   `json:"week_energy"`
	Habits           *domain.HabitStats      `json:"habits"`
	RecentActivities []*domain.Activity      `json:"recent_activities"`
	Goals            metrics.AnnualSummary   `json:"goals"`
	Wheel            []domain.WheelScore     `json:"wheel"`
	WheelSource      metrics.WheelSource     `json:"wheel_source"`
	Categories       []domain.CategoryInfo   `json:"categories"`
}

func (s *DashboardService) Overview(ctx context.Context, ref time.Time) (*Overview, error) {
	ref = domain.NormalizeDate(ref)

	out := &Overview{
		Date:       domain.DateKey(ref),
		Categories: domain.AllCategoryInfo(),
	}

	today, err := s.days.GetByDate(ctx, ref)
	switch {
	case errors.Is(err, domain.ErrDayNotFound):
	case err != nil:
		return nil, err
	default:
		out.Today = today
		out.TodayActivities = metrics.SummarizeActivities(today.Activities)
	}

	week, err := s.days.ListBetween(ctx, ref.AddDate(0, 0, -6), ref)
	if err != nil {
		return nil, err
	}
	out.WeekEnergy = metrics.SummarizeEnergy(values(week))

	if out.Habits, err = s.HabitStats(ctx, ref); err != nil {
		return nil, err
	}

	if out.RecentActivities, err = s.days.RecentActivities(ctx, DefaultRecentActivities); err != nil {
		return nil, err
	}

	goals, err := s.goals.List(ctx, ref.Year())
	if err != nil {
		return nil, err
	}
	out.Goals = metrics.SummarizeAnnualGoals(values(goals), ref)

	latest, err := s.wheels.Latest(ctx)
	if err != nil {
		return nil, err
	}
	out.Wheel, out.WheelSource = metrics.ResolveWheel(latest, values(goals))

	return out, nil
}

func (s *DashboardService) HabitStats(ctx context.Context, ref time.Time) (*domain.HabitStats, error) {
	ref = domain.NormalizeDate(ref)

	habits, err := s.habits.List(ctx)
	if err != nil {
		return nil, err
	}

	logs, err := s.habits.ListLogs(ctx, domain.HabitLogFilter{To: &ref})
	if err != nil {
		return nil, err
	}

	hv, lv := values(habits), values(logs)

	stats := &domain.HabitStats{
		Date:        domain.DateKey(ref),
		TotalHabits: len(hv),
		Habits:      make([]domain.HabitStat, 0, len(hv)),
	}

	for _, h := range hv {
		st := domain.HabitStat{
			HabitID:           h.ID,
			Name:              h.Name,
			Emoji:             h.Emoji,
			Category:          h.Category,
			TargetPerWeek:     h.TargetPerWeek,
			Streak:            metrics.Streak(h.ID, lv, ref),
			LongestStreak:     metrics.LongestStreak(h.ID, lv),
			WeeklyCompletions: metrics.WeeklyCompletions(h.ID, lv, ref),
			MonthlyRate:       metrics.MonthlyCompletionRate(h.ID, lv, ref),
			CompletedToday:    metrics.CompletedOn(h.ID, lv, ref),
		}
		if st.CompletedToday {
			stats.CompletedToday++
		}
		stats.Habits = append(stats.Habits, st)
	}

	stats.BestStreak = metrics.BestStreak(hv, lv, ref)
	stats.AverageCompletionRate = metrics.AverageCompletionRate(hv, lv, ref)

	return stats, nil
}

func (s *DashboardService) HabitCalendar(ctx context.Context, habitID string, ref time.Time, days int) ([]metrics.DayMark, error) {
	if _, err := s.habits.Get(ctx, habitID); err != nil {
		return nil, err
	}
	if days <= 0 {
		days = metrics.DefaultCalendarDays
	}
	if days > metrics.MaxCalendarDays {
		return nil, domain.ErrInvalidDays
	}

	to := domain.NormalizeDate(ref)
	from := to.AddDate(0, 0, -(days - 1))
	logs, err := s.habits.ListLogs(ctx, domain.HabitLogFilter{HabitIDs: []string{habitID}, From: &from, To: &to})
	if err != nil {
		return nil, err
	}

	return metrics.Calendar(habitID, values(logs), to, days), nil
}

type GoalView struct {
	domain.Goal
	Progress *float64 `json:"progress"`
}

type GoalGroup struct {
	Category string               `json:"category"`
	Info     *domain.CategoryInfo `json:"info,omitempty"`
	Goals    []GoalView           `json:"goals"`
}

type GoalsOverview struct {
	Year        int                   `json:"year"`
	Summary     metrics.AnnualSummary `json:"summary"`
	Wheel       []domain.WheelScore   `json:"wheel"`
	WheelSource metrics.WheelSource   `json:"wheel_source"`
	Groups      []GoalGroup           `json:"groups"`
}

func categoryInfo(key string) *domain.CategoryInfo {
	c := domain.Category(key)
	if !c.Valid() {
		return nil
	}
	info := c.Info()
	return &info
}

func (s *DashboardService) GoalsOverview(ctx context.Context, year int, ref time.Time) (*GoalsOverview, error) {
	goals, err := s.goals.List(ctx, year)
	if err != nil {
		return nil, err
	}
	latest, err := s.wheels.Latest(ctx)
	if err != nil {
		return nil, err
	}

	gv := values(goals)
	out := &GoalsOverview{
		Year:    year,
		Summary: metrics.SummarizeAnnualGoals(gv, ref),
		Groups:  []GoalGroup{},
	}
	out.Wheel, out.WheelSource = metrics.ResolveWheel(latest, gv)

	order, groups := metrics.GroupByCategory(gv, func(g domain.Goal) *domain.Category { return g.Category })
	for _, key := range order {
		group := GoalGroup{Category: key, Info: categoryInfo(key)}
		for _, g := range groups[key] {
			group.Goals = append(group.Goals, GoalView{Goal: g, Progress: metrics.AnnualGoalProgress(g)})
		}
		out.Groups = append(out.Groups, group)
	}

	return out, nil
}

type MonthlyGoalView struct {
	domain.MonthlyGoal
	Progress float64 `json:"progress"`
}

type MonthlyGoalGroup struct {
	Category string               `json:"category"`
	Info     *domain.CategoryInfo `json:"info,omitempty"`
	Goals    []MonthlyGoalView    `json:"goals"`
}

type MonthlyReport struct {
	Month          int                       `json:"month"`
	Year           int                       `json:"year"`
	IsPastMonth    bool                      `json:"is_past_month"`
	Summary        metrics.MonthlySummary    `json:"summary"`
	Energy         metrics.EnergySummary     `json:"energy"`
	Wheel          []domain.WheelScore       `json:"wheel"`
	WheelSource    metrics.WheelSource       `json:"wheel_source"`
	PreviousWheel  []domain.WheelScore       `json:"previous_wheel"`
	PreviousSource metrics.WheelSource       `json:"previous_source,omitempty"`
	Comparison     []metrics.ComparisonPoint `json:"comparison"`
	Groups         []MonthlyGoalGroup        `json:"groups"`
}

// MonthlyReport assembles the month page. now decides whether the month is
// already over.
func (s *DashboardService) MonthlyReport(ctx context.Context, month, year int, now time.Time) (*MonthlyReport, error) {
	goals, err := s.monthly.List(ctx, month, year)
	if err != nil {
		return nil, err
	}
	days, err := s.days.ListForMonth(ctx, month, year)
	if err != nil {
		return nil, err
	}
	snapshot, err := s.wheels.ForMonth(ctx, month, year)
	if err != nil {
		return nil, err
	}

	gv := values(goals)
	report := &MonthlyReport{
		Month:       month,
		Year:        year,
		IsPastMonth: year < now.Year() || (year == now.Year() && month < int(now.Month())),
		Summary:     metrics.SummarizeMonthlyGoals(gv),
		Energy:      metrics.SummarizeEnergy(values(days)),
		Groups:      []MonthlyGoalGroup{},
	}
	report.Wheel, report.WheelSource = metrics.ResolveWheel(snapshot, metrics.GoalsForWheel(gv))

	if report.PreviousWheel, report.PreviousSource, err = s.previousWheel(ctx, month, year); err != nil {
		return nil, err
	}
	report.Comparison = metrics.CompareWheels(report.Wheel, report.PreviousWheel)

	_, groups := metrics.GroupByCategory(gv, func(g domain.MonthlyGoal) *domain.Category { return g.Category })
	keys := make([]string, 0, len(domain.Categories)+1)
	for _, c := range domain.Categories {
		keys = append(keys, string(c))
	}
	keys = append(keys, metrics.UncategorizedKey)

	for _, key := range keys {
		if len(groups[key]) == 0 {
			continue
		}
		group := MonthlyGoalGroup{Category: key, Info: categoryInfo(key)}
		for _, g := range groups[key] {
			group.Goals = append(group.Goals, MonthlyGoalView{MonthlyGoal: g, Progress: metrics.MonthlyGoalProgress(g)})
		}
		report.Groups = append(report.Groups, group)
	}

	return report, nil
}

type ResolvedWheel struct {
	Month    int                 `json:"month"`
	Year     int                 `json:"year"`
	Snapshot *domain.WheelOfLife `json:"snapshot"`
	Scores   []domain.WheelScore `json:"scores"`
	Source   metrics.WheelSource `json:"source"`
}

// Wheel resolves the wheel of life of a month from its snapshot, else from
// the month's goals.
func (s *DashboardService) Wheel(ctx context.Context, month, year int) (*ResolvedWheel, error) {
	snapshot, err := s.wheels.ForMonth(ctx, month, year)
	if err != nil {
		return nil, err
	}
	goals, err := s.monthly.List(ctx, month, year)
	if err != nil {
		return nil, err
	}

	w := &ResolvedWheel{Month: month, Year: year, Snapshot: snapshot}
	w.Scores, w.Source = metrics.ResolveWheel(snapshot, metrics.GoalsForWheel(values(goals)))
	return w, nil
}

// previousWheel prefers the previous month's snapshot, then its goals. With
// neither the series is empty so every comparison point falls back to 0.
func (s *DashboardService) previousWheel(ctx context.Context, month, year int) ([]domain.WheelScore, metrics.WheelSource, error) {
	pm, py := metrics.PreviousMonth(month, year)

	snapshot, err := s.wheels.ForMonth(ctx, pm, py)
	if err != nil {
		return nil, "", err
	}
	if snapshot != nil {
		return metrics.WheelFromSnapshot(*snapshot), metrics.WheelSourceSnapshot, nil
	}

	goals, err := s.monthly.List(ctx, pm, py)
	if err != nil {
		return nil, "", err
	}
	if len(goals) == 0 {
		return []domain.WheelScore{}, "", nil
	}
	return metrics.WheelFromGoals(metrics.GoalsForWheel(values(goals))), metrics.WheelSourceGoals, nil
}

// The methods below expose raw snapshots to the application state object.

func (s *DashboardService) ListDays(ctx context.Context) ([]*domain.Day, error) {
	return s.days.List(ctx)
}

func (s *DashboardService) ListHabits(ctx context.Context) ([]*domain.Habit, error) {
	return s.habits.List(ctx)
}

func (s *DashboardService) ListHabitLogs(ctx context.Context, filter domain.HabitLogFilter) ([]*domain.HabitLog, error) {
	return s.habits.ListLogs(ctx, filter)
}

func (s *DashboardService) RecentActivities(ctx context.Context, limit int) ([]*domain.Activity, error) {
	return s.days.RecentActivities(ctx, limit)
}

func (s *DashboardService) ListGoals(ctx context.Context, year int) ([]*domain.Goal, error) {
	return s.goals.List(ctx, year)
}

func (s *DashboardService) LatestWheel(ctx context.Context) (*domain.WheelOfLife, error) {
	return s.wheels.Latest(ctx)
}

func (s *DashboardService) ToggleHabitLog(ctx context.Context, habitID string, date time.Time) (bool, error) {
	log, err := s.habits.ToggleLog(ctx, habitID, date)
	if err != nil {
		return false, err
	}
	return log.Completed, nil
}
