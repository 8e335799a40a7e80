package metrics

import (
	"math"
	"time"

	"github.com/comitanigiacomo/lifeboard/internal/core/domain"
)

// UncategorizedKey groups goals that have no category.
const UncategorizedKey = "altro"

func goalPercent(target *float64, current float64) float64 {
	return math.Min(current / *target * 100, 100)
}

// MonthlyGoalProgress returns the goal's progress percentage. Without a
// numeric target only a completed status counts, as 100.
func MonthlyGoalProgress(g domain.MonthlyGoal) float64 {
	if g.TargetValue != nil && *g.TargetValue > 0 {
		return math.Max(0, goalPercent(g.TargetValue, g.CurrentValue))
	}
	if g.Status == domain.GoalStatusCompleted {
		return 100
	}
	return 0
}

type MonthlySummary struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	InProgress     int `json:"in_progress"`
	Pending        int `json:"pending"`
	Failed         int `json:"failed"`
	CompletionRate int `json:"completion_rate"`
}

func SummarizeMonthlyGoals(goals []domain.MonthlyGoal) MonthlySummary {
	s := MonthlySummary{Total: len(goals)}
	for _, g := range goals {
		switch g.Status {
		case domain.GoalStatusCompleted:
			s.Completed++
		case domain.GoalStatusInProgress:
			s.InProgress++
		case domain.GoalStatusFailed:
			s.Failed++
		default:
			s.Pending++
		}
	}

	if s.Total == 0 {
		s.CompletionRate = 0
		return s
	}
	s.CompletionRate = int(math.Round(100 * float64(s.Completed) / float64(s.Total)))
	return s
}

type AnnualSummary struct {
	Total             int     `json:"total"`
	WithTarget        int     `json:"with_target"`
	AverageCompletion int     `json:"average_completion"`
	ExpectedProgress  float64 `json:"expected_progress"`
	OnTrack           int     `json:"on_track"`
}

// SummarizeAnnualGoals measures goals with a numeric target against the
// share of the year elapsed at ref's month.
func SummarizeAnnualGoals(goals []domain.Goal, ref time.Time) AnnualSummary {
	s := AnnualSummary{
		Total:            len(goals),
		ExpectedProgress: roundTo(float64(ref.Month())/12*100, 2),
	}

	sum := 0.0
	for _, g := range goals {
		if !g.HasTarget() {
			continue
		}
		s.WithTarget++

		p := goalPercent(g.TargetValue, g.CurrentValue)
		sum += p
		if p >= float64(ref.Month())/12*100 {
			s.OnTrack++
		}
	}

	if s.WithTarget > 0 {
		s.AverageCompletion = int(math.Round(sum / float64(s.WithTarget)))
	}
	return s
}

// AnnualGoalProgress is the capped percentage for a goal with a target, nil
// otherwise.
func AnnualGoalProgress(g domain.Goal) *float64 {
	if !g.HasTarget() {
		return nil
	}
	p := goalPercent(g.TargetValue, g.CurrentValue)
	return &p
}

// GroupByCategory buckets goals by category key in first-seen order.
// Goals without a category land under UncategorizedKey.
func GroupByCategory[T any](items []T, category func(T) *domain.Category) ([]string, map[string][]T) {
	var order []string
	groups := make(map[string][]T)
	for _, it := range items {
		key := UncategorizedKey
		if c := category(it); c != nil {
			key = string(*c)
		}
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], it)
	}
	return order, groups
}
