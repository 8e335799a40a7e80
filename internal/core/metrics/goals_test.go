package metrics_test

import (
	"testing"
	"time"

	"github.com/comitanigiacomo/lifeboard/internal/core/domain"
	"github.com/comitanigiacomo/lifeboard/internal/core/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyGoalProgress(t *testing.T) {
	tests := []struct {
		name string
		goal domain.MonthlyGoal
		want float64
	}{
		{"With target", domain.MonthlyGoal{TargetValue: ptr(8.0), CurrentValue: 2}, 25},
		{"Capped at 100", domain.MonthlyGoal{TargetValue: ptr(8.0), CurrentValue: 20}, 100},
		{"No target, completed", domain.MonthlyGoal{Status: domain.GoalStatusCompleted, CurrentValue: 3}, 100},
		{"No target, in progress", domain.MonthlyGoal{Status: domain.GoalStatusInProgress, CurrentValue: 3}, 0},
		{"Zero target treated as none", domain.MonthlyGoal{TargetValue: ptr(0.0), Status: domain.GoalStatusPending}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, metrics.MonthlyGoalProgress(tt.goal))
		})
	}
}

func TestSummarizeMonthlyGoals(t *testing.T) {
	t.Run("Success: Empty list has zero rate", func(t *testing.T) {
		s := metrics.SummarizeMonthlyGoals(nil)
		assert.Equal(t, metrics.MonthlySummary{}, s)
	})

	t.Run("Success: Counts by status", func(t *testing.T) {
		s := metrics.SummarizeMonthlyGoals([]domain.MonthlyGoal{
			{Status: domain.GoalStatusCompleted},
			{Status: domain.GoalStatusCompleted},
			{Status: domain.GoalStatusInProgress},
			{Status: domain.GoalStatusPending},
			{Status: domain.GoalStatusFailed},
			{Status: domain.GoalStatusFailed},
		})

		assert.Equal(t, 6, s.Total)
		assert.Equal(t, 2, s.Completed)
		assert.Equal(t, 1, s.InProgress)
		assert.Equal(t, 1, s.Pending)
		assert.Equal(t, 2, s.Failed)
		assert.Equal(t, 33, s.CompletionRate)
	})
}

func TestSummarizeAnnualGoals(t *testing.T) {
	june := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("Success: No targets", func(t *testing.T) {
		s := metrics.SummarizeAnnualGoals([]domain.Goal{{Title: "qualitative"}}, june)
		assert.Equal(t, 1, s.Total)
		assert.Equal(t, 0, s.WithTarget)
		assert.Equal(t, 0, s.AverageCompletion)
		assert.Equal(t, 50.0, s.ExpectedProgress)
	})

	t.Run("Success: Average and on-track count", func(t *testing.T) {
		s := metrics.SummarizeAnnualGoals([]domain.Goal{
			{TargetValue: ptr(10.0), CurrentValue: 6},
			{TargetValue: ptr(10.0), CurrentValue: 1},
			{TargetValue: ptr(10.0), CurrentValue: 30},
			{CurrentValue: 4},
		}, june)

		assert.Equal(t, 4, s.Total)
		assert.Equal(t, 3, s.WithTarget)
		// (60 + 10 + 100) / 3
		assert.Equal(t, 57, s.AverageCompletion)
		assert.Equal(t, 2, s.OnTrack)
	})
}

func TestAnnualGoalProgress(t *testing.T) {
	assert.Nil(t, metrics.AnnualGoalProgress(domain.Goal{}))

	p := metrics.AnnualGoalProgress(domain.Goal{TargetValue: ptr(4.0), CurrentValue: 1})
	require.NotNil(t, p)
	assert.Equal(t, 25.0, *p)
}

func TestGroupByCategory(t *testing.T) {
	mente := domain.CategoryMente
	goals := []domain.Goal{
		{ID: "g1", Category: &mente},
		{ID: "g2"},
		{ID: "g3", Category: &mente},
	}

	order, groups := metrics.GroupByCategory(goals, func(g domain.Goal) *domain.Category { return g.Category })

	assert.Equal(t, []string{"mente", metrics.UncategorizedKey}, order)
	assert.Len(t, groups["mente"], 2)
	assert.Len(t, groups[metrics.UncategorizedKey], 1)
}
