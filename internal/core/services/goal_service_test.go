package services_test

import (
	"context"
	"testing"

	"github.com/comitanigiacomo/lifeboard/internal/core/domain"
	"github.com/comitanigiacomo/lifeboard/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalService(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	g, err := f.goals.Create(ctx, domain.GoalInput{Title: "Read 24 books", TargetValue: ptr(24.0), Category: "mente"}, 2026)
	require.NoError(t, err)
	_, err = f.goals.Create(ctx, domain.GoalInput{Title: "Old goal"}, 2025)
	require.NoError(t, err)

	t.Run("Success: List is scoped to the year", func(t *testing.T) {
		goals, err := f.goals.List(ctx, 2026)
		require.NoError(t, err)
		require.Len(t, goals, 1)
		assert.Equal(t, g.ID, goals[0].ID)
	})

	t.Run("Success: UpdateProgress persists", func(t *testing.T) {
		_, err := f.goals.UpdateProgress(ctx, g.ID, 6)
		require.NoError(t, err)

		goals, _ := f.goals.List(ctx, 2026)
		assert.Equal(t, 6.0, goals[0].CurrentValue)
	})

	t.Run("Fail: Negative progress", func(t *testing.T) {
		_, err := f.goals.UpdateProgress(ctx, g.ID, -1)
		assert.ErrorIs(t, err, domain.ErrInvalidGoalValue)
	})

	t.Run("Fail: Invalid input", func(t *testing.T) {
		_, err := f.goals.Create(ctx, domain.GoalInput{Title: "x", TargetValue: ptr(0.0)}, 2026)
		assert.ErrorIs(t, err, domain.ErrInvalidGoalTarget)
	})

	t.Run("Success: Delete", func(t *testing.T) {
		require.NoError(t, f.goals.Delete(ctx, g.ID))
		assert.ErrorIs(t, f.goals.Delete(ctx, g.ID), domain.ErrGoalNotFound)
	})
}

func TestMonthlyGoalService(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	g, err := f.monthly.Create(ctx, domain.GoalInput{Title: "Run 50km", TargetValue: ptr(50.0), Category: "corpo"}, 3, 2026)
	require.NoError(t, err)
	assert.Equal(t, domain.GoalStatusPending, g.Status)

	t.Run("Success: Update applies value and status", func(t *testing.T) {
		updated, err := f.monthly.Update(ctx, services.UpdateMonthlyGoalInput{
			ID:           g.ID,
			CurrentValue: ptr(20.0),
			Status:       ptr("in_progress"),
		})
		require.NoError(t, err)
		assert.Equal(t, 20.0, updated.CurrentValue)
		assert.Equal(t, domain.GoalStatusInProgress, updated.Status)
	})

	t.Run("Fail: Unknown status", func(t *testing.T) {
		_, err := f.monthly.Update(ctx, services.UpdateMonthlyGoalInput{ID: g.ID, Status: ptr("done")})
		assert.ErrorIs(t, err, domain.ErrInvalidGoalStatus)
	})

	t.Run("Fail: Missing goal", func(t *testing.T) {
		_, err := f.monthly.Update(ctx, services.UpdateMonthlyGoalInput{ID: "ghost"})
		assert.ErrorIs(t, err, domain.ErrMonthlyGoalNotFound)
	})

	t.Run("Success: List is scoped to the month", func(t *testing.T) {
		goals, err := f.monthly.List(ctx, 3, 2026)
		require.NoError(t, err)
		assert.Len(t, goals, 1)

		goals, err = f.monthly.List(ctx, 4, 2026)
		require.NoError(t, err)
		assert.Empty(t, goals)
	})

	t.Run("Fail: List with month 0", func(t *testing.T) {
		_, err := f.monthly.List(ctx, 0, 2026)
		assert.ErrorIs(t, err, domain.ErrInvalidMonth)
	})
}

func TestWheelService(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	t.Run("Success: Latest is nil before any snapshot", func(t *testing.T) {
		w, err := f.wheels.Latest(ctx)
		require.NoError(t, err)
		assert.Nil(t, w)
	})

	_, err := f.wheels.Record(ctx, date(2026, 2, 20), map[domain.Category]float64{domain.CategoryCorpo: 4})
	require.NoError(t, err)
	_, err = f.wheels.Record(ctx, date(2026, 3, 5), map[domain.Category]float64{domain.CategoryCorpo: 9})
	require.NoError(t, err)

	t.Run("Success: ForMonth picks the month's snapshot", func(t *testing.T) {
		w, err := f.wheels.ForMonth(ctx, 2, 2026)
		require.NoError(t, err)
		require.NotNil(t, w)
		assert.Equal(t, 4.0, w.Corpo)

		none, err := f.wheels.ForMonth(ctx, 1, 2026)
		require.NoError(t, err)
		assert.Nil(t, none)
	})

	t.Run("Fail: Score out of range", func(t *testing.T) {
		_, err := f.wheels.Record(ctx, date(2026, 3, 6), map[domain.Category]float64{domain.CategoryCorpo: 11})
		assert.ErrorIs(t, err, domain.ErrInvalidScore)
	})
}
