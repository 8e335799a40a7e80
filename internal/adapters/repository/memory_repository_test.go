package repository

import (
	"context"
	"testing"
	"time"

	"github.com/comitanigiacomo/lifeboard/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMemoryStore_Days(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	days := store.Days()

	for _, d := range []int{3, 1, 2} {
		day, err := domain.NewDay(date(2026, 3, d), d, "")
		require.NoError(t, err)
		require.NoError(t, days.Create(ctx, day))
	}

	t.Run("Fail: One day per date", func(t *testing.T) {
		dup, _ := domain.NewDay(date(2026, 3, 1), 5, "")
		assert.ErrorIs(t, days.Create(ctx, dup), domain.ErrDayConflict)
	})

	t.Run("Success: List is newest first", func(t *testing.T) {
		list, err := days.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, 3, list[0].Date.Day())
		assert.Equal(t, 1, list[2].Date.Day())
	})

	t.Run("Success: ListBetween is inclusive and ascending", func(t *testing.T) {
		list, err := days.ListBetween(ctx, date(2026, 3, 2), date(2026, 3, 3))
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, 2, list[0].Date.Day())
	})

	t.Run("Fail: Unknown date", func(t *testing.T) {
		_, err := days.GetByDate(ctx, date(2025, 1, 1))
		assert.ErrorIs(t, err, domain.ErrDayNotFound)
	})
}

func TestMemoryStore_HabitLogs(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	habits, logs := store.Habits(), store.HabitLogs()

	habit, err := domain.NewHabit("Read", domain.CategoryMente, "", 7)
	require.NoError(t, err)
	require.NoError(t, habits.Create(ctx, habit))

	log := domain.NewHabitLog(habit.ID, date(2026, 3, 10))
	require.NoError(t, logs.Create(ctx, log))

	t.Run("Fail: Duplicate date conflicts", func(t *testing.T) {
		err := logs.Create(ctx, domain.NewHabitLog(habit.ID, date(2026, 3, 10)))
		assert.ErrorIs(t, err, domain.ErrHabitLogConflict)
	})

	t.Run("Fail: Unknown habit", func(t *testing.T) {
		err := logs.Create(ctx, domain.NewHabitLog("ghost", date(2026, 3, 10)))
		assert.ErrorIs(t, err, domain.ErrHabitNotFound)
	})

	t.Run("Success: Returned values are copies", func(t *testing.T) {
		got, err := logs.GetByHabitAndDate(ctx, habit.ID, date(2026, 3, 10))
		require.NoError(t, err)
		got.Completed = false

		again, _ := logs.GetByHabitAndDate(ctx, habit.ID, date(2026, 3, 10))
		assert.True(t, again.Completed)
	})

	t.Run("Success: Deleting a habit removes its logs", func(t *testing.T) {
		require.NoError(t, habits.Delete(ctx, habit.ID))

		list, err := logs.List(ctx, domain.HabitLogFilter{})
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestMemoryStore_Wheels(t *testing.T) {
	ctx := context.Background()
	wheels := NewMemoryStore().Wheels()

	_, err := wheels.Latest(ctx)
	assert.ErrorIs(t, err, domain.ErrWheelNotFound)

	feb, _ := domain.NewWheelOfLife(date(2026, 2, 14), map[domain.Category]float64{domain.CategoryAnima: 3})
	mar, _ := domain.NewWheelOfLife(date(2026, 3, 2), map[domain.Category]float64{domain.CategoryAnima: 8})
	require.NoError(t, wheels.Create(ctx, feb))
	require.NoError(t, wheels.Create(ctx, mar))

	latest, err := wheels.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, mar.ID, latest.ID)

	inFeb, err := wheels.LatestBetween(ctx, date(2026, 2, 1), date(2026, 2, 28))
	require.NoError(t, err)
	assert.Equal(t, 3.0, inFeb.Anima)

	_, err = wheels.LatestBetween(ctx, date(2026, 1, 1), date(2026, 1, 31))
	assert.ErrorIs(t, err, domain.ErrWheelNotFound)
}
