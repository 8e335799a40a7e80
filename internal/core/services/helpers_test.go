package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/comitanigiacomo/lifeboard/internal/adapters/repository"
	"github.com/comitanigiacomo/lifeboard/internal/core/domain"
	"github.com/comitanigiacomo/lifeboard/internal/core/services"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type fixture struct {
	store     *repository.MemoryStore
	days      *services.DayService
	habits    *services.HabitService
	goals     *services.GoalService
	monthly   *services.MonthlyGoalService
	wheels    *services.WheelService
	dashboard *services.DashboardService
}

func newFixture() *fixture {
	store := repository.NewMemoryStore()
	f := &fixture{
		store:   store,
		days:    services.NewDayService(store.Days(), store.Activities()),
		habits:  services.NewHabitService(store.Habits(), store.HabitLogs(), nil),
		goals:   services.NewGoalService(store.Goals()),
		monthly: services.NewMonthlyGoalService(store.MonthlyGoals()),
		wheels:  services.NewWheelService(store.Wheels()),
	}
	f.dashboard = services.NewDashboardService(f.days, f.habits, f.goals, f.monthly, f.wheels)
	return f
}

func (f *fixture) habit(t *testing.T, name string) *domain.Habit {
	t.Helper()
	h, err := f.habits.Create(context.Background(), services.CreateHabitInput{Name: name, Category: "corpo"})
	require.NoError(t, err)
	return h
}

// complete toggles the habit on for each date, which must not already be logged.
func (f *fixture) complete(t *testing.T, habitID string, dates ...time.Time) {
	t.Helper()
	for _, d := range dates {
		log, err := f.habits.ToggleLog(context.Background(), habitID, d)
		require.NoError(t, err)
		require.True(t, log.Completed)
	}
}
