package http_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/lifeboard/internal/core/domain"
	"github.com/comitanigiacomo/lifeboard/internal/core/services"
)

func (a *testApp) habit(t *testing.T, name string) *domain.Habit {
	t.Helper()
	h, err := a.habits.Create(context.Background(), services.CreateHabitInput{Name: name, Category: "corpo"})
	require.NoError(t, err)
	return h
}

func TestCreateHabit(t *testing.T) {
	t.Run("Success: 201 Created", func(t *testing.T) {
		app := setupRouter()

		w := app.do("POST", "/api/v1/habits", `{"name": "Gym", "category": "corpo", "emoji": "💪", "target_per_week": 3}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"Gym"`)
		assert.Contains(t, w.Body.String(), `"id":`)
		assert.Contains(t, w.Body.String(), `"target_per_week":3`)
	})

	t.Run("Fail: 400 Bad Request (Missing name)", func(t *testing.T) {
		app := setupRouter()
		w := app.do("POST", "/api/v1/habits", `{"category": "corpo"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Fail: 400 Bad Request (Domain validation)", func(t *testing.T) {
		app := setupRouter()
		w := app.do("POST", "/api/v1/habits", `{"name": "Gym", "category": "corpo", "target_per_week": 9}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), domain.ErrInvalidTarget.Error())
	})
}

func TestGetHabits(t *testing.T) {
	t.Run("Success: 200 OK with empty list", func(t *testing.T) {
		app := setupRouter()
		w := app.do("GET", "/api/v1/habits", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("Success: 200 OK with List", func(t *testing.T) {
		app := setupRouter()
		app.habit(t, "Run")

		w := app.do("GET", "/api/v1/habits", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Run")
	})
}

func TestUpdateHabit(t *testing.T) {
	t.Run("Success: 200 OK Partial Update", func(t *testing.T) {
		app := setupRouter()
		h := app.habit(t, "Old Title")

		w := app.do("PUT", "/api/v1/habits/"+h.ID, `{"name": "Updated Title"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		updated, err := app.habits.Get(context.Background(), h.ID)
		require.NoError(t, err)
		assert.Equal(t, "Updated Title", updated.Name)
		assert.Equal(t, domain.CategoryCorpo, updated.Category)
	})

	t.Run("Fail: 404 Not Found", func(t *testing.T) {
		app := setupRouter()
		w := app.do("PUT", "/api/v1/habits/ghost", `{"name": "x"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteHabit(t *testing.T) {
	app := setupRouter()
	h := app.habit(t, "Run")

	assert.Equal(t, http.StatusNoContent, app.do("DELETE", "/api/v1/habits/"+h.ID, "").Code)
	assert.Equal(t, http.StatusNotFound, app.do("DELETE", "/api/v1/habits/"+h.ID, "").Code)
}

func TestToggleHabitLog(t *testing.T) {
	t.Run("Success: Toggle twice restores the original state", func(t *testing.T) {
		app := setupRouter()
		h := app.habit(t, "Read")
		body := `{"habit_id": "` + h.ID + `", "date": "2026-03-09"}`

		w := app.do("POST", "/api/v1/habit-logs/toggle", body)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"habit_id": "`+h.ID+`", "date": "2026-03-09", "completed": true}`, w.Body.String())

		w = app.do("POST", "/api/v1/habit-logs/toggle", body)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"completed":false`)
	})

	t.Run("Success: Date defaults to today", func(t *testing.T) {
		app := setupRouter()
		h := app.habit(t, "Read")

		w := app.do("POST", "/api/v1/habit-logs/toggle", `{"habit_id": "`+h.ID+`"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"date":"2026-03-10"`)
	})

	t.Run("Fail: 404 Not Found (Unknown habit)", func(t *testing.T) {
		app := setupRouter()
		w := app.do("POST", "/api/v1/habit-logs/toggle", `{"habit_id": "ghost"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Fail: 400 Bad Request (Missing habit_id)", func(t *testing.T) {
		app := setupRouter()
		w := app.do("POST", "/api/v1/habit-logs/toggle", `{"date": "2026-03-09"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListHabitLogs(t *testing.T) {
	app := setupRouter()
	a, b := app.habit(t, "A"), app.habit(t, "B")
	for _, toggle := range []struct{ id, date string }{
		{a.ID, "2026-03-01"}, {a.ID, "2026-03-05"}, {b.ID, "2026-03-03"},
	} {
		require.Equal(t, http.StatusOK, app.do("POST", "/api/v1/habit-logs/toggle", `{"habit_id": "`+toggle.id+`", "date": "`+toggle.date+`"}`).Code)
	}

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"All logs", "", 3},
		{"By habit", "?habit_id=" + a.ID, 2},
		{"By several habits", "?habit_id=" + a.ID + "&habit_id=" + b.ID, 3},
		{"By range", "?from=2026-03-02&to=2026-03-05", 2},
	}
	for _, tt := range tests {
		t.Run("Success: "+tt.name, func(t *testing.T) {
			w := app.do("GET", "/api/v1/habit-logs"+tt.query, "")
			require.Equal(t, http.StatusOK, w.Code)
			assert.Len(t, decode[[]map[string]any](t, w), tt.want)
		})
	}

	t.Run("Fail: 400 Bad Request (Inverted range)", func(t *testing.T) {
		w := app.do("GET", "/api/v1/habit-logs?from=2026-03-05&to=2026-03-01", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHabitStatsAndCalendar(t *testing.T) {
	app := setupRouter()
	h := app.habit(t, "Run")
	for _, d := range []string{"2026-03-08", "2026-03-09", "2026-03-10"} {
		require.Equal(t, http.StatusOK, app.do("POST", "/api/v1/habit-logs/toggle", `{"habit_id": "`+h.ID+`", "date": "`+d+`"}`).Code)
	}

	t.Run("Success: 200 OK stats as of today", func(t *testing.T) {
		w := app.do("GET", "/api/v1/habits/stats", "")
		require.Equal(t, http.StatusOK, w.Code)

		stats := decode[domain.HabitStats](t, w)
		assert.Equal(t, "2026-03-10", stats.Date)
		assert.Equal(t, 1, stats.CompletedToday)
		require.Len(t, stats.Habits, 1)
		assert.Equal(t, 3, stats.Habits[0].Streak)
		assert.Equal(t, 3, stats.Habits[0].WeeklyCompletions)
	})

	t.Run("Success: 200 OK stats as of an earlier date", func(t *testing.T) {
		w := app.do("GET", "/api/v1/habits/stats?date=2026-03-08", "")
		require.Equal(t, http.StatusOK, w.Code)
		stats := decode[domain.HabitStats](t, w)
		assert.Equal(t, 1, stats.Habits[0].Streak)
	})

	t.Run("Success: 200 OK calendar", func(t *testing.T) {
		w := app.do("GET", "/api/v1/habits/"+h.ID+"/calendar?days=4", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[
			{"date": "2026-03-07", "completed": false},
			{"date": "2026-03-08", "completed": true},
			{"date": "2026-03-09", "completed": true},
			{"date": "2026-03-10", "completed": true}
		]`, w.Body.String())
	})

	t.Run("Fail: 400 Bad Request (Calendar wider than a year)", func(t *testing.T) {
		w := app.do("GET", "/api/v1/habits/"+h.ID+"/calendar?days=3000000", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "days must be between 1 and 366")
	})

	t.Run("Fail: 404 Not Found calendar", func(t *testing.T) {
		w := app.do("GET", "/api/v1/habits/ghost/calendar", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Fail: 400 Bad Request (Bad date)", func(t *testing.T) {
		w := app.do("GET", "/api/v1/habits/stats?date=yesterday", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
