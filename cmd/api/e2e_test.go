package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/lifeboard/internal/config"
	"github.com/comitanigiacomo/lifeboard/internal/core/domain"
)

type createResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func setupApp(t *testing.T) *app {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	cfg.Database.Driver = config.DriverMemory

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	a, err := newApp(ctx, cfg, time.Now())
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a
}

func send(a *app, method, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func TestEndToEnd_HabitLifecycle(t *testing.T) {
	a := setupApp(t)
	today := domain.DateKey(domain.Today(time.UTC))
	yesterday := domain.DateKey(domain.Today(time.UTC).AddDate(0, 0, -1))

	var habitID string

	t.Run("1. Create Habit", func(t *testing.T) {
		w := send(a, "POST", "/api/v1/habits", `{"name": "Morning Run", "category": "corpo", "target_per_week": 4}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var resp createResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Morning Run", resp.Name)
		habitID = resp.ID
	})

	t.Run("2. Complete it two days in a row", func(t *testing.T) {
		for _, d := range []string{yesterday, today} {
			w := send(a, "POST", "/api/v1/habit-logs/toggle", `{"habit_id": "`+habitID+`", "date": "`+d+`"}`)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.Contains(t, w.Body.String(), `"completed":true`)
		}
	})

	t.Run("3. Streak worker persists the streak", func(t *testing.T) {
		require.Eventually(t, func() bool {
			w := send(a, "GET", "/api/v1/habits", "")
			var habits []domain.Habit
			if err := json.Unmarshal(w.Body.Bytes(), &habits); err != nil || len(habits) != 1 {
				return false
			}
			return habits[0].CurrentStreak == 2 && habits[0].LongestStreak == 2
		}, 2*time.Second, 20*time.Millisecond)
	})

	t.Run("4. Stats reflect the completions", func(t *testing.T) {
		w := send(a, "GET", "/api/v1/habits/stats", "")
		require.Equal(t, http.StatusOK, w.Code)

		var stats domain.HabitStats
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
		require.Len(t, stats.Habits, 1)
		assert.Equal(t, 2, stats.Habits[0].Streak)
		assert.Equal(t, 1, stats.CompletedToday)
	})

	t.Run("5. Dashboard", func(t *testing.T) {
		require.Equal(t, http.StatusCreated, send(a, "POST", "/api/v1/days", `{"energy_level": 7}`).Code)

		w := send(a, "GET", "/api/v1/dashboard", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"date":"`+today+`"`)
		assert.Contains(t, w.Body.String(), `"average":7`)
	})

	t.Run("6. Delete Habit", func(t *testing.T) {
		assert.Equal(t, http.StatusNoContent, send(a, "DELETE", "/api/v1/habits/"+habitID, "").Code)

		w := send(a, "GET", "/api/v1/habit-logs?habit_id="+habitID, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}

func TestEndToEnd_Surfaces(t *testing.T) {
	a := setupApp(t)

	t.Run("Health on the memory driver", func(t *testing.T) {
		w := send(a, "GET", "/health", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"database":"disabled"`)
	})

	t.Run("Application state loaded at startup", func(t *testing.T) {
		assert.True(t, a.dashboard.Loaded())
	})

	t.Run("MCP initialize", func(t *testing.T) {
		body := `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-03-26","capabilities":{},"clientInfo":{"name":"e2e","version":"1.0"}}}`
		req, _ := http.NewRequest("POST", "/mcp", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json, text/event-stream")
		w := httptest.NewRecorder()
		a.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"lifeboard"`)
	})
}
