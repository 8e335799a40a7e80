package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	adapterHTTP "github.com/comitanigiacomo/lifeboard/internal/adapters/handler/http"
	"github.com/comitanigiacomo/lifeboard/internal/adapters/repository"
	"github.com/comitanigiacomo/lifeboard/internal/core/services"
)

var today = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

type testApp struct {
	router *gin.Engine
	store  *repository.MemoryStore
	habits *services.HabitService
	goals  *services.GoalService
}

func setupRouter() *testApp {
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	days := services.NewDayService(store.Days(), store.Activities())
	habits := services.NewHabitService(store.Habits(), store.HabitLogs(), nil)
	goals := services.NewGoalService(store.Goals())
	monthly := services.NewMonthlyGoalService(store.MonthlyGoals())
	wheels := services.NewWheelService(store.Wheels())
	dash := services.NewDashboardService(days, habits, goals, monthly, wheels)

	clock := func() time.Time { return today }

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		DayHandler:         adapterHTTP.NewDayHandler(days, clock),
		HabitHandler:       adapterHTTP.NewHabitHandler(habits, dash, clock),
		GoalHandler:        adapterHTTP.NewGoalHandler(goals, monthly, dash, clock),
		WheelHandler:       adapterHTTP.NewWheelHandler(wheels, dash, clock),
		DashboardHandler:   adapterHTTP.NewDashboardHandler(dash, clock),
		StartTime:          time.Now(),
		RateLimitPerMinute: 1000,
	})

	return &testApp{router: router, store: store, habits: habits, goals: goals}
}

func (a *testApp) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, path, nil)
	} else {
		req, _ = http.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
