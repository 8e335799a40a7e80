package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterHTTP "github.com/comitanigiacomo/lifeboard/internal/adapters/handler/http"
	"github.com/comitanigiacomo/lifeboard/internal/adapters/repository"
	"github.com/comitanigiacomo/lifeboard/internal/core/services"
)

func TestHealth(t *testing.T) {
	app := setupRouter()

	w := app.do("GET", "/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decode[map[string]string](t, w)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "disabled", body["database"])
	assert.Equal(t, "disabled", body["redis"])
	assert.NotEmpty(t, body["uptime"])
}

func TestMetricsEndpoint(t *testing.T) {
	app := setupRouter()
	app.do("GET", "/api/v1/habits", "")

	w := app.do("GET", "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "lifeboard_http_requests_total")
}

func TestCORSPreflight(t *testing.T) {
	app := setupRouter()

	w := app.do("OPTIONS", "/api/v1/habits", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMCPMount(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	days := services.NewDayService(store.Days(), store.Activities())
	habits := services.NewHabitService(store.Habits(), store.HabitLogs(), nil)
	goals := services.NewGoalService(store.Goals())
	monthly := services.NewMonthlyGoalService(store.MonthlyGoals())
	wheels := services.NewWheelService(store.Wheels())
	dash := services.NewDashboardService(days, habits, goals, monthly, wheels)
	clock := func() time.Time { return today }

	called := false
	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		DayHandler:       adapterHTTP.NewDayHandler(days, clock),
		HabitHandler:     adapterHTTP.NewHabitHandler(habits, dash, clock),
		GoalHandler:      adapterHTTP.NewGoalHandler(goals, monthly, dash, clock),
		WheelHandler:     adapterHTTP.NewWheelHandler(wheels, dash, clock),
		DashboardHandler: adapterHTTP.NewDashboardHandler(dash, clock),
		MCP: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			w.WriteHeader(http.StatusAccepted)
		}),
		StartTime:          time.Now(),
		RateLimitPerMinute: 2,
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/mcp", nil)
	router.ServeHTTP(w, req)
	assert.True(t, called)
	assert.Equal(t, http.StatusAccepted, w.Code)

	t.Run("Rate limit applies to the API only", func(t *testing.T) {
		codes := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/api/v1/habits", nil)
			req.RemoteAddr = "10.1.1.1:40000"
			router.ServeHTTP(w, req)
			codes = append(codes, w.Code)
		}
		assert.Equal(t, []int{200, 200, 429}, codes)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/health", nil)
		req.RemoteAddr = "10.1.1.1:40000"
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
