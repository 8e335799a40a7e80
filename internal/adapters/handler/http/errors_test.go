package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/comitanigiacomo/lifeboard/internal/core/domain"
)

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"Success: Not found", domain.ErrGoalNotFound, http.StatusNotFound},
		{"Success: Wrapped not found", fmt.Errorf("loading habit: %w", domain.ErrHabitNotFound), http.StatusNotFound},
		{"Success: Conflict", domain.ErrDayConflict, http.StatusConflict},
		{"Success: Invalid input", domain.ErrInvalidDays, http.StatusBadRequest},
		{"Success: Anything else", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorStatus(tt.err))
		})
	}
}

func TestHandleError_InternalHidesCause(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/boom", func(c *gin.Context) {
		handleError(c, errors.New("pq: password authentication failed"))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error": "internal server error"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "password")
}
