package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/lifeboard/internal/core/domain"
	"github.com/comitanigiacomo/lifeboard/internal/logging"
)

var (
	notFoundErrors = []error{
		domain.ErrHabitNotFound,
		domain.ErrHabitLogNotFound,
		domain.ErrDayNotFound,
		domain.ErrActivityNotFound,
		domain.ErrGoalNotFound,
		domain.ErrMonthlyGoalNotFound,
		domain.ErrWheelNotFound,
	}
	conflictErrors = []error{
		domain.ErrDayConflict,
		domain.ErrHabitLogConflict,
	}
	invalidErrors = []error{
		domain.ErrInvalidDate,
		domain.ErrInvalidDays,
		domain.ErrInvalidCategory,
		domain.ErrInvalidEnergy,
		domain.ErrActivityTitleEmpty,
		domain.ErrHabitNameEmpty,
		domain.ErrHabitNameTooLong,
		domain.ErrInvalidTarget,
		domain.ErrGoalTitleEmpty,
		domain.ErrInvalidGoalTarget,
		domain.ErrInvalidGoalValue,
		domain.ErrInvalidGoalStatus,
		domain.ErrInvalidYear,
		domain.ErrInvalidMonth,
		domain.ErrInvalidScore,
	}
)

func isAny(err error, targets []error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}

func errorStatus(err error) int {
	switch {
	case isAny(err, notFoundErrors):
		return http.StatusNotFound
	case isAny(err, conflictErrors):
		return http.StatusConflict
	case isAny(err, invalidErrors):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// handleError writes the JSON error response for err. Unknown errors are
// logged and hidden behind a generic message.
func handleError(c *gin.Context, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		l := logging.Component("http")
		l.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
		_ = c.Error(err)
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
