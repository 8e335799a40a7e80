package http

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/lifeboard/internal/core/domain"
)

// Clock yields the current calendar date in the user's timezone.
type Clock func() time.Time

func NewClock(loc *time.Location) Clock {
	return func() time.Time { return domain.Today(loc) }
}

// dateQuery reads a YYYY-MM-DD query parameter, defaulting to today.
func dateQuery(c *gin.Context, key string, today Clock) (time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return today(), nil
	}
	return domain.ParseDate(raw)
}

func optionalDateQuery(c *gin.Context, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func intQuery(c *gin.Context, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return n, nil
}

// monthQuery reads month and year, defaulting to the month of today.
func monthQuery(c *gin.Context, today Clock) (int, int, error) {
	now := today()
	month, err := intQuery(c, "month", int(now.Month()))
	if err != nil {
		return 0, 0, err
	}
	year, err := intQuery(c, "year", now.Year())
	if err != nil {
		return 0, 0, err
	}
	if month < 1 || month > 12 {
		return 0, 0, domain.ErrInvalidMonth
	}
	return month, year, nil
}
