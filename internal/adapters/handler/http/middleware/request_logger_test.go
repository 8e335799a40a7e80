package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/comitanigiacomo/lifeboard/internal/logging"
	"github.com/comitanigiacomo/lifeboard/internal/telemetry"
)

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	logging.Init(logging.Config{Level: "debug", Format: "json", Output: &buf})
	t.Cleanup(func() { logging.Init(logging.DefaultConfig()) })

	router := gin.New()
	router.Use(RequestLogger())
	router.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	counter := telemetry.HTTPRequestsTotal.WithLabelValues("GET", "/items/:id", "404")
	before := testutil.ToFloat64(counter)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/items/42", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
	assert.Contains(t, buf.String(), `"component":"http"`)
	assert.Contains(t, buf.String(), `"path":"/items/42"`)
	assert.Contains(t, buf.String(), `"level":"warn"`)
}
