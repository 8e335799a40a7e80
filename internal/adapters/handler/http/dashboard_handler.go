package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/lifeboard/internal/core/services"
)

type DashboardHandler struct {
	svc   *services.DashboardService
	today Clock
}

func NewDashboardHandler(svc *services.DashboardService, today Clock) *DashboardHandler {
	return &DashboardHandler{svc: svc, today: today}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard", h.Get)
}

// Get godoc
// @Summary Home dashboard
// @Description Today's day and activities, weekly energy, habit stats, annual goals and the wheel of life.
// @Tags dashboard
// @Produce json
// @Param date query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} services.Overview
// @Failure 400 {object} map[string]string
// @Router /dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	ref, err := dateQuery(c, "date", h.today)
	if err != nil {
		handleError(c, err)
		return
	}

	overview, err := h.svc.Overview(c.Request.Context(), ref)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}
