package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/lifeboard/internal/core/domain"
	"github.com/comitanigiacomo/lifeboard/internal/core/services"
)

type WheelHandler struct {
	svc   *services.WheelService
	dash  *services.DashboardService
	today Clock
}

func NewWheelHandler(svc *services.WheelService, dash *services.DashboardService, today Clock) *WheelHandler {
	return &WheelHandler{svc: svc, dash: dash, today: today}
}

type recordWheelRequest struct {
	Date   string             `json:"date"`
	Scores map[string]float64 `json:"scores" binding:"required"`
}

func (h *WheelHandler) RegisterRoutes(router *gin.RouterGroup) {
	wheel := router.Group("/wheel-of-life")
	{
		wheel.POST("", h.Record)
		wheel.GET("", h.Get)
	}
}

// Record godoc
// @Summary Record a wheel of life snapshot
// @Description Scores go from 0 to 10 and are keyed by category. Missing categories score 0.
// @Tags wheel-of-life
// @Accept json
// @Produce json
// @Param request body recordWheelRequest true "Snapshot; date defaults to today"
// @Success 201 {object} domain.WheelOfLife
// @Failure 400 {object} map[string]string
// @Router /wheel-of-life [post]
func (h *WheelHandler) Record(c *gin.Context) {
	var req recordWheelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	date := h.today()
	if req.Date != "" {
		d, err := domain.ParseDate(req.Date)
		if err != nil {
			handleError(c, err)
			return
		}
		date = d
	}

	scores := make(map[domain.Category]float64, len(req.Scores))
	for key, v := range req.Scores {
		category, err := domain.ParseCategory(key)
		if err != nil {
			handleError(c, err)
			return
		}
		scores[category] = v
	}

	wheel, err := h.svc.Record(c.Request.Context(), date, scores)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, wheel)
}

// Get godoc
// @Summary Resolved wheel of life of a month
// @Description The month's latest snapshot when one exists, otherwise scores derived from the month's goals.
// @Tags wheel-of-life
// @Produce json
// @Param month query int false "Month (1-12), defaults to the current one"
// @Param year query int false "Year, defaults to the current one"
// @Success 200 {object} services.ResolvedWheel
// @Router /wheel-of-life [get]
func (h *WheelHandler) Get(c *gin.Context) {
	month, year, err := monthQuery(c, h.today)
	if err != nil {
		handleError(c, err)
		return
	}

	wheel, err := h.dash.Wheel(c.Request.Context(), month, year)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, wheel)
}
