package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/lifeboard/internal/core/domain"
	"github.com/comitanigiacomo/lifeboard/internal/core/services"
)

type GoalHandler struct {
	goals   *services.GoalService
	monthly *services.MonthlyGoalService
	dash    *services.DashboardService
	today   Clock
}

func NewGoalHandler(goals *services.GoalService, monthly *services.MonthlyGoalService, dash *services.DashboardService, today Clock) *GoalHandler {
	return &GoalHandler{
		goals:   goals,
		monthly: monthly,
		dash:    dash,
		today:   today,
	}
}

type goalRequest struct {
	Title        string   `json:"title" binding:"required"`
	TargetValue  *float64 `json:"target_value"`
	CurrentValue float64  `json:"current_value"`
	Unit         string   `json:"unit"`
	Category     string   `json:"category"`
}

func (r goalRequest) input() domain.GoalInput {
	return domain.GoalInput{
		Title:        r.Title,
		TargetValue:  r.TargetValue,
		CurrentValue: r.CurrentValue,
		Unit:         r.Unit,
		Category:     r.Category,
	}
}

type createGoalRequest struct {
	goalRequest
	Year int `json:"year"`
}

type createMonthlyGoalRequest struct {
	goalRequest
	Month int `json:"month"`
	Year  int `json:"year"`
}

type progressRequest struct {
	CurrentValue *float64 `json:"current_value" binding:"required"`
}

type updateMonthlyGoalRequest struct {
	CurrentValue *float64 `json:"current_value"`
	Status       *string  `json:"status"`
}

func (h *GoalHandler) RegisterRoutes(router *gin.RouterGroup) {
	goals := router.Group("/goals")
	{
		goals.POST("", h.Create)
		goals.GET("", h.List)
		goals.GET("/overview", h.Overview)
		goals.PATCH("/:id", h.UpdateProgress)
		goals.DELETE("/:id", h.Delete)
	}

	monthly := router.Group("/monthly-goals")
	{
		monthly.POST("", h.CreateMonthly)
		monthly.GET("", h.ListMonthly)
		monthly.GET("/report", h.Report)
		monthly.PATCH("/:id", h.UpdateMonthly)
	}
}

func (h *GoalHandler) yearQuery(c *gin.Context) (int, error) {
	return intQuery(c, "year", h.today().Year())
}

// Create godoc
// @Summary Create an annual goal
// @Tags goals
// @Accept json
// @Produce json
// @Param request body createGoalRequest true "Goal; year defaults to the current one"
// @Success 201 {object} domain.Goal
// @Failure 400 {object} map[string]string
// @Router /goals [post]
func (h *GoalHandler) Create(c *gin.Context) {
	var req createGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if req.Year == 0 {
		req.Year = h.today().Year()
	}

	goal, err := h.goals.Create(c.Request.Context(), req.input(), req.Year)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, goal)
}

// List godoc
// @Summary List the goals of a year
// @Tags goals
// @Produce json
// @Param year query int false "Year, defaults to the current one"
// @Success 200 {array} domain.Goal
// @Router /goals [get]
func (h *GoalHandler) List(c *gin.Context) {
	year, err := h.yearQuery(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	list, err := h.goals.List(c.Request.Context(), year)
	if err != nil {
		handleError(c, err)
		return
	}

	if list == nil {
		list = []*domain.Goal{}
	}
	c.JSON(http.StatusOK, list)
}

// Overview godoc
// @Summary Annual goals grouped by category
// @Description Includes the summary counters and the wheel of life resolved from the latest snapshot or the goals.
// @Tags goals
// @Produce json
// @Param year query int false "Year, defaults to the current one"
// @Param date query string false "Reference date for the remaining-days counter"
// @Success 200 {object} services.GoalsOverview
// @Router /goals/overview [get]
func (h *GoalHandler) Overview(c *gin.Context) {
	year, err := h.yearQuery(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	ref, err := dateQuery(c, "date", h.today)
	if err != nil {
		handleError(c, err)
		return
	}

	overview, err := h.dash.GoalsOverview(c.Request.Context(), year, ref)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

// UpdateProgress godoc
// @Summary Set the current value of a goal
// @Tags goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param request body progressRequest true "Progress"
// @Success 200 {object} domain.Goal
// @Failure 404 {object} map[string]string
// @Router /goals/{id} [patch]
func (h *GoalHandler) UpdateProgress(c *gin.Context) {
	var req progressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	goal, err := h.goals.UpdateProgress(c.Request.Context(), c.Param("id"), *req.CurrentValue)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}

// Delete godoc
// @Summary Delete a goal
// @Tags goals
// @Param id path string true "Goal ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /goals/{id} [delete]
func (h *GoalHandler) Delete(c *gin.Context) {
	if err := h.goals.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateMonthly godoc
// @Summary Create a monthly goal
// @Tags monthly-goals
// @Accept json
// @Produce json
// @Param request body createMonthlyGoalRequest true "Goal; month and year default to the current ones"
// @Success 201 {object} domain.MonthlyGoal
// @Failure 400 {object} map[string]string
// @Router /monthly-goals [post]
func (h *GoalHandler) CreateMonthly(c *gin.Context) {
	var req createMonthlyGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	now := h.today()
	if req.Month == 0 {
		req.Month = int(now.Month())
	}
	if req.Year == 0 {
		req.Year = now.Year()
	}

	goal, err := h.monthly.Create(c.Request.Context(), req.input(), req.Month, req.Year)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, goal)
}

// ListMonthly godoc
// @Summary List the goals of a month
// @Tags monthly-goals
// @Produce json
// @Param month query int false "Month (1-12), defaults to the current one"
// @Param year query int false "Year, defaults to the current one"
// @Success 200 {array} domain.MonthlyGoal
// @Router /monthly-goals [get]
func (h *GoalHandler) ListMonthly(c *gin.Context) {
	month, year, err := monthQuery(c, h.today)
	if err != nil {
		handleError(c, err)
		return
	}

	list, err := h.monthly.List(c.Request.Context(), month, year)
	if err != nil {
		handleError(c, err)
		return
	}

	if list == nil {
		list = []*domain.MonthlyGoal{}
	}
	c.JSON(http.StatusOK, list)
}

// UpdateMonthly godoc
// @Summary Update progress or status of a monthly goal
// @Tags monthly-goals
// @Accept json
// @Produce json
// @Param id path string true "Monthly goal ID"
// @Param request body updateMonthlyGoalRequest true "Changes"
// @Success 200 {object} domain.MonthlyGoal
// @Failure 404 {object} map[string]string
// @Router /monthly-goals/{id} [patch]
func (h *GoalHandler) UpdateMonthly(c *gin.Context) {
	var req updateMonthlyGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	goal, err := h.monthly.Update(c.Request.Context(), services.UpdateMonthlyGoalInput{
		ID:           c.Param("id"),
		CurrentValue: req.CurrentValue,
		Status:       req.Status,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}

// Report godoc
// @Summary Monthly report
// @Description Goal summary, energy, wheel of life compared with the previous month, goals by category.
// @Tags monthly-goals
// @Produce json
// @Param month query int false "Month (1-12), defaults to the current one"
// @Param year query int false "Year, defaults to the current one"
// @Success 200 {object} services.MonthlyReport
// @Failure 400 {object} map[string]string
// @Router /monthly-goals/report [get]
func (h *GoalHandler) Report(c *gin.Context) {
	month, year, err := monthQuery(c, h.today)
	if err != nil {
		handleError(c, err)
		return
	}

	report, err := h.dash.MonthlyReport(c.Request.Context(), month, year, h.today())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
