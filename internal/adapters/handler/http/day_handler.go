package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/lifeboard/internal/core/domain"
	"github.com/comitanigiacomo/lifeboard/internal/core/services"
)

type DayHandler struct {
	svc   *services.DayService
	today Clock
}

func NewDayHandler(svc *services.DayService, today Clock) *DayHandler {
	return &DayHandler{svc: svc, today: today}
}

type activityRequest struct {
	Category    string `json:"category" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

func (r activityRequest) input() services.ActivityInput {
	return services.ActivityInput{
		Category:    r.Category,
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
	}
}

type createDayRequest struct {
	Date        string            `json:"date"`
	EnergyLevel int               `json:"energy_level"`
	Notes       string            `json:"notes"`
	Activities  []activityRequest `json:"activities"`
}

type setCompletedRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

func (h *DayHandler) RegisterRoutes(router *gin.RouterGroup) {
	days := router.Group("/days")
	{
		days.POST("", h.Create)
		days.GET("", h.List)
		days.GET("/:date", h.Get)
		days.POST("/:date/activities", h.AddActivity)
	}

	activities := router.Group("/activities")
	{
		activities.GET("/recent", h.RecentActivities)
		activities.PATCH("/:id", h.SetActivityCompleted)
	}
}

// Create godoc
// @Summary Log a day
// @Description Stores the day's energy level, notes and activities. The date defaults to today.
// @Tags days
// @Accept json
// @Produce json
// @Param request body createDayRequest true "Day"
// @Success 201 {object} domain.Day
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string "A day already exists for this date"
// @Router /days [post]
func (h *DayHandler) Create(c *gin.Context) {
	var req createDayRequest
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

	input := services.CreateDayInput{
		Date:        date,
		EnergyLevel: req.EnergyLevel,
		Notes:       req.Notes,
	}
	for _, a := range req.Activities {
		input.Activities = append(input.Activities, a.input())
	}

	day, err := h.svc.Create(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, day)
}

// List godoc
// @Summary List days
// @Description Newest first. With month and year only that month is returned.
// @Tags days
// @Produce json
// @Param month query int false "Month (1-12)"
// @Param year query int false "Year"
// @Success 200 {array} domain.Day
// @Router /days [get]
func (h *DayHandler) List(c *gin.Context) {
	var (
		days []*domain.Day
		err  error
	)

	if c.Query("month") != "" || c.Query("year") != "" {
		month, year, perr := monthQuery(c, h.today)
		if perr != nil {
			handleError(c, perr)
			return
		}
		days, err = h.svc.ListForMonth(c.Request.Context(), month, year)
	} else {
		days, err = h.svc.List(c.Request.Context())
	}
	if err != nil {
		handleError(c, err)
		return
	}

	if days == nil {
		days = []*domain.Day{}
	}
	c.JSON(http.StatusOK, days)
}

// Get godoc
// @Summary Get a day
// @Tags days
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} domain.Day
// @Failure 404 {object} map[string]string
// @Router /days/{date} [get]
func (h *DayHandler) Get(c *gin.Context) {
	date, err := domain.ParseDate(c.Param("date"))
	if err != nil {
		handleError(c, err)
		return
	}

	day, err := h.svc.GetByDate(c.Request.Context(), date)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, day)
}

// AddActivity godoc
// @Summary Add an activity to a logged day
// @Tags days
// @Accept json
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param request body activityRequest true "Activity"
// @Success 201 {object} domain.Activity
// @Failure 404 {object} map[string]string
// @Router /days/{date}/activities [post]
func (h *DayHandler) AddActivity(c *gin.Context) {
	date, err := domain.ParseDate(c.Param("date"))
	if err != nil {
		handleError(c, err)
		return
	}

	var req activityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	activity, err := h.svc.AddActivity(c.Request.Context(), date, req.input())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, activity)
}

// RecentActivities godoc
// @Summary Most recent activities
// @Tags days
// @Produce json
// @Param limit query int false "Maximum number of activities" default(5)
// @Success 200 {array} domain.Activity
// @Router /activities/recent [get]
func (h *DayHandler) RecentActivities(c *gin.Context) {
	limit, err := intQuery(c, "limit", services.DefaultRecentActivities)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	list, err := h.svc.RecentActivities(c.Request.Context(), limit)
	if err != nil {
		handleError(c, err)
		return
	}

	if list == nil {
		list = []*domain.Activity{}
	}
	c.JSON(http.StatusOK, list)
}

// SetActivityCompleted godoc
// @Summary Mark an activity as done or not done
// @Tags days
// @Accept json
// @Param id path string true "Activity ID"
// @Param request body setCompletedRequest true "Completion flag"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /activities/{id} [patch]
func (h *DayHandler) SetActivityCompleted(c *gin.Context) {
	var req setCompletedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	if err := h.svc.SetActivityCompleted(c.Request.Context(), c.Param("id"), *req.Completed); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
