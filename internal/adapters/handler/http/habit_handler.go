package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/lifeboard/internal/core/domain"
	"github.com/comitanigiacomo/lifeboard/internal/core/services"
)

type HabitHandler struct {
	svc   *services.HabitService
	dash  *services.DashboardService
	today Clock
}

func NewHabitHandler(svc *services.HabitService, dash *services.DashboardService, today Clock) *HabitHandler {
	return &HabitHandler{
		svc:   svc,
		dash:  dash,
		today: today,
	}
}

type createHabitRequest struct {
	Name          string `json:"name" binding:"required"`
	Category      string `json:"category" binding:"required"`
	Emoji         string `json:"emoji"`
	TargetPerWeek int    `json:"target_per_week"`
}

type updateHabitRequest struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Emoji         *string `json:"emoji"`
	TargetPerWeek int     `json:"target_per_week"`
}

type toggleRequest struct {
	HabitID string `json:"habit_id" binding:"required"`
	Date    string `json:"date"`
}

type toggleResponse struct {
	HabitID   string `json:"habit_id"`
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

func (h *HabitHandler) RegisterRoutes(router *gin.RouterGroup) {
	habits := router.Group("/habits")
	{
		habits.POST("", h.Create)
		habits.GET("", h.List)
		habits.GET("/stats", h.Stats)
		habits.GET("/:id/calendar", h.Calendar)
		habits.PUT("/:id", h.Update)
		habits.DELETE("/:id", h.Delete)
	}

	logs := router.Group("/habit-logs")
	{
		logs.GET("", h.ListLogs)
		logs.POST("/toggle", h.Toggle)
	}
}

// Create godoc
// @Summary Create a habit
// @Tags habits
// @Accept json
// @Produce json
// @Param request body createHabitRequest true "Habit"
// @Success 201 {object} domain.Habit
// @Failure 400 {object} map[string]string
// @Router /habits [post]
func (h *HabitHandler) Create(c *gin.Context) {
	var req createHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	habit, err := h.svc.Create(c.Request.Context(), services.CreateHabitInput{
		Name:          req.Name,
		Category:      req.Category,
		Emoji:         req.Emoji,
		TargetPerWeek: req.TargetPerWeek,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, habit)
}

// List godoc
// @Summary List habits
// @Tags habits
// @Produce json
// @Success 200 {array} domain.Habit
// @Router /habits [get]
func (h *HabitHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	if list == nil {
		list = []*domain.Habit{}
	}
	c.JSON(http.StatusOK, list)
}

// Update godoc
// @Summary Update a habit
// @Description Empty fields keep their stored value.
// @Tags habits
// @Accept json
// @Produce json
// @Param id path string true "Habit ID"
// @Param request body updateHabitRequest true "Changes"
// @Success 200 {object} domain.Habit
// @Failure 404 {object} map[string]string
// @Router /habits/{id} [put]
func (h *HabitHandler) Update(c *gin.Context) {
	var req updateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	habit, err := h.svc.Update(c.Request.Context(), services.UpdateHabitInput{
		ID:            c.Param("id"),
		Name:          req.Name,
		Category:      req.Category,
		Emoji:         req.Emoji,
		TargetPerWeek: req.TargetPerWeek,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, habit)
}

// Delete godoc
// @Summary Delete a habit and its logs
// @Tags habits
// @Param id path string true "Habit ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /habits/{id} [delete]
func (h *HabitHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Stats godoc
// @Summary Habit statistics
// @Description Streaks, weekly completions and monthly rates as of the given date.
// @Tags habits
// @Produce json
// @Param date query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} domain.HabitStats
// @Router /habits/stats [get]
func (h *HabitHandler) Stats(c *gin.Context) {
	ref, err := dateQuery(c, "date", h.today)
	if err != nil {
		handleError(c, err)
		return
	}

	stats, err := h.dash.HabitStats(c.Request.Context(), ref)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Calendar godoc
// @Summary Completion calendar of one habit
// @Tags habits
// @Produce json
// @Param id path string true "Habit ID"
// @Param date query string false "Last day shown (YYYY-MM-DD), defaults to today"
// @Param days query int false "Number of days, at most 366" default(60)
// @Success 200 {array} metrics.DayMark
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /habits/{id}/calendar [get]
func (h *HabitHandler) Calendar(c *gin.Context) {
	ref, err := dateQuery(c, "date", h.today)
	if err != nil {
		handleError(c, err)
		return
	}
	days, err := intQuery(c, "days", 0)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	marks, err := h.dash.HabitCalendar(c.Request.Context(), c.Param("id"), ref, days)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, marks)
}

// ListLogs godoc
// @Summary List habit logs
// @Tags habits
// @Produce json
// @Param habit_id query []string false "Habit IDs" collectionFormat(multi)
// @Param from query string false "First date (YYYY-MM-DD)"
// @Param to query string false "Last date (YYYY-MM-DD)"
// @Success 200 {array} domain.HabitLog
// @Router /habit-logs [get]
func (h *HabitHandler) ListLogs(c *gin.Context) {
	from, err := optionalDateQuery(c, "from")
	if err != nil {
		handleError(c, err)
		return
	}
	to, err := optionalDateQuery(c, "to")
	if err != nil {
		handleError(c, err)
		return
	}

	logs, err := h.svc.ListLogs(c.Request.Context(), domain.HabitLogFilter{
		HabitIDs: c.QueryArray("habit_id"),
		From:     from,
		To:       to,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	if logs == nil {
		logs = []*domain.HabitLog{}
	}
	c.JSON(http.StatusOK, logs)
}

// Toggle godoc
// @Summary Toggle a habit for a date
// @Description Flips the completion of an existing log, or creates a completed one.
// @Tags habits
// @Accept json
// @Produce json
// @Param request body toggleRequest true "Habit and date (defaults to today)"
// @Success 200 {object} toggleResponse
// @Failure 404 {object} map[string]string
// @Router /habit-logs/toggle [post]
func (h *HabitHandler) Toggle(c *gin.Context) {
	var req toggleRequest
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

	log, err := h.svc.ToggleLog(c.Request.Context(), req.HabitID, date)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toggleResponse{
		HabitID:   log.HabitID,
		Date:      domain.DateKey(log.Date),
		Completed: log.Completed,
	})
}
