package api

import (
	"net/http"
	"time"

	reqdto "github.com/GoncaloFernandes8/BarbershopBackoffice/internal/handler/dto/request"
	resdto "github.com/GoncaloFernandes8/BarbershopBackoffice/internal/handler/dto/response"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/handler/httperr"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/usecase/commands"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	commands commands.ScheduleCommands
	queries  queries.ScheduleQueries
}

func NewScheduleHandler(cmd commands.ScheduleCommands, q queries.ScheduleQueries) *ScheduleHandler {
	return &ScheduleHandler{commands: cmd, queries: q}
}

// @Summary List working hours
// @Tags schedule
// @Produce json
// @Param id path string true "Barber ID"
// @Success 200 {array} queries.WorkingHoursView
// @Failure 404 {object} httperr.Response
// @Router /barbers/{id}/working-hours [get]
func (h *ScheduleHandler) ListWorkingHours(c *gin.Context) {
	barberID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	views, err := h.queries.ListWorkingHours(c.Request.Context(), barberID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Add working hours
// @Tags schedule
// @Accept json
// @Produce json
// @Param id path string true "Barber ID"
// @Param request body request.AddWorkingHoursRequest true "Weekly window"
// @Success 201 {array} queries.WorkingHoursView
// @Failure 422 {object} httperr.Response
// @Router /barbers/{id}/working-hours [post]
func (h *ScheduleHandler) AddWorkingHours(c *gin.Context) {
	barberID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.AddWorkingHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	views, err := h.commands.AddWorkingWindow(c.Request.Context(), commands.WorkingWindowParams{
		BarberID:  barberID,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, views)
}

// @Summary Remove working hours
// @Tags schedule
// @Param id path string true "Barber ID"
// @Param windowId path string true "Working hours entry ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /barbers/{id}/working-hours/{windowId} [delete]
func (h *ScheduleHandler) RemoveWorkingHours(c *gin.Context) {
	barberID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	windowID, ok := parseIDParam(c, "windowId")
	if !ok {
		return
	}
	if err := h.commands.RemoveWorkingWindow(c.Request.Context(), barberID, windowID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List time off
// @Tags schedule
// @Produce json
// @Param id path string true "Barber ID"
// @Param from query string false "Range start (RFC3339)"
// @Param to query string false "Range end (RFC3339)"
// @Success 200 {array} queries.TimeOffView
// @Failure 404 {object} httperr.Response
// @Router /barbers/{id}/time-off [get]
func (h *ScheduleHandler) ListTimeOff(c *gin.Context) {
	barberID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	from, to, ok := parseRangeQuery(c)
	if !ok {
		return
	}

	views, err := h.queries.ListTimeOff(c.Request.Context(), barberID, from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Add time off
// @Tags schedule
// @Accept json
// @Produce json
// @Param id path string true "Barber ID"
// @Param request body request.AddTimeOffRequest true "Time off period"
// @Success 201 {object} response.TimeOffCreatedResponse
// @Failure 422 {object} httperr.Response
// @Router /barbers/{id}/time-off [post]
func (h *ScheduleHandler) AddTimeOff(c *gin.Context) {
	barberID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.AddTimeOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.commands.AddTimeOff(c.Request.Context(), commands.TimeOffParams{
		BarberID: barberID,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
		Reason:   req.GetReason(),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.TimeOffCreatedResponse{ID: id})
}

// @Summary Remove time off
// @Tags schedule
// @Param id path string true "Barber ID"
// @Param timeOffId path string true "Time off entry ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /barbers/{id}/time-off/{timeOffId} [delete]
func (h *ScheduleHandler) RemoveTimeOff(c *gin.Context) {
	barberID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	timeOffID, ok := parseIDParam(c, "timeOffId")
	if !ok {
		return
	}
	if err := h.commands.RemoveTimeOff(c.Request.Context(), barberID, timeOffID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// parseRangeQuery reads optional from/to query parameters; absent bounds
// default to a one-year window around now.
func parseRangeQuery(c *gin.Context) (time.Time, time.Time, bool) {
	now := time.Now()
	from := now.AddDate(0, -6, 0)
	to := now.AddDate(0, 6, 0)

	if s := c.Query("from"); s != "" {
		parsed, err := time.Parse(time.RFC3339, s)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid 'from' timestamp", nil)
			return time.Time{}, time.Time{}, false
		}
		from = parsed
	}
	if s := c.Query("to"); s != "" {
		parsed, err := time.Parse(time.RFC3339, s)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid 'to' timestamp", nil)
			return time.Time{}, time.Time{}, false
		}
		to = parsed
	}
	return from, to, true
}
