package api

import (
	"context"
	"net/http"

	reqdto "github.com/GoncaloFernandes8/BarbershopBackoffice/internal/handler/dto/request"
	resdto "github.com/GoncaloFernandes8/BarbershopBackoffice/internal/handler/dto/response"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/handler/httperr"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/usecase/commands"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	commands commands.AppointmentCommands
	queries  queries.AgendaQueries
}

func NewAppointmentHandler(cmd commands.AppointmentCommands, q queries.AgendaQueries) *AppointmentHandler {
	return &AppointmentHandler{commands: cmd, queries: q}
}

// @Summary List appointments
// @Description List appointments in a range, for one barber or all active barbers
// @Tags appointments
// @Produce json
// @Param barber_id query string false "Barber ID (omit for all active barbers)"
// @Param from query string false "Range start (RFC3339)"
// @Param to query string false "Range end (RFC3339)"
// @Success 200 {object} response.AgendaResponse
// @Router /appointments [get]
func (h *AppointmentHandler) List(c *gin.Context) {
	from, to, ok := parseRangeQuery(c)
	if !ok {
		return
	}

	var barberID *uuid.UUID
	if s := c.Query("barber_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid barber_id format", nil)
			return
		}
		barberID = &id
	}

	result, err := h.queries.ListRange(c.Request.Context(), barberID, from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAgendaResult(result))
}

// @Summary Get appointment
// @Tags appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} queries.AppointmentView
// @Failure 404 {object} httperr.Response
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.queries.GetAppointment(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Create appointment
// @Description Book an appointment; rejects with a stable reason code on schedule conflicts
// @Tags appointments
// @Accept json
// @Produce json
// @Param request body request.CreateAppointmentRequest true "Appointment"
// @Success 201 {object} queries.AppointmentView
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /appointments [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req reqdto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.commands.Create(c.Request.Context(), commands.CreateAppointmentParams{
		BarberID:  req.BarberID,
		ServiceID: req.ServiceID,
		ClientID:  req.ClientID,
		StartsAt:  req.StartsAt,
		Notes:     req.GetNotes(),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Confirm appointment
// @Tags appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} queries.AppointmentView
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /appointments/{id}/confirm [post]
func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.changeStatus(c, h.commands.Confirm)
}

// @Summary Cancel appointment
// @Tags appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} queries.AppointmentView
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /appointments/{id}/cancel [post]
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.changeStatus(c, h.commands.Cancel)
}

// @Summary Complete appointment
// @Tags appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} queries.AppointmentView
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /appointments/{id}/complete [post]
func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.changeStatus(c, h.commands.Complete)
}

func (h *AppointmentHandler) changeStatus(
	c *gin.Context,
	change func(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error),
) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	view, err := change(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
