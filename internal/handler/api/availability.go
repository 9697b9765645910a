package api

import (
	"net/http"
	"time"

	resdto "github.com/GoncaloFernandes8/BarbershopBackoffice/internal/handler/dto/response"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/handler/httperr"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/pkg/errs"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	queries queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{queries: q}
}

// @Summary Available slots
// @Description List offerable "HH:mm" start times for a barber, service and date
// @Tags availability
// @Produce json
// @Param barber_id query string true "Barber ID"
// @Param service_id query string true "Service ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.AvailabilityResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /availability [get]
func (h *AvailabilityHandler) DaySlots(c *gin.Context) {
	barberID, err := uuid.Parse(c.Query("barber_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid barber_id format", nil)
		return
	}
	serviceID, err := uuid.Parse(c.Query("service_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid service_id format", nil)
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.ErrDomainValidation, "date query parameter is required", nil)
		return
	}
	date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	slots, err := h.queries.DaySlots(c.Request.Context(), barberID, serviceID, date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.AvailabilityResponse{
		BarberID:  barberID,
		ServiceID: serviceID,
		Date:      dateStr,
		Slots:     slots,
	})
}
