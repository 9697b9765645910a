package api

import (
	"net/http"

	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/domain/booking"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/handler/httperr"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/pkg/errs"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

// respondError translates usecase errors into HTTP responses. Booking
// rejections map to 409 and expose their stable reason code; clients
// branch on the reason, not on the message.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrBarberNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Barber not found", nil)
	case errors.Is(err, errs.ErrServiceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
	case errors.Is(err, errs.ErrClientNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Client not found", nil)
	case errors.Is(err, errs.ErrAppointmentNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Appointment not found", nil)
	case errors.Is(err, errs.ErrWorkingHoursNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Working hours entry not found", nil)
	case errors.Is(err, errs.ErrTimeOffNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Time off entry not found", nil)
	case errors.Is(err, errs.ErrNotificationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Notification not found", nil)

	case errors.Is(err, errs.ErrBarberInactive):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Barber is inactive", nil)
	case errors.Is(err, errs.ErrServiceInactive):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Service is inactive", nil)

	case errors.Is(err, errs.ErrOutsideWorkingHours):
		httperr.AbortWithReason(c, http.StatusConflict, err,
			"Start time is outside the barber's working hours", booking.ReasonOutsideWorkingHours.String(), nil)
	case errors.Is(err, errs.ErrTimeOffConflict):
		httperr.AbortWithReason(c, http.StatusConflict, err,
			"The barber is off during the requested time", booking.ReasonTimeOffConflict.String(), nil)
	case errors.Is(err, errs.ErrSlotConflict):
		httperr.AbortWithReason(c, http.StatusConflict, err,
			"The requested slot is already taken", booking.ReasonSlotConflict.String(), nil)
	case errors.Is(err, errs.ErrInvalidStatusChange):
		httperr.AbortWithError(c, http.StatusConflict, err, "Appointment is already cancelled or completed", nil)

	case errors.Is(err, errs.ErrInvalidInterval):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid appointment interval", nil)
	case errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)

	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
