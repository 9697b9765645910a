package request

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	BarberID  uuid.UUID `json:"barber_id" binding:"required"`
	ServiceID uuid.UUID `json:"service_id" binding:"required"`
	ClientID  uuid.UUID `json:"client_id" binding:"required"`
	StartsAt  time.Time `json:"starts_at" binding:"required"`
	Notes     *string   `json:"notes,omitempty"`
}

func (r CreateAppointmentRequest) GetNotes() string {
	if r.Notes == nil {
		return ""
	}
	return strings.TrimSpace(*r.Notes)
}
