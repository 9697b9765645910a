package response

import "github.com/google/uuid"

type AvailabilityResponse struct {
	BarberID  uuid.UUID `json:"barber_id"`
	ServiceID uuid.UUID `json:"service_id"`
	Date      string    `json:"date"`
	Slots     []string  `json:"slots"`
}
