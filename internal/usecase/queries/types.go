package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type BarberView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

type ServiceView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	DurationMin    int32     `json:"duration_min"`
	BufferAfterMin int32     `json:"buffer_after_min"`
	PriceCents     int64     `json:"price_cents"`
	Active         bool      `json:"active"`
}

type ClientView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type AppointmentView struct {
	ID        uuid.UUID `json:"id"`
	BarberID  uuid.UUID `json:"barber_id"`
	ServiceID uuid.UUID `json:"service_id"`
	ClientID  uuid.UUID `json:"client_id"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
	Status    string    `json:"status"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type WorkingHoursView struct {
	ID        uuid.UUID `json:"id"`
	BarberID  uuid.UUID `json:"barber_id"`
	DayOfWeek int       `json:"day_of_week"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
}

type TimeOffView struct {
	ID       uuid.UUID `json:"id"`
	BarberID uuid.UUID `json:"barber_id"`
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
	Reason   string    `json:"reason"`
}

type NotificationView struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Icon      string    `json:"icon"`
	ActionURL *string   `json:"action_url,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
