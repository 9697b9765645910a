package appointment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInterval = errors.New("appointment end must be after start")
	ErrInvalidStatus   = errors.New("invalid appointment status")
	ErrAlreadyTerminal = errors.New("appointment is already cancelled or completed")
)

// Interval is an absolute [start,end) time range.
type Interval struct {
	start time.Time
	end   time.Time
}

func NewInterval(start, end time.Time) (Interval, error) {
	if !end.After(start) {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{start: start, end: end}, nil
}

func (i Interval) Start() time.Time        { return i.start }
func (i Interval) End() time.Time          { return i.end }
func (i Interval) Duration() time.Duration { return i.end.Sub(i.start) }

// Overlaps uses the same boundary rule as time-off collision: a start
// inside the other interval, an end inside it, or full coverage. Touching
// edges (back-to-back appointments) do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	startsInside := !i.start.Before(other.start) && i.start.Before(other.end)
	endsInside := i.end.After(other.start) && !i.end.After(other.end)
	covers := !i.start.After(other.start) && !i.end.Before(other.end)
	return startsInside || endsInside || covers
}

// Appointment is a booked service interval for one barber and one client.
type Appointment struct {
	id        uuid.UUID
	barberID  uuid.UUID
	serviceID uuid.UUID
	clientID  uuid.UUID
	interval  Interval
	status    Status
	notes     string
	createdAt time.Time
	updatedAt time.Time
}

// NewAppointment creates a PENDING appointment. The interval must already
// be start + service duration; the constructor only enforces ordering.
func NewAppointment(barberID, serviceID, clientID uuid.UUID, interval Interval, notes string) *Appointment {
	return &Appointment{
		id:        uuid.New(),
		barberID:  barberID,
		serviceID: serviceID,
		clientID:  clientID,
		interval:  interval,
		status:    StatusPending,
		notes:     notes,
	}
}

func ReconstructAppointment(
	id, barberID, serviceID, clientID uuid.UUID,
	interval Interval,
	status Status,
	notes string,
	createdAt, updatedAt time.Time,
) (*Appointment, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Appointment{
		id:        id,
		barberID:  barberID,
		serviceID: serviceID,
		clientID:  clientID,
		interval:  interval,
		status:    status,
		notes:     notes,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (a *Appointment) Confirm() error {
	if a.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	a.status = StatusConfirmed
	return nil
}

func (a *Appointment) Cancel() error {
	if a.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	a.status = StatusCancelled
	return nil
}

func (a *Appointment) Complete() error {
	if a.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	a.status = StatusCompleted
	return nil
}

// BlocksSlot reports whether this appointment participates in collision
// checks against new bookings.
func (a *Appointment) BlocksSlot() bool {
	return a.status.BlocksSlot()
}

func (a *Appointment) ID() uuid.UUID        { return a.id }
func (a *Appointment) BarberID() uuid.UUID  { return a.barberID }
func (a *Appointment) ServiceID() uuid.UUID { return a.serviceID }
func (a *Appointment) ClientID() uuid.UUID  { return a.clientID }
func (a *Appointment) Interval() Interval   { return a.interval }
func (a *Appointment) Status() Status       { return a.status }
func (a *Appointment) Notes() string        { return a.notes }
func (a *Appointment) CreatedAt() time.Time { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time { return a.updatedAt }
