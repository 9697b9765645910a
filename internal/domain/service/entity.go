package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyServiceName   = errors.New("service name cannot be empty")
	ErrInvalidDuration    = errors.New("service duration must be positive")
	ErrNegativeBuffer     = errors.New("service buffer cannot be negative")
	ErrNegativePrice      = errors.New("service price cannot be negative")
	ErrServiceNameTooLong = errors.New("service name is too long (max 255 characters)")
)

const MaxServiceNameLength = 255

// Service is a time-boxed offering (cut, shave, ...). Duration determines
// the appointment interval; the buffer is extra spacing applied after the
// service before the next offerable slot, never stored on appointments.
// Price is informational only.
type Service struct {
	id             uuid.UUID
	name           string
	durationMin    int
	bufferAfterMin int
	priceCents     int64
	active         bool
	createdAt      time.Time
	updatedAt      time.Time
}

func NewService(name string, durationMin, bufferAfterMin int, priceCents int64) (*Service, error) {
	if err := validate(name, durationMin, bufferAfterMin, priceCents); err != nil {
		return nil, err
	}

	return &Service{
		id:             uuid.New(),
		name:           strings.TrimSpace(name),
		durationMin:    durationMin,
		bufferAfterMin: bufferAfterMin,
		priceCents:     priceCents,
		active:         true,
	}, nil
}

func ReconstructService(id uuid.UUID, name string, durationMin, bufferAfterMin int, priceCents int64, active bool, createdAt, updatedAt time.Time) *Service {
	return &Service{
		id:             id,
		name:           name,
		durationMin:    durationMin,
		bufferAfterMin: bufferAfterMin,
		priceCents:     priceCents,
		active:         active,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (s *Service) Update(name string, durationMin, bufferAfterMin int, priceCents int64) error {
	if err := validate(name, durationMin, bufferAfterMin, priceCents); err != nil {
		return err
	}
	s.name = strings.TrimSpace(name)
	s.durationMin = durationMin
	s.bufferAfterMin = bufferAfterMin
	s.priceCents = priceCents
	return nil
}

func (s *Service) Deactivate() { s.active = false }
func (s *Service) Activate()   { s.active = true }

// Duration is the appointment length.
func (s *Service) Duration() time.Duration {
	return time.Duration(s.durationMin) * time.Minute
}

// SlotSpacing is duration plus buffer, the distance between offerable
// start times for this service.
func (s *Service) SlotSpacing() time.Duration {
	return time.Duration(s.durationMin+s.bufferAfterMin) * time.Minute
}

func validate(name string, durationMin, bufferAfterMin int, priceCents int64) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyServiceName
	}
	if len(name) > MaxServiceNameLength {
		return ErrServiceNameTooLong
	}
	if durationMin <= 0 {
		return ErrInvalidDuration
	}
	if bufferAfterMin < 0 {
		return ErrNegativeBuffer
	}
	if priceCents < 0 {
		return ErrNegativePrice
	}
	return nil
}

func (s *Service) ID() uuid.UUID        { return s.id }
func (s *Service) Name() string         { return s.name }
func (s *Service) DurationMin() int     { return s.durationMin }
func (s *Service) BufferAfterMin() int  { return s.bufferAfterMin }
func (s *Service) PriceCents() int64    { return s.priceCents }
func (s *Service) IsActive() bool       { return s.active }
func (s *Service) CreatedAt() time.Time { return s.createdAt }
func (s *Service) UpdatedAt() time.Time { return s.updatedAt }
