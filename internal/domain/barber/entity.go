package barber

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyBarberName   = errors.New("barber name cannot be empty")
	ErrBarberNameTooLong = errors.New("barber name is too long (max 255 characters)")
)

const MaxBarberNameLength = 255

// Barber is a bookable provider. Only active barbers participate in
// availability computations and agenda aggregation; deactivation keeps
// the row for appointment history.
type Barber struct {
	id        uuid.UUID
	name      string
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

func NewBarber(name string) (*Barber, error) {
	if err := validateBarberName(name); err != nil {
		return nil, err
	}

	return &Barber{
		id:     uuid.New(),
		name:   strings.TrimSpace(name),
		active: true,
	}, nil
}

func ReconstructBarber(id uuid.UUID, name string, active bool, createdAt, updatedAt time.Time) *Barber {
	return &Barber{
		id:        id,
		name:      name,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (b *Barber) Rename(name string) error {
	if err := validateBarberName(name); err != nil {
		return err
	}
	b.name = strings.TrimSpace(name)
	return nil
}

func (b *Barber) Deactivate() { b.active = false }
func (b *Barber) Activate()   { b.active = true }

func validateBarberName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyBarberName
	}
	if len(name) > MaxBarberNameLength {
		return ErrBarberNameTooLong
	}
	return nil
}

func (b *Barber) ID() uuid.UUID        { return b.id }
func (b *Barber) Name() string         { return b.name }
func (b *Barber) IsActive() bool       { return b.active }
func (b *Barber) CreatedAt() time.Time { return b.createdAt }
func (b *Barber) UpdatedAt() time.Time { return b.updatedAt }
