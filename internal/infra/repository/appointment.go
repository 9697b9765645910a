package repository

import (
	"context"
	"time"

	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/domain/appointment"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/infra"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/usecase/commands"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type appointmentRepository struct {
	pool *pgxpool.Pool
}

func NewAppointmentRepository(pool *pgxpool.Pool) commands.AppointmentRepository {
	return &appointmentRepository{pool: pool}
}

// compile-time check: the write repository also serves the availability
// read side, both hit the same blocking-interval query.
var _ queries.BookedIntervalStore = (*appointmentRepository)(nil)

func (r *appointmentRepository) Create(ctx context.Context, a *appointment.Appointment) error {
	const q = `
		INSERT INTO appointments (id, barber_id, service_id, client_id, starts_at, ends_at, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''))
	`
	_, err := r.pool.Exec(ctx, q,
		a.ID(), a.BarberID(), a.ServiceID(), a.ClientID(),
		a.Interval().Start(), a.Interval().End(), string(a.Status()), a.Notes(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert appointment", err)
	}
	return nil
}

func (r *appointmentRepository) UpdateStatus(ctx context.Context, a *appointment.Appointment) error {
	const q = `
		UPDATE appointments
		SET status = $2, updated_at = now()
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, q, a.ID(), string(a.Status()))
	if err != nil {
		return infra.WrapRepoErr("failed to update appointment status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("appointment not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	const q = `
		SELECT id, barber_id, service_id, client_id, starts_at, ends_at, status, COALESCE(notes, ''), created_at, updated_at
		FROM appointments
		WHERE id = $1
	`
	a, err := scanAppointment(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find appointment", err)
	}
	return a, nil
}

// BlockingInRange returns the barber's non-cancelled appointments
// overlapping [from,to). This is the same predicate the exclusion
// constraint enforces at commit time.
func (r *appointmentRepository) BlockingInRange(ctx context.Context, barberID uuid.UUID, from, to time.Time) ([]*appointment.Appointment, error) {
	const q = `
		SELECT id, barber_id, service_id, client_id, starts_at, ends_at, status, COALESCE(notes, ''), created_at, updated_at
		FROM appointments
		WHERE barber_id = $1
		  AND status <> 'CANCELLED'
		  AND starts_at < $3
		  AND ends_at > $2
		ORDER BY starts_at
	`
	rows, err := r.pool.Query(ctx, q, barberID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blocking appointments", err)
	}
	defer rows.Close()

	var result []*appointment.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate appointments", err)
	}
	return result, nil
}

func scanAppointment(row pgx.Row) (*appointment.Appointment, error) {
	var (
		id, barberID, serviceID, clientID uuid.UUID
		startsAt, endsAt                  time.Time
		status, notes                     string
		createdAt, updatedAt              time.Time
	)
	if err := row.Scan(&id, &barberID, &serviceID, &clientID, &startsAt, &endsAt, &status, &notes, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	interval, err := appointment.NewInterval(startsAt, endsAt)
	if err != nil {
		return nil, err
	}
	return appointment.ReconstructAppointment(
		id, barberID, serviceID, clientID,
		interval, appointment.Status(status), notes, createdAt, updatedAt,
	)
}
