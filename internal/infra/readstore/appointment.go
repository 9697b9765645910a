package readstore

import (
	"context"
	"time"

	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/infra"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type appointmentReadStore struct {
	pool *pgxpool.Pool
}

func NewAppointmentReadStore(pool *pgxpool.Pool) queries.AppointmentReadStore {
	return &appointmentReadStore{pool: pool}
}

const appointmentColumns = `id, barber_id, service_id, client_id, starts_at, ends_at, status, notes, created_at, updated_at`

func (s *appointmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+appointmentColumns+` FROM appointments WHERE id = $1`, id)
	view, err := scanAppointmentView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find appointment", err)
	}
	return view, nil
}

func (s *appointmentReadStore) FindByBarberInRange(ctx context.Context, barberID uuid.UUID, from, to time.Time) ([]*queries.AppointmentView, error) {
	const q = `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE barber_id = $1
		  AND starts_at < $3
		  AND ends_at > $2
		ORDER BY starts_at
	`
	rows, err := s.pool.Query(ctx, q, barberID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}
	defer rows.Close()

	views := []*queries.AppointmentView{}
	for rows.Next() {
		view, err := scanAppointmentView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate appointments", err)
	}
	return views, nil
}

func scanAppointmentView(row pgx.Row) (*queries.AppointmentView, error) {
	var v queries.AppointmentView
	err := row.Scan(
		&v.ID, &v.BarberID, &v.ServiceID, &v.ClientID,
		&v.StartsAt, &v.EndsAt, &v.Status, &v.Notes,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
