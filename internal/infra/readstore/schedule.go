package readstore

import (
	"context"
	"time"

	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/infra"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type scheduleReadStore struct {
	pool *pgxpool.Pool
}

func NewScheduleReadStore(pool *pgxpool.Pool) queries.ScheduleReadStore {
	return &scheduleReadStore{pool: pool}
}

func (s *scheduleReadStore) FindWorkingHoursByBarber(ctx context.Context, barberID uuid.UUID) ([]*queries.WorkingHoursView, error) {
	const q = `
		SELECT id, barber_id, day_of_week, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI')
		FROM working_hours
		WHERE barber_id = $1
		ORDER BY day_of_week, start_time
	`
	rows, err := s.pool.Query(ctx, q, barberID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list working hours", err)
	}
	defer rows.Close()

	views := []*queries.WorkingHoursView{}
	for rows.Next() {
		var v queries.WorkingHoursView
		if err := rows.Scan(&v.ID, &v.BarberID, &v.DayOfWeek, &v.StartTime, &v.EndTime); err != nil {
			return nil, infra.WrapRepoErr("failed to scan working hours", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate working hours", err)
	}
	return views, nil
}

func (s *scheduleReadStore) FindTimeOffByBarber(ctx context.Context, barberID uuid.UUID, from, to time.Time) ([]*queries.TimeOffView, error) {
	const q = `
		SELECT id, barber_id, starts_at, ends_at, COALESCE(reason, '')
		FROM time_off
		WHERE barber_id = $1
		  AND starts_at < $3
		  AND ends_at > $2
		ORDER BY starts_at
	`
	rows, err := s.pool.Query(ctx, q, barberID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list time off", err)
	}
	defer rows.Close()

	views := []*queries.TimeOffView{}
	for rows.Next() {
		var v queries.TimeOffView
		if err := rows.Scan(&v.ID, &v.BarberID, &v.StartsAt, &v.EndsAt, &v.Reason); err != nil {
			return nil, infra.WrapRepoErr("failed to scan time off", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate time off", err)
	}
	return views, nil
}
