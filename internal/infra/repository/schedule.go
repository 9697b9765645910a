package repository

import (
	"context"
	"time"

	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/domain/schedule"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/infra"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/usecase/commands"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type scheduleRepository struct {
	pool *pgxpool.Pool
}

func NewScheduleRepository(pool *pgxpool.Pool) commands.ScheduleRepository {
	return &scheduleRepository{pool: pool}
}

var _ queries.ScheduleSnapshotStore = (*scheduleRepository)(nil)

func (r *scheduleRepository) CreateWorkingWindow(ctx context.Context, w schedule.WorkingWindow) error {
	const q = `
		INSERT INTO working_hours (id, barber_id, day_of_week, start_time, end_time)
		VALUES ($1, $2, $3, $4::time, $5::time)
	`
	_, err := r.pool.Exec(ctx, q, w.ID(), w.BarberID(), int(w.Weekday()), w.Start().String(), w.End().String())
	if err != nil {
		return infra.WrapRepoErr("failed to insert working window", err)
	}
	return nil
}

func (r *scheduleRepository) DeleteWorkingWindow(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM working_hours WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete working window", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("working window not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *scheduleRepository) WorkingWindows(ctx context.Context, barberID uuid.UUID) ([]schedule.WorkingWindow, error) {
	const q = `
		SELECT id, barber_id, day_of_week, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI')
		FROM working_hours
		WHERE barber_id = $1
		ORDER BY day_of_week, start_time
	`
	rows, err := r.pool.Query(ctx, q, barberID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list working windows", err)
	}
	defer rows.Close()

	var windows []schedule.WorkingWindow
	for rows.Next() {
		var (
			id, bID        uuid.UUID
			dayOfWeek      int
			startStr, endS string
		)
		if err := rows.Scan(&id, &bID, &dayOfWeek, &startStr, &endS); err != nil {
			return nil, infra.WrapRepoErr("failed to scan working window", err)
		}
		start, err := schedule.ParseTimeOfDay(startStr)
		if err != nil {
			return nil, infra.WrapRepoErr("malformed start_time in working_hours row", err)
		}
		end, err := schedule.ParseTimeOfDay(endS)
		if err != nil {
			return nil, infra.WrapRepoErr("malformed end_time in working_hours row", err)
		}
		windows = append(windows, schedule.ReconstructWorkingWindow(id, bID, schedule.Weekday(dayOfWeek), start, end))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate working windows", err)
	}
	return windows, nil
}

func (r *scheduleRepository) CreateTimeOff(ctx context.Context, p schedule.TimeOffPeriod) error {
	const q = `
		INSERT INTO time_off (id, barber_id, starts_at, ends_at, reason)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
	`
	_, err := r.pool.Exec(ctx, q, p.ID(), p.BarberID(), p.Start(), p.End(), p.Reason())
	if err != nil {
		return infra.WrapRepoErr("failed to insert time off", err)
	}
	return nil
}

func (r *scheduleRepository) DeleteTimeOff(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM time_off WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete time off", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("time off not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *scheduleRepository) TimeOffInRange(ctx context.Context, barberID uuid.UUID, from, to time.Time) ([]schedule.TimeOffPeriod, error) {
	const q = `
		SELECT id, barber_id, starts_at, ends_at, COALESCE(reason, '')
		FROM time_off
		WHERE barber_id = $1
		  AND starts_at < $3
		  AND ends_at > $2
		ORDER BY starts_at
	`
	rows, err := r.pool.Query(ctx, q, barberID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list time off", err)
	}
	defer rows.Close()

	var periods []schedule.TimeOffPeriod
	for rows.Next() {
		var (
			id, bID          uuid.UUID
			startsAt, endsAt time.Time
			reason           string
		)
		if err := rows.Scan(&id, &bID, &startsAt, &endsAt, &reason); err != nil {
			return nil, infra.WrapRepoErr("failed to scan time off", err)
		}
		periods = append(periods, schedule.ReconstructTimeOffPeriod(id, bID, startsAt, endsAt, reason))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate time off", err)
	}
	return periods, nil
}
