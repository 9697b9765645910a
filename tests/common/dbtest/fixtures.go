//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestBarber(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	barberID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO barbers (id, name, active) VALUES ($1, $2, true)",
		barberID, name)
	require.NoError(t, err)
	return barberID
}

func CreateTestService(t *testing.T, db DBLike, name string, durationMin, bufferMin int) uuid.UUID {
	t.Helper()

	serviceID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO services (id, name, duration_min, buffer_after_min, price_cents, active) VALUES ($1, $2, $3, $4, 1500, true)",
		serviceID, name, durationMin, bufferMin)
	require.NoError(t, err)
	return serviceID
}

func CreateTestClient(t *testing.T, db DBLike, name, phone string) uuid.UUID {
	t.Helper()

	clientID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO clients (id, name, phone) VALUES ($1, $2, $3)",
		clientID, name, phone)
	require.NoError(t, err)
	return clientID
}

// AddTestWorkingHours inserts one weekly window; day follows ISO-8601
// (Monday = 1 .. Sunday = 7) and times are "HH:mm" strings.
func AddTestWorkingHours(t *testing.T, db DBLike, barberID uuid.UUID, day int, start, end string) uuid.UUID {
	t.Helper()

	windowID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO working_hours (id, barber_id, day_of_week, start_time, end_time) VALUES ($1, $2, $3, $4::time, $5::time)",
		windowID, barberID, day, start, end)
	require.NoError(t, err)
	return windowID
}

func AddTestTimeOff(t *testing.T, db DBLike, barberID uuid.UUID, startsAt, endsAt time.Time, reason string) uuid.UUID {
	t.Helper()

	timeOffID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO time_off (id, barber_id, starts_at, ends_at, reason) VALUES ($1, $2, $3, $4, NULLIF($5, ''))",
		timeOffID, barberID, startsAt, endsAt, reason)
	require.NoError(t, err)
	return timeOffID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables except goose bookkeeping
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}
	return nil
}
