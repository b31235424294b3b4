//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func CreateTestTour(t *testing.T, db DBLike, name string, basePrice int64) uuid.UUID {
	t.Helper()

	tourID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO tours (id, name, base_price_per_person, default_capacity, active) VALUES ($1, $2, $3, 8, true)",
		tourID, name, decimal.NewFromInt(basePrice))
	require.NoError(t, err)

	return tourID
}

func CreateTestSlot(t *testing.T, db DBLike, tourID uuid.UUID, start time.Time, capacity int) uuid.UUID {
	t.Helper()

	slotID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO slots (id, tour_id, start_time, capacity_total) VALUES ($1, $2, $3, $4)",
		slotID, tourID, start, capacity)
	require.NoError(t, err)

	return slotID
}

func CreateTestBooking(t *testing.T, db DBLike, slotID uuid.UUID, name string, qty int, total int64, status string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO bookings (id, slot_id, customer_name, qty, total_amount, status) VALUES ($1, $2, $3, $4, $5, $6)",
		bookingID, slotID, name, qty, decimal.NewFromInt(total), status)
	require.NoError(t, err)

	_, err = db.Exec(ctx, "UPDATE slots SET booked = booked + $1 WHERE id = $2", qty, slotID)
	require.NoError(t, err)

	return bookingID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO tours (name, base_price_per_person, default_capacity, sort_order) VALUES
		    ('Sunset Paddle', 250, 8, 1),
		    ('Morning Harbour Tour', 200, 10, 2)
		ON CONFLICT DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
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

	return SeedReferenceData(pool)
}
