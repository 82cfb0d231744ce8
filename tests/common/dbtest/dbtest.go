//go:build e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// ResetDB truncates all application tables between sub-tests. CASCADE keeps
// the statement valid regardless of FK ordering.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, `
		TRUNCATE TABLE comments, bookings, items, item_requests, users CASCADE
	`)
	return err
}

// Direct-insert fixtures for state the public API cannot produce, such as
// bookings whose window already lies in the past.

func CreateTestUser(t *testing.T, pool *pgxpool.Pool, name, email string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, name, email) VALUES ($1, $2, $3)`,
		id, name, email)
	require.NoError(t, err, "failed to insert test user")
	return id
}

func CreateTestItem(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, name string, available bool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO items (id, owner_id, name, description, available) VALUES ($1, $2, $3, $4, $5)`,
		id, ownerID, name, name+" description", available)
	require.NoError(t, err, "failed to insert test item")
	return id
}

func CreateTestBooking(t *testing.T, pool *pgxpool.Pool, itemID, renterID uuid.UUID, start, end time.Time, status string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO bookings (id, item_id, renter_id, start_at, end_at, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, itemID, renterID, start, end, status, time.Now())
	require.NoError(t, err, "failed to insert test booking")
	return id
}
