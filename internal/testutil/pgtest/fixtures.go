//go:build integration

package pgtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func InsertClient(t *testing.T, pool *pgxpool.Pool, name, phone string) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := pool.QueryRow(context.Background(),
		`INSERT INTO clients (full_name, phone) VALUES ($1, nullif($2, '')) RETURNING id`, name, phone).Scan(&id)
	require.NoError(t, err)
	return id
}

// InsertPending writes a pending reservation created at createdAt.
func InsertPending(t *testing.T, pool *pgxpool.Pool, clientID uuid.UUID, date time.Time, hhmm string, createdAt time.Time) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := pool.QueryRow(context.Background(), `
		INSERT INTO appointments (client_id, service_id, service_title, appointment_date, appointment_time, status, created_at)
		VALUES ($1, 'svc-facial', 'Limpeza de pele', $2::date, $3::time, 'pending', $4)
		RETURNING id`, clientID, date.Format("2006-01-02"), hhmm, createdAt).Scan(&id)
	require.NoError(t, err)
	return id
}

func AppointmentStatus(t *testing.T, pool *pgxpool.Pool, id uuid.UUID) string {
	t.Helper()
	var status string
	require.NoError(t, pool.QueryRow(context.Background(), `SELECT status FROM appointments WHERE id = $1`, id).Scan(&status))
	return status
}
