package shared

import (
	"context"

	"clinic-booking/internal/domain/appointment"
	"clinic-booking/internal/domain/plan"
	sqlc "clinic-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: write transaction; retried only on serialization failure or deadlock
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction carrying the caller's identity
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: single statement outside a transaction, no identity
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Appointments() AppointmentRepository
	Plans() PlanRepository
	// LockDate serialises reservation writes for one calendar date until the
	// transaction ends.
	LockDate(ctx context.Context, d appointment.Date) error
	DB() sqlc.DBTX
}

type AppointmentRepository interface {
	Create(ctx context.Context, a *appointment.Appointment) error
	// FindByID locks the row for the rest of the transaction.
	FindByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error)
	UpdateStatus(ctx context.Context, a *appointment.Appointment) error
	// ClaimReminder flips reminder_sent from false to true and reports
	// whether this caller won the flip.
	ClaimReminder(ctx context.Context, id uuid.UUID) (bool, error)
	ReleaseReminder(ctx context.Context, id uuid.UUID) error
}

type PlanRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*plan.SessionPlan, error)
	UpdateProgress(ctx context.Context, p *plan.SessionPlan) error
}

// Reaper expires abandoned pending reservations and returns how many rows it
// cancelled.
type Reaper interface {
	ReapStale(ctx context.Context) (int64, error)
}
