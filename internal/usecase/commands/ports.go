package commands

import (
	"context"

	"clinic-booking/internal/domain/appointment"
	sqlc "clinic-booking/internal/infra/sqlc/generated"
	"clinic-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type ReminderCandidate struct {
	AppointmentID uuid.UUID
	ServiceTitle  string
	Date          appointment.Date
	Slot          appointment.Slot
	ClientName    string
	ClientPhone   string
}

type ReminderReadStore interface {
	// FindCandidates returns confirmed appointments on day whose reminder
	// has not been sent, ordered by time.
	FindCandidates(ctx context.Context, db sqlc.DBTX, day appointment.Date) ([]ReminderCandidate, error)
}

type ContactReadStore interface {
	Client(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (shared.Contact, error)
	Partner(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (shared.Contact, error)
}
