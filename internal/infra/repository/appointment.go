package repository

import (
	"context"

	"clinic-booking/internal/domain/appointment"
	"clinic-booking/internal/infra"
	"clinic-booking/internal/infra/repository/converter"
	sqlc "clinic-booking/internal/infra/sqlc/generated"
	"clinic-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AppointmentWriteQueries interface {
	CreateAppointment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAppointmentParams) error
	GetAppointmentForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Appointments, error)
	UpdateAppointmentStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateAppointmentStatusParams) (int64, error)
	ClaimAppointmentReminder(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	ReleaseAppointmentReminder(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
}

type AppointmentRepository struct {
	queries AppointmentWriteQueries
	db      sqlc.DBTX
}

func NewAppointmentRepository(queries AppointmentWriteQueries, db sqlc.DBTX) *AppointmentRepository {
	return &AppointmentRepository{
		queries: queries,
		db:      db,
	}
}

// Create inserts the row. A live row already holding the slot surfaces as
// KindDuplicateKey through the partial unique index.
func (r *AppointmentRepository) Create(ctx context.Context, a *appointment.Appointment) error {
	if err := r.queries.CreateAppointment(ctx, r.db, converter.AppointmentToCreateParams(a)); err != nil {
		return infra.WrapRepoErr("failed to create appointment", err)
	}
	return nil
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	row, err := r.queries.GetAppointmentForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment", err)
	}

	a, err := converter.AppointmentFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert appointment row", err)
	}
	return a, nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, a *appointment.Appointment) error {
	n, err := r.queries.UpdateAppointmentStatus(ctx, r.db, sqlc.UpdateAppointmentStatusParams{
		ID:     a.ID(),
		Status: a.Status().String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update appointment status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}

// ClaimReminder flips reminder_sent from false to true for a confirmed row.
// It reports false when another run got there first.
func (r *AppointmentRepository) ClaimReminder(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.queries.ClaimAppointmentReminder(ctx, r.db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim reminder", err)
	}
	return n == 1, nil
}

func (r *AppointmentRepository) ReleaseReminder(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.ReleaseAppointmentReminder(ctx, r.db, id); err != nil {
		return infra.WrapRepoErr("failed to release reminder", err)
	}
	return nil
}
