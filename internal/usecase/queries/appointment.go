package queries

import (
	"context"

	"clinic-booking/internal/domain/appointment"
	sqlc "clinic-booking/internal/infra/sqlc/generated"
	"clinic-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

type AppointmentReadStore interface {
	FindByClient(ctx context.Context, db sqlc.DBTX, clientID uuid.UUID, limit int32) ([]*AppointmentView, error)
	FindByDate(ctx context.Context, db sqlc.DBTX, d appointment.Date) ([]*DayAppointmentView, error)
}

type AppointmentQueries interface {
	ListByClient(ctx context.Context, clientID uuid.UUID, limit int) ([]*AppointmentView, error)
	ListByDate(ctx context.Context, d appointment.Date) ([]*DayAppointmentView, error)
}

type appointmentQueriesImpl struct {
	uow   shared.UnitOfWork
	store AppointmentReadStore
}

func NewAppointmentQueries(uow shared.UnitOfWork, store AppointmentReadStore) AppointmentQueries {
	return &appointmentQueriesImpl{uow: uow, store: store}
}

func (q *appointmentQueriesImpl) ListByClient(ctx context.Context, clientID uuid.UUID, limit int) ([]*AppointmentView, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	var rows []*AppointmentView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		rows, err = q.store.FindByClient(ctx, db, clientID, int32(limit)) // #nosec G115 -- bounded above
		return err
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (q *appointmentQueriesImpl) ListByDate(ctx context.Context, d appointment.Date) ([]*DayAppointmentView, error) {
	var rows []*DayAppointmentView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		rows, err = q.store.FindByDate(ctx, db, d)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}
