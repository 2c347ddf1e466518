package queries

import (
	"context"

	sqlc "clinic-booking/internal/infra/sqlc/generated"
	"clinic-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type PlanReadStore interface {
	FindByClient(ctx context.Context, db sqlc.DBTX, clientID uuid.UUID) ([]*PlanView, error)
}

type PlanQueries interface {
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*PlanView, error)
}

type planQueriesImpl struct {
	uow   shared.UnitOfWork
	store PlanReadStore
}

func NewPlanQueries(uow shared.UnitOfWork, store PlanReadStore) PlanQueries {
	return &planQueriesImpl{uow: uow, store: store}
}

func (q *planQueriesImpl) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*PlanView, error) {
	var plans []*PlanView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		plans, err = q.store.FindByClient(ctx, db, clientID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return plans, nil
}
