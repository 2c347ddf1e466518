package repository

import (
	"context"

	"clinic-booking/internal/domain/plan"
	"clinic-booking/internal/infra"
	"clinic-booking/internal/infra/repository/converter"
	sqlc "clinic-booking/internal/infra/sqlc/generated"
	"clinic-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PlanWriteQueries interface {
	GetSessionPlanForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.SessionPlans, error)
	UpdateSessionPlanProgress(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSessionPlanProgressParams) (int64, error)
}

type PlanRepository struct {
	queries PlanWriteQueries
	db      sqlc.DBTX
}

func NewPlanRepository(queries PlanWriteQueries, db sqlc.DBTX) *PlanRepository {
	return &PlanRepository{
		queries: queries,
		db:      db,
	}
}

// FindByID locks the plan row for the rest of the transaction.
func (r *PlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*plan.SessionPlan, error) {
	row, err := r.queries.GetSessionPlanForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("session plan not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find session plan", err)
	}

	p, err := converter.PlanFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert session plan row", err)
	}
	return p, nil
}

func (r *PlanRepository) UpdateProgress(ctx context.Context, p *plan.SessionPlan) error {
	n, err := r.queries.UpdateSessionPlanProgress(ctx, r.db, converter.PlanToProgressParams(p))
	if err != nil {
		return infra.WrapRepoErr("failed to update session plan progress", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("session plan not found", nil, infra.KindNotFound)
	}
	return nil
}
