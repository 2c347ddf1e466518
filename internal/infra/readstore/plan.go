package readstore

import (
	"context"

	"clinic-booking/internal/infra"
	sqlc "clinic-booking/internal/infra/sqlc/generated"
	"clinic-booking/internal/pkg/pgconv"
	"clinic-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type PlanViewQueries interface {
	ListSessionPlansByClient(ctx context.Context, db sqlc.DBTX, clientID uuid.UUID) ([]sqlc.SessionPlans, error)
}

type PlanReadStore struct {
	queries PlanViewQueries
}

func NewPlanReadStore(queries PlanViewQueries) *PlanReadStore {
	return &PlanReadStore{queries: queries}
}

func (r *PlanReadStore) FindByClient(ctx context.Context, db sqlc.DBTX, clientID uuid.UUID) ([]*queries.PlanView, error) {
	rows, err := r.queries.ListSessionPlansByClient(ctx, db, clientID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list session plans", err)
	}

	result := make([]*queries.PlanView, len(rows))
	for i, row := range rows {
		result[i] = &queries.PlanView{
			ID:                row.ID,
			ServiceID:         row.ServiceID,
			ServiceTitle:      row.ServiceTitle,
			Name:              row.Name,
			TotalSessions:     int(row.TotalSessions),
			CompletedSessions: int(row.CompletedSessions),
			RemainingSessions: int(row.TotalSessions - row.CompletedSessions),
			Status:            row.Status,
			CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}
