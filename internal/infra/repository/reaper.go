package repository

import (
	"context"

	"clinic-booking/internal/infra"
	sqlc "clinic-booking/internal/infra/sqlc/generated"
)

type ReaperQueries interface {
	ExpireStalePendingAppointments(ctx context.Context, db sqlc.DBTX) (int32, error)
}

// ReaperRepository cancels pending reservations older than thirty minutes.
// The rule lives in the database function so every caller shares it.
type ReaperRepository struct {
	queries ReaperQueries
	db      sqlc.DBTX
}

func NewReaperRepository(queries ReaperQueries, db sqlc.DBTX) *ReaperRepository {
	return &ReaperRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReaperRepository) ReapStale(ctx context.Context) (int64, error) {
	n, err := r.queries.ExpireStalePendingAppointments(ctx, r.db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire stale reservations", err)
	}
	return int64(n), nil
}
