package readstore

import (
	"context"

	"clinic-booking/internal/infra"
	sqlc "clinic-booking/internal/infra/sqlc/generated"
	"clinic-booking/internal/pkg/pgconv"
	"clinic-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ContactQueries interface {
	GetClientContact(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetClientContactRow, error)
	GetPartnerContact(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetPartnerContactRow, error)
}

type ContactReadStore struct {
	queries ContactQueries
}

func NewContactReadStore(queries ContactQueries) *ContactReadStore {
	return &ContactReadStore{queries: queries}
}

func (r *ContactReadStore) Client(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (shared.Contact, error) {
	row, err := r.queries.GetClientContact(ctx, db, id)
	if err != nil {
		return shared.Contact{}, infra.WrapRepoErr("failed to load client contact", err)
	}
	return shared.Contact{Name: row.FullName, Phone: pgconv.StringFromPgtype(row.Phone)}, nil
}

func (r *ContactReadStore) Partner(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (shared.Contact, error) {
	row, err := r.queries.GetPartnerContact(ctx, db, id)
	if err != nil {
		return shared.Contact{}, infra.WrapRepoErr("failed to load partner contact", err)
	}
	return shared.Contact{Name: row.FullName, Phone: pgconv.StringFromPgtype(row.Phone)}, nil
}
