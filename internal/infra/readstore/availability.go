package readstore

import (
	"context"

	"clinic-booking/internal/domain/appointment"
	"clinic-booking/internal/infra"
	"clinic-booking/internal/infra/repository/converter"
	sqlc "clinic-booking/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5/pgtype"
)

type OccupiedSlotQueries interface {
	ListOccupiedSlots(ctx context.Context, db sqlc.DBTX, day pgtype.Date) ([]pgtype.Time, error)
}

// OccupiedSlotReadStore reads the live slots of a day through the
// occupied_slots function, which sees every client's rows.
type OccupiedSlotReadStore struct {
	queries OccupiedSlotQueries
}

func NewOccupiedSlotReadStore(queries OccupiedSlotQueries) *OccupiedSlotReadStore {
	return &OccupiedSlotReadStore{queries: queries}
}

func (r *OccupiedSlotReadStore) OccupiedSlots(ctx context.Context, db sqlc.DBTX, d appointment.Date) ([]appointment.Slot, error) {
	times, err := r.queries.ListOccupiedSlots(ctx, db, converter.DateToPgtype(d))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list occupied slots", err)
	}

	slots := make([]appointment.Slot, 0, len(times))
	for _, t := range times {
		slot, err := converter.SlotFromPgtype(t)
		if err != nil {
			// A stored time off the grid cannot block a grid slot.
			continue
		}
		slots = append(slots, slot)
	}
	return appointment.SortSlots(slots), nil
}
