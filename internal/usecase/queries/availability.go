package queries

import (
	"context"
	"log/slog"

	"clinic-booking/internal/domain/appointment"
	sqlc "clinic-booking/internal/infra/sqlc/generated"
	"clinic-booking/internal/pkg/clock"
	"clinic-booking/internal/pkg/errs"
	"clinic-booking/internal/usecase/shared"
)

// ErrAvailabilityUnavailable means the occupied set could not be read. The
// caller must not offer any slot for the date.
var ErrAvailabilityUnavailable = errs.New("availability is temporarily unavailable")

// Reads are safe to repeat; one retry after the first failure.
const occupiedReadAttempts = 2

type OccupiedSlotReadStore interface {
	OccupiedSlots(ctx context.Context, db sqlc.DBTX, d appointment.Date) ([]appointment.Slot, error)
}

type AvailabilityQueries interface {
	SelectableDates(ctx context.Context) *DatesView
	// OccupiedSlots returns the occupied labels for d in slot order. It
	// refuses dates the calendar does not offer.
	OccupiedSlots(ctx context.Context, d appointment.Date) ([]appointment.Slot, error)
	ForDate(ctx context.Context, d appointment.Date) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	uow      shared.UnitOfWork
	store    OccupiedSlotReadStore
	reaper   shared.Reaper
	calendar appointment.Calendar
	clock    clock.Clock
}

func NewAvailabilityQueries(
	uow shared.UnitOfWork,
	store OccupiedSlotReadStore,
	reaper shared.Reaper,
	calendar appointment.Calendar,
	clock clock.Clock,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		uow:      uow,
		store:    store,
		reaper:   reaper,
		calendar: calendar,
		clock:    clock,
	}
}

func (q *availabilityQueriesImpl) SelectableDates(_ context.Context) *DatesView {
	now := q.clock.Now()
	today := q.calendar.Today(now)
	dates := q.calendar.SelectableDates(now)

	view := &DatesView{
		Today:   today.String(),
		LastDay: today.AddDays(q.calendar.HorizonDays()).String(),
		Dates:   make([]string, 0, len(dates)),
	}
	for _, d := range dates {
		view.Dates = append(view.Dates, d.String())
	}
	return view
}

func (q *availabilityQueriesImpl) OccupiedSlots(ctx context.Context, d appointment.Date) ([]appointment.Slot, error) {
	if err := q.calendar.CheckDate(q.clock.Now(), d); err != nil {
		return nil, err
	}
	return q.loadOccupied(ctx, d)
}

func (q *availabilityQueriesImpl) ForDate(ctx context.Context, d appointment.Date) (*AvailabilityView, error) {
	occupied, err := q.OccupiedSlots(ctx, d)
	if err != nil {
		return nil, err
	}

	// Evaluate elapsed slots after the read so a slow store cannot leave a
	// just-passed slot open.
	options := q.calendar.Options(q.clock.Now(), d, occupied)
	view := &AvailabilityView{
		Date:      d.String(),
		Occupied:  make([]string, 0, len(occupied)),
		Available: make([]string, 0, len(options)),
		Slots:     make([]SlotView, 0, len(options)),
	}
	for _, s := range occupied {
		view.Occupied = append(view.Occupied, s.String())
	}
	for _, o := range options {
		view.Slots = append(view.Slots, SlotView{
			Time:       o.Slot.String(),
			State:      string(o.State),
			Selectable: o.Selectable(),
		})
		if o.Selectable() {
			view.Available = append(view.Available, o.Slot.String())
		}
	}
	return view, nil
}

func (q *availabilityQueriesImpl) loadOccupied(ctx context.Context, d appointment.Date) ([]appointment.Slot, error) {
	// A failed reap only leaves stale pending rows counted as occupied.
	if expired, err := q.reaper.ReapStale(ctx); err != nil {
		slog.Warn("stale reservation reap failed before availability read",
			"date", d.String(), "error", err.Error())
	} else if expired > 0 {
		slog.Info("expired stale pending reservations", "count", expired)
	}

	var lastErr error
	for attempt := 1; attempt <= occupiedReadAttempts; attempt++ {
		var slots []appointment.Slot
		err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
			var err error
			slots, err = q.store.OccupiedSlots(ctx, db, d)
			return err
		})
		if err == nil {
			return appointment.SortSlots(slots), nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
		slog.Warn("occupied slot read failed",
			"date", d.String(), "attempt", attempt, "error", err.Error())
	}
	return nil, errs.Mark(lastErr, ErrAvailabilityUnavailable)
}
