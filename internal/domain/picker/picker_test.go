//go:build unit

package picker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinic-booking/internal/domain/appointment"
	"clinic-booking/internal/domain/picker"
	"clinic-booking/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	clinicLoc  = time.FixedZone("UTC-03:00", -3*60*60)
	today      = appointment.NewDate(2026, 10, 19)
	nextMonday = appointment.NewDate(2026, 10, 26)
)

type fixture struct {
	clock  *clock.MockClock
	loads  int
	occ    map[string][]appointment.Slot
	failOn error
	p      *picker.Picker
}

func newFixture() *fixture {
	f := &fixture{
		clock: clock.NewMockClock(time.Date(2026, 10, 19, 9, 30, 0, 0, clinicLoc)),
		occ:   map[string][]appointment.Slot{},
	}
	cal := appointment.NewCalendar(clinicLoc, appointment.DefaultHorizonDays)
	f.p = picker.New(cal, f.clock, func(_ context.Context, d appointment.Date) ([]appointment.Slot, error) {
		f.loads++
		if f.failOn != nil {
			return nil, f.failOn
		}
		return f.occ[d.String()], nil
	})
	return f
}

func TestPicker_HappyPath(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.occ[nextMonday.String()] = []appointment.Slot{"10:00", "14:00"}

	assert.Equal(t, picker.SelectingDate, f.p.State())
	assert.False(t, f.p.CanConfirm())

	require.NoError(t, f.p.SelectDate(ctx, nextMonday))
	assert.Equal(t, picker.SelectingTime, f.p.State())
	assert.Equal(t, 1, f.loads)
	assert.False(t, f.p.CanConfirm())

	require.NoError(t, f.p.SelectTime("11:00"))
	assert.Equal(t, picker.Confirming, f.p.State())
	assert.True(t, f.p.CanConfirm())

	sel, err := f.p.Submit()
	require.NoError(t, err)
	assert.Equal(t, picker.Selection{Date: nextMonday, Slot: "11:00"}, sel)

	t.Run("confirm is disabled while in flight", func(t *testing.T) {
		assert.True(t, f.p.Submitting())
		assert.False(t, f.p.CanConfirm())
		_, err := f.p.Submit()
		assert.ErrorIs(t, err, picker.ErrSubmitInFlight)
		assert.ErrorIs(t, f.p.Back(), picker.ErrSubmitInFlight)
	})

	f.p.Complete()
	assert.True(t, f.p.Closed())
	assert.ErrorIs(t, f.p.SelectDate(ctx, nextMonday), picker.ErrClosed)
}

func TestPicker_SelectDate(t *testing.T) {
	ctx := context.Background()

	t.Run("refuses dates the calendar does not offer", func(t *testing.T) {
		f := newFixture()
		assert.ErrorIs(t, f.p.SelectDate(ctx, today.AddDays(-1)), appointment.ErrPastDate)
		assert.ErrorIs(t, f.p.SelectDate(ctx, today.AddDays(61)), appointment.ErrBeyondHorizon)
		assert.ErrorIs(t, f.p.SelectDate(ctx, appointment.NewDate(2026, 10, 25)), appointment.ErrClosedDay)
		assert.Equal(t, 0, f.loads, "refused dates never reach the store")
		assert.Equal(t, picker.SelectingDate, f.p.State())
	})

	t.Run("store failure fails closed", func(t *testing.T) {
		f := newFixture()
		f.failOn = errors.New("connection reset")

		err := f.p.SelectDate(ctx, nextMonday)
		assert.ErrorIs(t, err, picker.ErrAvailabilityFailed)
		assert.Equal(t, picker.SelectingDate, f.p.State())
		_, hasDate := f.p.Date()
		assert.False(t, hasDate)
		assert.Nil(t, f.p.Options())
		assert.ErrorIs(t, f.p.SelectTime("10:00"), picker.ErrInvalidState)

		f.failOn = nil
		require.NoError(t, f.p.SelectDate(ctx, nextMonday), "retry succeeds once the store is back")
	})

	t.Run("choosing another date clears the chosen time", func(t *testing.T) {
		f := newFixture()
		require.NoError(t, f.p.SelectDate(ctx, nextMonday))
		require.NoError(t, f.p.Back())
		require.NoError(t, f.p.SelectDate(ctx, nextMonday.AddDays(1)))
		_, hasSlot := f.p.Slot()
		assert.False(t, hasSlot)
	})

	t.Run("date cannot change while confirming", func(t *testing.T) {
		f := newFixture()
		require.NoError(t, f.p.SelectDate(ctx, nextMonday))
		require.NoError(t, f.p.SelectTime("10:00"))
		assert.ErrorIs(t, f.p.SelectDate(ctx, nextMonday.AddDays(1)), picker.ErrInvalidState)
	})
}

func TestPicker_SelectTime(t *testing.T) {
	ctx := context.Background()

	t.Run("occupied slot is not selectable", func(t *testing.T) {
		f := newFixture()
		f.occ[nextMonday.String()] = []appointment.Slot{"10:00"}
		require.NoError(t, f.p.SelectDate(ctx, nextMonday))

		err := f.p.SelectTime("10:00")
		assert.ErrorIs(t, err, picker.ErrNotSelectable)
		assert.ErrorIs(t, err, appointment.ErrSlotOccupied)
		assert.Equal(t, picker.SelectingTime, f.p.State())
	})

	t.Run("elapsed slots of today are not selectable", func(t *testing.T) {
		f := newFixture()
		require.NoError(t, f.p.SelectDate(ctx, today))

		assert.ErrorIs(t, f.p.SelectTime("08:00"), appointment.ErrSlotElapsed)
		assert.ErrorIs(t, f.p.SelectTime("09:00"), appointment.ErrSlotElapsed)
		assert.NoError(t, f.p.SelectTime("10:00"))
	})

	t.Run("unknown label is rejected", func(t *testing.T) {
		f := newFixture()
		require.NoError(t, f.p.SelectDate(ctx, nextMonday))
		assert.ErrorIs(t, f.p.SelectTime("10:30"), appointment.ErrUnknownSlot)
	})

	t.Run("time before date is an invalid transition", func(t *testing.T) {
		f := newFixture()
		assert.ErrorIs(t, f.p.SelectTime("10:00"), picker.ErrInvalidState)
	})

	t.Run("re-picking a time while confirming", func(t *testing.T) {
		f := newFixture()
		require.NoError(t, f.p.SelectDate(ctx, nextMonday))
		require.NoError(t, f.p.SelectTime("10:00"))
		require.NoError(t, f.p.SelectTime("15:00"))
		slot, _ := f.p.Slot()
		assert.Equal(t, appointment.Slot("15:00"), slot)
		assert.Equal(t, picker.Confirming, f.p.State())
	})
}

func TestPicker_Back(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	assert.ErrorIs(t, f.p.Back(), picker.ErrInvalidState, "already at the first step")

	require.NoError(t, f.p.SelectDate(ctx, nextMonday))
	require.NoError(t, f.p.SelectTime("10:00"))
	require.NoError(t, f.p.Back())

	assert.Equal(t, picker.SelectingDate, f.p.State())
	_, hasSlot := f.p.Slot()
	assert.False(t, hasSlot)
	assert.False(t, f.p.CanConfirm())
}

func TestPicker_SlotExpiresWhileOpen(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	require.NoError(t, f.p.SelectDate(ctx, today))
	require.NoError(t, f.p.SelectTime("10:00"))
	assert.True(t, f.p.CanConfirm())

	f.clock.Set(time.Date(2026, 10, 19, 10, 0, 0, 0, clinicLoc))
	assert.False(t, f.p.CanConfirm())
	_, err := f.p.Submit()
	assert.ErrorIs(t, err, appointment.ErrSlotElapsed)
}

func TestPicker_Fail(t *testing.T) {
	ctx := context.Background()

	t.Run("write failure keeps the selection for retry", func(t *testing.T) {
		f := newFixture()
		require.NoError(t, f.p.SelectDate(ctx, nextMonday))
		require.NoError(t, f.p.SelectTime("10:00"))
		_, err := f.p.Submit()
		require.NoError(t, err)

		f.p.Fail(false)
		assert.Equal(t, picker.Confirming, f.p.State())
		assert.True(t, f.p.CanConfirm())
	})

	t.Run("lost race marks the slot occupied and asks for another time", func(t *testing.T) {
		f := newFixture()
		require.NoError(t, f.p.SelectDate(ctx, nextMonday))
		require.NoError(t, f.p.SelectTime("10:00"))
		_, err := f.p.Submit()
		require.NoError(t, err)

		f.p.Fail(true)
		assert.Equal(t, picker.SelectingTime, f.p.State())
		assert.ErrorIs(t, f.p.SelectTime("10:00"), appointment.ErrSlotOccupied)
		assert.NoError(t, f.p.SelectTime("11:00"))
	})
}

func TestPicker_SelectableDates(t *testing.T) {
	f := newFixture()
	dates := f.p.SelectableDates()
	require.NotEmpty(t, dates)
	assert.Equal(t, today, dates[0])
}
