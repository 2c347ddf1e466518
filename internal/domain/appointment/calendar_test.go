//go:build unit

package appointment_test

import (
	"testing"
	"time"

	"clinic-booking/internal/domain/appointment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clinicLoc = time.FixedZone("UTC-03:00", -3*60*60)

// Monday 2026-10-19, 09:30 at the clinic.
var mondayMorning = time.Date(2026, 10, 19, 9, 30, 0, 0, clinicLoc)

func newCalendar() appointment.Calendar {
	return appointment.NewCalendar(clinicLoc, appointment.DefaultHorizonDays)
}

func TestCalendar_CheckDate(t *testing.T) {
	cal := newCalendar()
	today := appointment.NewDate(2026, 10, 19)

	testCases := []struct {
		name  string
		date  appointment.Date
		errIs error
	}{
		{name: "today is offered", date: today},
		{name: "tomorrow is offered", date: today.AddDays(1)},
		{name: "yesterday is refused", date: today.AddDays(-1), errIs: appointment.ErrPastDate},
		{name: "last day of the horizon is offered", date: today.AddDays(60)},
		{name: "one day past the horizon is refused", date: today.AddDays(61), errIs: appointment.ErrBeyondHorizon},
		{name: "far future is refused", date: today.AddDays(400), errIs: appointment.ErrBeyondHorizon},
		{name: "sunday is refused", date: appointment.NewDate(2026, 10, 25), errIs: appointment.ErrClosedDay},
		{name: "zero date is refused", date: appointment.Date{}, errIs: appointment.ErrInvalidDate},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := cal.CheckDate(mondayMorning, tc.date)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.False(t, cal.IsSelectable(mondayMorning, tc.date))
				return
			}
			assert.NoError(t, err)
			assert.True(t, cal.IsSelectable(mondayMorning, tc.date))
		})
	}
}

func TestCalendar_TodayUsesClinicZone(t *testing.T) {
	cal := newCalendar()

	// 02:00 UTC on the 20th is still 23:00 on the 19th at the clinic.
	serverNow := time.Date(2026, 10, 20, 2, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-10-19", cal.Today(serverNow).String())
	assert.True(t, cal.IsSelectable(serverNow, appointment.NewDate(2026, 10, 19)))
}

func TestCalendar_SelectableDates(t *testing.T) {
	cal := newCalendar()
	dates := cal.SelectableDates(mondayMorning)

	require.NotEmpty(t, dates)
	assert.Equal(t, "2026-10-19", dates[0].String())
	assert.Equal(t, "2026-12-18", dates[len(dates)-1].String())

	for _, d := range dates {
		assert.NotEqual(t, time.Sunday, d.Weekday(), "sunday %s must never be offered", d)
		assert.NoError(t, cal.CheckDate(mondayMorning, d))
	}
	// 61 days in the window, 8 of them Sundays.
	assert.Len(t, dates, 53)
}

func TestCalendar_Options(t *testing.T) {
	cal := newCalendar()

	t.Run("occupied slots on next monday", func(t *testing.T) {
		nextMonday := appointment.NewDate(2026, 10, 26)
		opts := cal.Options(mondayMorning, nextMonday, []appointment.Slot{"10:00", "14:00"})

		var open []appointment.Slot
		for _, o := range opts {
			if o.Selectable() {
				open = append(open, o.Slot)
			}
		}
		assert.Equal(t, []appointment.Slot{
			"08:00", "09:00", "11:00", "12:00", "13:00",
			"15:00", "16:00", "17:00", "18:00",
		}, open)
		assert.Equal(t, appointment.SlotOccupied, opts[2].State)
		assert.Equal(t, appointment.SlotOccupied, opts[6].State)
	})

	t.Run("elapsed slots today are disabled", func(t *testing.T) {
		today := appointment.NewDate(2026, 10, 19)
		opts := cal.Options(mondayMorning, today, nil)

		assert.Equal(t, appointment.SlotElapsed, opts[0].State, "08:00")
		assert.Equal(t, appointment.SlotElapsed, opts[1].State, "09:00")
		for _, o := range opts[2:] {
			assert.Equal(t, appointment.SlotAvailable, o.State, string(o.Slot))
		}
	})

	t.Run("slot starting exactly now is elapsed", func(t *testing.T) {
		now := time.Date(2026, 10, 19, 10, 0, 0, 0, clinicLoc)
		opts := cal.Options(now, appointment.NewDate(2026, 10, 19), nil)
		assert.Equal(t, appointment.SlotElapsed, opts[2].State)
		assert.Equal(t, appointment.SlotAvailable, opts[3].State)
	})

	t.Run("sunday offers nothing whatever the store says", func(t *testing.T) {
		sunday := appointment.NewDate(2026, 10, 25)
		for _, occupied := range [][]appointment.Slot{nil, {"08:00"}, appointment.Slots} {
			for _, o := range cal.Options(mondayMorning, sunday, occupied) {
				assert.False(t, o.Selectable())
				assert.Equal(t, appointment.SlotClosed, o.State)
			}
		}
	})
}

func TestCalendar_CheckSlot(t *testing.T) {
	cal := newCalendar()
	today := appointment.NewDate(2026, 10, 19)

	assert.ErrorIs(t, cal.CheckSlot(mondayMorning, today, "09:00"), appointment.ErrSlotElapsed)
	assert.NoError(t, cal.CheckSlot(mondayMorning, today, "10:00"))
	assert.ErrorIs(t, cal.CheckSlot(mondayMorning, today, "10:30"), appointment.ErrUnknownSlot)
	assert.ErrorIs(t, cal.CheckSlot(mondayMorning, today.AddDays(-1), "10:00"), appointment.ErrPastDate)
}
