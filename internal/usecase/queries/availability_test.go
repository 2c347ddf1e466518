//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinic-booking/internal/domain/appointment"
	"clinic-booking/internal/pkg/clock"
	"clinic-booking/internal/pkg/errs"
	"clinic-booking/internal/testutil/memstore"
	"clinic-booking/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clinicLoc = time.FixedZone("UTC-03:00", -3*60*60)

// Monday 2026-10-19, 09:30 at the clinic.
var mondayMorning = time.Date(2026, 10, 19, 9, 30, 0, 0, clinicLoc)

var (
	today      = appointment.NewDate(2026, 10, 19)
	nextMonday = appointment.NewDate(2026, 10, 26)
	sunday     = appointment.NewDate(2026, 10, 25)
)

type fixture struct {
	clock *clock.MockClock
	store *memstore.Store
	q     queries.AvailabilityQueries
}

func newFixture() *fixture {
	clk := clock.NewMockClock(mondayMorning)
	store := memstore.New(clk)
	cal := appointment.NewCalendar(clinicLoc, appointment.DefaultHorizonDays)
	return &fixture{
		clock: clk,
		store: store,
		q:     queries.NewAvailabilityQueries(store, store, store, cal, clk),
	}
}

func (f *fixture) book(d appointment.Date, s appointment.Slot, status appointment.Status) uuid.UUID {
	return f.store.AddAppointment(memstore.Appointment{
		ClientID:     uuid.New(),
		ServiceTitle: "Limpeza de pele",
		Date:         d,
		Slot:         s,
		Status:       status,
	})
}

func labels(slots []appointment.Slot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.String())
	}
	return out
}

// =============================================================================
// Date refusal (Properties 1 and 2)
// =============================================================================

func TestAvailability_RefusedDatesNeverReachTheStore(t *testing.T) {
	testCases := []struct {
		name  string
		date  appointment.Date
		errIs error
	}{
		{name: "yesterday", date: today.AddDays(-1), errIs: appointment.ErrPastDate},
		{name: "a month ago", date: today.AddDays(-30), errIs: appointment.ErrPastDate},
		{name: "61 days ahead", date: today.AddDays(61), errIs: appointment.ErrBeyondHorizon},
		{name: "next year", date: today.AddDays(365), errIs: appointment.ErrBeyondHorizon},
		{name: "sunday with an empty store", date: sunday, errIs: appointment.ErrClosedDay},
		{name: "sunday inside the horizon", date: sunday.AddDays(14), errIs: appointment.ErrClosedDay},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()

			_, err := f.q.ForDate(context.Background(), tc.date)
			require.Error(t, err)
			assert.True(t, errs.Is(err, tc.errIs), "got %v", err)
			assert.Zero(t, f.store.OccupiedReads)
			assert.Zero(t, f.store.ReapCalls)

			for _, d := range f.q.SelectableDates(context.Background()).Dates {
				assert.NotEqual(t, tc.date.String(), d)
			}
		})
	}
}

func TestAvailability_SelectableDates(t *testing.T) {
	f := newFixture()

	view := f.q.SelectableDates(context.Background())

	assert.Equal(t, "2026-10-19", view.Today)
	assert.Equal(t, "2026-12-18", view.LastDay)
	require.Len(t, view.Dates, 53)
	assert.Equal(t, "2026-10-19", view.Dates[0])
	assert.Equal(t, "2026-12-18", view.Dates[len(view.Dates)-1])
	for _, s := range view.Dates {
		d, err := appointment.ParseDate(s)
		require.NoError(t, err)
		assert.NotEqual(t, time.Sunday, d.Weekday(), s)
	}
}

// =============================================================================
// Occupied set
// =============================================================================

// Property 7
func TestAvailability_NextMondayWithTwoBookings(t *testing.T) {
	f := newFixture()
	f.book(nextMonday, "14:00", appointment.StatusConfirmed)
	f.book(nextMonday, "10:00", appointment.StatusPending)

	view, err := f.q.ForDate(context.Background(), nextMonday)
	require.NoError(t, err)

	assert.Equal(t, []string{"10:00", "14:00"}, view.Occupied)
	want := []string{"08:00", "09:00", "11:00", "12:00", "13:00", "15:00", "16:00", "17:00", "18:00"}
	if diff := cmp.Diff(want, view.Available); diff != "" {
		t.Errorf("available slots mismatch (-want +got):\n%s", diff)
	}
	require.Len(t, view.Slots, 11)
	assert.Equal(t, "occupied", view.Slots[2].State)
	assert.False(t, view.Slots[2].Selectable)
}

// Property 8
func TestAvailability_TodayHidesElapsedSlots(t *testing.T) {
	f := newFixture()

	view, err := f.q.ForDate(context.Background(), today)
	require.NoError(t, err)

	assert.Empty(t, view.Occupied)
	assert.Equal(t, "elapsed", view.Slots[0].State)
	assert.Equal(t, "elapsed", view.Slots[1].State)
	assert.Equal(t, []string{"10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00", "18:00"}, view.Available)
}

// Property 3
func TestAvailability_CancelledAppointmentsDoNotOccupy(t *testing.T) {
	f := newFixture()
	f.book(nextMonday, "09:00", appointment.StatusCancelled)
	f.book(nextMonday, "11:00", appointment.StatusCancelled)
	f.book(nextMonday, "11:00", appointment.StatusConfirmed)

	occupied, err := f.q.OccupiedSlots(context.Background(), nextMonday)
	require.NoError(t, err)
	assert.Equal(t, []string{"11:00"}, labels(occupied))
}

func TestAvailability_EmptyDayIsFullyOpen(t *testing.T) {
	f := newFixture()

	view, err := f.q.ForDate(context.Background(), nextMonday)
	require.NoError(t, err)
	assert.Empty(t, view.Occupied)
	assert.Len(t, view.Available, 11)
}

// =============================================================================
// Reaper interplay (Property 4)
// =============================================================================

func TestAvailability_ReapsBeforeEveryRead(t *testing.T) {
	f := newFixture()
	abandoned := f.book(nextMonday, "08:00", appointment.StatusPending)
	f.clock.Add(memstore.StaleAfter + time.Minute)
	fresh := f.book(nextMonday, "09:00", appointment.StatusPending)
	confirmed := f.book(nextMonday, "10:00", appointment.StatusConfirmed)

	first, err := f.q.OccupiedSlots(context.Background(), nextMonday)
	require.NoError(t, err)
	second, err := f.q.OccupiedSlots(context.Background(), nextMonday)
	require.NoError(t, err)

	assert.Equal(t, 2, f.store.ReapCalls)
	assert.Equal(t, []string{"09:00", "10:00"}, labels(first))
	assert.Equal(t, first, second)

	a, _ := f.store.Appointment(abandoned)
	assert.Equal(t, appointment.StatusCancelled, a.Status)
	a, _ = f.store.Appointment(fresh)
	assert.Equal(t, appointment.StatusPending, a.Status)
	a, _ = f.store.Appointment(confirmed)
	assert.Equal(t, appointment.StatusConfirmed, a.Status)
}

func TestAvailability_ReapFailureStillReads(t *testing.T) {
	f := newFixture()
	f.book(nextMonday, "08:00", appointment.StatusConfirmed)
	f.store.ReapErr = errors.New("function missing")

	occupied, err := f.q.OccupiedSlots(context.Background(), nextMonday)
	require.NoError(t, err)
	assert.Equal(t, []string{"08:00"}, labels(occupied))
}

// =============================================================================
// Fail closed
// =============================================================================

func TestAvailability_ReadIsRetriedOnce(t *testing.T) {
	f := newFixture()
	f.book(nextMonday, "15:00", appointment.StatusConfirmed)
	f.store.OccupiedReadErrs = []error{errors.New("connection reset")}

	occupied, err := f.q.OccupiedSlots(context.Background(), nextMonday)
	require.NoError(t, err)
	assert.Equal(t, []string{"15:00"}, labels(occupied))
	assert.Equal(t, 2, f.store.OccupiedReads)
}

func TestAvailability_PersistentReadFailureFailsClosed(t *testing.T) {
	f := newFixture()
	f.store.OccupiedReadErrs = []error{errors.New("connection reset"), errors.New("connection reset")}

	view, err := f.q.ForDate(context.Background(), nextMonday)
	require.Error(t, err)
	assert.Nil(t, view)
	assert.True(t, errs.Is(err, queries.ErrAvailabilityUnavailable))
	assert.Equal(t, 2, f.store.OccupiedReads)
}
