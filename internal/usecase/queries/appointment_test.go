//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"clinic-booking/internal/domain/appointment"
	"clinic-booking/internal/pkg/clock"
	"clinic-booking/internal/testutil/memstore"
	"clinic-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentQueries_ListByClient(t *testing.T) {
	clk := clock.NewMockClock(mondayMorning)
	store := memstore.New(clk)
	q := queries.NewAppointmentQueries(store, store.AppointmentReadStore())

	me := store.AddClient("Ana Souza", "11991234567")
	other := store.AddClient("Bia Lima", "")
	store.AddAppointment(memstore.Appointment{ClientID: me, Date: today, Slot: "10:00", Status: appointment.StatusConfirmed})
	store.AddAppointment(memstore.Appointment{ClientID: me, Date: nextMonday, Slot: "08:00", Status: appointment.StatusCancelled})
	store.AddAppointment(memstore.Appointment{ClientID: other, Date: today, Slot: "11:00", Status: appointment.StatusConfirmed})

	rows, err := q.ListByClient(context.Background(), me, 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2026-10-26", rows[0].Date, "newest first")
	assert.Equal(t, "cancelled", rows[0].Status)
	assert.Equal(t, "2026-10-19", rows[1].Date)

	rows, err = q.ListByClient(context.Background(), me, 1)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	rows, err = q.ListByClient(context.Background(), uuid.New(), 10)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestAppointmentQueries_ListByDate(t *testing.T) {
	clk := clock.NewMockClock(mondayMorning)
	store := memstore.New(clk)
	q := queries.NewAppointmentQueries(store, store.AppointmentReadStore())

	ana := store.AddClient("Ana Souza", "11991234567")
	bia := store.AddClient("Bia Lima", "")
	store.AddAppointment(memstore.Appointment{ClientID: ana, Date: nextMonday, Slot: "14:00", Status: appointment.StatusConfirmed})
	store.AddAppointment(memstore.Appointment{ClientID: bia, Date: nextMonday, Slot: "09:00", Status: appointment.StatusPending})
	store.AddAppointment(memstore.Appointment{ClientID: bia, Date: today, Slot: "15:00", Status: appointment.StatusPending})

	rows, err := q.ListByDate(context.Background(), nextMonday)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "09:00", rows[0].Time)
	assert.Equal(t, "Bia Lima", rows[0].ClientName)
	assert.Nil(t, rows[0].ClientPhone)
	assert.Equal(t, "14:00", rows[1].Time)
	require.NotNil(t, rows[1].ClientPhone)
	assert.Equal(t, "11991234567", *rows[1].ClientPhone)
}

func TestPlanQueries_ListByClient(t *testing.T) {
	clk := clock.NewMockClock(mondayMorning)
	store := memstore.New(clk)
	q := queries.NewPlanQueries(store, store.PlanReadStore())

	me := store.AddClient("Ana Souza", "")
	store.AddPlan(memstore.Plan{ClientID: me, ServiceID: "svc-laser", ServiceTitle: "Laser", Name: "Pacote 5", Total: 5, Completed: 5, CreatedAt: mondayMorning.Add(-time.Hour)})
	store.AddPlan(memstore.Plan{ClientID: uuid.New(), ServiceID: "svc-laser", ServiceTitle: "Laser", Name: "Outro", Total: 3})

	plans, err := q.ListByClient(context.Background(), me)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "completed", plans[0].Status)
	assert.Equal(t, 0, plans[0].RemainingSessions)
}
