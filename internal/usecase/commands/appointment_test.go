//go:build unit

package commands_test

import (
	"context"
	"testing"

	"clinic-booking/internal/domain/appointment"
	"clinic-booking/internal/domain/plan"
	"clinic-booking/internal/domain/user"
	"clinic-booking/internal/pkg/clock"
	"clinic-booking/internal/testutil/memstore"
	"clinic-booking/internal/usecase/commands"
	"clinic-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAppointmentFixture(t *testing.T) (*memstore.Store, commands.AppointmentCommands) {
	t.Helper()
	store := memstore.New(clock.NewMockClock(mondayMorning))
	return store, commands.NewAppointmentCommands(store)
}

func TestConfirm(t *testing.T) {
	staff := shared.Actor{UserID: uuid.New(), Role: user.RolePartner}

	t.Run("staff confirms a pending appointment", func(t *testing.T) {
		store, cmd := newAppointmentFixture(t)
		id := store.AddAppointment(memstore.Appointment{ClientID: uuid.New(), Date: nextMonday, Slot: "10:00", Status: appointment.StatusPending})

		res, err := cmd.Confirm(context.Background(), staff, id)
		require.NoError(t, err)
		assert.Equal(t, appointment.StatusConfirmed, res.Status)

		row, _ := store.Appointment(id)
		assert.Equal(t, appointment.StatusConfirmed, row.Status)
	})

	t.Run("client cannot confirm", func(t *testing.T) {
		store, cmd := newAppointmentFixture(t)
		owner := uuid.New()
		id := store.AddAppointment(memstore.Appointment{ClientID: owner, Date: nextMonday, Slot: "10:00", Status: appointment.StatusPending})

		_, err := cmd.Confirm(context.Background(), shared.Actor{UserID: owner, Role: user.RoleClient}, id)
		assert.ErrorIs(t, err, commands.ErrForbidden)

		row, _ := store.Appointment(id)
		assert.Equal(t, appointment.StatusPending, row.Status)
	})

	t.Run("cancelled appointment cannot be confirmed", func(t *testing.T) {
		store, cmd := newAppointmentFixture(t)
		id := store.AddAppointment(memstore.Appointment{ClientID: uuid.New(), Date: nextMonday, Slot: "10:00", Status: appointment.StatusCancelled})

		_, err := cmd.Confirm(context.Background(), staff, id)
		assert.ErrorIs(t, err, appointment.ErrInvalidTransition)
	})

	t.Run("unknown appointment", func(t *testing.T) {
		_, cmd := newAppointmentFixture(t)
		_, err := cmd.Confirm(context.Background(), staff, uuid.New())
		assert.ErrorIs(t, err, commands.ErrAppointmentNotFound)
	})
}

func TestCancel(t *testing.T) {
	owner := uuid.New()
	client := shared.Actor{UserID: owner, Role: user.RoleClient}
	admin := shared.Actor{UserID: uuid.New(), Role: user.RoleAdmin}

	testCases := []struct {
		name       string
		actor      shared.Actor
		rowOwner   uuid.UUID
		status     appointment.Status
		wantErr    error
		wantStatus appointment.Status
	}{
		{name: "client cancels own pending", actor: client, rowOwner: owner, status: appointment.StatusPending, wantStatus: appointment.StatusCancelled},
		{name: "client cannot cancel own confirmed", actor: client, rowOwner: owner, status: appointment.StatusConfirmed, wantErr: commands.ErrForbidden, wantStatus: appointment.StatusConfirmed},
		{name: "someone else's appointment looks missing", actor: client, rowOwner: uuid.New(), status: appointment.StatusPending, wantErr: commands.ErrAppointmentNotFound, wantStatus: appointment.StatusPending},
		{name: "staff cancels confirmed", actor: admin, rowOwner: owner, status: appointment.StatusConfirmed, wantStatus: appointment.StatusCancelled},
		{name: "already cancelled", actor: admin, rowOwner: owner, status: appointment.StatusCancelled, wantErr: appointment.ErrInvalidTransition, wantStatus: appointment.StatusCancelled},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, cmd := newAppointmentFixture(t)
			id := store.AddAppointment(memstore.Appointment{ClientID: tc.rowOwner, Date: nextMonday, Slot: "15:00", Status: tc.status})

			res, err := cmd.Cancel(context.Background(), tc.actor, id)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, res)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.wantStatus, res.Status)
			}

			row, _ := store.Appointment(id)
			assert.Equal(t, tc.wantStatus, row.Status)
		})
	}
}

func TestCancel_FreesTheSlot(t *testing.T) {
	store, cmd := newAppointmentFixture(t)
	owner := uuid.New()
	id := store.AddAppointment(memstore.Appointment{ClientID: owner, Date: nextMonday, Slot: "15:00", Status: appointment.StatusPending})

	_, err := cmd.Cancel(context.Background(), shared.Actor{UserID: owner, Role: user.RoleClient}, id)
	require.NoError(t, err)

	occupied, err := store.OccupiedSlots(context.Background(), nil, nextMonday)
	require.NoError(t, err)
	assert.Empty(t, occupied)
}

func TestCompletePlanSession(t *testing.T) {
	staff := shared.Actor{UserID: uuid.New(), Role: user.RolePartner}

	t.Run("last session completes the plan", func(t *testing.T) {
		store, cmd := newAppointmentFixture(t)
		id := store.AddPlan(memstore.Plan{ClientID: uuid.New(), ServiceID: "svc-laser", Name: "Pacote", Total: 3, Completed: 2})

		res, err := cmd.CompletePlanSession(context.Background(), staff, id)
		require.NoError(t, err)
		assert.Equal(t, 3, res.CompletedSessions)
		assert.Equal(t, plan.StatusCompleted, res.Status)

		row, _ := store.Plan(id)
		assert.Equal(t, 3, row.Completed)
	})

	t.Run("finished plan refuses more", func(t *testing.T) {
		store, cmd := newAppointmentFixture(t)
		id := store.AddPlan(memstore.Plan{ClientID: uuid.New(), ServiceID: "svc-laser", Name: "Pacote", Total: 3, Completed: 3})

		_, err := cmd.CompletePlanSession(context.Background(), staff, id)
		assert.ErrorIs(t, err, plan.ErrPlanCompleted)
	})

	t.Run("client forbidden", func(t *testing.T) {
		store, cmd := newAppointmentFixture(t)
		owner := uuid.New()
		id := store.AddPlan(memstore.Plan{ClientID: owner, ServiceID: "svc-laser", Name: "Pacote", Total: 3})

		_, err := cmd.CompletePlanSession(context.Background(), shared.Actor{UserID: owner, Role: user.RoleClient}, id)
		assert.ErrorIs(t, err, commands.ErrForbidden)
	})

	t.Run("unknown plan", func(t *testing.T) {
		_, cmd := newAppointmentFixture(t)
		_, err := cmd.CompletePlanSession(context.Background(), staff, uuid.New())
		assert.ErrorIs(t, err, commands.ErrPlanNotFound)
	})
}
