//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"clinic-booking/internal/domain/appointment"
	"clinic-booking/internal/infra"
	sqlc "clinic-booking/internal/infra/sqlc/generated"
	"clinic-booking/internal/pkg/pgconv"
	"clinic-booking/internal/usecase/commands"
	"clinic-booking/internal/usecase/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReadQueries struct {
	mock.Mock
}

func (m *MockReadQueries) ListOccupiedSlots(ctx context.Context, db sqlc.DBTX, day pgtype.Date) ([]pgtype.Time, error) {
	args := m.Called(ctx, db, day)
	return args.Get(0).([]pgtype.Time), args.Error(1)
}

func (m *MockReadQueries) ListReminderCandidates(ctx context.Context, db sqlc.DBTX, appointmentDate pgtype.Date) ([]sqlc.ListReminderCandidatesRow, error) {
	args := m.Called(ctx, db, appointmentDate)
	return args.Get(0).([]sqlc.ListReminderCandidatesRow), args.Error(1)
}

func (m *MockReadQueries) GetNotificationSettings(ctx context.Context, db sqlc.DBTX) (sqlc.GetNotificationSettingsRow, error) {
	args := m.Called(ctx, db)
	return args.Get(0).(sqlc.GetNotificationSettingsRow), args.Error(1)
}

func clockOf(h, m int) pgtype.Time {
	return pgconv.ClockToPgtype(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

var day = appointment.NewDate(2026, 10, 26)

func TestOccupiedSlots(t *testing.T) {
	t.Run("sorted, deduplicated, off-grid ignored", func(t *testing.T) {
		q := new(MockReadQueries)
		q.On("ListOccupiedSlots", mock.Anything, mock.Anything, pgconv.DateToPgtype(day.Time())).
			Return([]pgtype.Time{clockOf(16, 0), clockOf(9, 0), clockOf(16, 0), clockOf(7, 30)}, nil)

		got, err := NewOccupiedSlotReadStore(q).OccupiedSlots(context.Background(), nil, day)
		require.NoError(t, err)
		if diff := cmp.Diff([]appointment.Slot{"09:00", "16:00"}, got); diff != "" {
			t.Errorf("occupied mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("store failure is reported, never an empty day", func(t *testing.T) {
		q := new(MockReadQueries)
		q.On("ListOccupiedSlots", mock.Anything, mock.Anything, mock.Anything).Return([]pgtype.Time(nil), assert.AnError)

		got, err := NewOccupiedSlotReadStore(q).OccupiedSlots(context.Background(), nil, day)
		assert.Nil(t, got)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestFindCandidates(t *testing.T) {
	id := uuid.New()
	q := new(MockReadQueries)
	q.On("ListReminderCandidates", mock.Anything, mock.Anything, mock.Anything).Return([]sqlc.ListReminderCandidatesRow{
		{
			ID: id, ServiceTitle: "Peeling", ClientName: "Ana Souza",
			AppointmentDate: pgconv.DateToPgtype(day.Time()), AppointmentTime: clockOf(14, 0),
			ClientPhone: pgtype.Text{String: "(11) 99123-4567", Valid: true},
		},
		{
			ID: uuid.New(), ClientName: "Off grid",
			AppointmentDate: pgconv.DateToPgtype(day.Time()), AppointmentTime: clockOf(14, 30),
		},
	}, nil)

	got, err := NewReminderReadStore(q).FindCandidates(context.Background(), nil, day)
	require.NoError(t, err)

	want := []commands.ReminderCandidate{{
		AppointmentID: id, ServiceTitle: "Peeling", Date: day, Slot: "14:00",
		ClientName: "Ana Souza", ClientPhone: "(11) 99123-4567",
	}}
	if diff := cmp.Diff(want, got, cmp.Comparer(func(a, b appointment.Date) bool { return a.Equal(b) })); diff != "" {
		t.Errorf("candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestSettingsReader(t *testing.T) {
	tests := []struct {
		name    string
		row     sqlc.GetNotificationSettingsRow
		err     error
		want    shared.NotificationSettings
		wantErr bool
	}{
		{
			name: "configured",
			row:  sqlc.GetNotificationSettingsRow{Enabled: true, GatewayUrl: "https://gw", GatewayToken: "t", StaffPhone: "1133334444"},
			want: shared.NotificationSettings{Enabled: true, GatewayURL: "https://gw", GatewayToken: "t", StaffPhone: "1133334444"},
		},
		{name: "no row reads as disabled", err: pgx.ErrNoRows, want: shared.NotificationSettings{}},
		{name: "store failure", err: assert.AnError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockReadQueries)
			q.On("GetNotificationSettings", mock.Anything, mock.Anything).Return(tt.row, tt.err)

			got, err := NewSettingsReader(q, nil).Load(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
