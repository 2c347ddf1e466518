//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"clinic-booking/internal/domain/appointment"
	"clinic-booking/internal/infra"
	sqlc "clinic-booking/internal/infra/sqlc/generated"
	"clinic-booking/internal/pkg/clock"
	"clinic-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAppointmentWriteQueries struct {
	mock.Mock
}

func (m *MockAppointmentWriteQueries) CreateAppointment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAppointmentParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockAppointmentWriteQueries) GetAppointmentForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Appointments, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Appointments), args.Error(1)
}

func (m *MockAppointmentWriteQueries) UpdateAppointmentStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateAppointmentStatusParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAppointmentWriteQueries) ClaimAppointmentReminder(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAppointmentWriteQueries) ReleaseAppointmentReminder(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error {
	args := m.Called(ctx, db, id)
	return args.Error(0)
}

var clinicLoc = time.FixedZone("UTC-03:00", -3*60*60)

func newConfirmed(t *testing.T) *appointment.Appointment {
	t.Helper()
	now := time.Date(2026, 10, 19, 9, 30, 0, 0, clinicLoc)
	f := appointment.NewFactory(clock.NewMockClock(now), appointment.NewCalendar(clinicLoc, appointment.DefaultHorizonDays))
	a, err := f.NewConfirmed(appointment.BookingRequest{
		ClientID:     uuid.New(),
		ServiceID:    "svc-facial",
		ServiceTitle: "Limpeza de pele",
		Date:         appointment.NewDate(2026, 10, 26),
		Slot:         "14:00",
	}, nil)
	require.NoError(t, err)
	return a
}

func TestAppointmentRepository_Create(t *testing.T) {
	a := newConfirmed(t)

	tests := []struct {
		name     string
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "slot already held", mockErr: &pgconn.PgError{Code: "23505"}, wantKind: infra.KindDuplicateKey},
		{name: "unknown client", mockErr: &pgconn.PgError{Code: "23503"}, wantKind: infra.KindForeignKeyViolated},
		{name: "connection lost", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockAppointmentWriteQueries)
			q.On("CreateAppointment", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateAppointmentParams) bool {
				return p.ID == a.ID() &&
					p.Status == "confirmed" &&
					p.AppointmentTime.Microseconds == (14*time.Hour).Microseconds() &&
					p.AppointmentDate.Time.Equal(time.Date(2026, 10, 26, 0, 0, 0, 0, time.UTC)) &&
					!p.PartnerID.Valid && !p.SessionNumber.Valid && !p.ReminderSent
			})).Return(tt.mockErr)

			err := NewAppointmentRepository(q, nil).Create(context.Background(), a)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
			q.AssertExpectations(t)
		})
	}
}

func TestAppointmentRepository_FindByID(t *testing.T) {
	id := uuid.New()
	partner := uuid.New()

	t.Run("maps the row", func(t *testing.T) {
		q := new(MockAppointmentWriteQueries)
		q.On("GetAppointmentForUpdate", mock.Anything, mock.Anything, id).Return(sqlc.Appointments{
			ID:              id,
			ClientID:        uuid.New(),
			PartnerID:       pgconv.UUIDToPgtype(partner),
			ServiceID:       "svc-facial",
			ServiceTitle:    "Limpeza de pele",
			AppointmentDate: pgtype.Date{Time: time.Date(2026, 10, 26, 0, 0, 0, 0, time.UTC), Valid: true},
			AppointmentTime: pgtype.Time{Microseconds: (16 * time.Hour).Microseconds(), Valid: true},
			Status:          "pending",
			SessionNumber:   pgtype.Int4{Int32: 2, Valid: true},
			CreatedAt:       pgconv.TimeToPgtype(time.Now()),
		}, nil)

		a, err := NewAppointmentRepository(q, nil).FindByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, appointment.Slot("16:00"), a.Slot())
		assert.Equal(t, "2026-10-26", a.Date().String())
		assert.Equal(t, appointment.StatusPending, a.Status())
		require.NotNil(t, a.PartnerID())
		assert.Equal(t, partner, *a.PartnerID())
		require.NotNil(t, a.SessionNumber())
		assert.Equal(t, 2, *a.SessionNumber())
	})

	t.Run("not found", func(t *testing.T) {
		q := new(MockAppointmentWriteQueries)
		q.On("GetAppointmentForUpdate", mock.Anything, mock.Anything, id).Return(sqlc.Appointments{}, pgx.ErrNoRows)

		_, err := NewAppointmentRepository(q, nil).FindByID(context.Background(), id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("time outside the slot list", func(t *testing.T) {
		q := new(MockAppointmentWriteQueries)
		q.On("GetAppointmentForUpdate", mock.Anything, mock.Anything, id).Return(sqlc.Appointments{
			ID:              id,
			AppointmentDate: pgtype.Date{Time: time.Date(2026, 10, 26, 0, 0, 0, 0, time.UTC), Valid: true},
			AppointmentTime: pgtype.Time{Microseconds: (7 * time.Hour).Microseconds(), Valid: true},
			Status:          "pending",
		}, nil)

		_, err := NewAppointmentRepository(q, nil).FindByID(context.Background(), id)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.ErrorIs(t, err, appointment.ErrUnknownSlot)
	})
}

func TestAppointmentRepository_ClaimReminder(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name    string
		rows    int64
		mockErr error
		want    bool
		wantErr bool
	}{
		{name: "claimed", rows: 1, want: true},
		{name: "already claimed elsewhere", rows: 0, want: false},
		{name: "store failure", mockErr: assert.AnError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockAppointmentWriteQueries)
			q.On("ClaimAppointmentReminder", mock.Anything, mock.Anything, id).Return(tt.rows, tt.mockErr)

			got, err := NewAppointmentRepository(q, nil).ClaimReminder(context.Background(), id)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAppointmentRepository_UpdateStatus_MissingRow(t *testing.T) {
	a := newConfirmed(t)
	q := new(MockAppointmentWriteQueries)
	q.On("UpdateAppointmentStatus", mock.Anything, mock.Anything, sqlc.UpdateAppointmentStatusParams{ID: a.ID(), Status: "confirmed"}).Return(int64(0), nil)

	err := NewAppointmentRepository(q, nil).UpdateStatus(context.Background(), a)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
