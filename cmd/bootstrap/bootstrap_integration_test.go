//go:build integration

package bootstrap_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"clinic-booking/cmd/bootstrap"
	"clinic-booking/cmd/bootstrap/components"
	"clinic-booking/internal/domain/appointment"
	"clinic-booking/internal/domain/user"
	resdto "clinic-booking/internal/handler/dto/response"
	"clinic-booking/internal/pkg/config"
	"clinic-booking/internal/pkg/jwt"
	"clinic-booking/internal/testutil/httptest"
	"clinic-booking/internal/testutil/pgtest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

type AppSuite struct {
	suite.Suite
	pool   *pgxpool.Pool
	router *gin.Engine
	cfg    config.Config
	jwt    *jwt.Service
	app    *fx.App
}

func TestAppSuite(t *testing.T) {
	suite.Run(t, new(AppSuite))
}

func (s *AppSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	pool, dbConfig := pgtest.NewDatabase(s.T())
	s.pool = pool

	cfg := config.NewTestConfig()
	cfg.DB = dbConfig

	s.app = fx.New(
		fx.Provide(
			func() *pgxpool.Pool { return pool },
			func() config.Config { return cfg },
			func() *gin.Engine { return gin.New() },
		),
		bootstrap.LoggerModule,
		bootstrap.ClinicModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.NotificationModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&s.router, &s.cfg, &s.jwt),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	s.Require().NoError(s.app.Start(ctx))

	s.T().Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		_ = s.app.Stop(stopCtx)
	})
}

func (s *AppSuite) token(id uuid.UUID, role user.Role) string {
	tok, err := s.jwt.GenerateToken(id, string(role), time.Hour)
	s.Require().NoError(err)
	return tok
}

// bookableDay is a week ahead in the clinic's zone, moved off Sunday.
func (s *AppSuite) bookableDay() string {
	loc := time.FixedZone("clinic", s.cfg.Clinic.UTCOffsetSeconds)
	d := appointment.DateOf(time.Now().In(loc)).AddDays(7)
	if d.Weekday() == time.Sunday {
		d = d.AddDays(1)
	}
	return d.String()
}

func (s *AppSuite) TestBookingLifecycle() {
	t := s.T()
	day := s.bookableDay()

	ana := pgtest.InsertClient(t, s.pool, "Ana", "")
	bia := pgtest.InsertClient(t, s.pool, "Bia", "")
	anaTok := s.token(ana, user.RoleClient)
	biaTok := s.token(bia, user.RoleClient)
	staffTok := s.token(uuid.New(), user.RolePartner)

	body := map[string]any{
		"service_id":    "svc-facial",
		"service_title": "Limpeza de pele",
		"date":          day,
		"time":          "14:00",
	}

	rec := httptest.PerformRequest(t, s.router, http.MethodPost, "/api/appointments", body, anaTok)
	var booked resdto.BookingResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &booked)
	require.Equal(t, day, booked.Date)
	require.Equal(t, "14:00", booked.Time)
	require.Equal(t, appointment.StatusConfirmed.String(), booked.Status)

	rec = httptest.PerformRequest(t, s.router, http.MethodPost, "/api/appointments", body, biaTok)
	require.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())

	rec = httptest.PerformRequest(t, s.router, http.MethodGet, "/api/appointments", nil, anaTok)
	var mine resdto.AppointmentListResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &mine)
	require.Equal(t, 1, mine.Count)

	rec = httptest.PerformRequest(t, s.router, http.MethodGet, "/api/admin/appointments?date="+day, nil, staffTok)
	var dayView resdto.DayViewResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &dayView)
	require.Equal(t, 1, dayView.Count)

	rec = httptest.PerformRequest(t, s.router, http.MethodPost, "/api/admin/appointments/"+booked.ID.String()+"/cancel", nil, staffTok)
	var cancelled resdto.StatusChangeResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &cancelled)
	require.Equal(t, appointment.StatusCancelled.String(), cancelled.Status)

	// A cancelled booking frees the slot.
	rec = httptest.PerformRequest(t, s.router, http.MethodPost, "/api/appointments", body, biaTok)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func (s *AppSuite) TestDispatchIsSkippedWhileNotificationsAreOff() {
	rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/api/internal/reminders/dispatch", nil, "",
		map[string]string{"X-Trigger-Token": s.cfg.Server.TriggerToken})

	var got resdto.DispatchResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
	require.Equal(s.T(), "skipped", got.Status)
}
