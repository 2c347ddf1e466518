package readstore

import (
	"context"

	"clinic-booking/internal/domain/appointment"
	"clinic-booking/internal/infra"
	"clinic-booking/internal/infra/repository/converter"
	sqlc "clinic-booking/internal/infra/sqlc/generated"
	"clinic-booking/internal/pkg/pgconv"
	"clinic-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AppointmentViewQueries interface {
	ListAppointmentsByClient(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAppointmentsByClientParams) ([]sqlc.ListAppointmentsByClientRow, error)
	ListAppointmentsByDate(ctx context.Context, db sqlc.DBTX, appointmentDate pgtype.Date) ([]sqlc.ListAppointmentsByDateRow, error)
}

type AppointmentReadStore struct {
	queries AppointmentViewQueries
}

func NewAppointmentReadStore(queries AppointmentViewQueries) *AppointmentReadStore {
	return &AppointmentReadStore{queries: queries}
}

func (r *AppointmentReadStore) FindByClient(ctx context.Context, db sqlc.DBTX, clientID uuid.UUID, limit int32) ([]*queries.AppointmentView, error) {
	rows, err := r.queries.ListAppointmentsByClient(ctx, db, sqlc.ListAppointmentsByClientParams{
		ClientID: clientID,
		Limit:    limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list client appointments", err)
	}

	result := make([]*queries.AppointmentView, len(rows))
	for i, row := range rows {
		v := appointmentView(sqlc.Appointments{
			ID:              row.ID,
			ClientID:        row.ClientID,
			PartnerID:       row.PartnerID,
			ServiceID:       row.ServiceID,
			ServiceTitle:    row.ServiceTitle,
			AppointmentDate: row.AppointmentDate,
			AppointmentTime: row.AppointmentTime,
			Status:          row.Status,
			PlanID:          row.PlanID,
			SessionNumber:   row.SessionNumber,
			ReminderSent:    row.ReminderSent,
			CreatedAt:       row.CreatedAt,
		})
		v.PartnerName = pgconv.StringPtrFromPgtype(row.PartnerName)
		result[i] = &v
	}
	return result, nil
}

func (r *AppointmentReadStore) FindByDate(ctx context.Context, db sqlc.DBTX, d appointment.Date) ([]*queries.DayAppointmentView, error) {
	rows, err := r.queries.ListAppointmentsByDate(ctx, db, converter.DateToPgtype(d))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments of the day", err)
	}

	result := make([]*queries.DayAppointmentView, len(rows))
	for i, row := range rows {
		v := appointmentView(sqlc.Appointments{
			ID:              row.ID,
			ClientID:        row.ClientID,
			PartnerID:       row.PartnerID,
			ServiceID:       row.ServiceID,
			ServiceTitle:    row.ServiceTitle,
			AppointmentDate: row.AppointmentDate,
			AppointmentTime: row.AppointmentTime,
			Status:          row.Status,
			PlanID:          row.PlanID,
			SessionNumber:   row.SessionNumber,
			ReminderSent:    row.ReminderSent,
			CreatedAt:       row.CreatedAt,
		})
		v.PartnerName = pgconv.StringPtrFromPgtype(row.PartnerName)
		result[i] = &queries.DayAppointmentView{
			AppointmentView: v,
			ClientName:      row.ClientName,
			ClientPhone:     pgconv.StringPtrFromPgtype(row.ClientPhone),
		}
	}
	return result, nil
}

func appointmentView(row sqlc.Appointments) queries.AppointmentView {
	return queries.AppointmentView{
		ID:            row.ID,
		ClientID:      row.ClientID,
		PartnerID:     pgconv.UUIDPtrFromPgtype(row.PartnerID),
		ServiceID:     row.ServiceID,
		ServiceTitle:  row.ServiceTitle,
		Date:          converter.DateFromPgtype(row.AppointmentDate).String(),
		Time:          pgconv.ClockFromPgtype(row.AppointmentTime),
		Status:        row.Status,
		PlanID:        pgconv.UUIDPtrFromPgtype(row.PlanID),
		SessionNumber: pgconv.IntPtrFromPgtype(row.SessionNumber),
		ReminderSent:  row.ReminderSent,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
