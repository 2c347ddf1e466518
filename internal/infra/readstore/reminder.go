package readstore

import (
	"context"
	"log/slog"

	"clinic-booking/internal/domain/appointment"
	"clinic-booking/internal/infra"
	"clinic-booking/internal/infra/repository/converter"
	sqlc "clinic-booking/internal/infra/sqlc/generated"
	"clinic-booking/internal/pkg/pgconv"
	"clinic-booking/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgtype"
)

type ReminderCandidateQueries interface {
	ListReminderCandidates(ctx context.Context, db sqlc.DBTX, appointmentDate pgtype.Date) ([]sqlc.ListReminderCandidatesRow, error)
}

type ReminderReadStore struct {
	queries ReminderCandidateQueries
}

func NewReminderReadStore(queries ReminderCandidateQueries) *ReminderReadStore {
	return &ReminderReadStore{queries: queries}
}

// FindCandidates lists the day's confirmed appointments still awaiting a reminder.
func (r *ReminderReadStore) FindCandidates(ctx context.Context, db sqlc.DBTX, day appointment.Date) ([]commands.ReminderCandidate, error) {
	rows, err := r.queries.ListReminderCandidates(ctx, db, converter.DateToPgtype(day))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reminder candidates", err)
	}

	out := make([]commands.ReminderCandidate, 0, len(rows))
	for _, row := range rows {
		slot, err := converter.SlotFromPgtype(row.AppointmentTime)
		if err != nil {
			slog.Warn("reminder candidate skipped: time is not a clinic slot",
				"appointment_id", row.ID.String(),
				"time", pgconv.ClockFromPgtype(row.AppointmentTime))
			continue
		}
		out = append(out, commands.ReminderCandidate{
			AppointmentID: row.ID,
			ServiceTitle:  row.ServiceTitle,
			Date:          converter.DateFromPgtype(row.AppointmentDate),
			Slot:          slot,
			ClientName:    row.ClientName,
			ClientPhone:   pgconv.StringFromPgtype(row.ClientPhone),
		})
	}
	return out, nil
}
