package converter

import (
	"time"

	"clinic-booking/internal/domain/appointment"
	sqlc "clinic-booking/internal/infra/sqlc/generated"
	"clinic-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func AppointmentToCreateParams(a *appointment.Appointment) sqlc.CreateAppointmentParams {
	return sqlc.CreateAppointmentParams{
		ID:              a.ID(),
		ClientID:        a.ClientID(),
		PartnerID:       pgconv.UUIDPtrToPgtype(a.PartnerID()),
		ServiceID:       a.ServiceID(),
		ServiceTitle:    a.ServiceTitle(),
		AppointmentDate: DateToPgtype(a.Date()),
		AppointmentTime: SlotToPgtype(a.Slot()),
		Status:          a.Status().String(),
		PlanID:          pgconv.UUIDPtrToPgtype(a.PlanID()),
		SessionNumber:   pgconv.IntPtrToPgtype(a.SessionNumber()),
		ReminderSent:    a.ReminderSent(),
		CreatedAt:       pgconv.TimeToPgtype(a.CreatedAt()),
	}
}

func AppointmentFromRow(row sqlc.Appointments) (*appointment.Appointment, error) {
	slot, err := SlotFromPgtype(row.AppointmentTime)
	if err != nil {
		return nil, err
	}
	return appointment.ReconstructAppointment(
		row.ID,
		row.ClientID,
		pgconv.UUIDPtrFromPgtype(row.PartnerID),
		row.ServiceID,
		row.ServiceTitle,
		DateFromPgtype(row.AppointmentDate),
		slot,
		appointment.Status(row.Status),
		pgconv.UUIDPtrFromPgtype(row.PlanID),
		pgconv.IntPtrFromPgtype(row.SessionNumber),
		row.ReminderSent,
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func DateToPgtype(d appointment.Date) pgtype.Date {
	return pgconv.DateToPgtype(d.Time())
}

func DateFromPgtype(pd pgtype.Date) appointment.Date {
	if !pd.Valid {
		return appointment.Date{}
	}
	return appointment.DateOf(pgconv.DateFromPgtype(pd))
}

func SlotToPgtype(s appointment.Slot) pgtype.Time {
	return pgconv.ClockToPgtype(s.Offset())
}

// SlotFromPgtype rejects stored times that are not one of the clinic slots,
// including ones off the whole second.
func SlotFromPgtype(pt pgtype.Time) (appointment.Slot, error) {
	if !pt.Valid || pt.Microseconds%int64(time.Second/time.Microsecond) != 0 {
		return "", appointment.ErrUnknownSlot
	}
	return appointment.ParseStoredSlot(pgconv.ClockSecondsFromPgtype(pt))
}
