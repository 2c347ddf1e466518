package memstore

import (
	"context"

	"clinic-booking/internal/domain/appointment"
	"clinic-booking/internal/domain/plan"
	"clinic-booking/internal/infra"
	sqlc "clinic-booking/internal/infra/sqlc/generated"
	"clinic-booking/internal/usecase/commands"
	"clinic-booking/internal/usecase/queries"
	"clinic-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// The read stores below run under the lock taken by WithinReadOnly or WithDB.

// OccupiedSlots implements queries.OccupiedSlotReadStore.
func (s *Store) OccupiedSlots(_ context.Context, _ sqlc.DBTX, d appointment.Date) ([]appointment.Slot, error) {
	s.OccupiedReads++
	if len(s.OccupiedReadErrs) > 0 {
		err := s.OccupiedReadErrs[0]
		s.OccupiedReadErrs = s.OccupiedReadErrs[1:]
		if err != nil {
			return nil, infra.WrapRepoErr("failed to read occupied slots", err)
		}
	}
	var out []appointment.Slot
	for _, a := range s.sorted() {
		if a.Date.Equal(d) && a.Status.OccupiesSlot() {
			out = append(out, a.Slot)
		}
	}
	return out, nil
}

// AppointmentReadStore returns the store as a queries.AppointmentReadStore.
func (s *Store) AppointmentReadStore() queries.AppointmentReadStore { return appointmentReads{s} }

// PlanReadStore returns the store as a queries.PlanReadStore.
func (s *Store) PlanReadStore() queries.PlanReadStore { return planReads{s} }

// ReminderReadStore returns the store as a commands.ReminderReadStore.
func (s *Store) ReminderReadStore() commands.ReminderReadStore { return reminderReads{s} }

// ContactReadStore returns the store as a commands.ContactReadStore.
func (s *Store) ContactReadStore() commands.ContactReadStore { return contactReads{s} }

type appointmentReads struct{ s *Store }

func (r appointmentReads) FindByClient(_ context.Context, _ sqlc.DBTX, clientID uuid.UUID, limit int32) ([]*queries.AppointmentView, error) {
	rows := r.s.sorted()
	out := []*queries.AppointmentView{}
	for i := len(rows) - 1; i >= 0 && len(out) < int(limit); i-- {
		if rows[i].ClientID == clientID {
			v := toView(rows[i])
			out = append(out, &v)
		}
	}
	return out, nil
}

func (r appointmentReads) FindByDate(_ context.Context, _ sqlc.DBTX, d appointment.Date) ([]*queries.DayAppointmentView, error) {
	out := []*queries.DayAppointmentView{}
	for _, a := range r.s.sorted() {
		if !a.Date.Equal(d) {
			continue
		}
		c := r.s.clients[a.ClientID]
		v := &queries.DayAppointmentView{AppointmentView: toView(a), ClientName: c.Name}
		if c.Phone != "" {
			phone := c.Phone
			v.ClientPhone = &phone
		}
		out = append(out, v)
	}
	return out, nil
}

type planReads struct{ s *Store }

func (r planReads) FindByClient(_ context.Context, _ sqlc.DBTX, clientID uuid.UUID) ([]*queries.PlanView, error) {
	out := []*queries.PlanView{}
	for _, p := range r.s.plans {
		if p.ClientID != clientID {
			continue
		}
		sp, err := plan.ReconstructSessionPlan(p.ID, p.ClientID, p.ServiceID, p.ServiceTitle, p.Name, p.Total, p.Completed, p.CreatedAt)
		if err != nil {
			return nil, err
		}
		out = append(out, &queries.PlanView{
			ID:                sp.ID(),
			ServiceID:         sp.ServiceID(),
			ServiceTitle:      sp.ServiceTitle(),
			Name:              sp.Name(),
			TotalSessions:     sp.TotalSessions(),
			CompletedSessions: sp.CompletedSessions(),
			RemainingSessions: sp.RemainingSessions(),
			Status:            sp.Status().String(),
			CreatedAt:         sp.CreatedAt(),
		})
	}
	return out, nil
}

type reminderReads struct{ s *Store }

func (r reminderReads) FindCandidates(_ context.Context, _ sqlc.DBTX, day appointment.Date) ([]commands.ReminderCandidate, error) {
	r.s.CandidateReads++
	var out []commands.ReminderCandidate
	for _, a := range r.s.sorted() {
		if !a.Date.Equal(day) || a.Status != appointment.StatusConfirmed || a.ReminderSent {
			continue
		}
		c := r.s.clients[a.ClientID]
		out = append(out, commands.ReminderCandidate{
			AppointmentID: a.ID,
			ServiceTitle:  a.ServiceTitle,
			Date:          a.Date,
			Slot:          a.Slot,
			ClientName:    c.Name,
			ClientPhone:   c.Phone,
		})
	}
	return out, nil
}

type contactReads struct{ s *Store }

func (r contactReads) Client(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (shared.Contact, error) {
	c, ok := r.s.clients[id]
	if !ok {
		return shared.Contact{}, infra.WrapRepoErr("client not found", pgx.ErrNoRows)
	}
	return c, nil
}

func (r contactReads) Partner(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (shared.Contact, error) {
	c, ok := r.s.partners[id]
	if !ok {
		return shared.Contact{}, infra.WrapRepoErr("partner not found", pgx.ErrNoRows)
	}
	return c, nil
}

func (s *Store) sorted() []Appointment {
	out := make([]Appointment, 0, len(s.appointments))
	for _, a := range s.appointments {
		out = append(out, a)
	}
	sortAppointments(out)
	return out
}

func toView(a Appointment) queries.AppointmentView {
	return queries.AppointmentView{
		ID:            a.ID,
		ClientID:      a.ClientID,
		PartnerID:     a.PartnerID,
		ServiceID:     a.ServiceID,
		ServiceTitle:  a.ServiceTitle,
		Date:          a.Date.String(),
		Time:          a.Slot.String(),
		Status:        a.Status.String(),
		PlanID:        a.PlanID,
		SessionNumber: a.SessionNumber,
		ReminderSent:  a.ReminderSent,
		CreatedAt:     a.CreatedAt,
	}
}
