// Package memstore is an in-memory Slot Store for usecase tests. It enforces
// the same live-slot uniqueness and reaper rules as the Postgres schema and
// reports failures with the same repository error kinds.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"clinic-booking/internal/domain/appointment"
	"clinic-booking/internal/domain/plan"
	"clinic-booking/internal/infra"
	sqlc "clinic-booking/internal/infra/sqlc/generated"
	"clinic-booking/internal/pkg/clock"
	"clinic-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const StaleAfter = 30 * time.Minute

type Appointment struct {
	ID            uuid.UUID
	ClientID      uuid.UUID
	PartnerID     *uuid.UUID
	ServiceID     string
	ServiceTitle  string
	Date          appointment.Date
	Slot          appointment.Slot
	Status        appointment.Status
	PlanID        *uuid.UUID
	SessionNumber *int
	ReminderSent  bool
	CreatedAt     time.Time
}

type Plan struct {
	ID           uuid.UUID
	ClientID     uuid.UUID
	ServiceID    string
	ServiceTitle string
	Name         string
	Total        int
	Completed    int
	CreatedAt    time.Time
}

type Store struct {
	mu    sync.Mutex
	clock clock.Clock

	appointments map[uuid.UUID]Appointment
	plans        map[uuid.UUID]Plan
	clients      map[uuid.UUID]shared.Contact
	partners     map[uuid.UUID]shared.Contact
	settings     shared.NotificationSettings

	// Failure injection, consumed in order.
	OccupiedReadErrs []error
	CreateErr        error
	SettingsErr      error
	ReapErr          error
	raceOnCreate     *Appointment

	// Call counters.
	OccupiedReads  int
	ReapCalls      int
	CandidateReads int
	LockedDates    []appointment.Date
}

func New(clk clock.Clock) *Store {
	return &Store{
		clock:        clk,
		appointments: map[uuid.UUID]Appointment{},
		plans:        map[uuid.UUID]Plan{},
		clients:      map[uuid.UUID]shared.Contact{},
		partners:     map[uuid.UUID]shared.Contact{},
	}
}

// Seeding

func (s *Store) AddClient(name, phone string) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.clients[id] = shared.Contact{Name: name, Phone: phone}
	return id
}

func (s *Store) AddPartner(name, phone string) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.partners[id] = shared.Contact{Name: name, Phone: phone}
	return id
}

func (s *Store) AddAppointment(a Appointment) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = s.clock.Now()
	}
	if a.ServiceID == "" {
		a.ServiceID = "svc-facial"
	}
	s.appointments[a.ID] = a
	return a.ID
}

func (s *Store) AddPlan(p Plan) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.clock.Now()
	}
	s.plans[p.ID] = p
	return p.ID
}

func (s *Store) SetSettings(ns shared.NotificationSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = ns
}

// InjectRaceOnCreate makes the next insert find a competing live row for the
// same slot, as if another client had committed first.
func (s *Store) InjectRaceOnCreate(a Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raceOnCreate = &a
}

// Inspection

func (s *Store) Appointment(id uuid.UUID) (Appointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.appointments[id]
	return a, ok
}

func (s *Store) Appointments() []Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Appointment, 0, len(s.appointments))
	for _, a := range s.appointments {
		out = append(out, a)
	}
	sortAppointments(out)
	return out
}

func (s *Store) Plan(id uuid.UUID) (Plan, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.plans[id]
	return p, ok
}

// shared.UnitOfWork

// Within holds the store lock for the whole transaction and restores the
// previous state when fn fails.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	apps := cloneMap(s.appointments)
	plans := cloneMap(s.plans)
	t := &tx{s: s}
	if err := fn(ctx, t); err != nil {
		// Rows committed by a concurrent writer survive our rollback.
		for id, a := range t.concurrent {
			apps[id] = a
		}
		s.appointments = apps
		s.plans = plans
		return err
	}
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx, nil)
}

func (s *Store) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx, nil)
}

// shared.Reaper

func (s *Store) ReapStale(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ReapCalls++
	if s.ReapErr != nil {
		return 0, infra.WrapRepoErr("failed to expire stale reservations", s.ReapErr)
	}
	cutoff := s.clock.Now().Add(-StaleAfter)
	var n int64
	for id, a := range s.appointments {
		if a.Status == appointment.StatusPending && a.CreatedAt.Before(cutoff) {
			a.Status = appointment.StatusCancelled
			s.appointments[id] = a
			n++
		}
	}
	return n, nil
}

// shared.SettingsReader

func (s *Store) Load(_ context.Context) (shared.NotificationSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SettingsErr != nil {
		return shared.NotificationSettings{}, infra.WrapRepoErr("failed to load notification settings", s.SettingsErr)
	}
	return s.settings, nil
}

// tx implements shared.Tx and both tx-bound repositories. The store lock is
// held by Within for its whole lifetime.
type tx struct {
	s          *Store
	concurrent map[uuid.UUID]Appointment
}

func (t *tx) Appointments() shared.AppointmentRepository { return (*appointmentRepo)(t) }
func (t *tx) Plans() shared.PlanRepository               { return (*planRepo)(t) }
func (t *tx) DB() sqlc.DBTX                              { return nil }

func (t *tx) LockDate(_ context.Context, d appointment.Date) error {
	t.s.LockedDates = append(t.s.LockedDates, d)
	return nil
}

type appointmentRepo tx

func (r *appointmentRepo) Create(_ context.Context, a *appointment.Appointment) error {
	s := r.s
	if s.raceOnCreate != nil {
		rival := *s.raceOnCreate
		s.raceOnCreate = nil
		if rival.ID == uuid.Nil {
			rival.ID = uuid.New()
		}
		s.appointments[rival.ID] = rival
		if r.concurrent == nil {
			r.concurrent = map[uuid.UUID]Appointment{}
		}
		r.concurrent[rival.ID] = rival
	}
	if s.CreateErr != nil {
		return infra.WrapRepoErr("failed to create appointment", s.CreateErr)
	}
	if a.OccupiesSlot() {
		for _, other := range s.appointments {
			if other.Status.OccupiesSlot() && other.Date.Equal(a.Date()) && other.Slot == a.Slot() {
				dup := &pgconn.PgError{Code: "23505", ConstraintName: "appointments_live_slot_key"}
				return infra.WrapRepoErr("failed to create appointment", dup)
			}
		}
	}
	s.appointments[a.ID()] = Appointment{
		ID:            a.ID(),
		ClientID:      a.ClientID(),
		PartnerID:     a.PartnerID(),
		ServiceID:     a.ServiceID(),
		ServiceTitle:  a.ServiceTitle(),
		Date:          a.Date(),
		Slot:          a.Slot(),
		Status:        a.Status(),
		PlanID:        a.PlanID(),
		SessionNumber: a.SessionNumber(),
		ReminderSent:  a.ReminderSent(),
		CreatedAt:     a.CreatedAt(),
	}
	return nil
}

func (r *appointmentRepo) FindByID(_ context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	a, ok := r.s.appointments[id]
	if !ok {
		return nil, infra.WrapRepoErr("appointment not found", pgx.ErrNoRows)
	}
	return appointment.ReconstructAppointment(
		a.ID, a.ClientID, a.PartnerID, a.ServiceID, a.ServiceTitle,
		a.Date, a.Slot, a.Status, a.PlanID, a.SessionNumber, a.ReminderSent, a.CreatedAt,
	)
}

func (r *appointmentRepo) UpdateStatus(_ context.Context, a *appointment.Appointment) error {
	row, ok := r.s.appointments[a.ID()]
	if !ok {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	row.Status = a.Status()
	r.s.appointments[a.ID()] = row
	return nil
}

func (r *appointmentRepo) ClaimReminder(_ context.Context, id uuid.UUID) (bool, error) {
	row, ok := r.s.appointments[id]
	if !ok || row.Status != appointment.StatusConfirmed || row.ReminderSent {
		return false, nil
	}
	row.ReminderSent = true
	r.s.appointments[id] = row
	return true, nil
}

func (r *appointmentRepo) ReleaseReminder(_ context.Context, id uuid.UUID) error {
	row, ok := r.s.appointments[id]
	if !ok {
		return nil
	}
	row.ReminderSent = false
	r.s.appointments[id] = row
	return nil
}

type planRepo tx

func (r *planRepo) FindByID(_ context.Context, id uuid.UUID) (*plan.SessionPlan, error) {
	p, ok := r.s.plans[id]
	if !ok {
		return nil, infra.WrapRepoErr("session plan not found", pgx.ErrNoRows)
	}
	return plan.ReconstructSessionPlan(p.ID, p.ClientID, p.ServiceID, p.ServiceTitle, p.Name, p.Total, p.Completed, p.CreatedAt)
}

func (r *planRepo) UpdateProgress(_ context.Context, sp *plan.SessionPlan) error {
	p, ok := r.s.plans[sp.ID()]
	if !ok {
		return infra.WrapRepoErr("session plan not found", nil, infra.KindNotFound)
	}
	p.Completed = sp.CompletedSessions()
	r.s.plans[sp.ID()] = p
	return nil
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func sortAppointments(in []Appointment) {
	sort.Slice(in, func(i, j int) bool {
		if !in[i].Date.Equal(in[j].Date) {
			return in[i].Date.Before(in[j].Date)
		}
		if in[i].Slot != in[j].Slot {
			return in[i].Slot.Index() < in[j].Slot.Index()
		}
		return in[i].CreatedAt.Before(in[j].CreatedAt)
	})
}
