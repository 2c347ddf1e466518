package appointment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingClient     = errors.New("appointment requires a client")
	ErrMissingService    = errors.New("appointment requires a service")
	ErrInvalidStatus     = errors.New("invalid appointment status")
	ErrInvalidTransition = errors.New("appointment status transition not allowed")
	ErrPlanMismatch      = errors.New("linked plan does not match the request")
)

type Appointment struct {
	id            uuid.UUID
	clientID      uuid.UUID
	partnerID     *uuid.UUID
	serviceID     string
	serviceTitle  string
	date          Date
	slot          Slot
	status        Status
	planID        *uuid.UUID
	sessionNumber *int
	reminderSent  bool
	createdAt     time.Time
}

func ReconstructAppointment(
	id, clientID uuid.UUID,
	partnerID *uuid.UUID,
	serviceID, serviceTitle string,
	date Date,
	slot Slot,
	status Status,
	planID *uuid.UUID,
	sessionNumber *int,
	reminderSent bool,
	createdAt time.Time,
) (*Appointment, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if !slot.IsValid() {
		return nil, ErrUnknownSlot
	}
	return &Appointment{
		id:            id,
		clientID:      clientID,
		partnerID:     partnerID,
		serviceID:     serviceID,
		serviceTitle:  serviceTitle,
		date:          date,
		slot:          slot,
		status:        status,
		planID:        planID,
		sessionNumber: sessionNumber,
		reminderSent:  reminderSent,
		createdAt:     createdAt,
	}, nil
}

func (a *Appointment) transition(next Status) error {
	if !a.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	a.status = next
	return nil
}

// Confirm records payment completion of a pending reservation.
func (a *Appointment) Confirm() error {
	return a.transition(StatusConfirmed)
}

func (a *Appointment) Cancel() error {
	return a.transition(StatusCancelled)
}

func (a *Appointment) MarkReminderSent() {
	a.reminderSent = true
}

func (a *Appointment) OccupiesSlot() bool {
	return a.status.OccupiesSlot()
}

func (a *Appointment) ID() uuid.UUID         { return a.id }
func (a *Appointment) ClientID() uuid.UUID   { return a.clientID }
func (a *Appointment) PartnerID() *uuid.UUID { return a.partnerID }
func (a *Appointment) ServiceID() string     { return a.serviceID }
func (a *Appointment) ServiceTitle() string  { return a.serviceTitle }
func (a *Appointment) Date() Date            { return a.date }
func (a *Appointment) Slot() Slot            { return a.slot }
func (a *Appointment) Status() Status        { return a.status }
func (a *Appointment) PlanID() *uuid.UUID    { return a.planID }
func (a *Appointment) SessionNumber() *int   { return a.sessionNumber }
func (a *Appointment) ReminderSent() bool    { return a.reminderSent }
func (a *Appointment) CreatedAt() time.Time  { return a.createdAt }
