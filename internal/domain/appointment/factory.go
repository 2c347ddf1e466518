package appointment

import (
	"strings"

	"clinic-booking/internal/domain/plan"
	"clinic-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

type BookingRequest struct {
	ClientID      uuid.UUID
	PartnerID     *uuid.UUID
	ServiceID     string
	ServiceTitle  string
	Date          Date
	Slot          Slot
	PlanID        *uuid.UUID
	SessionNumber *int
}

type Factory struct {
	Clock    clock.Clock
	Calendar Calendar
}

func NewFactory(clock clock.Clock, calendar Calendar) *Factory {
	return &Factory{
		Clock:    clock,
		Calendar: calendar,
	}
}

// NewConfirmed builds a self-service booking. linked must be the plan named
// by req.PlanID, or nil when the booking is not part of a plan.
func (f *Factory) NewConfirmed(req BookingRequest, linked *plan.SessionPlan) (*Appointment, error) {
	if req.ClientID == uuid.Nil {
		return nil, ErrMissingClient
	}
	serviceID := strings.TrimSpace(req.ServiceID)
	if serviceID == "" {
		return nil, ErrMissingService
	}

	now := f.Clock.Now()
	if err := f.Calendar.CheckSlot(now, req.Date, req.Slot); err != nil {
		return nil, err
	}

	if err := checkPlanLink(req, linked); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.ServiceTitle)
	if title == "" && linked != nil {
		title = linked.ServiceTitle()
	}

	return &Appointment{
		id:            uuid.New(),
		clientID:      req.ClientID,
		partnerID:     req.PartnerID,
		serviceID:     serviceID,
		serviceTitle:  title,
		date:          req.Date,
		slot:          req.Slot,
		status:        StatusConfirmed,
		planID:        req.PlanID,
		sessionNumber: req.SessionNumber,
		createdAt:     now,
	}, nil
}

func checkPlanLink(req BookingRequest, linked *plan.SessionPlan) error {
	if req.PlanID == nil {
		if req.SessionNumber != nil {
			return plan.ErrSessionNumberWithoutPlan
		}
		return nil
	}
	if linked == nil || linked.ID() != *req.PlanID {
		return ErrPlanMismatch
	}
	if !linked.BelongsTo(req.ClientID) {
		return plan.ErrPlanBelongsToAnotherOwner
	}
	if req.SessionNumber != nil {
		return linked.ValidateSessionNumber(*req.SessionNumber)
	}
	if linked.Status() == plan.StatusCompleted {
		return plan.ErrPlanCompleted
	}
	return nil
}
