package commands

import (
	"context"
	"log/slog"

	"clinic-booking/internal/domain/appointment"
	"clinic-booking/internal/domain/plan"
	"clinic-booking/internal/infra"
	"clinic-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type StatusChangeResult struct {
	AppointmentID uuid.UUID
	Status        appointment.Status
}

type PlanProgressResult struct {
	PlanID            uuid.UUID
	CompletedSessions int
	TotalSessions     int
	Status            plan.Status
}

type AppointmentCommands interface {
	// Confirm moves a pending appointment to confirmed. Staff only.
	Confirm(ctx context.Context, actor shared.Actor, id uuid.UUID) (*StatusChangeResult, error)
	// Cancel frees the slot. Clients may cancel only their own pending
	// appointments; staff may cancel pending or confirmed ones.
	Cancel(ctx context.Context, actor shared.Actor, id uuid.UUID) (*StatusChangeResult, error)
	// CompletePlanSession records one finished session on a plan. Staff only.
	CompletePlanSession(ctx context.Context, actor shared.Actor, planID uuid.UUID) (*PlanProgressResult, error)
}

type appointmentCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewAppointmentCommands(uow shared.UnitOfWork) AppointmentCommands {
	return &appointmentCommandsImpl{uow: uow}
}

func (c *appointmentCommandsImpl) Confirm(ctx context.Context, actor shared.Actor, id uuid.UUID) (*StatusChangeResult, error) {
	if !actor.IsStaff() {
		return nil, ErrForbidden
	}
	return c.transition(ctx, id, func(a *appointment.Appointment) error {
		return a.Confirm()
	})
}

func (c *appointmentCommandsImpl) Cancel(ctx context.Context, actor shared.Actor, id uuid.UUID) (*StatusChangeResult, error) {
	return c.transition(ctx, id, func(a *appointment.Appointment) error {
		if !actor.IsStaff() {
			if a.ClientID() != actor.UserID {
				return ErrAppointmentNotFound
			}
			if a.Status() != appointment.StatusPending {
				return ErrForbidden
			}
		}
		return a.Cancel()
	})
}

func (c *appointmentCommandsImpl) transition(ctx context.Context, id uuid.UUID, apply func(*appointment.Appointment) error) (*StatusChangeResult, error) {
	var result *StatusChangeResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, err := tx.Appointments().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrAppointmentNotFound
			}
			return err
		}
		from := a.Status()
		if err := apply(a); err != nil {
			return err
		}
		if err := tx.Appointments().UpdateStatus(ctx, a); err != nil {
			return err
		}
		slog.Info("appointment status changed",
			"appointment_id", id.String(), "from", from.String(), "to", a.Status().String())
		result = &StatusChangeResult{AppointmentID: id, Status: a.Status()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *appointmentCommandsImpl) CompletePlanSession(ctx context.Context, actor shared.Actor, planID uuid.UUID) (*PlanProgressResult, error) {
	if !actor.IsStaff() {
		return nil, ErrForbidden
	}
	var result *PlanProgressResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Plans().FindByID(ctx, planID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPlanNotFound
			}
			return err
		}
		if err := p.RecordCompletedSession(); err != nil {
			return err
		}
		if err := tx.Plans().UpdateProgress(ctx, p); err != nil {
			return err
		}
		result = &PlanProgressResult{
			PlanID:            p.ID(),
			CompletedSessions: p.CompletedSessions(),
			TotalSessions:     p.TotalSessions(),
			Status:            p.Status(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
