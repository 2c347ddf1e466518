package commands

import (
	"context"
	"errors"
	"log/slog"

	"clinic-booking/internal/domain/appointment"
	"clinic-booking/internal/domain/picker"
	"clinic-booking/internal/domain/plan"
	"clinic-booking/internal/domain/reminder"
	"clinic-booking/internal/infra"
	sqlc "clinic-booking/internal/infra/sqlc/generated"
	"clinic-booking/internal/pkg/errs"
	"clinic-booking/internal/pkg/phone"
	"clinic-booking/internal/usecase/queries"
	"clinic-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingInput struct {
	ServiceID     string
	ServiceTitle  string
	PartnerID     *uuid.UUID
	Date          appointment.Date
	Slot          appointment.Slot
	PlanID        *uuid.UUID
	SessionNumber *int
}

type BookingResult struct {
	AppointmentID uuid.UUID
	ServiceTitle  string
	Date          appointment.Date
	Slot          appointment.Slot
	Status        appointment.Status
	PlanID        *uuid.UUID
	SessionNumber *int
}

type BookingCommands interface {
	Book(ctx context.Context, clientID uuid.UUID, in BookingInput) (*BookingResult, error)
}

type bookingCommandsImpl struct {
	uow          shared.UnitOfWork
	availability queries.AvailabilityQueries
	factory      *appointment.Factory
	settings     shared.SettingsReader
	gateway      shared.NotificationGateway
	contacts     ContactReadStore
	phones       *phone.Normalizer
	runner       shared.TaskRunner
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	availability queries.AvailabilityQueries,
	factory *appointment.Factory,
	settings shared.SettingsReader,
	gateway shared.NotificationGateway,
	contacts ContactReadStore,
	phones *phone.Normalizer,
	runner shared.TaskRunner,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:          uow,
		availability: availability,
		factory:      factory,
		settings:     settings,
		gateway:      gateway,
		contacts:     contacts,
		phones:       phones,
		runner:       runner,
	}
}

// Book walks the picker with the requested date and time, then writes the
// appointment under a per-date lock. The insert is never retried.
func (b *bookingCommandsImpl) Book(ctx context.Context, clientID uuid.UUID, in BookingInput) (*BookingResult, error) {
	p := picker.New(b.factory.Calendar, b.factory.Clock, b.availability.OccupiedSlots)
	if err := p.SelectDate(ctx, in.Date); err != nil {
		return nil, err
	}
	if err := p.SelectTime(in.Slot); err != nil {
		return nil, err
	}
	sel, err := p.Submit()
	if err != nil {
		return nil, err
	}

	req := appointment.BookingRequest{
		ClientID:      clientID,
		PartnerID:     in.PartnerID,
		ServiceID:     in.ServiceID,
		ServiceTitle:  in.ServiceTitle,
		Date:          sel.Date,
		Slot:          sel.Slot,
		PlanID:        in.PlanID,
		SessionNumber: in.SessionNumber,
	}

	var created *appointment.Appointment
	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.LockDate(ctx, sel.Date); err != nil {
			return err
		}

		var linked *plan.SessionPlan
		if req.PlanID != nil {
			found, err := tx.Plans().FindByID(ctx, *req.PlanID)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return ErrPlanNotFound
				}
				return err
			}
			linked = found
		}

		a, err := b.factory.NewConfirmed(req, linked)
		if err != nil {
			return err
		}
		if err := tx.Appointments().Create(ctx, a); err != nil {
			return err
		}
		created = a
		return nil
	})
	if err != nil {
		return nil, b.writeFailure(p, sel, err)
	}
	p.Complete()

	slog.Info("appointment booked",
		"appointment_id", created.ID().String(),
		"date", created.Date().String(),
		"time", created.Slot().String())

	var pc shared.PostCommit
	b.enqueueStaffAlert(ctx, &pc, created)
	pc.Drain(ctx, b.runner)

	return &BookingResult{
		AppointmentID: created.ID(),
		ServiceTitle:  created.ServiceTitle(),
		Date:          created.Date(),
		Slot:          created.Slot(),
		Status:        created.Status(),
		PlanID:        created.PlanID(),
		SessionNumber: created.SessionNumber(),
	}, nil
}

func (b *bookingCommandsImpl) writeFailure(p *picker.Picker, sel picker.Selection, err error) error {
	if infra.IsKind(err, infra.KindDuplicateKey) {
		p.Fail(true)
		slog.Warn("slot taken by a concurrent booking",
			"date", sel.Date.String(), "time", sel.Slot.String())
		return errs.Mark(err, ErrSlotTaken)
	}
	p.Fail(false)
	var repoErr infra.RepositoryError
	if errors.As(err, &repoErr) {
		return errs.Mark(err, ErrReservationWriteFailed)
	}
	return err
}

// enqueueStaffAlert loads the notification settings once for this request
// and queues the alert. Nothing here can fail the booking.
func (b *bookingCommandsImpl) enqueueStaffAlert(ctx context.Context, pc *shared.PostCommit, a *appointment.Appointment) {
	settings, err := b.settings.Load(ctx)
	if err != nil {
		slog.Warn("staff alert skipped: settings unavailable",
			"appointment_id", a.ID().String(), "error", err.Error())
		return
	}
	if reason := settings.SkipReason(); reason != "" {
		slog.Debug("staff alert skipped", "appointment_id", a.ID().String(), "reason", reason)
		return
	}
	pc.Add("booking.staff_alert", func(ctx context.Context) error {
		return b.sendStaffAlert(ctx, settings, a)
	})
}

func (b *bookingCommandsImpl) sendStaffAlert(ctx context.Context, settings shared.NotificationSettings, a *appointment.Appointment) error {
	var client, partner shared.Contact
	err := b.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		if client, err = b.contacts.Client(ctx, db, a.ClientID()); err != nil {
			return err
		}
		if a.PartnerID() != nil {
			partner, err = b.contacts.Partner(ctx, db, *a.PartnerID())
		}
		return err
	})
	if err != nil {
		return errs.Wrap(err, "load contacts for staff alert")
	}

	tpl := settings.BookingTemplate
	if tpl == "" {
		tpl = reminder.DefaultBookingTemplate
	}
	msg := reminder.Render(tpl, reminder.Message{
		ClientName:   client.Name,
		ServiceTitle: a.ServiceTitle(),
		Date:         a.Date().Time(),
		Time:         a.Slot().String(),
	})

	var sendErrs []error
	for _, to := range b.recipients(settings.StaffPhone, partner.Phone) {
		if err := b.gateway.SendText(ctx, settings, to, msg); err != nil {
			sendErrs = append(sendErrs, errs.Wrapf(err, "send staff alert to %s", to))
		}
	}
	return errors.Join(sendErrs...)
}

func (b *bookingCommandsImpl) recipients(raw ...string) []string {
	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		n := b.phones.Normalize(r)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
