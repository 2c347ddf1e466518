package commands

import (
	"context"
	"log/slog"

	"clinic-booking/internal/domain/appointment"
	"clinic-booking/internal/domain/reminder"
	sqlc "clinic-booking/internal/infra/sqlc/generated"
	"clinic-booking/internal/pkg/clock"
	"clinic-booking/internal/pkg/errs"
	"clinic-booking/internal/pkg/phone"
	"clinic-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type DispatchStatus string

const (
	DispatchSkipped   DispatchStatus = "skipped"
	DispatchCompleted DispatchStatus = "completed"
)

type DispatchResult struct {
	Status         DispatchStatus
	Reason         string
	Date           string
	Checked        int
	Sent           int
	Failed         int
	SkippedNoPhone int
}

// ReminderPolicy holds the dispatcher's tunables.
type ReminderPolicy struct {
	Window reminder.Window
	// MarkSentOnFailure keeps reminder_sent=true after a failed send, so a
	// failed reminder is never retried.
	MarkSentOnFailure bool
}

type ReminderCommands interface {
	Dispatch(ctx context.Context) (*DispatchResult, error)
}

type reminderCommandsImpl struct {
	uow        shared.UnitOfWork
	candidates ReminderReadStore
	settings   shared.SettingsReader
	gateway    shared.NotificationGateway
	phones     *phone.Normalizer
	calendar   appointment.Calendar
	clock      clock.Clock
	policy     ReminderPolicy
}

func NewReminderCommands(
	uow shared.UnitOfWork,
	candidates ReminderReadStore,
	settings shared.SettingsReader,
	gateway shared.NotificationGateway,
	phones *phone.Normalizer,
	calendar appointment.Calendar,
	clock clock.Clock,
	policy ReminderPolicy,
) ReminderCommands {
	return &reminderCommandsImpl{
		uow:        uow,
		candidates: candidates,
		settings:   settings,
		gateway:    gateway,
		phones:     phones,
		calendar:   calendar,
		clock:      clock,
		policy:     policy,
	}
}

// Dispatch sends one reminder to each of today's confirmed appointments that
// starts inside the lead window. Concurrent runs are safe: an appointment is
// claimed by flipping reminder_sent before its message goes out.
func (r *reminderCommandsImpl) Dispatch(ctx context.Context) (*DispatchResult, error) {
	settings, err := r.settings.Load(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrSettingsUnavailable)
	}
	if reason := settings.SkipReason(); reason != "" {
		slog.Info("reminder dispatch skipped", "reason", reason)
		return &DispatchResult{Status: DispatchSkipped, Reason: reason}, nil
	}

	now := r.clock.Now().In(r.calendar.Location())
	today := r.calendar.Today(now)

	var candidates []ReminderCandidate
	err = r.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		candidates, err = r.candidates.FindCandidates(ctx, db, today)
		return err
	})
	if err != nil {
		return nil, err
	}

	result := &DispatchResult{Status: DispatchCompleted, Date: today.String()}
	for _, c := range candidates {
		if !r.policy.Window.Contains(now, r.calendar.SlotStart(c.Date, c.Slot)) {
			continue
		}
		result.Checked++
		r.remind(ctx, settings, c, result)
	}

	slog.Info("reminder dispatch completed",
		"date", result.Date,
		"checked", result.Checked,
		"sent", result.Sent,
		"failed", result.Failed,
		"skipped_no_phone", result.SkippedNoPhone)
	return result, nil
}

// remind handles one appointment. Failures are counted and logged; they never
// stop the batch.
func (r *reminderCommandsImpl) remind(ctx context.Context, settings shared.NotificationSettings, c ReminderCandidate, result *DispatchResult) {
	id := c.AppointmentID.String()

	to := r.phones.Normalize(c.ClientPhone)
	if to == "" {
		result.SkippedNoPhone++
		slog.Warn("reminder skipped: client has no usable phone", "appointment_id", id)
		return
	}

	claimed, err := r.claim(ctx, c.AppointmentID)
	if err != nil {
		result.Failed++
		slog.Error("reminder claim failed", "appointment_id", id, "error", err.Error())
		return
	}
	if !claimed {
		slog.Debug("reminder already claimed by another run", "appointment_id", id)
		return
	}

	msg := reminder.Render(settings.ReminderTemplate, reminder.Message{
		ClientName:   c.ClientName,
		ServiceTitle: c.ServiceTitle,
		Date:         c.Date.Time(),
		Time:         c.Slot.String(),
	})
	if err := r.gateway.SendText(ctx, settings, to, msg); err != nil {
		result.Failed++
		slog.Error("reminder send failed", "appointment_id", id, "error", err.Error())
		if !r.policy.MarkSentOnFailure {
			r.release(ctx, c.AppointmentID)
		}
		return
	}
	result.Sent++
}

func (r *reminderCommandsImpl) claim(ctx context.Context, id uuid.UUID) (bool, error) {
	var claimed bool
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		claimed, err = tx.Appointments().ClaimReminder(ctx, id)
		return err
	})
	return claimed, err
}

func (r *reminderCommandsImpl) release(ctx context.Context, id uuid.UUID) {
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Appointments().ReleaseReminder(ctx, id)
	})
	if err != nil {
		slog.Error("reminder release failed", "appointment_id", id.String(), "error", err.Error())
	}
}
