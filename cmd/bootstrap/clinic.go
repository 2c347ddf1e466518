package bootstrap

import (
	"time"

	"clinic-booking/internal/domain/appointment"
	"clinic-booking/internal/domain/reminder"
	"clinic-booking/internal/pkg/clock"
	"clinic-booking/internal/pkg/config"
	"clinic-booking/internal/pkg/phone"
	"clinic-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

// ClinicModule provides the clinic's fixed zone and the rules evaluated in it.
var ClinicModule = fx.Module("clinic",
	fx.Provide(
		func(cfg config.Config) *time.Location {
			return clock.FixedOffset(cfg.Clinic.UTCOffsetSeconds)
		},
		func(loc *time.Location) clock.Clock {
			return clock.NewZonedClock(clock.NewRealClock(), loc)
		},
		func(cfg config.Config, loc *time.Location) appointment.Calendar {
			return appointment.NewCalendar(loc, cfg.Clinic.HorizonDays)
		},
		appointment.NewFactory,
		func(cfg config.Config) *phone.Normalizer {
			return phone.NewNormalizer(cfg.Clinic.PhoneRegion)
		},
		NewReminderPolicy,
	),
)

func NewReminderPolicy(cfg config.Config) (commands.ReminderPolicy, error) {
	window, err := reminder.NewWindow(cfg.Reminder.LeadMin, cfg.Reminder.LeadMax)
	if err != nil {
		return commands.ReminderPolicy{}, err
	}
	return commands.ReminderPolicy{
		Window:            window,
		MarkSentOnFailure: cfg.Reminder.MarkSentOnFailure,
	}, nil
}
