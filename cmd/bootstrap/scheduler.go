package bootstrap

import (
	"context"
	"time"

	"clinic-booking/internal/infra/scheduler"
	"clinic-booking/internal/pkg/config"
	"clinic-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		func(cfg config.Config, loc *time.Location) *scheduler.Scheduler {
			return scheduler.New(loc, cfg.Reminder.JobTimeout)
		},
	),
	fx.Invoke(registerJobs),
)

func registerJobs(
	lc fx.Lifecycle,
	cfg config.Config,
	s *scheduler.Scheduler,
	reminders commands.ReminderCommands,
	reaper commands.ReaperCommands,
) error {
	jobs := []scheduler.Job{
		{
			Name:     "reminder-dispatch",
			Schedule: cfg.Reminder.Schedule,
			Run: func(ctx context.Context) error {
				_, err := reminders.Dispatch(ctx)
				return err
			},
		},
		{
			Name:     "reservation-reap",
			Schedule: cfg.Clinic.ReapSchedule,
			Run: func(ctx context.Context) error {
				_, err := reaper.Reap(ctx)
				return err
			},
		},
	}

	for _, job := range jobs {
		if _, err := s.Add(job); err != nil {
			return err
		}
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: s.Stop,
	})
	return nil
}
