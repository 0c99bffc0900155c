package jobs

import (
	"context"
	"log/slog"

	"freight/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// TruckDeactivationJob runs the maintenance sweep on a cron schedule.
// Per-truck failures are handled inside the sweep; an error surfacing here
// means the sweep itself could not run.
type TruckDeactivationJob struct {
	handler  commands.DeactivateTrucksCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewTruckDeactivationJob creates the sweep job. schedule is a six-field cron
// expression with seconds, e.g. "0 0 * * * *" for hourly.
func NewTruckDeactivationJob(
	handler commands.DeactivateTrucksCommandHandler,
	schedule string,
	logger *slog.Logger,
) *TruckDeactivationJob {
	return &TruckDeactivationJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "truck_deactivation_job"),
	}
}

// Start begins the sweep on its schedule.
func (j *TruckDeactivationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewDeactivateTrucksCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Truck deactivation sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Truck deactivation job started", "schedule", j.schedule)
	return nil
}

// Stop stops the sweep job.
func (j *TruckDeactivationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Truck deactivation job stopped")
}
