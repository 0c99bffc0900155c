package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/retry"

	"github.com/robfig/cron/v3"
)

type geocodeHandler interface {
	Handle(ctx context.Context, cmd commands.GeocodeDeliveryShipmentsCommand) error
}

type geocodeBatch struct {
	legIDs    []kernel.UUID
	attempts  int
	notBefore time.Time
}

// GeocodingJob drains an in-process queue of leg batches every second and
// resolves their addresses through the geocoding command. A batch that fails
// with a retryable error is re-queued with exponential backoff until
// maxAttempts is exhausted, after which it is abandoned and logged.
//
// GeocodingJob implements ports.GeocodeScheduler: ScheduleGeocoding enqueues
// a batch for the next tick.
type GeocodingJob struct {
	handler     geocodeHandler
	cron        *cron.Cron
	logger      *slog.Logger
	backoff     retry.ExponentialBackoff
	maxAttempts int
	now         func() time.Time

	mu    sync.Mutex
	queue []geocodeBatch
}

// NewGeocodingJob creates the geocoding job. maxAttempts bounds how many times
// one batch is tried before being abandoned; values below 1 are raised to 1.
func NewGeocodingJob(
	handler commands.GeocodeDeliveryShipmentsCommandHandler,
	maxAttempts int,
	logger *slog.Logger,
) *GeocodingJob {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &GeocodingJob{
		handler:     handler,
		cron:        cron.New(cron.WithSeconds()),
		logger:      logger.With("component", "geocoding_job"),
		backoff:     retry.NewDefaultExponentialBackoff(),
		maxAttempts: maxAttempts,
		now:         time.Now,
	}
}

// ScheduleGeocoding enqueues a batch of legs for geocoding. Invalid leg ID sets
// are rejected by the command constructor on the drain side, so scheduling
// itself never fails.
func (j *GeocodingJob) ScheduleGeocoding(legIDs []kernel.UUID) {
	if len(legIDs) == 0 {
		return
	}

	ids := make([]kernel.UUID, len(legIDs))
	copy(ids, legIDs)

	j.mu.Lock()
	defer j.mu.Unlock()

	j.queue = append(j.queue, geocodeBatch{legIDs: ids, notBefore: j.now()})
}

// Start begins draining the queue every second.
func (j *GeocodingJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		j.drainOnce(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Geocoding job started", "max_attempts", j.maxAttempts)
	return nil
}

// Stop stops the job. Batches still queued are lost with the process.
func (j *GeocodingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Geocoding job stopped")
}

// drainOnce processes every batch whose backoff delay has elapsed. Batches
// failing retryably go back to the queue; the rest of the tick continues.
func (j *GeocodingJob) drainOnce(ctx context.Context) {
	for {
		batch, ok := j.takeReady()
		if !ok {
			return
		}

		j.process(ctx, batch)
	}
}

func (j *GeocodingJob) takeReady() (geocodeBatch, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()

	now := j.now()
	for i, batch := range j.queue {
		if batch.notBefore.After(now) {
			continue
		}

		j.queue = append(j.queue[:i], j.queue[i+1:]...)
		return batch, true
	}

	return geocodeBatch{}, false
}

func (j *GeocodingJob) process(ctx context.Context, batch geocodeBatch) {
	cmd, err := commands.NewGeocodeDeliveryShipmentsCommand(batch.legIDs)
	if err != nil {
		j.logger.ErrorContext(ctx, "Dropping malformed geocoding batch", "error", err)
		return
	}

	if err := j.handler.Handle(ctx, cmd); err != nil {
		j.requeue(ctx, batch, err)
	}
}

func (j *GeocodingJob) requeue(ctx context.Context, batch geocodeBatch, cause error) {
	batch.attempts++
	if batch.attempts >= j.maxAttempts {
		j.logger.ErrorContext(ctx, "Abandoning geocoding batch",
			"attempts", batch.attempts,
			"legs", len(batch.legIDs),
			"error", cause,
		)
		return
	}

	delay := j.backoff.NextBackoff(batch.attempts)
	batch.notBefore = j.now().Add(delay)

	j.logger.WarnContext(ctx, "Geocoding batch failed, retrying",
		"attempt", batch.attempts,
		"retry_in", delay,
		"error", cause,
	)

	j.mu.Lock()
	defer j.mu.Unlock()
	j.queue = append(j.queue, batch)
}
