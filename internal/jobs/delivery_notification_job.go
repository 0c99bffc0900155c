package jobs

import (
	"context"
	"log/slog"
	"sync"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

type notifyHandler interface {
	Handle(ctx context.Context, cmd commands.NotifyDeliveryCompletedCommand) error
}

type pendingNotification struct {
	ownerID    kernel.UUID
	shipmentID kernel.UUID
}

// DeliveryNotificationJob drains an in-process queue of delivered-shipment
// notifications every second. A failed send is re-queued at the tail and the
// tick stops; the entry is retried on the next tick. Delivery is
// at-least-once.
//
// DeliveryNotificationJob implements ports.NotificationScheduler.
type DeliveryNotificationJob struct {
	handler notifyHandler
	cron    *cron.Cron
	logger  *slog.Logger

	mu    sync.Mutex
	queue []pendingNotification
}

// NewDeliveryNotificationJob creates the notification job.
func NewDeliveryNotificationJob(
	handler commands.NotifyDeliveryCompletedCommandHandler,
	logger *slog.Logger,
) *DeliveryNotificationJob {
	return &DeliveryNotificationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delivery_notification_job"),
	}
}

// ScheduleDeliveryNotification enqueues one owner notification for the
// delivered shipment.
func (j *DeliveryNotificationJob) ScheduleDeliveryNotification(ownerID, shipmentID kernel.UUID) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.queue = append(j.queue, pendingNotification{ownerID: ownerID, shipmentID: shipmentID})
}

// Start begins draining the queue every second.
func (j *DeliveryNotificationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		j.drainOnce(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery notification job started")
	return nil
}

// Stop stops the job. Notifications still queued are lost with the process.
func (j *DeliveryNotificationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery notification job stopped")
}

// drainOnce sends queued notifications in order until the queue is empty or a
// send fails. The failed entry goes to the tail for the next tick.
func (j *DeliveryNotificationJob) drainOnce(ctx context.Context) {
	for {
		pending, ok := j.takeHead()
		if !ok {
			return
		}

		cmd, err := commands.NewNotifyDeliveryCompletedCommand(pending.ownerID, pending.shipmentID)
		if err != nil {
			j.logger.ErrorContext(ctx, "Dropping malformed notification", "error", err)
			continue
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.WarnContext(ctx, "Notification send failed, re-queueing",
				"shipment_id", pending.shipmentID.String(),
				"error", err,
			)
			j.pushTail(pending)
			return
		}
	}
}

func (j *DeliveryNotificationJob) takeHead() (pendingNotification, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if len(j.queue) == 0 {
		return pendingNotification{}, false
	}

	head := j.queue[0]
	j.queue = j.queue[1:]
	return head, true
}

func (j *DeliveryNotificationJob) pushTail(pending pendingNotification) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.queue = append(j.queue, pending)
}
