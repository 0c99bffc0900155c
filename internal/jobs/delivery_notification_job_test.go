package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNotifyHandler struct {
	mu       sync.Mutex
	failures int
	sent     []kernel.UUID
}

func (h *stubNotifyHandler) Handle(_ context.Context, cmd commands.NotifyDeliveryCompletedCommand) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.failures > 0 {
		h.failures--
		return errors.New("broker unavailable")
	}

	h.sent = append(h.sent, cmd.ShipmentID())
	return nil
}

func newTestNotificationJob(handler notifyHandler) *DeliveryNotificationJob {
	return &DeliveryNotificationJob{
		handler: handler,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestDeliveryNotificationJob_DrainSendsInOrder(t *testing.T) {
	handler := &stubNotifyHandler{}
	job := newTestNotificationJob(handler)

	owner := kernel.NewUUID()
	first := kernel.NewUUID()
	second := kernel.NewUUID()
	job.ScheduleDeliveryNotification(owner, first)
	job.ScheduleDeliveryNotification(owner, second)

	job.drainOnce(t.Context())

	assert.Equal(t, []kernel.UUID{first, second}, handler.sent)
	assert.Empty(t, job.queue)
}

func TestDeliveryNotificationJob_FailedSendGoesToTail(t *testing.T) {
	handler := &stubNotifyHandler{failures: 1}
	job := newTestNotificationJob(handler)

	owner := kernel.NewUUID()
	first := kernel.NewUUID()
	second := kernel.NewUUID()
	job.ScheduleDeliveryNotification(owner, first)
	job.ScheduleDeliveryNotification(owner, second)

	// First tick fails on the head and stops; the head moves to the tail.
	job.drainOnce(t.Context())
	require.Empty(t, handler.sent)
	require.Len(t, job.queue, 2)
	assert.True(t, job.queue[0].shipmentID.IsEqual(second))

	job.drainOnce(t.Context())
	assert.Equal(t, []kernel.UUID{second, first}, handler.sent)
	assert.Empty(t, job.queue)
}
