package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
)

// Notification is an outbound message to a user. Context carries
// template-specific values such as the shipment name.
type Notification struct {
	Recipient kernel.UUID
	Template  string
	Context   map[string]string
}

// Notifier publishes notifications to the delivery channel (mail, push,
// message bus). Send failures are retried by the scheduling job, so
// implementations should not retry internally beyond transport-level retries.
type Notifier interface {
	Send(ctx context.Context, notification Notification) error
}
