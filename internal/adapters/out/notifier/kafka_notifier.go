// Package notifier implements the Notifier port on top of Kafka. Downstream
// consumers render and deliver the actual messages (mail, push); this adapter
// only publishes the notification events.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"freight/internal/core/ports"

	"github.com/Shopify/sarama"
)

// KafkaNotifier publishes notifications to a Kafka topic, keyed by recipient
// so one user's notifications stay ordered within a partition.
type KafkaNotifier struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaNotifier creates a notifier publishing to the given brokers and topic.
func NewKafkaNotifier(brokers []string, topic string) (*KafkaNotifier, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 10
	config.Producer.Retry.Backoff = 500 * time.Millisecond
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &KafkaNotifier{
		producer: producer,
		topic:    topic,
	}, nil
}

type notificationPayload struct {
	Recipient string            `json:"recipient"`
	Template  string            `json:"template"`
	Context   map[string]string `json:"context,omitempty"`
	SentAt    time.Time         `json:"sent_at"`
}

// Send publishes one notification. The producer retries transport failures
// internally; an error here means the message did not reach the cluster.
func (n *KafkaNotifier) Send(_ context.Context, notification ports.Notification) error {
	payload, err := json.Marshal(notificationPayload{
		Recipient: notification.Recipient.String(),
		Template:  notification.Template,
		Context:   notification.Context,
		SentAt:    time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: n.topic,
		Key:   sarama.StringEncoder(notification.Recipient.String()),
		Value: sarama.ByteEncoder(payload),
	}

	if _, _, err = n.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	return nil
}

// Close shuts down the underlying producer.
func (n *KafkaNotifier) Close() error {
	return n.producer.Close()
}
