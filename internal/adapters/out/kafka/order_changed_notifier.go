// Package kafka publishes order change events. Delivery is best effort: the
// command that changed the order has already committed, so a broker outage
// must never surface as a command failure.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/order"

	"github.com/Shopify/sarama"
)

// OrderChangedNotifier publishes an event to Kafka whenever an order changes.
type OrderChangedNotifier struct {
	producer sarama.SyncProducer
	topic    string
}

// NewOrderChangedNotifier creates a notifier publishing to the given topic.
func NewOrderChangedNotifier(brokers []string, topic string) (*OrderChangedNotifier, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForLocal

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	return &OrderChangedNotifier{producer: producer, topic: topic}, nil
}

// NewOrderChangedNotifierWithProducer wires an existing producer, which the
// tests use to avoid a broker.
func NewOrderChangedNotifierWithProducer(producer sarama.SyncProducer, topic string) *OrderChangedNotifier {
	return &OrderChangedNotifier{producer: producer, topic: topic}
}

type orderChangedEvent struct {
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	CourierID *string   `json:"courier_id,omitempty"`
	EventKind string    `json:"event_kind"`
	ActorType string    `json:"actor_type"`
	ActorID   string    `json:"actor_id,omitempty"`
	At        time.Time `json:"at"`
}

// NotifyOrderChanged publishes the latest audit event of the order. Messages
// are keyed by order ID so consumers see changes to one order in sequence.
func (n *OrderChangedNotifier) NotifyOrderChanged(_ context.Context, aggregate *order.Order) error {
	audit := aggregate.Audit()
	if len(audit) == 0 {
		return nil
	}
	last := audit[len(audit)-1]

	event := orderChangedEvent{
		OrderID:   aggregate.ID().String(),
		Status:    aggregate.Status().String(),
		EventKind: last.Kind(),
		ActorType: last.ActorType().String(),
		ActorID:   last.ActorID(),
		At:        last.At(),
	}
	if courierID := aggregate.Courier(); courierID != nil {
		id := courierID.String()
		event.CourierID = &id
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	_, _, err = n.producer.SendMessage(&sarama.ProducerMessage{
		Topic: n.topic,
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(payload),
	})
	return err
}

// Close releases the underlying producer.
func (n *OrderChangedNotifier) Close() error {
	return n.producer.Close()
}
