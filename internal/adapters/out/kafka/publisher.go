// Package kafka mirrors order events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"cardapio/internal/core/ports"

	kafkaGo "github.com/segmentio/kafka-go"
)

type envelope struct {
	Event    string          `json:"event"`
	Audience string          `json:"audience"`
	Order    json.RawMessage `json:"order"`
}

// OrderEventPublisher implements ports.EventPublisher on an async kafka-go writer.
// Messages are keyed by order id so one order's events stay in one partition.
type OrderEventPublisher struct {
	writer *kafkaGo.Writer
	logger *slog.Logger
}

func NewOrderEventPublisher(brokers []string, topic string, logger *slog.Logger) *OrderEventPublisher {
	p := &OrderEventPublisher{logger: logger.With("component", "kafka_publisher", "topic", topic)}
	p.writer = &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafkaGo.Hash{},
		Async:                  true,
		AllowAutoTopicCreation: true,
		Completion:             p.completed,
	}
	return p
}

// Publish enqueues msg. With an async writer the only errors returned here are
// encoding errors; delivery failures are logged from the completion callback.
func (p *OrderEventPublisher) Publish(ctx context.Context, msg ports.OrderEventMessage) error {
	m, err := encodeMessage(msg)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, m); err != nil {
		return fmt.Errorf("write %s event for order %s: %w", msg.Name, msg.OrderID, err)
	}
	return nil
}

// Close flushes pending messages and releases the writer.
func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}

func (p *OrderEventPublisher) completed(messages []kafkaGo.Message, err error) {
	if err != nil {
		p.logger.Error("Failed to deliver order events", "count", len(messages), "error", err)
		return
	}
	p.logger.Debug("Delivered order events", "count", len(messages))
}

func encodeMessage(msg ports.OrderEventMessage) (kafkaGo.Message, error) {
	order := json.RawMessage(msg.Data)
	if len(order) == 0 {
		order = json.RawMessage("null")
	}

	value, err := json.Marshal(envelope{Event: msg.Name, Audience: msg.Audience, Order: order})
	if err != nil {
		return kafkaGo.Message{}, fmt.Errorf("encode %s event for order %s: %w", msg.Name, msg.OrderID, err)
	}

	return kafkaGo.Message{
		Key:   []byte(msg.OrderID),
		Value: value,
		Headers: []kafkaGo.Header{
			{Key: "event", Value: []byte(msg.Name)},
		},
	}, nil
}
