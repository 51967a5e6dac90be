package ports

import "context"

// OrderEventMessage is an order event as handed to an outbound publisher.
// Data is the JSON order view already sent to local subscribers.
type OrderEventMessage struct {
	Name     string
	Audience string
	OrderID  string
	Data     []byte
}

// EventPublisher mirrors order events to an external broker. Failures are
// reported to the caller, who only logs them.
type EventPublisher interface {
	Publish(ctx context.Context, msg OrderEventMessage) error
}
