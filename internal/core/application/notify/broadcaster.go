package notify

import (
	"context"
	"log/slog"

	"cardapio/internal/core/ports"
)

// Broadcaster delivers events to the subscribers of a Registry and, optionally,
// mirrors them to an external publisher.
type Broadcaster struct {
	registry  *Registry
	publisher ports.EventPublisher
	logger    *slog.Logger
}

type BroadcasterOption func(*Broadcaster)

// WithPublisher mirrors every non-keepalive event to p after local delivery.
func WithPublisher(p ports.EventPublisher) BroadcasterOption {
	return func(b *Broadcaster) {
		b.publisher = p
	}
}

func NewBroadcaster(registry *Registry, logger *slog.Logger, opts ...BroadcasterOption) *Broadcaster {
	b := &Broadcaster{
		registry: registry,
		logger:   logger.With("component", "broadcaster"),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Broadcast offers ev to every current subscriber of audience and returns the
// number of successful deliveries. Subscribers that fail are unsubscribed.
func (b *Broadcaster) Broadcast(ctx context.Context, audience Audience, ev Event) int {
	delivered := b.fanOut(ctx, audience, ev)

	if b.publisher != nil && !ev.IsKeepalive() {
		msg := ports.OrderEventMessage{
			Name:     ev.Name,
			Audience: string(audience),
			OrderID:  ev.OrderID,
			Data:     ev.Data,
		}
		if err := b.publisher.Publish(ctx, msg); err != nil {
			b.logger.ErrorContext(ctx, "Failed to mirror event",
				"audience", audience, "event", ev.Name, "order_id", ev.OrderID, "error", err)
		}
	}

	return delivered
}

// Heartbeat sends a keepalive to every subscriber of every audience, pruning the
// ones that can no longer receive.
func (b *Broadcaster) Heartbeat(ctx context.Context) int {
	delivered := 0
	for _, audience := range Audiences() {
		delivered += b.fanOut(ctx, audience, keepaliveEvent())
	}
	return delivered
}

func (b *Broadcaster) fanOut(ctx context.Context, audience Audience, ev Event) int {
	delivered := 0
	for _, sub := range b.registry.Snapshot(audience) {
		if err := sub.deliver(ev); err != nil {
			b.registry.Unsubscribe(sub)
			b.logger.WarnContext(ctx, "Dropped subscriber",
				"audience", audience, "subscriber_id", sub.ID(), "event", ev.Name, "error", err)
			continue
		}
		delivered++
	}
	return delivered
}
