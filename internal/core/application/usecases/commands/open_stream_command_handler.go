package commands

import (
	"context"
	"log/slog"

	"cardapio/internal/core/application/notify"
)

// OpenStreamCommandHandler opens and releases live subscriptions for kitchen and
// waiter displays. The caller owns the returned subscriber and must Release it
// when the client goes away.
//
// Example:
//
//	cmd, _ := NewOpenStreamCommand(notify.Kitchen)
//	sub, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	defer handler.Release(ctx, sub)
type OpenStreamCommandHandler struct {
	registry SubscriberRegistry
	logger   *slog.Logger
}

func NewOpenStreamCommandHandler(registry SubscriberRegistry, logger *slog.Logger) OpenStreamCommandHandler {
	return OpenStreamCommandHandler{
		registry: registry,
		logger:   logger.With("component", "open_stream_handler"),
	}
}

func (h *OpenStreamCommandHandler) Handle(ctx context.Context, cmd OpenStreamCommand) (*notify.Subscriber, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	sub, err := h.registry.Subscribe(cmd.Audience())
	if err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "Stream opened",
		"audience", sub.Audience(), "subscriber_id", sub.ID().String())
	return sub, nil
}

// Release unsubscribes sub. It is safe to call after the broadcaster already dropped it.
func (h *OpenStreamCommandHandler) Release(ctx context.Context, sub *notify.Subscriber) {
	if sub == nil {
		return
	}

	h.registry.Unsubscribe(sub)
	h.logger.InfoContext(ctx, "Stream closed",
		"audience", sub.Audience(), "subscriber_id", sub.ID().String())
}
