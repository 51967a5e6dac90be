// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence and, after commit, event broadcast.
package commands

import (
	"context"

	"cardapio/internal/core/application/notify"
	"cardapio/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages transactions for order operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)

// Notification interfaces decouple command handlers from the stream machinery.
type (
	// EventBroadcaster delivers an event to every live subscriber of an audience.
	EventBroadcaster interface {
		Broadcast(ctx context.Context, audience notify.Audience, ev notify.Event) int
	}

	// SubscriberRegistry opens and closes live subscriptions.
	SubscriberRegistry interface {
		Subscribe(audience notify.Audience) (*notify.Subscriber, error)
		Unsubscribe(sub *notify.Subscriber)
	}
)
