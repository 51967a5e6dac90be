package notify

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// ErrDeliveryFailed is reported when an event cannot be handed to a subscriber.
// It never leaves this package's broadcaster.
var ErrDeliveryFailed = errors.New("delivery failed")

// Subscriber is one open stream. Events are buffered; the consumer drains Events
// until Done is closed.
type Subscriber struct {
	id       uuid.UUID
	audience Audience
	events   chan Event
	done     chan struct{}

	mu     sync.Mutex
	closed bool
}

func newSubscriber(audience Audience, bufferSize int) *Subscriber {
	return &Subscriber{
		id:       uuid.New(),
		audience: audience,
		events:   make(chan Event, bufferSize),
		done:     make(chan struct{}),
	}
}

func (s *Subscriber) ID() uuid.UUID {
	return s.id
}

func (s *Subscriber) Audience() Audience {
	return s.audience
}

// Events is the buffered stream of events for this subscriber. It is never closed;
// select on Done as well.
func (s *Subscriber) Events() <-chan Event {
	return s.events
}

// Done is closed once the subscriber has been removed from its registry.
func (s *Subscriber) Done() <-chan struct{} {
	return s.done
}

// IsClosed reports whether the subscriber was closed.
func (s *Subscriber) IsClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// deliver offers ev without blocking. The mutex orders it against close, so a
// send after close is reported instead of racing.
func (s *Subscriber) deliver(ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return fmt.Errorf("%w: subscriber %s is closed", ErrDeliveryFailed, s.id)
	}

	select {
	case s.events <- ev:
		return nil
	default:
		return fmt.Errorf("%w: subscriber %s buffer is full", ErrDeliveryFailed, s.id)
	}
}

func (s *Subscriber) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	close(s.done)
}
