package notify

import (
	"sync"

	"github.com/google/uuid"
)

// DefaultBufferSize is used when a registry is created with a non-positive size.
const DefaultBufferSize = 16

// Registry tracks open subscribers per audience. It is safe for concurrent use;
// subscribe, unsubscribe and snapshot may interleave with broadcasts freely.
type Registry struct {
	bufferSize int

	mu          sync.RWMutex
	subscribers map[Audience]map[uuid.UUID]*Subscriber
}

func NewRegistry(bufferSize int) *Registry {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	subscribers := make(map[Audience]map[uuid.UUID]*Subscriber, len(Audiences()))
	for _, a := range Audiences() {
		subscribers[a] = make(map[uuid.UUID]*Subscriber)
	}

	return &Registry{
		bufferSize:  bufferSize,
		subscribers: subscribers,
	}
}

// Subscribe registers a new subscriber for audience.
func (r *Registry) Subscribe(audience Audience) (*Subscriber, error) {
	if _, err := ParseAudience(string(audience)); err != nil {
		return nil, err
	}

	sub := newSubscriber(audience, r.bufferSize)

	r.mu.Lock()
	r.subscribers[audience][sub.id] = sub
	r.mu.Unlock()

	return sub, nil
}

// Unsubscribe removes sub and closes it. Calling it more than once is a no-op.
func (r *Registry) Unsubscribe(sub *Subscriber) {
	if sub == nil {
		return
	}

	r.mu.Lock()
	if set, ok := r.subscribers[sub.audience]; ok {
		delete(set, sub.id)
	}
	r.mu.Unlock()

	sub.close()
}

// Snapshot returns the subscribers of audience at this instant. Later
// subscriptions do not show up in the returned slice.
func (r *Registry) Snapshot(audience Audience) []*Subscriber {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set := r.subscribers[audience]
	result := make([]*Subscriber, 0, len(set))
	for _, sub := range set {
		result = append(result, sub)
	}
	return result
}

// Count returns how many subscribers audience currently has.
func (r *Registry) Count(audience Audience) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.subscribers[audience])
}

// CloseAll removes and closes every subscriber, ending all open streams.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	var all []*Subscriber
	for audience, set := range r.subscribers {
		for _, sub := range set {
			all = append(all, sub)
		}
		r.subscribers[audience] = make(map[uuid.UUID]*Subscriber)
	}
	r.mu.Unlock()

	for _, sub := range all {
		sub.close()
	}
}
