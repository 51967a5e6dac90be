package notify

import (
	"encoding/json"
	"fmt"

	"cardapio/internal/core/application/views"
	"cardapio/internal/core/domain/model/order"
	"cardapio/internal/pkg/errs"
)

// Audience scopes a stream to one kind of display.
type Audience string

const (
	Kitchen Audience = "kitchen"
	Waiter  Audience = "waiter"
)

// Audiences lists every known audience.
func Audiences() []Audience {
	return []Audience{Kitchen, Waiter}
}

// ParseAudience converts a raw name into an Audience.
func ParseAudience(s string) (Audience, error) {
	for _, a := range Audiences() {
		if string(a) == s {
			return a, nil
		}
	}
	return "", errs.NewValueIsInvalidErrorWithCause("audience", fmt.Errorf("%q is not a known audience", s))
}

// Event names as they appear on the wire.
const (
	EventNewOrder   = "novo-pedido"
	EventOrderReady = "pedido-pronto"
)

// Event is one message for a stream. An Event with an empty Name is a keepalive
// and carries no data.
type Event struct {
	Name    string
	OrderID string
	Data    []byte
}

// IsKeepalive reports whether the event is a heartbeat.
func (e Event) IsKeepalive() bool {
	return e.Name == ""
}

// NewOrderEvent builds an event whose payload is the full order view.
func NewOrderEvent(name string, o *order.Order) (Event, error) {
	data, err := json.Marshal(views.FromOrder(o))
	if err != nil {
		return Event{}, fmt.Errorf("encode %s event: %w", name, err)
	}
	return Event{Name: name, OrderID: o.ID().String(), Data: data}, nil
}

func keepaliveEvent() Event {
	return Event{}
}
