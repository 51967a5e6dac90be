package order

import (
	"fmt"

	"cardapio/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Received ──> InPreparation ──> Ready ──> Delivered
//
// Only the immediate successor is reachable. Asking for the current status again
// is accepted so clients can retry safely. Skips and backward moves are rejected.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Received is the initial status of every new order.
	Received

	// InPreparation means the kitchen has started working on the order.
	InPreparation

	// Ready means the order waits for a waiter to pick it up.
	Ready

	// Delivered is the final state.
	Delivered
)

// The tokens below are persisted and transmitted verbatim.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "UNKNOWN",
		Received:      "RECEIVED",
		InPreparation: "IN_PREPARATION",
		Ready:         "READY",
		Delivered:     "DELIVERED",
	}
}

func getValidStatusStrings() map[string]Status {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[string]Status{
		"RECEIVED":       Received,
		"IN_PREPARATION": InPreparation,
		"READY":          Ready,
		"DELIVERED":      Delivered,
	}
}

// ParseStatus converts a wire token into a Status.
func ParseStatus(s string) (Status, error) {
	if status, ok := getValidStatusStrings()[s]; ok {
		return status, nil
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the four lifecycle states.
func (s Status) Validate() error {
	if s < Received || s > Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire token, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsFinal reports whether no further transitions are possible.
func (s Status) IsFinal() bool {
	return s == Delivered
}

// Next returns the immediate successor, or false for Delivered and invalid values.
func (s Status) Next() (Status, bool) {
	if s.Validate() != nil || s.IsFinal() {
		return Unknown, false
	}
	return s + 1, true
}

// TransitionTo validates a move to target and returns it on success.
//
// Valid transitions:
//   - current -> current (idempotent retry)
//   - current -> immediate successor
//
// Anything else returns StatusTransitionIsInvalidError.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if target == s {
		return target, nil
	}
	if next, ok := s.Next(); ok && next == target {
		return target, nil
	}
	return Unknown, errs.NewStatusTransitionIsInvalidError(s.String(), target.String())
}
