package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──┬──> Processing ──> Fulfilled
//	          │        │
//	          └────────┴──> Cancelled
//
// Fulfilled and Cancelled are terminal: no transition leaves them,
// and self-transitions are rejected for every state.
//
// Status is a value object that validates state transitions
// and provides presentation metadata (label, color) for API consumers.
type Status string

const (
	// StatusPending is the initial status assigned at order creation.
	StatusPending Status = "pending"

	// StatusProcessing indicates the order is being worked on.
	// Orders in this status cannot be deleted.
	StatusProcessing Status = "processing"

	// StatusFulfilled indicates the order has been completed and shipped.
	// This is a terminal state; fulfilled orders cannot be deleted.
	StatusFulfilled Status = "fulfilled"

	// StatusCancelled indicates the order was cancelled.
	// This is a terminal state; cancelled orders remain deletable.
	StatusCancelled Status = "cancelled"
)

// AllStatuses returns every valid status value.
func AllStatuses() []Status {
	return []Status{StatusPending, StatusProcessing, StatusFulfilled, StatusCancelled}
}

// StatusFromString parses a raw string into a Status.
// Returns a validation error for unknown values.
func StatusFromString(value string) (Status, error) {
	status := Status(value)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusProcessing, StatusFulfilled, StatusCancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid status", string(s)))
	}
}

// String returns the wire representation of the status, e.g. "pending".
func (s Status) String() string {
	return string(s)
}

// Label returns the human-readable name of the status, e.g. "Pending".
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusProcessing:
		return "Processing"
	case StatusFulfilled:
		return "Fulfilled"
	case StatusCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Color returns the UI color associated with the status.
func (s Status) Color() string {
	switch s {
	case StatusPending:
		return "yellow"
	case StatusProcessing:
		return "blue"
	case StatusFulfilled:
		return "green"
	case StatusCancelled:
		return "red"
	default:
		return "gray"
	}
}

// allowedTransitions returns the set of states reachable from the current one.
func (s Status) allowedTransitions() []Status {
	switch s {
	case StatusPending:
		return []Status{StatusProcessing, StatusCancelled}
	case StatusProcessing:
		return []Status{StatusFulfilled, StatusCancelled}
	default:
		// Fulfilled and Cancelled are terminal.
		return nil
	}
}

// CanTransitionTo reports whether the state machine permits moving
// from the current status to the target status.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range s.allowedTransitions() {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs a state transition.
//
// Returns:
//   - (target, nil) when the transition is permitted
//   - ("", *InvalidTransitionError) naming both states otherwise
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return "", err
	}
	if !s.CanTransitionTo(target) {
		return "", &InvalidTransitionError{From: s, To: target}
	}
	return target, nil
}

// IsTerminal reports whether no transition leaves the current status.
func (s Status) IsTerminal() bool {
	return len(s.allowedTransitions()) == 0
}

// DeletionBlockReason returns the business reason preventing deletion of an
// order in this status, and whether deletion is blocked at all.
// Pending and cancelled orders are deletable.
func (s Status) DeletionBlockReason() (string, bool) {
	switch s {
	case StatusProcessing:
		return "Order is currently being processed", true
	case StatusFulfilled:
		return "Order has been fulfilled", true
	default:
		return "", false
	}
}
