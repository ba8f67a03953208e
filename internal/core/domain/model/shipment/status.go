package shipment

import (
	"errors"
	"fmt"

	"courier/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
//
// The lifecycle forms a closed state machine:
//
//	pending ──> quoted ──┬──> approved ──> assigned ──> picked_up ──> in_transit ──> delivered
//	                     └──────────────────┘
//	          (compound approve-and-assign skips the open-job pool)
//
// Every non-terminal state may additionally transition to cancelled.
// Transitions outside this table are rejected with an InvalidTransitionError.
type Status string

const (
	// StatusPending is the initial state of a newly created shipment.
	// The shipment is waiting for an admin to quote it.
	StatusPending Status = "pending"

	// StatusQuoted means an admin has attached a quote amount.
	StatusQuoted Status = "quoted"

	// StatusApproved means the quote was approved without a driver; the
	// shipment sits in the open-job pool until a driver claims it.
	StatusApproved Status = "approved"

	// StatusAssigned means a driver (and vehicle) have been attached.
	StatusAssigned Status = "assigned"

	// StatusPickedUp means the assigned driver collected the package.
	// Entering this state triggers invoice generation.
	StatusPickedUp Status = "picked_up"

	// StatusInTransit means the package is on its way to the destination.
	StatusInTransit Status = "in_transit"

	// StatusDelivered is a terminal state: the package reached its destination.
	StatusDelivered Status = "delivered"

	// StatusCancelled is a terminal state reachable from any non-terminal state.
	StatusCancelled Status = "cancelled"
)

// ErrInvalidTransition is the unwrap target for InvalidTransitionError.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError names the rejected (current, requested) status pair.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition: cannot transition from %q to %q", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// transitions is the closed allowed-next table. cancelled is handled
// separately via IsTerminal so the table stays a pure forward path.
var transitions = map[Status][]Status{
	StatusPending:   {StatusQuoted},
	StatusQuoted:    {StatusApproved, StatusAssigned},
	StatusApproved:  {StatusAssigned},
	StatusAssigned:  {StatusPickedUp},
	StatusPickedUp:  {StatusInTransit},
	StatusInTransit: {StatusDelivered},
}

// validStatuses enumerates every persistable status value.
var validStatuses = map[Status]struct{}{
	StatusPending:   {},
	StatusQuoted:    {},
	StatusApproved:  {},
	StatusAssigned:  {},
	StatusPickedUp:  {},
	StatusInTransit: {},
	StatusDelivered: {},
	StatusCancelled: {},
}

// Validate checks that the status is one of the persistable values.
// Values from external sources (database rows, API payloads) must be
// validated before use.
func (s Status) Validate() error {
	if _, ok := validStatuses[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%q is not a valid status", string(s)),
		)
	}
	return nil
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo reports whether the allowed-next table permits moving from
// s to target. Cancellation is permitted from any non-terminal state.
func (s Status) CanTransitionTo(target Status) bool {
	if target == StatusCancelled {
		return !s.IsTerminal()
	}
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Transition returns target if the move from s is allowed, or an
// InvalidTransitionError naming the offending pair.
func (s Status) Transition(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return "", err
	}
	if !s.CanTransitionTo(target) {
		return "", &InvalidTransitionError{From: s, To: target}
	}
	return target, nil
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// RequiresDriver reports whether a shipment in this status must have a driver
// attached. The converse also holds: statuses outside this set must not have one.
func (s Status) RequiresDriver() bool {
	switch s {
	case StatusAssigned, StatusPickedUp, StatusInTransit, StatusDelivered:
		return true
	default:
		return false
	}
}

// IsActiveJob reports whether a shipment in this status counts against the
// driver's one-active-job limit.
func (s Status) IsActiveJob() bool {
	return s == StatusAssigned || s == StatusPickedUp
}

// AllStatuses returns every persistable status value.
func AllStatuses() []Status {
	return []Status{
		StatusPending,
		StatusQuoted,
		StatusApproved,
		StatusAssigned,
		StatusPickedUp,
		StatusInTransit,
		StatusDelivered,
		StatusCancelled,
	}
}
