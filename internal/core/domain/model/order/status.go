package order

import (
	"fmt"

	"quickcart/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	pending ──accept──> accepted ──> in_progress ──> delivered
//	                       │              │
//	                       └──────────────┴──────> cancelled
//
// pending cannot be cancelled and delivered/cancelled are terminal.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status. The order waits for a rider.
	Pending

	// Accepted means a rider took the order.
	Accepted

	// InProgress means the rider is on the way.
	InProgress

	// Delivered is terminal.
	Delivered

	// Cancelled is terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Accepted:   "accepted",
		InProgress: "in_progress",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// getTransitions returns, per status, the statuses it may move to.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal statuses have no entry
	return map[Status][]Status{
		Pending:    {Accepted},
		Accepted:   {InProgress, Cancelled},
		InProgress: {Delivered, Cancelled},
	}
}

// ParseStatus converts the external value. Unknown values are a validation
// error, never a panic.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether next is in the transition table row of s.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Accept is the only way out of Pending.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewStateConflictErrorWithCause(
			"order is not pending",
			fmt.Errorf("%s orders cannot be accepted", s),
		)
	}
	return Accepted, nil
}

// Advance validates a rider driven move to next. Accepted is reachable only
// through Accept.
func (s Status) Advance(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if next == Accepted || !s.CanTransitionTo(next) {
		return Unknown, errs.NewStateConflictErrorWithCause(
			"status transition is not permitted",
			fmt.Errorf("%s cannot move to %s", s, next),
		)
	}
	return next, nil
}
