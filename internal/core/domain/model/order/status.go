package order

import (
	"fmt"

	"smallsquare/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a small state machine whose transitions are enforced by two
// distinct guard sets: the delivery path (marking orders ready/delivered) and
// the cancellation path (withdrawing a not-yet-started order).
//
// Delivery-path rules:
//
//	Delivered may only be entered from Ready.
//	Once Delivered, the only legal transition is back to Ready.
//	Every other transition (including Pending <-> InPreparation) is applied as requested.
//
// Cancellation-path rules:
//
//	Only a Pending order may be cancelled.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and transport.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status have not been started by the kitchen yet.
	Pending

	// InPreparation indicates the kitchen is working on the order.
	InPreparation

	// Ready indicates the order is prepared and awaiting delivery.
	Ready

	// Delivered indicates the order was handed over to the client.
	// From here the only legal transition is back to Ready.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "Unknown",
		Pending:       "Pending",
		InPreparation: "InPreparation",
		Ready:         "Ready",
		Delivered:     "Delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:       "Pending",
		InPreparation: "InPreparation",
		Ready:         "Ready",
		Delivered:     "Delivered",
	}
}

// ParseStatus converts a status name into a Status value.
// Parsing is total: any name outside the four valid statuses fails here,
// at the boundary, so transition logic never sees an unrecognized status.
//
// Example:
//
//	status, err := order.ParseStatus("Ready")
//	if err != nil {
//	    // "Ready" was not a recognized status name
//	}
func ParseStatus(name string) (Status, error) {
	for status, statusName := range getValidStatusStrings() {
		if statusName == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status name", name),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, InPreparation, Ready, Delivered.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Deliver applies the delivery-path guard set and returns the status to set.
//
// Rules, checked in order:
//   - Delivered may only be requested when the current status is Ready.
//   - Once Delivered, the only status that may be requested is Ready.
//   - Any other requested status is applied directly. Pending and InPreparation
//     move freely between each other on this path; that permissiveness is part
//     of the contract, not an oversight to harden away here.
//
// Returns:
//   - (requested, nil) on a legal transition
//   - (Unknown, error) when a guard rejects the transition
func (s Status) Deliver(requested Status) (Status, error) {
	if err := requested.Validate(); err != nil {
		return Unknown, err
	}

	if requested == Delivered && s != Ready {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("cannot mark as delivered before it is ready (current status is %s)", s),
		)
	}

	if s == Delivered && requested != Ready {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("a delivered order may only be moved back to %s", Ready),
		)
	}

	return requested, nil
}

// Cancel applies the cancellation-path guard set and returns the status to set.
//
// Only a Pending order may be cancelled; once the kitchen has started,
// the cancellation path rejects any change.
//
// Returns:
//   - (requested, nil) when the order is still Pending
//   - (Unknown, error) otherwise
func (s Status) Cancel(requested Status) (Status, error) {
	if err := requested.Validate(); err != nil {
		return Unknown, err
	}

	if s != Pending {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("order already in preparation, cannot be cancelled (current status is %s)", s),
		)
	}

	return requested, nil
}
