package transfer

import (
	"fmt"

	"inventory/internal/pkg/errs"
)

// Status represents the lifecycle state of a transfer.
//
// State transitions:
//
//	InTransit ──receive──> Received (terminal)
//
// Transfers are created directly in InTransit. Pending and Cancelled exist in
// the enumeration for data compatibility but no workflow currently produces
// them; a unit may have at most one transfer in {Pending, InTransit} at a time.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending marks a transfer that was requested but not yet dispatched.
	StatusPending

	// StatusInTransit marks a transfer whose unit is on the road.
	StatusInTransit

	// StatusReceived marks a completed transfer. Terminal.
	StatusReceived

	// StatusCancelled marks an aborted transfer. Terminal.
	StatusCancelled
)

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "PENDING",
		StatusInTransit: "IN_TRANSIT",
		StatusReceived:  "RECEIVED",
		StatusCancelled: "CANCELLED",
	}
}

// StatusFromString parses a persisted transfer status string.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"transfer status",
		fmt.Errorf("%q is not a valid transfer status", s),
	)
}

// Validate checks if the Status value is one of the defined transfer states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"transfer status",
			fmt.Errorf("%d is not a valid transfer status", s),
		)
	}
	return nil
}

// String returns the persisted status code, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getValidStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsActive reports whether the transfer still blocks new transfers for the
// same unit.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusInTransit
}

// Receive transitions the status to Received.
//
// Valid transitions:
//   - InTransit -> Received
//
// Returns a state-conflict error naming the current status for any other state.
func (s Status) Receive() (Status, error) {
	if s != StatusInTransit {
		return 0, errs.NewStateConflictError("transfer", s.String(), "receive")
	}
	return StatusReceived, nil
}
