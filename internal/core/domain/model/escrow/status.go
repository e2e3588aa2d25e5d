package escrow

import (
	"fmt"

	"parcelmatch/internal/pkg/errs"
)

// Status represents the settlement state of a ledger entry.
//
// State transitions:
//
//	Held ──┬──> Released
//	       └──> Refunded
//
// Transitions are monotonic within a hold cycle and never reverse.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Held marks funds committed by the sender but not yet paid out.
	Held

	// Released marks funds paid out to the courier. Terminal.
	Released

	// Refunded marks funds returned to the sender. Terminal.
	Refunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Held:     "Held",
		Released: "Released",
		Refunded: "Refunded",
	}
}

// Validate checks that the Status value is one of the declared statuses.
func (s Status) Validate() error {
	if s != Held && s != Released && s != Refunded {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsSettled reports whether the entry reached a terminal status.
func (s Status) IsSettled() bool {
	return s == Released || s == Refunded
}

// Release transitions the status to Released.
//
// Valid transitions:
//   - Held -> Released
func (s Status) Release() (Status, error) {
	if s != Held {
		return 0, errs.NewInvalidStateErrorWithCause(
			"transaction is not held",
			fmt.Errorf("%s is not a valid status to release", s.String()),
		)
	}

	return Released, nil
}

// Refund transitions the status to Refunded.
//
// Valid transitions:
//   - Held -> Refunded
func (s Status) Refund() (Status, error) {
	if s != Held {
		return 0, errs.NewInvalidStateErrorWithCause(
			"transaction is not held",
			fmt.Errorf("%s is not a valid status to refund", s.String()),
		)
	}

	return Refunded, nil
}
