package offer

import (
	"fmt"

	"parcelmatch/internal/pkg/errs"
)

// Status represents the negotiation state of an offer.
//
// State transitions:
//
//	Pending ──┬──> Accepted
//	          └──> Rejected
//
// Both outcomes are final; an offer decided either way never returns to
// Pending, and re-offering after rejection is disallowed by design.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status of a freshly placed offer.
	Pending

	// Accepted indicates the sender chose this offer; at most one offer per
	// shipment ever reaches this status.
	Accepted

	// Rejected indicates the sender declined the offer, or a sibling offer
	// was accepted.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Pending:  "Pending",
		Accepted: "Accepted",
		Rejected: "Rejected",
	}
}

// Validate checks that the Status value is one of the declared statuses.
func (s Status) Validate() error {
	if s != Pending && s != Accepted && s != Rejected {
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

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - Pending -> Accepted
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateErrorWithCause(
			"offer is not pending",
			fmt.Errorf("%s is not a valid status to accept", s.String()),
		)
	}

	return Accepted, nil
}

// Reject transitions the status to Rejected.
//
// Valid transitions:
//   - Pending -> Rejected
func (s Status) Reject() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateErrorWithCause(
			"offer is not pending",
			fmt.Errorf("%s is not a valid status to reject", s.String()),
		)
	}

	return Rejected, nil
}
