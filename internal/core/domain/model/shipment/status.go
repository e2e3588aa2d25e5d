package shipment

import (
	"fmt"

	"parcelmatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
//
// State transitions:
//
//	Open ──> Matched ──> OnWay ──> Delivered
//	  │         │
//	  │         └──> Open (refund reopens the shipment)
//	  └──> Cancelled
//
// HandedOver is declared for completeness but never persisted: the handover
// gate jumps straight from Matched to OnWay once both parties confirm.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Open is the initial status. Couriers may place offers and the sender
	// may hold payment while a shipment is open.
	Open

	// Matched indicates a courier has been assigned, either by offer
	// acceptance or by a direct payment hold.
	Matched

	// HandedOver is a transient label for the package-handover moment.
	// It is never observed as a persisted status.
	HandedOver

	// OnWay indicates both parties confirmed the handover and the package
	// is in transit.
	OnWay

	// Delivered indicates both parties confirmed delivery. Terminal.
	Delivered

	// Cancelled indicates the sender cancelled the shipment while it was
	// still open. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Open:       "Open",
		Matched:    "Matched",
		HandedOver: "HandedOver",
		OnWay:      "OnWay",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:       "Open",
		Matched:    "Matched",
		HandedOver: "HandedOver",
		OnWay:      "OnWay",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// Validate checks that the Status value is one of the declared statuses.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanConfirmHandover reports whether the handover gate accepts confirmations
// in this status.
func (s Status) CanConfirmHandover() bool {
	return s == Matched || s == HandedOver
}

// RequiresCourier reports whether a shipment in this status must have a
// courier assigned. The courier invariant is two-sided: statuses outside this
// set must have no courier.
func (s Status) RequiresCourier() bool {
	return s == Matched || s == HandedOver || s == OnWay || s == Delivered
}

// ValidateCanHaveCourier validates the consistency between shipment status and
// courier assignment: a courier must be assigned exactly in the matched-or-later
// statuses.
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && !s.RequiresCourier() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()),
		)
	}

	if !courier && s.RequiresCourier() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()),
		)
	}

	return nil
}

// Match transitions the status to Matched.
//
// Valid transitions:
//   - Open -> Matched (offer accepted or payment held)
func (s Status) Match() (Status, error) {
	if s != Open {
		return 0, errs.NewInvalidStateErrorWithCause(
			"shipment is not open",
			fmt.Errorf("%s is not a valid status to match", s.String()),
		)
	}

	return Matched, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Open -> Cancelled (sender withdraws the shipment)
func (s Status) Cancel() (Status, error) {
	if s != Open {
		return 0, errs.NewInvalidStateErrorWithCause(
			"shipment is not open",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}

// Reopen transitions the status back to Open after a refund.
//
// Valid transitions:
//   - Matched -> Open (held payment refunded, courier unassigned)
func (s Status) Reopen() (Status, error) {
	if s != Matched {
		return 0, errs.NewInvalidStateErrorWithCause(
			"shipment is not matched",
			fmt.Errorf("%s is not a valid status to reopen", s.String()),
		)
	}

	return Open, nil
}

// StartTransit transitions the status to OnWay once both handover
// confirmations are in.
//
// Valid transitions:
//   - Matched -> OnWay
//   - HandedOver -> OnWay
func (s Status) StartTransit() (Status, error) {
	if !s.CanConfirmHandover() {
		return 0, errs.NewInvalidStateErrorWithCause(
			"shipment handover is not confirmable",
			fmt.Errorf("%s is not a valid status to start transit", s.String()),
		)
	}

	return OnWay, nil
}

// Deliver transitions the status to Delivered once both delivery
// confirmations are in.
//
// Valid transitions:
//   - OnWay -> Delivered
func (s Status) Deliver() (Status, error) {
	if s != OnWay {
		return 0, errs.NewInvalidStateErrorWithCause(
			"shipment is not on its way",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}

	return Delivered, nil
}
