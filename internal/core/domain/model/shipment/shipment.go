package shipment

import (
	"errors"
	"fmt"
	"time"

	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/pkg/errs"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through NewShipment or RestoreShipment.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

// Shipment is the aggregate root of the matching workflow. It carries the
// immutable route and package facts, the mutable lifecycle status, the
// optional courier assignment, and the two dual-confirmation gates.
//
// Invariants maintained by the aggregate:
//   - A courier is assigned exactly when status is Matched, HandedOver,
//     OnWay, or Delivered.
//   - Confirmation flags are monotonic within their phase: once a party
//     confirmed, re-confirming is a no-op, never an error.
//   - Reopening (refund path) clears the courier and resets both gates.
type Shipment struct {
	id        kernel.UUID
	senderID  kernel.UUID
	courierID *kernel.UUID

	// route and package facts, immutable after creation
	origin      string
	destination string
	weightGrams int
	content     string
	price       kernel.Money

	status Status

	senderConfirmedHandover  bool
	courierConfirmedHandover bool
	senderConfirmedDelivery  bool
	courierConfirmedDelivery bool

	handoverConfirmedAt *time.Time
	deliveryConfirmedAt *time.Time

	isConstructed bool
}

// NewShipment creates an Open shipment owned by senderID.
// Origin and destination must be non-empty, weight must be positive, and the
// price must be a constructed Money value.
func NewShipment(
	id kernel.UUID,
	senderID kernel.UUID,
	origin string,
	destination string,
	weightGrams int,
	content string,
	price kernel.Money,
) (*Shipment, error) {
	s := &Shipment{
		status:        Open,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setSender(senderID),
		s.setRoute(origin, destination),
		s.setPackage(weightGrams, content),
		s.setPrice(price),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a shipment from persistence. It revalidates
// the status value and the status/courier consistency invariant so corrupted
// rows never become live aggregates.
func RestoreShipment(
	id kernel.UUID,
	senderID kernel.UUID,
	courierID *kernel.UUID,
	origin string,
	destination string,
	weightGrams int,
	content string,
	price kernel.Money,
	status Status,
	senderConfirmedHandover bool,
	courierConfirmedHandover bool,
	senderConfirmedDelivery bool,
	courierConfirmedDelivery bool,
	handoverConfirmedAt *time.Time,
	deliveryConfirmedAt *time.Time,
) (*Shipment, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return nil, err
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
	}

	s := &Shipment{
		status:                   status,
		courierID:                courierID,
		senderConfirmedHandover:  senderConfirmedHandover,
		courierConfirmedHandover: courierConfirmedHandover,
		senderConfirmedDelivery:  senderConfirmedDelivery,
		courierConfirmedDelivery: courierConfirmedDelivery,
		handoverConfirmedAt:      handoverConfirmedAt,
		deliveryConfirmedAt:      deliveryConfirmedAt,
		isConstructed:            true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setSender(senderID),
		s.setRoute(origin, destination),
		s.setPackage(weightGrams, content),
		s.setPrice(price),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the Shipment instance was created through a constructor.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}

	return nil
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// Sender returns the owning sender's ID.
func (s *Shipment) Sender() kernel.UUID {
	return s.senderID
}

// Courier returns the assigned courier's ID, or nil when unassigned.
func (s *Shipment) Courier() *kernel.UUID {
	return s.courierID
}

// Origin returns the pickup city.
func (s *Shipment) Origin() string {
	return s.origin
}

// Destination returns the delivery city.
func (s *Shipment) Destination() string {
	return s.destination
}

// WeightGrams returns the package weight in grams.
func (s *Shipment) WeightGrams() int {
	return s.weightGrams
}

// Content returns the package content description.
func (s *Shipment) Content() string {
	return s.content
}

// Price returns the agreed carriage price.
func (s *Shipment) Price() kernel.Money {
	return s.price
}

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status {
	return s.status
}

// SenderConfirmedHandover reports whether the sender confirmed the handover.
func (s *Shipment) SenderConfirmedHandover() bool {
	return s.senderConfirmedHandover
}

// CourierConfirmedHandover reports whether the courier confirmed the handover.
func (s *Shipment) CourierConfirmedHandover() bool {
	return s.courierConfirmedHandover
}

// SenderConfirmedDelivery reports whether the sender confirmed the delivery.
func (s *Shipment) SenderConfirmedDelivery() bool {
	return s.senderConfirmedDelivery
}

// CourierConfirmedDelivery reports whether the courier confirmed the delivery.
func (s *Shipment) CourierConfirmedDelivery() bool {
	return s.courierConfirmedDelivery
}

// HandoverConfirmedAt returns when both parties had confirmed the handover,
// or nil if the gate has not closed yet.
func (s *Shipment) HandoverConfirmedAt() *time.Time {
	return s.handoverConfirmedAt
}

// DeliveryConfirmedAt returns when both parties had confirmed the delivery,
// or nil if the gate has not closed yet.
func (s *Shipment) DeliveryConfirmedAt() *time.Time {
	return s.deliveryConfirmedAt
}

// IsSender reports whether actorID owns the shipment.
func (s *Shipment) IsSender(actorID kernel.UUID) bool {
	return s.senderID.IsEqual(actorID)
}

// IsCourier reports whether actorID is the assigned courier.
func (s *Shipment) IsCourier(actorID kernel.UUID) bool {
	return s.courierID != nil && s.courierID.IsEqual(actorID)
}

// IsParticipant reports whether actorID is the sender or the assigned courier.
func (s *Shipment) IsParticipant(actorID kernel.UUID) bool {
	return s.IsSender(actorID) || s.IsCourier(actorID)
}

// AssignCourier matches the shipment with a courier: sets the courier,
// moves the status to Matched, and opens a fresh pair of confirmation gates.
// Fails with an invalid-state error unless the shipment is Open.
func (s *Shipment) AssignCourier(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if courierID.IsEqual(s.senderID) {
		return errs.NewForbiddenError("sender cannot carry their own shipment")
	}

	newStatus, err := s.status.Match()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.courierID = &courierID
	s.resetConfirmations()
	return nil
}

// Cancel withdraws the shipment. Only the sender may cancel, and only while
// the shipment is still Open.
func (s *Shipment) Cancel(actorID kernel.UUID) error {
	if !s.IsSender(actorID) {
		return errs.NewForbiddenError("only the sender may cancel a shipment")
	}

	newStatus, err := s.status.Cancel()
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

// MarkOnWay lets the assigned courier set the shipment in transit directly,
// bypassing the handover gate. This is the coarse-grained status path; no
// status-pair validation is applied beyond the courier invariant.
func (s *Shipment) MarkOnWay(actorID kernel.UUID) error {
	if !s.IsCourier(actorID) {
		return errs.NewForbiddenError("only the assigned courier may mark the shipment on its way")
	}

	s.status = OnWay
	return nil
}

// MarkDelivered lets the assigned courier mark the shipment delivered
// directly, bypassing the delivery gate and the escrow release. This is the
// coarse-grained status path.
func (s *Shipment) MarkDelivered(actorID kernel.UUID) error {
	if !s.IsCourier(actorID) {
		return errs.NewForbiddenError("only the assigned courier may mark the shipment delivered")
	}

	s.status = Delivered
	return nil
}

// SettleDelivered marks the shipment delivered on the payment-release path,
// where the payer's release stands in for the delivery gate. Requires a
// courier assignment so the courier invariant holds.
func (s *Shipment) SettleDelivered() error {
	if s.courierID == nil {
		return errs.NewForbiddenError("shipment has no courier assigned")
	}

	s.status = Delivered
	return nil
}

// Reopen returns a matched shipment to the Open state after a refund:
// the courier is unassigned and both confirmation gates reset, so a fresh
// offer/hold cycle can start.
func (s *Shipment) Reopen() error {
	newStatus, err := s.status.Reopen()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.courierID = nil
	s.resetConfirmations()
	return nil
}

// ConfirmHandover records the acting party's handover confirmation.
// Re-confirming is a no-op, not an error. When both parties have confirmed,
// the status advances to OnWay and the handover timestamp is stamped with now.
// Returns whether both confirmations are in after this call.
func (s *Shipment) ConfirmHandover(actorID kernel.UUID, now time.Time) (bool, error) {
	if !s.IsParticipant(actorID) {
		return false, errs.NewForbiddenError("actor is not a party to this shipment")
	}
	if s.courierID == nil {
		return false, errs.NewForbiddenError("shipment has no courier assigned")
	}
	if !s.status.CanConfirmHandover() {
		return false, errs.NewForbiddenErrorWithCause(
			"handover cannot be confirmed",
			fmt.Errorf("shipment status is %s", s.status),
		)
	}

	if s.IsSender(actorID) {
		s.senderConfirmedHandover = true
	} else {
		s.courierConfirmedHandover = true
	}

	if !(s.senderConfirmedHandover && s.courierConfirmedHandover) {
		return false, nil
	}

	if s.handoverConfirmedAt == nil {
		newStatus, err := s.status.StartTransit()
		if err != nil {
			return false, err
		}
		s.status = newStatus
		stamped := now
		s.handoverConfirmedAt = &stamped
	}

	return true, nil
}

// ConfirmDelivery records the acting party's delivery confirmation.
// Stricter than the handover gate: the shipment must be exactly OnWay.
// When both parties have confirmed, the status advances to Delivered and the
// delivery timestamp is stamped with now. Returns whether both confirmations
// are in after this call. Releasing the escrow hold is the caller's duty and
// must share the same store transaction.
func (s *Shipment) ConfirmDelivery(actorID kernel.UUID, now time.Time) (bool, error) {
	if !s.IsParticipant(actorID) {
		return false, errs.NewForbiddenError("actor is not a party to this shipment")
	}
	if s.courierID == nil {
		return false, errs.NewForbiddenError("shipment has no courier assigned")
	}
	if s.status != OnWay {
		return false, errs.NewInvalidStateErrorWithCause(
			"delivery cannot be confirmed",
			fmt.Errorf("shipment status is %s", s.status),
		)
	}

	if s.IsSender(actorID) {
		s.senderConfirmedDelivery = true
	} else {
		s.courierConfirmedDelivery = true
	}

	if !(s.senderConfirmedDelivery && s.courierConfirmedDelivery) {
		return false, nil
	}

	if s.deliveryConfirmedAt == nil {
		newStatus, err := s.status.Deliver()
		if err != nil {
			return false, err
		}
		s.status = newStatus
		stamped := now
		s.deliveryConfirmedAt = &stamped
	}

	return true, nil
}

func (s *Shipment) resetConfirmations() {
	s.senderConfirmedHandover = false
	s.courierConfirmedHandover = false
	s.senderConfirmedDelivery = false
	s.courierConfirmedDelivery = false
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setSender(senderID kernel.UUID) error {
	if err := senderID.Validate(); err != nil {
		return err
	}
	s.senderID = senderID
	return nil
}

func (s *Shipment) setRoute(origin, destination string) error {
	if origin == "" {
		return errs.NewValueIsRequiredError("origin")
	}
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	s.origin = origin
	s.destination = destination
	return nil
}

func (s *Shipment) setPackage(weightGrams int, content string) error {
	if weightGrams <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"weight", fmt.Errorf("%d is not greater than 0", weightGrams))
	}
	if content == "" {
		return errs.NewValueIsRequiredError("content")
	}
	s.weightGrams = weightGrams
	s.content = content
	return nil
}

func (s *Shipment) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	s.price = price
	return nil
}
