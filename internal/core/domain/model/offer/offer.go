package offer

import (
	"errors"
	"time"

	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/pkg/errs"
)

// ErrOfferIsNotConstructed is returned when an Offer instance was not created
// through NewOffer or RestoreOffer.
var ErrOfferIsNotConstructed = errors.New("Offer must be created via NewOffer constructor")

// Offer is a courier's bid to carry a shipment, together with the message the
// courier posted into the conversation. Offers belong to exactly one
// (shipment, courier) pair.
type Offer struct {
	id         kernel.UUID
	shipmentID kernel.UUID
	courierID  kernel.UUID
	message    string
	status     Status
	createdAt  time.Time

	isConstructed bool
}

// NewOffer creates a Pending offer from courierID on shipmentID.
// The message must be non-empty; it becomes the offer's chat message.
func NewOffer(
	id kernel.UUID,
	shipmentID kernel.UUID,
	courierID kernel.UUID,
	message string,
	createdAt time.Time,
) (*Offer, error) {
	o := &Offer{
		status:        Pending,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setShipment(shipmentID),
		o.setCourier(courierID),
		o.setMessage(message),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOffer reconstructs an offer from persistence, revalidating the status.
func RestoreOffer(
	id kernel.UUID,
	shipmentID kernel.UUID,
	courierID kernel.UUID,
	message string,
	status Status,
	createdAt time.Time,
) (*Offer, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o := &Offer{
		status:        status,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setShipment(shipmentID),
		o.setCourier(courierID),
		o.setMessage(message),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Offer instance was created through a constructor.
func (o *Offer) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOfferIsNotConstructed
	}

	return nil
}

// IsEqual compares two offers by their unique identifiers.
func (o *Offer) IsEqual(other *Offer) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the offer's unique identifier.
func (o *Offer) ID() kernel.UUID {
	return o.id
}

// Shipment returns the shipment the offer bids on.
func (o *Offer) Shipment() kernel.UUID {
	return o.shipmentID
}

// Courier returns the bidding courier's ID.
func (o *Offer) Courier() kernel.UUID {
	return o.courierID
}

// Message returns the courier's offer message.
func (o *Offer) Message() string {
	return o.message
}

// Status returns the current negotiation status.
func (o *Offer) Status() Status {
	return o.status
}

// CreatedAt returns when the offer was placed.
func (o *Offer) CreatedAt() time.Time {
	return o.createdAt
}

// Accept marks the offer as the shipment's winning bid.
// Only a Pending offer can be accepted.
func (o *Offer) Accept() error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Reject declines the offer. Only a Pending offer can be rejected; rejecting
// an already-rejected sibling during acceptance is skipped by the caller.
func (o *Offer) Reject() error {
	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Offer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Offer) setShipment(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	o.shipmentID = shipmentID
	return nil
}

func (o *Offer) setCourier(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	o.courierID = courierID
	return nil
}

func (o *Offer) setMessage(message string) error {
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}
	o.message = message
	return nil
}
