package escrow

import (
	"errors"
	"time"

	"parcelmatch/internal/core/domain/model/kernel"
)

// ErrTransactionIsNotConstructed is returned when a Transaction instance was
// not created through NewHold or RestoreTransaction.
var ErrTransactionIsNotConstructed = errors.New("Transaction must be created via NewHold constructor")

// Transaction is one escrow ledger entry. The amount and currency are copied
// from the shipment at hold time and never change afterwards; only the status
// and the settlement timestamp move.
type Transaction struct {
	id              kernel.UUID
	shipmentID      kernel.UUID
	amount          kernel.Money
	status          Status
	payerID         kernel.UUID
	payeeID         kernel.UUID
	paymentMethodID kernel.UUID
	createdAt       time.Time
	settledAt       *time.Time

	isConstructed bool
}

// NewHold creates a Held ledger entry for shipmentID: amount committed by
// payerID (the sender) toward payeeID (the courier), charged against
// paymentMethodID.
func NewHold(
	id kernel.UUID,
	shipmentID kernel.UUID,
	amount kernel.Money,
	payerID kernel.UUID,
	payeeID kernel.UUID,
	paymentMethodID kernel.UUID,
	createdAt time.Time,
) (*Transaction, error) {
	tx := &Transaction{
		status:        Held,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		tx.setID(id),
		tx.setShipment(shipmentID),
		tx.setAmount(amount),
		tx.setParties(payerID, payeeID),
		tx.setPaymentMethod(paymentMethodID),
	); err != nil {
		return nil, err
	}

	return tx, nil
}

// RestoreTransaction reconstructs a ledger entry from persistence,
// revalidating the status.
func RestoreTransaction(
	id kernel.UUID,
	shipmentID kernel.UUID,
	amount kernel.Money,
	status Status,
	payerID kernel.UUID,
	payeeID kernel.UUID,
	paymentMethodID kernel.UUID,
	createdAt time.Time,
	settledAt *time.Time,
) (*Transaction, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	tx := &Transaction{
		status:        status,
		createdAt:     createdAt,
		settledAt:     settledAt,
		isConstructed: true,
	}

	if err := errors.Join(
		tx.setID(id),
		tx.setShipment(shipmentID),
		tx.setAmount(amount),
		tx.setParties(payerID, payeeID),
		tx.setPaymentMethod(paymentMethodID),
	); err != nil {
		return nil, err
	}

	return tx, nil
}

// Validate ensures the Transaction instance was created through a constructor.
func (t *Transaction) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTransactionIsNotConstructed
	}

	return nil
}

// ID returns the ledger entry's unique identifier.
func (t *Transaction) ID() kernel.UUID {
	return t.id
}

// Shipment returns the shipment this entry escrows.
func (t *Transaction) Shipment() kernel.UUID {
	return t.shipmentID
}

// Amount returns the held amount.
func (t *Transaction) Amount() kernel.Money {
	return t.amount
}

// Status returns the settlement status.
func (t *Transaction) Status() Status {
	return t.status
}

// Payer returns the sender who committed the funds.
func (t *Transaction) Payer() kernel.UUID {
	return t.payerID
}

// Payee returns the courier the funds are committed toward.
func (t *Transaction) Payee() kernel.UUID {
	return t.payeeID
}

// PaymentMethod returns the externally-owned payment method the hold was
// charged against.
func (t *Transaction) PaymentMethod() kernel.UUID {
	return t.paymentMethodID
}

// CreatedAt returns when the hold was created.
func (t *Transaction) CreatedAt() time.Time {
	return t.createdAt
}

// SettledAt returns when the entry was released or refunded, or nil while held.
func (t *Transaction) SettledAt() *time.Time {
	return t.settledAt
}

// Release pays the held funds out. The payee is reaffirmed at release time so
// the ledger row always names the courier who actually carried the shipment.
func (t *Transaction) Release(payeeID kernel.UUID, now time.Time) error {
	if err := payeeID.Validate(); err != nil {
		return err
	}

	newStatus, err := t.status.Release()
	if err != nil {
		return err
	}

	t.status = newStatus
	t.payeeID = payeeID
	stamped := now
	t.settledAt = &stamped
	return nil
}

// Refund returns the held funds to the sender.
func (t *Transaction) Refund(now time.Time) error {
	newStatus, err := t.status.Refund()
	if err != nil {
		return err
	}

	t.status = newStatus
	stamped := now
	t.settledAt = &stamped
	return nil
}

func (t *Transaction) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Transaction) setShipment(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	t.shipmentID = shipmentID
	return nil
}

func (t *Transaction) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	t.amount = amount
	return nil
}

func (t *Transaction) setParties(payerID, payeeID kernel.UUID) error {
	if err := payerID.Validate(); err != nil {
		return err
	}
	if err := payeeID.Validate(); err != nil {
		return err
	}
	t.payerID = payerID
	t.payeeID = payeeID
	return nil
}

func (t *Transaction) setPaymentMethod(paymentMethodID kernel.UUID) error {
	if err := paymentMethodID.Validate(); err != nil {
		return err
	}
	t.paymentMethodID = paymentMethodID
	return nil
}
