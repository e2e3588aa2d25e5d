// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence; chat side effects run after the
// primary transaction commits and are never part of it.
package commands

import (
	"context"

	"parcelmatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// OfferRepoFactory provides access to the offer repository within a transaction.
	OfferRepoFactory interface {
		OfferRepository() ports.OfferRepository
	}

	// TransactionRepoFactory provides access to the ledger repository within a transaction.
	TransactionRepoFactory interface {
		TransactionRepository() ports.TransactionRepository
	}

	// PaymentMethodRepoFactory provides access to the payment-method vault within a transaction.
	PaymentMethodRepoFactory interface {
		PaymentMethodRepository() ports.PaymentMethodRepository
	}

	// ShipmentUoW manages transactions for shipment-only operations:
	// creation, the coarse status path, and the handover gate.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// NegotiationUoW manages transactions across shipment and offer rows.
	// Used by the offer create/accept/reject operations.
	NegotiationUoW interface {
		TxManager
		ShipmentRepoFactory
		OfferRepoFactory
	}

	// NegotiationUoWFactory creates new negotiation unit of work instances.
	NegotiationUoWFactory interface {
		Create() NegotiationUoW
	}

	// LedgerUoW manages transactions across shipment and escrow ledger rows.
	// Used by the delivery gate and the release/refund operations.
	LedgerUoW interface {
		TxManager
		ShipmentRepoFactory
		TransactionRepoFactory
	}

	// LedgerUoWFactory creates new ledger unit of work instances.
	LedgerUoWFactory interface {
		Create() LedgerUoW
	}

	// HoldUoW extends LedgerUoW with payment-method resolution for the
	// hold-payment operation.
	HoldUoW interface {
		LedgerUoW
		PaymentMethodRepoFactory
	}

	// HoldUoWFactory creates new hold unit of work instances.
	HoldUoWFactory interface {
		Create() HoldUoW
	}
)
