package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary across the shipment,
// offer, and escrow ledger rows touched by one workflow step. Client code
// must explicitly manage the transaction lifecycle; every multi-row mutation
// in the engine commits atomically or not at all.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// ShipmentRepository returns a ShipmentRepository bound to the current transaction.
	ShipmentRepository() ShipmentRepository

	// OfferRepository returns an OfferRepository bound to the current transaction.
	OfferRepository() OfferRepository

	// TransactionRepository returns a TransactionRepository bound to the current transaction.
	TransactionRepository() TransactionRepository

	// PaymentMethodRepository returns a PaymentMethodRepository bound to the current transaction.
	PaymentMethodRepository() PaymentMethodRepository
}
