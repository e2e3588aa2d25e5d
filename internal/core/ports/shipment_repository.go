// Package ports defines the contracts between the workflow engine's core and
// its adapters: repositories, the unit of work, and the conversation gateway.
package ports

import (
	"context"

	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier.
	// Returns an errs.ObjectNotFoundError when no such shipment exists.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)
}
