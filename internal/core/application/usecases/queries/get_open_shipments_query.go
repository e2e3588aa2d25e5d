// Package queries contains read-only operations over the persistence layer.
// Query handlers bypass the aggregate repositories and read projection rows
// with raw SQL; they never mutate state.
package queries

import (
	"errors"

	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/pkg/guard"
)

var ErrGetOpenShipmentsQueryIsNotConstructed = errors.New(
	"GetOpenShipmentsQuery must be created via NewGetOpenShipmentsQuery constructor",
)

// GetOpenShipmentsQuery retrieves the board of shipments open for offers.
type GetOpenShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOpenShipmentsQuery creates a query for the open-shipment board.
// This is a parameterless query.
func NewGetOpenShipmentsQuery() GetOpenShipmentsQuery {
	return GetOpenShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOpenShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenShipmentsQueryIsNotConstructed)
}

// GetOpenShipmentsQueryResponse is one row of the open-shipment board:
// the facts a courier needs to decide whether to offer.
type GetOpenShipmentsQueryResponse struct {
	ID            kernel.UUID
	SenderID      kernel.UUID
	Origin        string
	Destination   string
	WeightGrams   int
	Content       string
	Price         kernel.Money
	PendingOffers int
}
