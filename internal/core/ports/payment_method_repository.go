package ports

import (
	"context"

	"parcelmatch/internal/core/domain/model/kernel"
)

// PaymentMethod is a read model of an externally-owned payment method record.
// The engine only reads ownership and the default marker; the payment-method
// vault itself lives outside this service.
type PaymentMethod struct {
	ID        kernel.UUID
	UserID    kernel.UUID
	IsDefault bool
}

// PaymentMethodRepository defines read-only access to the payment-method vault.
type PaymentMethodRepository interface {
	// Get retrieves a payment method by ID.
	// Returns an errs.ObjectNotFoundError when no such method exists.
	Get(ctx context.Context, id kernel.UUID) (*PaymentMethod, error)

	// GetDefaultForUser retrieves the user's payment method marked default.
	// Returns an errs.ObjectNotFoundError when the user has none.
	GetDefaultForUser(ctx context.Context, userID kernel.UUID) (*PaymentMethod, error)
}
