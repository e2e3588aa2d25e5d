// Package paymentmethodrepo reads the payment-method vault rows the engine
// needs for hold resolution. The vault itself is owned by another service;
// this repository never writes.
package paymentmethodrepo

import (
	"context"
	"errors"

	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/core/ports"
	"parcelmatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentMethodDTO represents the replicated payment-method row.
type PaymentMethodDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index"`
	IsDefault bool
}

// TableName specifies the database table name for payment methods.
func (PaymentMethodDTO) TableName() string {
	return "payment_methods"
}

// GormPaymentMethodRepository implements ports.PaymentMethodRepository using GORM.
type GormPaymentMethodRepository struct {
	db *gorm.DB
}

// NewGormPaymentMethodRepository creates a new GORM payment-method repository.
func NewGormPaymentMethodRepository(db *gorm.DB) *GormPaymentMethodRepository {
	return &GormPaymentMethodRepository{db: db}
}

// Get retrieves a payment method by ID.
func (r *GormPaymentMethodRepository) Get(ctx context.Context, id kernel.UUID) (*ports.PaymentMethod, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PaymentMethodDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("paymentMethod", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetDefaultForUser retrieves the user's payment method marked default.
func (r *GormPaymentMethodRepository) GetDefaultForUser(
	ctx context.Context,
	userID kernel.UUID,
) (*ports.PaymentMethod, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto PaymentMethodDTO
	err := r.db.WithContext(ctx).
		First(&dto, "user_id = ? AND is_default", userID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("paymentMethod", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func toDomain(dto PaymentMethodDTO) (*ports.PaymentMethod, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return &ports.PaymentMethod{
		ID:        id,
		UserID:    userID,
		IsDefault: dto.IsDefault,
	}, nil
}
