// Package transactionrepo provides data transfer objects and mapping
// functions for escrow ledger persistence. A partial unique index on
// shipment_id for Held rows is the store-level guarantee that a shipment
// carries at most one live hold; settled rows accumulate freely.
package transactionrepo

import (
	"time"

	"parcelmatch/internal/core/domain/model/escrow"
	"parcelmatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// TransactionDTO represents the database structure for persisting escrow
// ledger entries.
type TransactionDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID      uuid.UUID `gorm:"type:uuid;index"`
	Amount          int64
	Currency        string `gorm:"type:varchar(3)"`
	Status          int
	PayerID         uuid.UUID `gorm:"type:uuid"`
	PayeeID         uuid.UUID `gorm:"type:uuid"`
	PaymentMethodID uuid.UUID `gorm:"type:uuid"`
	CreatedAt       time.Time
	SettledAt       *time.Time
}

// TableName specifies the database table name for ledger entries.
func (TransactionDTO) TableName() string {
	return "transactions"
}

func fromDomain(entity *escrow.Transaction) TransactionDTO {
	return TransactionDTO{
		ID:              entity.ID().Bytes(),
		ShipmentID:      entity.Shipment().Bytes(),
		Amount:          entity.Amount().Amount(),
		Currency:        entity.Amount().Currency(),
		Status:          int(entity.Status()),
		PayerID:         entity.Payer().Bytes(),
		PayeeID:         entity.Payee().Bytes(),
		PaymentMethodID: entity.PaymentMethod().Bytes(),
		CreatedAt:       entity.CreatedAt(),
		SettledAt:       entity.SettledAt(),
	}
}

func toDomain(dto TransactionDTO) (*escrow.Transaction, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	payerID, err := kernel.UUIDFromBytes(dto.PayerID[:])
	if err != nil {
		return nil, err
	}

	payeeID, err := kernel.UUIDFromBytes(dto.PayeeID[:])
	if err != nil {
		return nil, err
	}

	paymentMethodID, err := kernel.UUIDFromBytes(dto.PaymentMethodID[:])
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount, dto.Currency)
	if err != nil {
		return nil, err
	}

	return escrow.RestoreTransaction(
		id,
		shipmentID,
		amount,
		escrow.Status(dto.Status),
		payerID,
		payeeID,
		paymentMethodID,
		dto.CreatedAt,
		dto.SettledAt,
	)
}
