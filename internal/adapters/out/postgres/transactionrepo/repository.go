package transactionrepo

import (
	"context"
	"errors"

	"parcelmatch/internal/core/domain/model/escrow"
	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// HeldIndexDDL creates the partial unique index enforcing at most one Held
// entry per shipment. AutoMigrate cannot express partial indexes, so the
// composition root applies it after migration.
const HeldIndexDDL = `
	CREATE UNIQUE INDEX IF NOT EXISTS idx_transactions_one_hold_per_shipment
	ON transactions (shipment_id) WHERE status = 1
`

// GormTransactionRepository implements ports.TransactionRepository using GORM.
type GormTransactionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTransactionRepository creates a new GORM ledger repository.
func NewGormTransactionRepository(db *gorm.DB, tracker aggregateTracker) *GormTransactionRepository {
	return &GormTransactionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new ledger entry to the database. A concurrent second hold on
// the same shipment trips the partial unique index and surfaces as an
// errs.ConflictError.
func (r *GormTransactionRepository) Add(ctx context.Context, entity *escrow.Transaction) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return errs.NewConflictErrorWithCause("shipment already has a held payment", err)
		}
		return err
	}

	r.tracker.TrackAggregate(entity.ID(), entity)
	return nil
}

// Update saves an existing ledger entry to the database.
func (r *GormTransactionRepository) Update(ctx context.Context, entity *escrow.Transaction) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	result := r.db.WithContext(ctx).
		Model(&TransactionDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(entity.ID(), entity)
	return nil
}

// GetHeldByShipment retrieves the shipment's currently held entry.
func (r *GormTransactionRepository) GetHeldByShipment(
	ctx context.Context,
	shipmentID kernel.UUID,
) (*escrow.Transaction, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dto TransactionDTO
	err := r.db.WithContext(ctx).
		First(&dto, "shipment_id = ? AND status = ?", shipmentID.Bytes(), escrow.Held).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("transaction", shipmentID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByShipment retrieves the full ledger history of a shipment, oldest first.
func (r *GormTransactionRepository) GetAllByShipment(
	ctx context.Context,
	shipmentID kernel.UUID,
) ([]*escrow.Transaction, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TransactionDTO
	err := r.db.WithContext(ctx).
		Order("created_at, id").
		Find(&dtos, "shipment_id = ?", shipmentID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*escrow.Transaction, 0, len(dtos))
	for _, dto := range dtos {
		tx, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, tx)
	}

	return entries, nil
}
