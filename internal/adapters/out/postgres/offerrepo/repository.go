package offerrepo

import (
	"context"
	"errors"

	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/core/domain/model/offer"
	"parcelmatch/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// AcceptedIndexDDL creates the partial unique index enforcing at most one
// Accepted offer per shipment. AutoMigrate cannot express partial indexes,
// so the composition root applies it after migration.
const AcceptedIndexDDL = `
	CREATE UNIQUE INDEX IF NOT EXISTS idx_offers_one_accepted_per_shipment
	ON offers (shipment_id) WHERE status = 2
`

// GormOfferRepository implements ports.OfferRepository using GORM.
type GormOfferRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOfferRepository creates a new GORM offer repository.
func NewGormOfferRepository(db *gorm.DB, tracker aggregateTracker) *GormOfferRepository {
	return &GormOfferRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new offer to the database. A second offer from the same courier
// on the same shipment trips the composite unique index and surfaces as an
// errs.ConflictError.
func (r *GormOfferRepository) Add(ctx context.Context, entity *offer.Offer) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return errs.NewConflictErrorWithCause("courier already has an offer on this shipment", err)
		}
		return err
	}

	r.tracker.TrackAggregate(entity.ID(), entity)
	return nil
}

// Update saves an existing offer to the database. Flipping a second offer to
// Accepted on a shipment that already has one trips the partial unique index
// and surfaces as an errs.ConflictError.
func (r *GormOfferRepository) Update(ctx context.Context, entity *offer.Offer) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	result := r.db.WithContext(ctx).
		Model(&OfferDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		var pqErr *pq.Error
		if errors.As(result.Error, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return errs.NewConflictErrorWithCause("shipment already has an accepted offer", result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(entity.ID(), entity)
	return nil
}

// Get retrieves an offer by ID.
func (r *GormOfferRepository) Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OfferDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("offer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByShipmentAndCourier retrieves the courier's offer on a shipment.
func (r *GormOfferRepository) GetByShipmentAndCourier(
	ctx context.Context,
	shipmentID, courierID kernel.UUID,
) (*offer.Offer, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	var dto OfferDTO
	err := r.db.WithContext(ctx).
		First(&dto, "shipment_id = ? AND courier_id = ?", shipmentID.Bytes(), courierID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("offer", courierID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByShipment retrieves every offer placed on a shipment, oldest first.
func (r *GormOfferRepository) GetAllByShipment(
	ctx context.Context,
	shipmentID kernel.UUID,
) ([]*offer.Offer, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OfferDTO
	err := r.db.WithContext(ctx).
		Order("created_at, id").
		Find(&dtos, "shipment_id = ?", shipmentID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	offers := make([]*offer.Offer, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}

	return offers, nil
}
