package outboxrepo

import (
	"context"
	"time"

	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/core/ports"

	"gorm.io/gorm"
)

// GormConversationOutboxRepository implements ports.ConversationOutboxRepository
// using GORM. It is not bound to the unit of work: outbox writes are
// best-effort and never join the primary transaction.
type GormConversationOutboxRepository struct {
	db *gorm.DB
}

// NewGormConversationOutboxRepository creates a new GORM outbox repository.
func NewGormConversationOutboxRepository(db *gorm.DB) *GormConversationOutboxRepository {
	return &GormConversationOutboxRepository{db: db}
}

// Enqueue parks an event for redelivery.
func (r *GormConversationOutboxRepository) Enqueue(ctx context.Context, event ports.ConversationEvent) error {
	dto := fromEvent(event)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetPending retrieves up to limit undelivered events, oldest first.
func (r *GormConversationOutboxRepository) GetPending(
	ctx context.Context,
	limit int,
) ([]ports.ConversationEvent, error) {
	var dtos []ConversationEventDTO
	err := r.db.WithContext(ctx).
		Where("delivered_at IS NULL").
		Order("created_at, id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	events := make([]ports.ConversationEvent, 0, len(dtos))
	for _, dto := range dtos {
		event, err := toEvent(dto)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}

// MarkDelivered stamps an event as successfully replayed.
func (r *GormConversationOutboxRepository) MarkDelivered(ctx context.Context, id kernel.UUID) error {
	now := time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&ConversationEventDTO{}).
		Where("id = ?", id.Bytes()).
		Update("delivered_at", &now)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// MarkAttempt increments an event's attempt counter after a failed replay.
func (r *GormConversationOutboxRepository) MarkAttempt(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&ConversationEventDTO{}).
		Where("id = ?", id.Bytes()).
		Update("attempts", gorm.Expr("attempts + 1"))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
