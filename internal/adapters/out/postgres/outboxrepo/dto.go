// Package outboxrepo persists conversation events whose immediate gateway
// delivery failed. The redelivery job drains this table.
package outboxrepo

import (
	"time"

	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/core/ports"

	"github.com/google/uuid"
)

// ConversationEventDTO represents a parked conversation side effect.
type ConversationEventDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	EventType   string
	ShipmentID  uuid.UUID  `gorm:"type:uuid;index"`
	UserA       uuid.UUID  `gorm:"type:uuid"`
	UserB       uuid.UUID  `gorm:"type:uuid"`
	SenderID    *uuid.UUID `gorm:"type:uuid"`
	Kind        string
	Content     string
	Attempts    int
	CreatedAt   time.Time
	DeliveredAt *time.Time `gorm:"index"`
}

// TableName specifies the database table name for parked conversation events.
func (ConversationEventDTO) TableName() string {
	return "conversation_outbox"
}

func fromEvent(event ports.ConversationEvent) ConversationEventDTO {
	var senderID *uuid.UUID
	if event.SenderID != nil {
		raw := event.SenderID.Bytes()
		senderID = &raw
	}

	return ConversationEventDTO{
		ID:          event.ID.Bytes(),
		EventType:   event.Type,
		ShipmentID:  event.ShipmentID.Bytes(),
		UserA:       event.UserA.Bytes(),
		UserB:       event.UserB.Bytes(),
		SenderID:    senderID,
		Kind:        event.Kind,
		Content:     event.Content,
		Attempts:    event.Attempts,
		CreatedAt:   event.CreatedAt,
		DeliveredAt: event.DeliveredAt,
	}
}

func toEvent(dto ConversationEventDTO) (ports.ConversationEvent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.ConversationEvent{}, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return ports.ConversationEvent{}, err
	}

	userA, err := kernel.UUIDFromBytes(dto.UserA[:])
	if err != nil {
		return ports.ConversationEvent{}, err
	}

	userB, err := kernel.UUIDFromBytes(dto.UserB[:])
	if err != nil {
		return ports.ConversationEvent{}, err
	}

	var senderID *kernel.UUID
	if dto.SenderID != nil {
		sID, senderErr := kernel.UUIDFromBytes((*dto.SenderID)[:])
		if senderErr != nil {
			return ports.ConversationEvent{}, senderErr
		}

		senderID = &sID
	}

	return ports.ConversationEvent{
		ID:          id,
		Type:        dto.EventType,
		ShipmentID:  shipmentID,
		UserA:       userA,
		UserB:       userB,
		SenderID:    senderID,
		Kind:        dto.Kind,
		Content:     dto.Content,
		Attempts:    dto.Attempts,
		CreatedAt:   dto.CreatedAt,
		DeliveredAt: dto.DeliveredAt,
	}, nil
}
