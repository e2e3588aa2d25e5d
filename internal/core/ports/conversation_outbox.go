package ports

import (
	"context"
	"time"

	"parcelmatch/internal/core/domain/model/kernel"
)

// Conversation event types held in the outbox.
const (
	ConversationEventMessage = "message"
	ConversationEventStatus  = "status"
)

// ConversationEvent is a chat side effect that failed its immediate delivery
// and was parked for redelivery. Events carry enough context to replay the
// gateway call from scratch: the participant pair resolves the conversation,
// and Content holds either the message body or the target status marker.
type ConversationEvent struct {
	ID          kernel.UUID
	Type        string
	ShipmentID  kernel.UUID
	UserA       kernel.UUID
	UserB       kernel.UUID
	SenderID    *kernel.UUID // message events only
	Kind        string       // message events only
	Content     string
	Attempts    int
	CreatedAt   time.Time
	DeliveredAt *time.Time
}

// ConversationOutboxRepository persists parked conversation events.
// Unlike the aggregate repositories it is not bound to the unit of work:
// outbox writes are themselves best-effort and never join the primary
// transaction.
type ConversationOutboxRepository interface {
	// Enqueue parks an event for redelivery.
	Enqueue(ctx context.Context, event ConversationEvent) error

	// GetPending retrieves up to limit undelivered events, oldest first.
	GetPending(ctx context.Context, limit int) ([]ConversationEvent, error)

	// MarkDelivered stamps an event as successfully replayed.
	MarkDelivered(ctx context.Context, id kernel.UUID) error

	// MarkAttempt increments an event's attempt counter after a failed replay.
	MarkAttempt(ctx context.Context, id kernel.UUID) error
}
