package commands

import (
	"context"
	"log/slog"
	"time"

	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/core/ports"
	"parcelmatch/internal/metrics"
)

// ConversationRelay delivers chat side effects after a primary transaction
// commits. Delivery is best-effort: a failed gateway call is logged, counted,
// and parked in the conversation outbox for the redelivery job. The primary
// mutation is never rolled back for a chat failure.
type ConversationRelay struct {
	gateway ports.ConversationGateway
	outbox  ports.ConversationOutboxRepository
	logger  *slog.Logger
}

// NewConversationRelay creates a relay over the chat gateway and outbox.
func NewConversationRelay(
	gateway ports.ConversationGateway,
	outbox ports.ConversationOutboxRepository,
	logger *slog.Logger,
) *ConversationRelay {
	return &ConversationRelay{
		gateway: gateway,
		outbox:  outbox,
		logger:  logger.With("component", "conversation_relay"),
	}
}

// PostMessage resolves the conversation for the shipment and participant pair
// and appends a message of the given kind into it.
func (r *ConversationRelay) PostMessage(
	ctx context.Context,
	shipmentID, userA, userB, senderID kernel.UUID,
	kind, content string,
) {
	conversationID, err := r.gateway.GetOrCreateConversation(ctx, shipmentID, userA, userB)
	if err == nil {
		err = r.gateway.PostMessage(ctx, conversationID, senderID, kind, content)
	}
	if err == nil {
		return
	}

	metrics.ConversationRelayFailuresTotal.Inc()
	r.logger.ErrorContext(ctx, "Failed to post conversation message, parking for redelivery",
		"shipment_id", shipmentID.String(), "error", err)

	r.park(ctx, ports.ConversationEvent{
		ID:         kernel.NewUUID(),
		Type:       ports.ConversationEventMessage,
		ShipmentID: shipmentID,
		UserA:      userA,
		UserB:      userB,
		SenderID:   &senderID,
		Kind:       kind,
		Content:    content,
		CreatedAt:  time.Now().UTC(),
	})
}

// SetStatus resolves the conversation for the shipment and participant pair
// and flips its status marker.
func (r *ConversationRelay) SetStatus(
	ctx context.Context,
	shipmentID, userA, userB kernel.UUID,
	status string,
) {
	conversationID, err := r.gateway.GetOrCreateConversation(ctx, shipmentID, userA, userB)
	if err == nil {
		err = r.gateway.SetConversationStatus(ctx, conversationID, status)
	}
	if err == nil {
		return
	}

	metrics.ConversationRelayFailuresTotal.Inc()
	r.logger.ErrorContext(ctx, "Failed to set conversation status, parking for redelivery",
		"shipment_id", shipmentID.String(), "error", err)

	r.park(ctx, ports.ConversationEvent{
		ID:         kernel.NewUUID(),
		Type:       ports.ConversationEventStatus,
		ShipmentID: shipmentID,
		UserA:      userA,
		UserB:      userB,
		Content:    status,
		CreatedAt:  time.Now().UTC(),
	})
}

func (r *ConversationRelay) park(ctx context.Context, event ports.ConversationEvent) {
	if err := r.outbox.Enqueue(ctx, event); err != nil {
		r.logger.ErrorContext(ctx, "Failed to park conversation event, side effect lost",
			"shipment_id", event.ShipmentID.String(), "error", err)
	}
}
