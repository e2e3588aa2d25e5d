package ports

import (
	"context"

	"parcelmatch/internal/core/domain/model/kernel"
)

// Message kinds the engine posts into a conversation.
const (
	MessageKindOffer  = "OFFER"
	MessageKindSystem = "SYSTEM"
)

// Conversation status markers the engine flips.
const (
	ConversationStatusOpen    = "OPEN"
	ConversationStatusMatched = "MATCHED"
)

// ConversationGateway is the engine's view of the external chat service.
// Conversations are keyed by the shipment and the unordered participant pair;
// implementations canonicalize the pair so lookup is order-independent.
//
// Gateway calls are side effects outside the store transaction boundary:
// a failed call never rolls back the primary mutation.
type ConversationGateway interface {
	// GetOrCreateConversation resolves or creates the conversation for the
	// shipment and participant pair, returning its ID.
	GetOrCreateConversation(ctx context.Context, shipmentID, userA, userB kernel.UUID) (string, error)

	// PostMessage appends a message of the given kind into the conversation
	// and updates its last-message preview.
	PostMessage(ctx context.Context, conversationID string, senderID kernel.UUID, kind, content string) error

	// SetConversationStatus flips the conversation's status marker.
	SetConversationStatus(ctx context.Context, conversationID, status string) error
}
