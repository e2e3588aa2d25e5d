// Package chat implements the conversation gateway port over the chat
// service's JSON HTTP API.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/core/ports"
)

var _ ports.ConversationGateway = &Gateway{}

// Gateway calls the remote chat service. Conversations are keyed by the
// shipment and the unordered participant pair; the pair is canonicalized
// here by sorting the two UUID strings, so callers may pass participants
// in any order.
type Gateway struct {
	baseURL string
	client  *http.Client
}

// NewGateway creates a gateway against the chat service base URL.
func NewGateway(baseURL string, client *http.Client) *Gateway {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	return &Gateway{baseURL: baseURL, client: client}
}

type conversationRequest struct {
	ShipmentID   string `json:"shipmentId"`
	ParticipantA string `json:"participantA"`
	ParticipantB string `json:"participantB"`
}

type conversationResponse struct {
	ID string `json:"id"`
}

type messageRequest struct {
	SenderID string `json:"senderId"`
	Kind     string `json:"kind"`
	Content  string `json:"content"`
}

type statusRequest struct {
	Status string `json:"status"`
}

// GetOrCreateConversation resolves or creates the conversation for the
// shipment and participant pair, returning its ID.
func (g *Gateway) GetOrCreateConversation(
	ctx context.Context, shipmentID, userA, userB kernel.UUID,
) (string, error) {
	a, b := userA.String(), userB.String()
	if b < a {
		a, b = b, a
	}

	body := conversationRequest{
		ShipmentID:   shipmentID.String(),
		ParticipantA: a,
		ParticipantB: b,
	}

	var result conversationResponse
	if err := g.post(ctx, g.baseURL+"/conversations", body, &result); err != nil {
		return "", fmt.Errorf("get or create conversation: %w", err)
	}
	return result.ID, nil
}

// PostMessage appends a message of the given kind into the conversation.
func (g *Gateway) PostMessage(
	ctx context.Context, conversationID string, senderID kernel.UUID, kind, content string,
) error {
	body := messageRequest{
		SenderID: senderID.String(),
		Kind:     kind,
		Content:  content,
	}

	url := fmt.Sprintf("%s/conversations/%s/messages", g.baseURL, conversationID)
	if err := g.post(ctx, url, body, nil); err != nil {
		return fmt.Errorf("post message: %w", err)
	}
	return nil
}

// SetConversationStatus flips the conversation's status marker.
func (g *Gateway) SetConversationStatus(ctx context.Context, conversationID, status string) error {
	url := fmt.Sprintf("%s/conversations/%s/status", g.baseURL, conversationID)
	if err := g.post(ctx, url, statusRequest{Status: status}, nil); err != nil {
		return fmt.Errorf("set conversation status: %w", err)
	}
	return nil
}

func (g *Gateway) post(ctx context.Context, url string, body any, result any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("chat service request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("chat service returned %s", resp.Status)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
