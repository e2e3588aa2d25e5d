package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"parcelmatch/internal/core/application/usecases/commands"
	"parcelmatch/internal/core/domain/model/escrow"
	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/core/domain/model/offer"
	"parcelmatch/internal/core/domain/model/shipment"
	"parcelmatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}
type MockOfferRepository struct{ mock.Mock }

func (m *MockOfferRepository) Add(ctx context.Context, o *offer.Offer) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOfferRepository) Update(ctx context.Context, o *offer.Offer) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOfferRepository) Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*offer.Offer), args.Error(1)
}
func (m *MockOfferRepository) GetByShipmentAndCourier(
	ctx context.Context,
	shipmentID, courierID kernel.UUID,
) (*offer.Offer, error) {
	args := m.Called(ctx, shipmentID, courierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*offer.Offer), args.Error(1)
}
func (m *MockOfferRepository) GetAllByShipment(ctx context.Context, shipmentID kernel.UUID) ([]*offer.Offer, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*offer.Offer), args.Error(1)
}

type MockTransactionRepository struct{ mock.Mock }

func (m *MockTransactionRepository) Add(ctx context.Context, tx *escrow.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}
func (m *MockTransactionRepository) Update(ctx context.Context, tx *escrow.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}
func (m *MockTransactionRepository) GetHeldByShipment(
	ctx context.Context,
	shipmentID kernel.UUID,
) (*escrow.Transaction, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*escrow.Transaction), args.Error(1)
}
func (m *MockTransactionRepository) GetAllByShipment(
	ctx context.Context,
	shipmentID kernel.UUID,
) ([]*escrow.Transaction, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*escrow.Transaction), args.Error(1)
}

type MockPaymentMethodRepository struct{ mock.Mock }

func (m *MockPaymentMethodRepository) Get(ctx context.Context, id kernel.UUID) (*ports.PaymentMethod, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.PaymentMethod), args.Error(1)
}
func (m *MockPaymentMethodRepository) GetDefaultForUser(
	ctx context.Context,
	userID kernel.UUID,
) (*ports.PaymentMethod, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.PaymentMethod), args.Error(1)
}

// MockUoW backs every unit-of-work shape the handlers consume.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}
func (m *MockUoW) OfferRepository() ports.OfferRepository {
	args := m.Called()
	return args.Get(0).(ports.OfferRepository)
}
func (m *MockUoW) TransactionRepository() ports.TransactionRepository {
	args := m.Called()
	return args.Get(0).(ports.TransactionRepository)
}
func (m *MockUoW) PaymentMethodRepository() ports.PaymentMethodRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentMethodRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockNegotiationUoWFactory struct{ mock.Mock }

func (m *MockNegotiationUoWFactory) Create() commands.NegotiationUoW {
	args := m.Called()
	return args.Get(0).(commands.NegotiationUoW)
}

type MockLedgerUoWFactory struct{ mock.Mock }

func (m *MockLedgerUoWFactory) Create() commands.LedgerUoW {
	args := m.Called()
	return args.Get(0).(commands.LedgerUoW)
}

type MockHoldUoWFactory struct{ mock.Mock }

func (m *MockHoldUoWFactory) Create() commands.HoldUoW {
	args := m.Called()
	return args.Get(0).(commands.HoldUoW)
}

type MockConversationGateway struct{ mock.Mock }

func (m *MockConversationGateway) GetOrCreateConversation(
	ctx context.Context,
	shipmentID, userA, userB kernel.UUID,
) (string, error) {
	args := m.Called(ctx, shipmentID, userA, userB)
	return args.String(0), args.Error(1)
}
func (m *MockConversationGateway) PostMessage(
	ctx context.Context,
	conversationID string,
	senderID kernel.UUID,
	kind, content string,
) error {
	args := m.Called(ctx, conversationID, senderID, kind, content)
	return args.Error(0)
}
func (m *MockConversationGateway) SetConversationStatus(ctx context.Context, conversationID, status string) error {
	args := m.Called(ctx, conversationID, status)
	return args.Error(0)
}

type MockConversationOutbox struct{ mock.Mock }

func (m *MockConversationOutbox) Enqueue(ctx context.Context, event ports.ConversationEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
func (m *MockConversationOutbox) GetPending(ctx context.Context, limit int) ([]ports.ConversationEvent, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.ConversationEvent), args.Error(1)
}
func (m *MockConversationOutbox) MarkDelivered(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockConversationOutbox) MarkAttempt(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testTime() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func testPrice(t *testing.T) kernel.Money {
	t.Helper()
	price, err := kernel.NewMoney(4500, "EUR")
	require.NoError(t, err)
	return price
}

func openShipment(t *testing.T, senderID kernel.UUID) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(
		kernel.NewUUID(), senderID, "Berlin", "Munich", 2500, "books", testPrice(t))
	require.NoError(t, err)
	return s
}

func matchedShipment(t *testing.T, senderID, courierID kernel.UUID) *shipment.Shipment {
	t.Helper()
	s := openShipment(t, senderID)
	require.NoError(t, s.AssignCourier(courierID))
	return s
}

func onWayShipment(t *testing.T, senderID, courierID kernel.UUID) *shipment.Shipment {
	t.Helper()
	s := matchedShipment(t, senderID, courierID)
	_, err := s.ConfirmHandover(senderID, testTime())
	require.NoError(t, err)
	both, err := s.ConfirmHandover(courierID, testTime())
	require.NoError(t, err)
	require.True(t, both)
	return s
}
