package commands_test

import (
	"testing"

	"parcelmatch/internal/core/application/usecases/commands"
	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/core/domain/model/offer"
	"parcelmatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRejectOfferCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	sender := kernel.NewUUID()
	aggregate := openShipment(t, sender)
	bid := pendingOffer(t, aggregate.ID(), kernel.NewUUID())

	cmd, err := commands.NewRejectOfferCommand(bid.ID(), sender)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	offerRepo := new(MockOfferRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OfferRepository").Return(offerRepo).Once(),
		offerRepo.On("Get", mock.Anything, bid.ID()).Return(bid, nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		offerRepo.On("Update", mock.Anything, bid).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNegotiationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRejectOfferCommandHandler(factory)
	rejected, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, offer.Rejected, rejected.Status())
	uow.AssertExpectations(t)
}

func TestRejectOfferCommandHandler_Handle_NonSenderIsForbidden(t *testing.T) {
	ctx := t.Context()
	aggregate := openShipment(t, kernel.NewUUID())
	bid := pendingOffer(t, aggregate.ID(), kernel.NewUUID())

	cmd, err := commands.NewRejectOfferCommand(bid.ID(), kernel.NewUUID())
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	offerRepo := new(MockOfferRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OfferRepository").Return(offerRepo).Once(),
		offerRepo.On("Get", mock.Anything, bid.ID()).Return(bid, nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNegotiationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRejectOfferCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, offer.Pending, bid.Status())
}
