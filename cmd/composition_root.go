package cmd

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"parcelmatch/internal/adapters/out/chat"
	"parcelmatch/internal/adapters/out/postgres"
	"parcelmatch/internal/adapters/out/postgres/outboxrepo"
	"parcelmatch/internal/core/application/usecases/commands"
	"parcelmatch/internal/core/application/usecases/queries"
	"parcelmatch/internal/core/ports"
	"parcelmatch/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	outboxRepo ports.ConversationOutboxRepository
	gateway    ports.ConversationGateway
	relay      *commands.ConversationRelay
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	outboxRepo := outboxrepo.NewGormConversationOutboxRepository(gormDB)
	gateway := chat.NewGateway(config.ChatServiceURL, &http.Client{Timeout: 5 * time.Second})

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		outboxRepo: outboxRepo,
		gateway:    gateway,
		relay:      commands.NewConversationRelay(gateway, outboxRepo, logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) negotiationUoWFactory() commands.NegotiationUoWFactory {
	return FuncNegotiationUoWFactory(func() commands.NegotiationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) ledgerUoWFactory() commands.LedgerUoWFactory {
	return FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) holdUoWFactory() commands.HoldUoWFactory {
	return FuncHoldUoWFactory(func() commands.HoldUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateUpdateShipmentStatusCommandHandler() commands.UpdateShipmentStatusCommandHandler {
	return commands.NewUpdateShipmentStatusCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateConfirmHandoverCommandHandler() commands.ConfirmHandoverCommandHandler {
	return commands.NewConfirmHandoverCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	return commands.NewConfirmDeliveryCommandHandler(c.ledgerUoWFactory())
}

func (c *CompositionRoot) CreateCreateOfferCommandHandler() commands.CreateOfferCommandHandler {
	return commands.NewCreateOfferCommandHandler(c.negotiationUoWFactory(), c.relay)
}

func (c *CompositionRoot) CreateAcceptOfferCommandHandler() commands.AcceptOfferCommandHandler {
	return commands.NewAcceptOfferCommandHandler(c.negotiationUoWFactory(), c.relay)
}

func (c *CompositionRoot) CreateRejectOfferCommandHandler() commands.RejectOfferCommandHandler {
	return commands.NewRejectOfferCommandHandler(c.negotiationUoWFactory())
}

func (c *CompositionRoot) CreateHoldPaymentCommandHandler() commands.HoldPaymentCommandHandler {
	return commands.NewHoldPaymentCommandHandler(c.holdUoWFactory(), c.relay)
}

func (c *CompositionRoot) CreateReleasePaymentCommandHandler() commands.ReleasePaymentCommandHandler {
	return commands.NewReleasePaymentCommandHandler(c.ledgerUoWFactory())
}

func (c *CompositionRoot) CreateRefundPaymentCommandHandler() commands.RefundPaymentCommandHandler {
	return commands.NewRefundPaymentCommandHandler(c.ledgerUoWFactory())
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOpenShipmentsQueryHandler() queries.GetOpenShipmentsQueryHandler {
	return queries.NewGetOpenShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentOffersQueryHandler() queries.GetShipmentOffersQueryHandler {
	return queries.NewGetShipmentOffersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentLedgerQueryHandler() queries.GetShipmentLedgerQueryHandler {
	return queries.NewGetShipmentLedgerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.outboxRepo, c.gateway, c.config.OutboxRedeliverySchedule, c.logger)
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncNegotiationUoWFactory func() commands.NegotiationUoW

func (f FuncNegotiationUoWFactory) Create() commands.NegotiationUoW {
	return f()
}

type FuncLedgerUoWFactory func() commands.LedgerUoW

func (f FuncLedgerUoWFactory) Create() commands.LedgerUoW {
	return f()
}

type FuncHoldUoWFactory func() commands.HoldUoW

func (f FuncHoldUoWFactory) Create() commands.HoldUoW {
	return f()
}
