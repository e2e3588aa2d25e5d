package postgres_test

import (
	"context"
	"testing"
	"time"

	"parcelmatch/internal/adapters/out/postgres"
	"parcelmatch/internal/adapters/out/postgres/offerrepo"
	"parcelmatch/internal/adapters/out/postgres/paymentmethodrepo"
	"parcelmatch/internal/adapters/out/postgres/shipmentrepo"
	"parcelmatch/internal/adapters/out/postgres/transactionrepo"
	"parcelmatch/internal/core/domain/model/escrow"
	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/core/domain/model/offer"
	"parcelmatch/internal/core/domain/model/shipment"
	"parcelmatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&offerrepo.OfferDTO{},
		&transactionrepo.TransactionDTO{},
		&paymentmethodrepo.PaymentMethodDTO{},
	))
	suite.Require().NoError(db.Exec(transactionrepo.HeldIndexDDL).Error)
	suite.Require().NoError(db.Exec(offerrepo.AcceptedIndexDDL).Error)

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE shipments, offers, transactions, payment_methods").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newOpenShipment() *shipment.Shipment {
	price, err := kernel.NewMoney(4500, "EUR")
	suite.Require().NoError(err)

	s, err := shipment.NewShipment(
		kernel.NewUUID(), kernel.NewUUID(), "Hamburg", "Cologne", 1200, "camera", price)
	suite.Require().NoError(err)
	return s
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	s := suite.newOpenShipment()
	courier := kernel.NewUUID()

	bid, err := offer.NewOffer(kernel.NewUUID(), s.ID(), courier, "on my route", time.Now().UTC())
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, s))
	suite.Require().NoError(uow.OfferRepository().Add(ctx, bid))
	suite.Require().NoError(uow.Commit(ctx))

	check := suite.factory.Create()
	loaded, err := check.ShipmentRepository().Get(ctx, s.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.Open, loaded.Status())

	offers, err := check.OfferRepository().GetAllByShipment(ctx, s.ID())
	suite.Require().NoError(err)
	suite.Len(offers, 1)
	suite.Equal(offer.Pending, offers[0].Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsEverything() {
	ctx := context.Background()
	s := suite.newOpenShipment()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, s))
	suite.Require().NoError(uow.Rollback(ctx))

	check := suite.factory.Create()
	_, err := check.ShipmentRepository().Get(ctx, s.ID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestHeldIndex_SecondHoldConflicts() {
	ctx := context.Background()
	s := suite.newOpenShipment()
	courier := kernel.NewUUID()
	price := s.Price()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, s))

	first, err := escrow.NewHold(
		kernel.NewUUID(), s.ID(), price, s.Sender(), courier, kernel.NewUUID(), time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.TransactionRepository().Add(ctx, first))
	suite.Require().NoError(uow.Commit(ctx))

	second, err := escrow.NewHold(
		kernel.NewUUID(), s.ID(), price, s.Sender(), courier, kernel.NewUUID(), time.Now().UTC())
	suite.Require().NoError(err)

	dup := suite.factory.Create()
	suite.Require().NoError(dup.Begin(ctx))
	err = dup.TransactionRepository().Add(ctx, second)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrConflict)
	suite.Require().NoError(dup.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestHeldIndex_RefundedRowDoesNotBlockNewHold() {
	ctx := context.Background()
	s := suite.newOpenShipment()
	courier := kernel.NewUUID()
	price := s.Price()

	hold, err := escrow.NewHold(
		kernel.NewUUID(), s.ID(), price, s.Sender(), courier, kernel.NewUUID(), time.Now().UTC())
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.TransactionRepository().Add(ctx, hold))
	suite.Require().NoError(hold.Refund(time.Now().UTC()))
	suite.Require().NoError(uow.TransactionRepository().Update(ctx, hold))
	suite.Require().NoError(uow.Commit(ctx))

	fresh, err := escrow.NewHold(
		kernel.NewUUID(), s.ID(), price, s.Sender(), courier, kernel.NewUUID(), time.Now().UTC())
	suite.Require().NoError(err)

	again := suite.factory.Create()
	suite.Require().NoError(again.Begin(ctx))
	suite.Require().NoError(again.TransactionRepository().Add(ctx, fresh))
	suite.Require().NoError(again.Commit(ctx))

	ledger, err := suite.factory.Create().TransactionRepository().GetAllByShipment(ctx, s.ID())
	suite.Require().NoError(err)
	suite.Len(ledger, 2)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestShipmentGet_SecondReaderWaitsForCommittedStatus() {
	ctx := context.Background()
	s := suite.newOpenShipment()
	courier := kernel.NewUUID()

	setup := suite.factory.Create()
	suite.Require().NoError(setup.Begin(ctx))
	suite.Require().NoError(setup.ShipmentRepository().Add(ctx, s))
	suite.Require().NoError(setup.Commit(ctx))

	first := suite.factory.Create()
	suite.Require().NoError(first.Begin(ctx))
	locked, err := first.ShipmentRepository().Get(ctx, s.ID())
	suite.Require().NoError(err)

	observed := make(chan shipment.Status, 1)
	go func() {
		second := suite.factory.Create()
		if err := second.Begin(ctx); err != nil {
			observed <- shipment.Unknown
			return
		}
		defer func() { _ = second.Rollback(ctx) }()

		loaded, err := second.ShipmentRepository().Get(ctx, s.ID())
		if err != nil {
			observed <- shipment.Unknown
			return
		}
		observed <- loaded.Status()
	}()

	// Let the second reader park on the row lock before the winner commits.
	time.Sleep(200 * time.Millisecond)
	suite.Require().NoError(locked.AssignCourier(courier))
	suite.Require().NoError(first.ShipmentRepository().Update(ctx, locked))
	suite.Require().NoError(first.Commit(ctx))

	suite.Equal(shipment.Matched, <-observed)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestAcceptedIndex_SecondAcceptConflicts() {
	ctx := context.Background()
	s := suite.newOpenShipment()

	first, err := offer.NewOffer(kernel.NewUUID(), s.ID(), kernel.NewUUID(), "first", time.Now().UTC())
	suite.Require().NoError(err)
	second, err := offer.NewOffer(kernel.NewUUID(), s.ID(), kernel.NewUUID(), "second", time.Now().UTC())
	suite.Require().NoError(err)

	setup := suite.factory.Create()
	suite.Require().NoError(setup.Begin(ctx))
	suite.Require().NoError(setup.ShipmentRepository().Add(ctx, s))
	suite.Require().NoError(setup.OfferRepository().Add(ctx, first))
	suite.Require().NoError(setup.OfferRepository().Add(ctx, second))
	suite.Require().NoError(setup.Commit(ctx))

	suite.Require().NoError(first.Accept())
	winner := suite.factory.Create()
	suite.Require().NoError(winner.Begin(ctx))
	suite.Require().NoError(winner.OfferRepository().Update(ctx, first))
	suite.Require().NoError(winner.Commit(ctx))

	suite.Require().NoError(second.Accept())
	loser := suite.factory.Create()
	suite.Require().NoError(loser.Begin(ctx))
	err = loser.OfferRepository().Update(ctx, second)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrConflict)
	suite.Require().NoError(loser.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	err := uow.Commit(context.Background())
	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrInvalidTransaction)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
