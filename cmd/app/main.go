package main

import (
	"fmt"
	"net/http"
	"os"

	"parcelmatch/cmd"
	httpin "parcelmatch/internal/adapters/in/http"
	"parcelmatch/internal/adapters/out/postgres/offerrepo"
	"parcelmatch/internal/adapters/out/postgres/outboxrepo"
	"parcelmatch/internal/adapters/out/postgres/paymentmethodrepo"
	"parcelmatch/internal/adapters/out/postgres/shipmentrepo"
	"parcelmatch/internal/adapters/out/postgres/transactionrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDatabase(configs)
	mustMigrate(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:                 goDotEnvVariable("HTTP_PORT"),
		DBHost:                   goDotEnvVariable("DB_HOST"),
		DBPort:                   goDotEnvVariable("DB_PORT"),
		DBUser:                   goDotEnvVariable("DB_USER"),
		DBPassword:               goDotEnvVariable("DB_PASSWORD"),
		DBName:                   goDotEnvVariable("DB_NAME"),
		DBSslMode:                goDotEnvVariable("DB_SSLMODE"),
		ChatServiceURL:           goDotEnvVariable("CHAT_SERVICE_URL"),
		OutboxRedeliverySchedule: goDotEnvVariable("OUTBOX_REDELIVERY_SCHEDULE"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&offerrepo.OfferDTO{},
		&transactionrepo.TransactionDTO{},
		&paymentmethodrepo.PaymentMethodDTO{},
		&outboxrepo.ConversationEventDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Partial unique indexes: gorm struct tags cannot express the WHERE clause.
	if err := gormDB.Exec(transactionrepo.HeldIndexDDL).Error; err != nil {
		log.Fatalf("Failed to create held-payment index: %v", err)
	}
	if err := gormDB.Exec(offerrepo.AcceptedIndexDDL).Error; err != nil {
		log.Fatalf("Failed to create accepted-offer index: %v", err)
	}
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	server := httpin.NewServer(
		app.CreateCreateShipmentCommandHandler(),
		app.CreateUpdateShipmentStatusCommandHandler(),
		app.CreateConfirmHandoverCommandHandler(),
		app.CreateConfirmDeliveryCommandHandler(),
		app.CreateCreateOfferCommandHandler(),
		app.CreateAcceptOfferCommandHandler(),
		app.CreateRejectOfferCommandHandler(),
		app.CreateHoldPaymentCommandHandler(),
		app.CreateReleasePaymentCommandHandler(),
		app.CreateRefundPaymentCommandHandler(),
		app.CreateGetShipmentQueryHandler(),
		app.CreateGetOpenShipmentsQueryHandler(),
		app.CreateGetShipmentOffersQueryHandler(),
		app.CreateGetShipmentLedgerQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
