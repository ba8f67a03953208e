package main

import (
	"fmt"
	"os"

	"courier/cmd"
	httpin "courier/internal/adapters/in/http"
	"courier/internal/adapters/out/postgres/accountrepo"
	"courier/internal/adapters/out/postgres/notificationrepo"
	"courier/internal/adapters/out/postgres/shipmentrepo"
	"courier/internal/adapters/out/postgres/vehiclerepo"
	"courier/internal/jobs"
	"courier/internal/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	zapLogger, err := logger.New(configs.LogsDir)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	gormDB := mustConnectDB(configs, zapLogger)

	app, err := cmd.NewCompositionRoot(configs, gormDB, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to build composition root", zap.Error(err))
	}

	jobManager := jobs.NewJobManager(app.CreateReconcileInvoicesCommandHandler(), zapLogger)
	if err = jobManager.StartAll(); err != nil {
		zapLogger.Fatal("failed to start background jobs", zap.Error(err))
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:  goDotEnvVariable("JWT_SECRET"),
		InvoiceDir: goDotEnvVariable("INVOICE_DIR"),
		LogsDir:    goDotEnvVariable("LOGS_DIR"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config, zapLogger *zap.Logger) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		zapLogger.Fatal("failed to connect to database", zap.Error(err))
	}

	err = gormDB.AutoMigrate(
		&accountrepo.AccountDTO{},
		&vehiclerepo.VehicleDTO{},
		&shipmentrepo.ShipmentDTO{},
		&notificationrepo.NotificationDTO{},
	)
	if err != nil {
		zapLogger.Fatal("failed to migrate database schema", zap.Error(err))
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreateCreateShipmentCommandHandler(),
		app.CreateUpdateShipmentCommandHandler(),
		app.CreateQuoteShipmentCommandHandler(),
		app.CreateApproveShipmentCommandHandler(),
		app.CreateCancelShipmentCommandHandler(),
		app.CreateAcceptJobCommandHandler(),
		app.CreateUpdateJobStatusCommandHandler(),
		app.CreateGenerateInvoiceCommandHandler(),
		app.CreateMarkInvoicePaidCommandHandler(),
		app.CreateMarkNotificationReadCommandHandler(),
		app.CreateListShipmentsQueryHandler(),
		app.CreateGetShipmentQueryHandler(),
		app.CreateListNotificationsQueryHandler(),
	)
	server.RegisterRoutes(e, httpin.AuthMiddleware([]byte(configs.JWTSecret)))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
