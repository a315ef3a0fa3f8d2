package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"inventory/cmd"
	httpadapter "inventory/internal/adapters/in/http"
	"inventory/internal/adapters/out/postgres/eventrepo"
	"inventory/internal/adapters/out/postgres/locationrepo"
	"inventory/internal/adapters/out/postgres/salerepo"
	"inventory/internal/adapters/out/postgres/shipmentrepo"
	"inventory/internal/adapters/out/postgres/transferrepo"
	"inventory/internal/adapters/out/postgres/unitrepo"
	"inventory/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := openDatabase(configs)
	app := cmd.NewCompositionRoot(configs, db)

	jobManager := jobs.NewJobManager(
		app.CreateGetTransfersQueryHandler(),
		slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// openDatabase connects to PostgreSQL and migrates the schema. TranslateError
// turns driver duplicate-key failures into gorm.ErrDuplicatedKey, which the
// repositories map onto the uniqueness-conflict error.
func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&locationrepo.LocationDTO{},
		&shipmentrepo.ShipmentDTO{},
		&unitrepo.UnitDTO{},
		&eventrepo.EventDTO{},
		&transferrepo.TransferDTO{},
		&salerepo.SaleDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreateUnitCommandHandler(),
		app.CreateImportShipmentCommandHandler(),
		app.CreateMatchIdentificationCommandHandler(),
		app.CreateInitiateTransferCommandHandler(),
		app.CreateReceiveTransferCommandHandler(),
		app.CreateSellUnitCommandHandler(),
		app.CreateAdjustUnitCommandHandler(),
		app.CreateAddUnitNoteCommandHandler(),
		app.CreateReserveUnitCommandHandler(),
		app.CreateReleaseUnitCommandHandler(),
		app.CreateGetUnitsQueryHandler(),
		app.CreateGetUnitHistoryQueryHandler(),
		app.CreateGetTransfersQueryHandler(),
		app.CreateGetInventoryReportQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
