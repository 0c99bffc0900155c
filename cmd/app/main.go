package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"freight/cmd"
	httpin "freight/internal/adapters/in/http"
	"freight/internal/adapters/out/notifier"
	"freight/internal/adapters/out/postgres/companyrepo"
	"freight/internal/adapters/out/postgres/deliveryrepo"
	"freight/internal/adapters/out/postgres/offerrepo"
	"freight/internal/adapters/out/postgres/shipmentrepo"
	"freight/internal/adapters/out/postgres/truckrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := openDatabase(configs)
	migrateDatabase(gormDB)

	kafkaNotifier, err := notifier.NewKafkaNotifier(configs.KafkaBrokers, configs.KafkaNotificationsTopic)
	if err != nil {
		log.Fatalf("Error connecting to Kafka: %v", err)
	}
	defer func() {
		_ = kafkaNotifier.Close()
	}()

	root := cmd.NewCompositionRoot(configs, gormDB, kafkaNotifier, logger)

	jobManager := root.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT"),
		DBHost:                  goDotEnvVariable("DB_HOST"),
		DBPort:                  goDotEnvVariable("DB_PORT"),
		DBUser:                  goDotEnvVariable("DB_USER"),
		DBPassword:              goDotEnvVariable("DB_PASSWORD"),
		DBName:                  goDotEnvVariable("DB_NAME"),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE"),
		GeocoderBaseURL:         goDotEnvVariable("GEOCODER_BASE_URL"),
		GeocoderTimeout:         durationVariable("GEOCODER_TIMEOUT"),
		KafkaBrokers:            strings.Split(goDotEnvVariable("KAFKA_BROKERS"), ","),
		KafkaNotificationsTopic: goDotEnvVariable("KAFKA_NOTIFICATIONS_TOPIC"),
		TruckSweepSchedule:      goDotEnvVariable("TRUCK_SWEEP_SCHEDULE"),
		GeocodeMaxAttempts:      intVariable("GEOCODE_MAX_ATTEMPTS"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func durationVariable(key string) time.Duration {
	value, err := time.ParseDuration(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return value
}

func intVariable(key string) int {
	value, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return value
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func migrateDatabase(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&companyrepo.CompanyDTO{},
		&shipmentrepo.ShipmentDTO{},
		&offerrepo.OfferDTO{},
		&truckrepo.TruckDTO{},
		&deliveryrepo.DeliveryDTO{},
		&deliveryrepo.LegDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	server := httpin.NewServer(
		root.CreateCreateCompanyCommandHandler(),
		root.CreateUpdateCompanyCommandHandler(),
		root.CreateCreateShipmentCommandHandler(),
		root.CreateCopyShipmentCommandHandler(),
		root.CreateDeleteShipmentCommandHandler(),
		root.CreateCreateOfferCommandHandler(),
		root.CreateAcceptOfferCommandHandler(),
		root.CreateRejectOfferCommandHandler(),
		root.CreateAssignShipmentsToTruckCommandHandler(),
		root.CreateLoadTruckCommandHandler(),
		root.CreateStartDeliveryCommandHandler(),
		root.CreateCloseDeliveryCommandHandler(),
		root.CreateGetUnclaimedShipmentsQueryHandler(),
		root.CreateGetActiveTrucksQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
