package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"zapshift/cmd"
	"zapshift/internal/adapters/out/postgres/parcelrepo"
	"zapshift/internal/adapters/out/postgres/paymentrepo"
	"zapshift/internal/adapters/out/postgres/riderrepo"
	"zapshift/internal/adapters/out/postgres/userrepo"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		HTTPRequestTimeout:  durationEnvVariable("HTTP_REQUEST_TIMEOUT", 30*time.Second),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:           goDotEnvVariable("JWT_SECRET"),
		JWTValidity:         durationEnvVariable("JWT_VALIDITY", 24*time.Hour),
		PaymentAPIBaseURL:   goDotEnvVariable("PAYMENT_API_BASE_URL"),
		PaymentAPISecretKey: goDotEnvVariable("PAYMENT_API_SECRET_KEY"),
		PaymentAPITimeout:   durationEnvVariable("PAYMENT_API_TIMEOUT", 10*time.Second),
		StuckParcelMaxAge:   durationEnvVariable("STUCK_PARCEL_MAX_AGE", 6*time.Hour),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func durationEnvVariable(key string, fallback time.Duration) time.Duration {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid duration for %s: %v", key, err)
	}
	return parsed
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&riderrepo.RiderDTO{},
		&userrepo.UserDTO{},
		&paymentrepo.PaymentDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()

	server := app.CreateHTTPServer()
	server.RegisterRoutes(e, configs.HTTPRequestTimeout)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
