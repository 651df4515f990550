package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orders/cmd"
	"orders/internal/adapters/out/postgres"
	"orders/internal/adapters/out/postgres/migrations"
	"orders/internal/pkg/logging"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()

	logger := logging.NewLogger(os.Stderr, logging.ParseLevel(configs.LogLevel))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dsn, err := configs.DSN()
	if err != nil {
		log.Fatalf("Invalid database configuration: %v", err)
	}

	gormDB, err := postgres.Open(dsn, logger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if _, err = migrations.Apply(ctx, gormDB, logger); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
		logger,
	)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded, using the process environment: %v", err)
	}

	config := cmd.Config{
		HTTPPort:      envOrDefault("HTTP_PORT", "8080"),
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        envOrDefault("DB_PORT", "5432"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBSslMode:     envOrDefault("DB_SSLMODE", "disable"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		LogLevel:      envOrDefault("LOG_LEVEL", "info"),
		StatsSchedule: os.Getenv("STATS_SCHEDULE"),
	}
	return config
}

func envOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string) {
	e, err := app.CreateRouter(ctx)
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}
	e.Logger.SetLevel(log.INFO)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
