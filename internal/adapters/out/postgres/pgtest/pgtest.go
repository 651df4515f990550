// Package pgtest starts a disposable PostgreSQL with the service schema for
// integration tests.
package pgtest

import (
	"context"
	"io"
	"log/slog"
	"time"

	"orders/internal/adapters/out/postgres/migrations"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Start runs a postgres:15-alpine container and returns it with a connected,
// migrated gorm handle. Driver errors are translated like in production.
func Start(ctx context.Context) (*postgres.PostgresContainer, *gorm.DB, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, nil, err
	}

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	if err != nil {
		return container, nil, err
	}

	if _, err = migrations.Apply(ctx, db, Logger()); err != nil {
		return container, nil, err
	}

	return container, db, nil
}

// Truncate empties every table and restarts id sequences.
func Truncate(db *gorm.DB) error {
	return db.Exec("TRUNCATE TABLE order_items, orders, products, customers RESTART IDENTITY CASCADE").Error
}

// Logger discards everything.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
