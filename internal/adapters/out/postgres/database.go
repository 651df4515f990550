package postgres

import (
	"fmt"
	"log/slog"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to PostgreSQL through gorm. Driver errors are translated so
// repositories can match gorm.ErrDuplicatedKey and gorm.ErrForeignKeyViolated.
// SQL is logged through logger at debug level, failures at error level.
func Open(dsn string, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         NewGormLogger(logger),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	return db, nil
}
