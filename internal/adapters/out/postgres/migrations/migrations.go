// Package migrations applies the versioned SQL schema embedded in the binary.
//
// Files under sql/ are named NNNN_description.sql and applied in lexical order.
// Each file runs in its own transaction together with the insert that records
// its version, so a failed migration leaves no trace.
package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// VersionTable records applied migrations.
const VersionTable = "schema_migrations"

//go:embed sql/*.sql
var files embed.FS

// Migration is one schema change.
type Migration struct {
	Version string
	SQL     string
}

// All returns the embedded migrations in the order they are applied.
func All() ([]Migration, error) {
	entries, err := fs.ReadDir(files, "sql")
	if err != nil {
		return nil, fmt.Errorf("reading migrations: %w", err)
	}

	migrations := make([]Migration, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}

		body, err := fs.ReadFile(files, path.Join("sql", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading migration %s: %w", entry.Name(), err)
		}

		migrations = append(migrations, Migration{
			Version: strings.TrimSuffix(entry.Name(), ".sql"),
			SQL:     string(body),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	return migrations, nil
}

// Apply runs every migration not yet recorded in VersionTable and returns the
// versions it applied.
func Apply(ctx context.Context, db *gorm.DB, logger *slog.Logger) ([]string, error) {
	migrations, err := All()
	if err != nil {
		return nil, err
	}

	table := pq.QuoteIdentifier(VersionTable)
	if err = db.WithContext(ctx).Exec(`CREATE TABLE IF NOT EXISTS ` + table + ` (
		version    TEXT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`).Error; err != nil {
		return nil, fmt.Errorf("creating %s: %w", VersionTable, err)
	}

	var done []string
	if err = db.WithContext(ctx).Raw(`SELECT version FROM ` + table).Scan(&done).Error; err != nil {
		return nil, fmt.Errorf("reading %s: %w", VersionTable, err)
	}

	appliedBefore := make(map[string]struct{}, len(done))
	for _, v := range done {
		appliedBefore[v] = struct{}{}
	}

	applied := make([]string, 0)
	for _, m := range migrations {
		if _, ok := appliedBefore[m.Version]; ok {
			continue
		}

		err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec(m.SQL).Error; err != nil {
				return err
			}
			return tx.Exec(`INSERT INTO `+table+` (version) VALUES (?)`, m.Version).Error
		})
		if err != nil {
			return applied, fmt.Errorf("applying migration %s: %w", m.Version, err)
		}

		logger.InfoContext(ctx, "migration applied", "version", m.Version)
		applied = append(applied, m.Version)
	}

	return applied, nil
}
