package database

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrator wraps goose over the existing pgx pool.
type Migrator struct {
	db *sql.DB
}

func NewMigrator(dbConn *DB, migrations fs.FS) (*Migrator, error) {
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}
	goose.SetBaseFS(migrations)

	// goose needs *sql.DB, built from the pool's config
	return &Migrator{db: stdlib.OpenDBFromPool(dbConn.Pool())}, nil
}

// Run applies all pending migrations.
func (m *Migrator) Run(ctx context.Context) error {
	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// Version reports the current migration version.
func (m *Migrator) Version(ctx context.Context) (int64, error) {
	version, err := goose.GetDBVersionContext(ctx, m.db)
	if err != nil {
		return 0, fmt.Errorf("get version: %w", err)
	}
	return version, nil
}

// Close releases the migrator's sql.DB, not the pool itself.
func (m *Migrator) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}
