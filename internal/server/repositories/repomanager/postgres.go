// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/lasttx/willkeeper/internal/cryptox"
	"github.com/lasttx/willkeeper/internal/dbx"
	"github.com/lasttx/willkeeper/internal/server/migrations"
	"github.com/lasttx/willkeeper/internal/server/repositories/wills"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct {
	cipher *cryptox.Cipher
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed
// RepositoryManager. The cipher protects personal messages at rest.
func NewPostgresRepositoryManager(cipher *cryptox.Cipher) *PostgresRepositoryManager {
	return &PostgresRepositoryManager{cipher: cipher}
}

// Wills returns a wills.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Wills(db dbx.DBTX) wills.Repository {
	return wills.NewPostgresRepository(db, m.cipher)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}
