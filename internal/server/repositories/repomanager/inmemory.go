package repomanager

import (
	"context"
	"database/sql"

	"github.com/lasttx/willkeeper/internal/dbx"
	"github.com/lasttx/willkeeper/internal/server/repositories/wills"
)

// InMemoryRepositoryManager vends a single shared in-memory repository.
// Used by tests and local runs without PostgreSQL.
type InMemoryRepositoryManager struct {
	wills *wills.InMemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{wills: wills.NewInMemoryRepository()}
}

// RunMigrations is a no-op for the in-memory store.
func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}

// Wills ignores the DBTX: there is no transaction to join.
func (m *InMemoryRepositoryManager) Wills(db dbx.DBTX) wills.Repository {
	return m.wills
}
