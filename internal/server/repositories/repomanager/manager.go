package repomanager

import (
	"context"
	"database/sql"

	"github.com/lasttx/willkeeper/internal/dbx"
	"github.com/lasttx/willkeeper/internal/server/repositories/wills"
)

// RepositoryManager vends repository implementations bound to a DBTX, so
// services can run several repository calls inside one transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Wills(db dbx.DBTX) wills.Repository
}
