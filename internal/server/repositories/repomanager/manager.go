// Package repomanager hands out repositories bound to a concrete DB handle,
// so services can run the same repository code inside or outside a
// transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/akarpov87/accountd/internal/dbx"
	"github.com/akarpov87/accountd/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}
