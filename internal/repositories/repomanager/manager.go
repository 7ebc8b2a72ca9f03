package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gatepass/internal/dbx"
	"github.com/dmitrijs2005/gatepass/internal/repositories/accounts"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
}
