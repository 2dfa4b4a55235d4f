// Package repomanager vends the repositories the server runs on, backed
// either by PostgreSQL or by process memory.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/ledgerkeeper/internal/server/repositories/transactions"
	"github.com/dmitrijs2005/ledgerkeeper/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Users() users.Repository
	Transactions() transactions.Repository
	Close() error
}
