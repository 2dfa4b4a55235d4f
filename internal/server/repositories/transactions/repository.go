// Package transactions persists ledger records and lists them per owner.
package transactions

import (
	"context"

	"github.com/dmitrijs2005/ledgerkeeper/internal/server/models"
)

// Repository stores transactions. ListByOwner returns records oldest first
// and an empty, non-nil slice when the owner has none.
type Repository interface {
	Create(ctx context.Context, t *models.Transaction) (*models.Transaction, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Transaction, error)
}
