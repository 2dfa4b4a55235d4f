package transactions

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/ledgerkeeper/internal/server/models"
	"github.com/google/uuid"
)

// MemoryRepository keeps each owner's records in append order.
type MemoryRepository struct {
	mu      sync.RWMutex
	byOwner map[string][]models.Transaction
	now     func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byOwner: make(map[string][]models.Transaction), now: time.Now}
}

func (r *MemoryRepository) Create(ctx context.Context, t *models.Transaction) (*models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t.ID = uuid.NewString()
	t.CreatedAt = r.now().UTC()
	r.byOwner[t.OwnerID] = append(r.byOwner[t.OwnerID], *t)

	return t, nil
}

func (r *MemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.byOwner[ownerID]
	result := make([]*models.Transaction, 0, len(stored))
	for i := range stored {
		t := stored[i]
		result = append(result, &t)
	}
	return result, nil
}
