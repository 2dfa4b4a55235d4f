package transactions

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/dmitrijs2005/ledgerkeeper/internal/server/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_ListIsScopedAndOrdered(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		_, err := r.Create(ctx, &models.Transaction{OwnerID: "a", Amount: decimal.NewFromInt(int64(i)), Kind: models.KindDeposit})
		require.NoError(t, err)
	}
	_, err := r.Create(ctx, &models.Transaction{OwnerID: "b", Amount: decimal.NewFromInt(99), Kind: models.KindWithdrawal})
	require.NoError(t, err)

	got, err := r.ListByOwner(ctx, "a")
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, tx := range got {
		assert.Equal(t, "a", tx.OwnerID)
		assert.Equal(t, fmt.Sprint(i+1), tx.Amount.String())
		assert.NotEmpty(t, tx.ID)
		assert.False(t, tx.CreatedAt.IsZero())
	}

	none, err := r.ListByOwner(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestMemoryRepository_ListReturnsCopies(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	_, err := r.Create(ctx, &models.Transaction{OwnerID: "a", Amount: decimal.NewFromInt(1), Kind: models.KindDeposit})
	require.NoError(t, err)

	got, _ := r.ListByOwner(ctx, "a")
	got[0].OwnerID = "mallory"

	again, _ := r.ListByOwner(ctx, "a")
	assert.Equal(t, "a", again[0].OwnerID)
}

func TestMemoryRepository_ConcurrentCreates(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = r.Create(ctx, &models.Transaction{OwnerID: "a", Amount: decimal.NewFromInt(1), Kind: models.KindDeposit})
		}()
	}
	wg.Wait()

	got, err := r.ListByOwner(ctx, "a")
	require.NoError(t, err)
	assert.Len(t, got, 50)
}
