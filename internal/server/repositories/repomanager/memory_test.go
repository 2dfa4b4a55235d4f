package repomanager

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/ledgerkeeper/internal/server/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryManager_SharesStoresAcrossCalls(t *testing.T) {
	m := NewInMemoryRepositoryManager()
	ctx := context.Background()

	require.NoError(t, m.RunMigrations(ctx))

	u, err := m.Users().Create(ctx, &models.User{Email: "a@example.com", PasswordHash: "h"})
	require.NoError(t, err)

	got, err := m.Users().GetUserByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = m.Transactions().Create(ctx, &models.Transaction{OwnerID: u.ID, Amount: decimal.NewFromInt(1), Kind: models.KindDeposit})
	require.NoError(t, err)

	list, err := m.Transactions().ListByOwner(ctx, u.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	assert.NoError(t, m.Close())
}
