package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/ledgerkeeper/internal/common"
	"github.com/dmitrijs2005/ledgerkeeper/internal/server/models"
	"github.com/dmitrijs2005/ledgerkeeper/internal/server/repositories/transactions"
	"github.com/shopspring/decimal"
)

// NewTransaction is the caller-supplied part of a ledger record. A nil
// Amount means the field was absent.
type NewTransaction struct {
	Amount       *decimal.Decimal
	Kind         models.Kind
	Counterparty string
}

type LedgerService struct {
	transactions transactions.Repository
}

func NewLedgerService(repo transactions.Repository) *LedgerService {
	return &LedgerService{transactions: repo}
}

// List returns the owner's records, oldest first.
func (s *LedgerService) List(ctx context.Context, ownerID string) ([]*models.Transaction, error) {
	list, err := s.transactions.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing transactions: %w", err)
	}
	return list, nil
}

// Create validates in and stores it under ownerID.
func (s *LedgerService) Create(ctx context.Context, ownerID string, in NewTransaction) (*models.Transaction, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner is required", common.ErrValidation)
	}
	if in.Amount == nil {
		return nil, fmt.Errorf("%w: amount is required", common.ErrValidation)
	}
	if !in.Kind.Valid() {
		return nil, fmt.Errorf("%w: kind must be one of deposit, withdrawal, transfer", common.ErrValidation)
	}

	counterparty := strings.TrimSpace(in.Counterparty)
	if counterparty != "" && in.Kind != models.KindTransfer {
		return nil, fmt.Errorf("%w: counterparty is only allowed for transfers", common.ErrValidation)
	}

	t, err := s.transactions.Create(ctx, &models.Transaction{
		OwnerID:      ownerID,
		Amount:       *in.Amount,
		Kind:         in.Kind,
		Counterparty: counterparty,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating transaction: %w", err)
	}
	return t, nil
}
