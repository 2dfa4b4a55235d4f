package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/ledgerkeeper/internal/client/client"
	"github.com/shopspring/decimal"
)

// handleAuthError drops the session when the server rejects the token.
func (a *App) handleAuthError(err error) error {
	if errors.Is(err, client.ErrUnauthorized) {
		a.clearSession()
		return fmt.Errorf("session expired, please login again: %w", err)
	}
	return err
}

func formatTransaction(t client.Transaction) string {
	s := fmt.Sprintf("%s  %-10s %12s", t.CreatedAt.Local().Format("2006-01-02 15:04:05"), t.Kind, t.Amount.StringFixed(2))
	if t.Counterparty != "" {
		s += "  -> " + t.Counterparty
	}
	return s
}

// List prints the caller's ledger, oldest first.
func (a *App) List(ctx context.Context) error {
	list, err := a.api.ListTransactions(ctx, a.token)
	if err != nil {
		return a.handleAuthError(err)
	}

	if len(list) == 0 {
		printlnFn("No transactions yet")
		return nil
	}
	for _, t := range list {
		printlnFn(formatTransaction(t))
	}
	return nil
}

// Add prompts for amount, kind and, for transfers, a counterparty.
func (a *App) Add(ctx context.Context) error {
	rawAmount, err := getSimpleText(a.reader, "Enter amount", a.out)
	if err != nil {
		return err
	}
	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return fmt.Errorf("amount must be a number")
	}

	kind, err := getSimpleText(a.reader, "Enter kind (deposit, withdrawal, transfer)", a.out)
	if err != nil {
		return err
	}
	kind = strings.ToLower(kind)

	req := client.CreateTransactionRequest{Amount: amount, Kind: kind}

	if kind == "transfer" {
		counterparty, err := getSimpleText(a.reader, "Enter counterparty (optional)", a.out)
		if err != nil {
			return err
		}
		req.Counterparty = counterparty
	}

	created, err := a.api.CreateTransaction(ctx, a.token, req)
	if err != nil {
		return a.handleAuthError(err)
	}

	printlnFn("Added:", formatTransaction(*created))
	return nil
}
