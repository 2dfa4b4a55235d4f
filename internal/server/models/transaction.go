// Package models defines server-side data models persisted in the database.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind is the category of a ledger record.
type Kind string

const (
	KindDeposit    Kind = "deposit"
	KindWithdrawal Kind = "withdrawal"
	KindTransfer   Kind = "transfer"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindDeposit, KindWithdrawal, KindTransfer:
		return true
	}
	return false
}

// Amounts are stored as NUMERIC(38,18): at most 20 integer digits and 18
// fractional digits.
const (
	AmountIntegerDigits = 20
	AmountScale         = 18
)

// AmountInRange reports whether d fits the stored amount precision.
func AmountInRange(d decimal.Decimal) bool {
	exp := int(d.Exponent())
	if exp < -AmountScale {
		return false
	}
	return d.NumDigits()+exp <= AmountIntegerDigits
}

// Transaction is a single immutable ledger record owned by one user.
type Transaction struct {
	ID      string
	OwnerID string
	Amount  decimal.Decimal
	Kind    Kind
	// Counterparty is set only for transfers; empty means absent.
	Counterparty string
	CreatedAt    time.Time
}
