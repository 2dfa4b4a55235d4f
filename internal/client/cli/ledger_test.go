package cli

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/ledgerkeeper/internal/client/client"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loggedInApp(api ledgerAPI) *App {
	a := newTestApp(api)
	a.email, a.token = "alice@example.com", "tok"
	return a
}

func TestList_PrintsRecords(t *testing.T) {
	out := capturePrintln(t)
	f := &fakeAPI{listOut: []client.Transaction{
		{ID: "1", Amount: decimal.NewFromInt(50), Kind: "deposit", CreatedAt: time.Now()},
		{ID: "2", Amount: decimal.RequireFromString("-3.5"), Kind: "transfer", Counterparty: "bob", CreatedAt: time.Now()},
	}}
	a := loggedInApp(f)

	require.NoError(t, a.List(context.Background()))
	assert.Equal(t, "tok", f.listToken)
	require.Len(t, *out, 2)
	assert.Contains(t, (*out)[0], "50.00")
	assert.Contains(t, (*out)[1], "-> bob")
}

func TestList_Empty(t *testing.T) {
	out := capturePrintln(t)
	a := loggedInApp(&fakeAPI{listOut: []client.Transaction{}})

	require.NoError(t, a.List(context.Background()))
	assert.Equal(t, []string{"No transactions yet"}, *out)
}

func TestList_UnauthorizedDropsSession(t *testing.T) {
	a := loggedInApp(&fakeAPI{listErr: &client.HTTPError{StatusCode: http.StatusUnauthorized, Message: "unauthorized"}})

	err := a.List(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, client.ErrUnauthorized)
	assert.False(t, a.isLoggedIn())
}

func TestRequireLogin_ExpiredSessionIsDropped(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	orig := nowFn
	nowFn = func() time.Time { return now }
	t.Cleanup(func() { nowFn = orig })

	f := &fakeAPI{}
	a := loggedInApp(f)
	a.expiresAt = now.Add(time.Minute)
	assert.True(t, a.isLoggedIn())

	now = now.Add(time.Minute)
	err := requireLogin(context.Background(), a, a.List)
	assert.ErrorIs(t, err, errNotLoggedIn)
	assert.Empty(t, f.listToken)
	assert.Empty(t, a.getStatus())
	assert.True(t, a.expiresAt.IsZero())
}

func TestAdd_Deposit(t *testing.T) {
	capturePrintln(t)
	f := &fakeAPI{createOut: &client.Transaction{ID: "t1", Amount: decimal.NewFromInt(50), Kind: "deposit", CreatedAt: time.Now()}}
	a := loggedInApp(f)
	stubInputs(t, []string{"50", "Deposit"}, nil)

	require.NoError(t, a.Add(context.Background()))
	assert.Equal(t, "tok", f.createToken)
	assert.Equal(t, "deposit", f.createReq.Kind)
	assert.True(t, decimal.NewFromInt(50).Equal(f.createReq.Amount))
	assert.Empty(t, f.createReq.Counterparty)
}

func TestAdd_TransferAsksCounterparty(t *testing.T) {
	capturePrintln(t)
	f := &fakeAPI{createOut: &client.Transaction{ID: "t1", Kind: "transfer", Counterparty: "bob", CreatedAt: time.Now()}}
	a := loggedInApp(f)
	stubInputs(t, []string{"-12.5", "transfer", "bob"}, nil)

	require.NoError(t, a.Add(context.Background()))
	assert.Equal(t, "bob", f.createReq.Counterparty)
	assert.Equal(t, "-12.5", f.createReq.Amount.String())
}

func TestAdd_BadAmount(t *testing.T) {
	f := &fakeAPI{}
	a := loggedInApp(f)
	stubInputs(t, []string{"fifty"}, nil)

	err := a.Add(context.Background())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "amount"))
	assert.Empty(t, f.createToken)
}

func TestAdd_ServerValidationError(t *testing.T) {
	a := loggedInApp(&fakeAPI{createErr: &client.HTTPError{StatusCode: http.StatusBadRequest, Message: "validation error: kind must be one of deposit, withdrawal, transfer"}})
	stubInputs(t, []string{"1", "refund"}, nil)

	err := a.Add(context.Background())
	require.Error(t, err)
	assert.True(t, a.isLoggedIn())
}
