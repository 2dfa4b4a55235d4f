package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/ledgerkeeper/internal/client/client"
	"github.com/dmitrijs2005/ledgerkeeper/internal/client/config"
)

// ledgerAPI is the part of client.Client the CLI uses.
type ledgerAPI interface {
	Register(ctx context.Context, email, secret string) (string, error)
	Login(ctx context.Context, email, secret string) (*client.Session, error)
	ListTransactions(ctx context.Context, token string) ([]client.Transaction, error)
	CreateTransaction(ctx context.Context, token string, req client.CreateTransactionRequest) (*client.Transaction, error)
}

type App struct {
	config    *config.Config
	api       ledgerAPI
	reader    *bufio.Reader
	out       io.Writer
	email     string
	token     string
	expiresAt time.Time
}

var nowFn = time.Now

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		api:    client.New(c.ServerURL, c.RequestTimeout),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

// isLoggedIn drops a session whose token has already expired.
func (a *App) isLoggedIn() bool {
	if a.token == "" {
		return false
	}
	if !a.expiresAt.IsZero() && !nowFn().Before(a.expiresAt) {
		a.clearSession()
		return false
	}
	return true
}

func (a *App) clearSession() {
	a.email = ""
	a.token = ""
	a.expiresAt = time.Time{}
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to LedgerKeeper CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) getStatus() string {
	if a.email == "" {
		return ""
	}
	return "(" + a.email + ")"
}
