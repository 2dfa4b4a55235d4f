// Package server wires configuration, storage, services and the HTTP API
// together and runs them until the process is asked to stop.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/ledgerkeeper/internal/logging"
	"github.com/dmitrijs2005/ledgerkeeper/internal/server/auth"
	"github.com/dmitrijs2005/ledgerkeeper/internal/server/config"
	"github.com/dmitrijs2005/ledgerkeeper/internal/server/httpserver"
	"github.com/dmitrijs2005/ledgerkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/ledgerkeeper/internal/server/services"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repomanager repomanager.RepositoryManager
	server      *httpserver.Server
}

// openPostgres is a seam for tests.
var openPostgres = func(ctx context.Context, dsn string) (repomanager.RepositoryManager, error) {
	return repomanager.OpenPostgres(ctx, dsn)
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {

	var (
		rm  repomanager.RepositoryManager
		err error
	)

	if c.DatabaseDSN == "" {
		logger.Warn(ctx, "No database DSN configured, using in-memory storage; data will be lost on restart")
		rm = repomanager.NewInMemoryRepositoryManager()
	} else {
		rm, err = openPostgres(ctx, c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
	}

	if c.SecretKey == config.DefaultSecretKey {
		logger.Warn(ctx, "Using the default token secret; set -s or secret_key for production")
	}

	tokens := auth.NewTokenManager([]byte(c.SecretKey), c.TokenIssuer, c.AccessTokenValidityDuration)
	us := services.NewUserService(rm.Users(), tokens, c.PasswordHashCost)
	ls := services.NewLedgerService(rm.Transactions())

	srv := httpserver.NewServer(c.EndpointAddrHTTP, c.ShutdownTimeout, httpserver.Deps{
		Users:  us,
		Ledger: ls,
		Tokens: tokens,
		Logger: logger,
	})

	return &App{config: c, logger: logger, repomanager: rm, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run blocks until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	runErr := app.server.Run(ctx)
	if runErr != nil {
		app.logger.Error(ctx, "HTTP server error", "error", runErr.Error())
	}

	if err := app.repomanager.Close(); err != nil {
		app.logger.Error(ctx, "Error closing storage", "error", err.Error())
	}

	app.logger.Info(ctx, "App stopped")
	return runErr
}
