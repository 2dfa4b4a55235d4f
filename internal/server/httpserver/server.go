// Package httpserver exposes the ledger over HTTP/JSON.
package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/ledgerkeeper/internal/logging"
	"github.com/dmitrijs2005/ledgerkeeper/internal/server/models"
	"github.com/dmitrijs2005/ledgerkeeper/internal/server/services"
)

type UserService interface {
	Register(ctx context.Context, email, secret string) (*models.User, error)
	Login(ctx context.Context, email, secret string) (*services.Session, error)
}

type LedgerService interface {
	List(ctx context.Context, ownerID string) ([]*models.Transaction, error)
	Create(ctx context.Context, ownerID string, in services.NewTransaction) (*models.Transaction, error)
}

// TokenParser resolves a bearer token to a user ID.
type TokenParser interface {
	Parse(token string) (string, error)
}

type Deps struct {
	Users  UserService
	Ledger LedgerService
	Tokens TokenParser
	Logger logging.Logger
}

type Server struct {
	address         string
	shutdownTimeout time.Duration
	handler         http.Handler
	logger          logging.Logger
}

func NewServer(address string, shutdownTimeout time.Duration, deps Deps) *Server {
	if deps.Logger == nil {
		deps.Logger = logging.Nop{}
	}
	logger := deps.Logger.With("module", "http_server")
	deps.Logger = logger

	return &Server{
		address:         address,
		shutdownTimeout: shutdownTimeout,
		handler:         NewHandler(deps),
		logger:          logger,
	}
}

// Handler returns the fully wrapped router.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.serve(ctx, listen)
}

func (s *Server) serve(ctx context.Context, listen net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	stopped := make(chan struct{})
	shutdownErr := make(chan error, 1)

	go func() {
		select {
		case <-ctx.Done():
		case <-stopped:
			shutdownErr <- nil
			return
		}
		s.logger.Info(ctx, "Stopping HTTP server...")
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
		defer cancel()
		shutdownErr <- srv.Shutdown(sctx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	err := srv.Serve(listen)
	if errors.Is(err, http.ErrServerClosed) {
		return <-shutdownErr
	}
	close(stopped)
	return err
}
