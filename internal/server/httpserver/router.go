package httpserver

import (
	"net/http"

	"github.com/dmitrijs2005/ledgerkeeper/internal/logging"
)

// NewHandler builds the router with its middleware chain.
func NewHandler(deps Deps) http.Handler {
	if deps.Logger == nil {
		deps.Logger = logging.Nop{}
	}
	h := &handlers{
		users:  deps.Users,
		ledger: deps.Ledger,
		tokens: deps.Tokens,
		logger: deps.Logger,
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("POST /auth/register", h.register)
	mux.HandleFunc("POST /auth/login", h.login)

	mux.Handle("GET /transactions", h.requireAuth(http.HandlerFunc(h.listTransactions)))
	mux.Handle("POST /transactions", h.requireAuth(http.HandlerFunc(h.createTransaction)))

	return h.logRequests(h.recoverPanics(mux))
}
