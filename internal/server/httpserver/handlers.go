package httpserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/ledgerkeeper/internal/common"
	"github.com/dmitrijs2005/ledgerkeeper/internal/logging"
	"github.com/dmitrijs2005/ledgerkeeper/internal/server/models"
	"github.com/dmitrijs2005/ledgerkeeper/internal/server/services"
	"github.com/shopspring/decimal"
)

const maxBodyBytes = 1 << 20

type handlers struct {
	users  UserService
	ledger LedgerService
	tokens TokenParser
	logger logging.Logger
}

type credentialsRequest struct {
	Email  string `json:"email"`
	Secret string `json:"secret"`
}

type registerResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Unknown fields, including any owner, are ignored.
type createTransactionRequest struct {
	Amount       json.RawMessage `json:"amount"`
	Kind         string          `json:"kind"`
	Counterparty string          `json:"counterparty"`
}

type transactionResponse struct {
	ID           string          `json:"id"`
	OwnerID      string          `json:"owner_id"`
	Amount       decimal.Decimal `json:"amount"`
	Kind         models.Kind     `json:"kind"`
	Counterparty string          `json:"counterparty,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

func toTransactionResponse(t *models.Transaction) transactionResponse {
	return transactionResponse{
		ID:           t.ID,
		OwnerID:      t.OwnerID,
		Amount:       t.Amount,
		Kind:         t.Kind,
		Counterparty: t.Counterparty,
		CreatedAt:    t.CreatedAt.UTC(),
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return false
	}
	return true
}

// parseAmount accepts a JSON number or numeric string. Absent or null
// yields nil.
func parseAmount(raw json.RawMessage) (*decimal.Decimal, error) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(raw); err != nil {
		return nil, fmt.Errorf("%w: amount must be a number", common.ErrValidation)
	}
	return &d, nil
}

func (h *handlers) register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.users.Register(r.Context(), req.Email, req.Secret)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.logger.Info(r.Context(), "Registered", "user_id", user.ID)
	writeJSON(w, http.StatusCreated, registerResponse{Message: "user registered", ID: user.ID})
}

func (h *handlers) login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	session, err := h.users.Login(r.Context(), req.Email, req.Secret)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: session.Token, ExpiresAt: session.ExpiresAt.UTC()})
}

func (h *handlers) listTransactions(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	list, err := h.ledger.List(r.Context(), ownerID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	out := make([]transactionResponse, 0, len(list))
	for _, t := range list {
		out = append(out, toTransactionResponse(t))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handlers) createTransaction(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req createTransactionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	created, err := h.ledger.Create(r.Context(), ownerID, services.NewTransaction{
		Amount:       amount,
		Kind:         models.Kind(req.Kind),
		Counterparty: req.Counterparty,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTransactionResponse(created))
}
