package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/ledgerkeeper/internal/common"
	"github.com/shopspring/decimal"
)

// Session is a bearer token together with its expiry.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Transaction is a ledger record as returned by the API.
type Transaction struct {
	ID           string          `json:"id"`
	OwnerID      string          `json:"owner_id"`
	Amount       decimal.Decimal `json:"amount"`
	Kind         string          `json:"kind"`
	Counterparty string          `json:"counterparty,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// CreateTransactionRequest is the payload for a new ledger record.
type CreateTransactionRequest struct {
	Amount       decimal.Decimal `json:"amount"`
	Kind         string          `json:"kind"`
	Counterparty string          `json:"counterparty,omitempty"`
}

type credentials struct {
	Email  string `json:"email"`
	Secret string `json:"secret"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for baseURL with the given per-request timeout.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Register creates an account and returns its ID.
func (c *Client) Register(ctx context.Context, email, secret string) (string, error) {
	var out struct {
		ID string `json:"id"`
	}
	if err := c.doRequest(ctx, http.MethodPost, "/auth/register", "", credentials{Email: email, Secret: secret}, &out); err != nil {
		return "", fmt.Errorf("client.Register: %w", err)
	}
	return out.ID, nil
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, secret string) (*Session, error) {
	var s Session
	if err := c.doRequest(ctx, http.MethodPost, "/auth/login", "", credentials{Email: email, Secret: secret}, &s); err != nil {
		return nil, fmt.Errorf("client.Login: %w", err)
	}
	return &s, nil
}

// ListTransactions returns the caller's records, oldest first.
func (c *Client) ListTransactions(ctx context.Context, token string) ([]Transaction, error) {
	var list []Transaction
	if err := c.doRequest(ctx, http.MethodGet, "/transactions", token, nil, &list); err != nil {
		return nil, fmt.Errorf("client.ListTransactions: %w", err)
	}
	return list, nil
}

// CreateTransaction stores a record owned by the token's user.
func (c *Client) CreateTransaction(ctx context.Context, token string, req CreateTransactionRequest) (*Transaction, error) {
	var created Transaction
	if err := c.doRequest(ctx, http.MethodPost, "/transactions", token, req, &created); err != nil {
		return nil, fmt.Errorf("client.CreateTransaction: %w", err)
	}
	return &created, nil
}

// Ping checks the health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.doRequest(ctx, http.MethodGet, "/healthz", "", nil, nil); err != nil {
		return fmt.Errorf("client.Ping: %w", err)
	}
	return nil
}

func (c *Client) doRequest(ctx context.Context, method, path, token string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if readErr != nil {
			return &HTTPError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to read body: %v", readErr)}
		}
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error != "" {
			return &HTTPError{StatusCode: resp.StatusCode, Message: apiErr.Error}
		}
		return &HTTPError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
