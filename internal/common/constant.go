// Package common contains shared constants and sentinel errors used across
// LedgerKeeper components.
package common

// AuthorizationHeaderName is the HTTP header that carries the bearer token
// on protected requests.
const AuthorizationHeaderName = "Authorization"

// BearerScheme is the authorization scheme expected in AuthorizationHeaderName.
const BearerScheme = "Bearer"

// RequestIDHeaderName is echoed back on every response so a client report can
// be matched with server logs.
const RequestIDHeaderName = "X-Request-Id"
