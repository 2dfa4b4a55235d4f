// Package client is a typed REST client for the LedgerKeeper API.
//
// The bearer token is passed explicitly on every authenticated call; the
// Client itself holds no session state and is safe for concurrent use.
//
// Non-2xx responses are returned as *HTTPError. A 401 also matches
// ErrUnauthorized, and transport failures match ErrUnavailable, so callers
// can use errors.Is without inspecting status codes.
package client
