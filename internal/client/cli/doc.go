// Package cli provides the interactive LedgerKeeper command-line client.
//
// It wires configuration and the REST client into a small REPL: register,
// login, list and add ledger records, logout. The bearer token lives only in
// the App for the duration of the session.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
