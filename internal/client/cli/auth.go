package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/ledgerkeeper/internal/common"
)

var errNotLoggedIn = errors.New("not logged in, use 'login' first")

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) readCredentials() (string, []byte, error) {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return "", nil, err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return "", nil, err
	}
	return email, password, nil
}

// Register prompts for an email and password and creates an account.
func (a *App) Register(ctx context.Context) error {
	email, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	id, err := a.api.Register(ctx, email, string(password))
	if err != nil {
		return err
	}

	printlnFn("Registered, id:", id)
	return nil
}

// Login prompts for credentials and keeps the issued token for the session.
func (a *App) Login(ctx context.Context) error {
	email, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	session, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	a.email = email
	a.token = session.Token
	a.expiresAt = session.ExpiresAt

	printlnFn("Login successful, session valid until", session.ExpiresAt.Local().Format("2006-01-02 15:04"))
	return nil
}

// Logout forgets the token. Tokens are not revoked server-side; the old one
// stays valid until it expires.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	a.clearSession()
	printlnFn("Logged out")
	return nil
}
