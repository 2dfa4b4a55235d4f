// Package services contains server-side business logic. This file implements
// UserService, which registers users and exchanges credentials for tokens.
package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/ledgerkeeper/internal/common"
	"github.com/dmitrijs2005/ledgerkeeper/internal/server/auth"
	"github.com/dmitrijs2005/ledgerkeeper/internal/server/models"
	"github.com/dmitrijs2005/ledgerkeeper/internal/server/repositories/users"
	"golang.org/x/crypto/bcrypt"
)

// maxSecretLen is the bcrypt input limit.
const maxSecretLen = 72

// fallbackDummyHash is a well-formed cost-10 hash compared against when the
// configured cost cannot produce one, so unknown emails still pay for a compare.
const fallbackDummyHash = "$2a$10$XajjQvNhvvRt5GSeFk1xFeyqRrsxkhBkUiQeg0dt.wU1qD4aFDcga"

// Session is the result of a successful login.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

type UserService struct {
	users    users.Repository
	tokens   *auth.TokenManager
	hashCost int

	dummyOnce sync.Once
	dummyHash []byte
}

func NewUserService(repo users.Repository, tokens *auth.TokenManager, hashCost int) *UserService {
	return &UserService{users: repo, tokens: tokens, hashCost: hashCost}
}

// NormalizeEmail trims and lower-cases an address so lookups are
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateCredentials(email, secret string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", common.ErrValidation)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: email is invalid", common.ErrValidation)
	}
	if secret == "" {
		return fmt.Errorf("%w: secret is required", common.ErrValidation)
	}
	if len(secret) > maxSecretLen {
		return fmt.Errorf("%w: secret must be at most %d bytes", common.ErrValidation, maxSecretLen)
	}
	return nil
}

// Register validates the credentials, hashes the secret and stores the user.
func (s *UserService) Register(ctx context.Context, email, secret string) (*models.User, error) {
	email = NormalizeEmail(email)
	if err := validateCredentials(email, secret); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing secret: %w", err)
	}

	u, err := s.users.Create(ctx, &models.User{Email: email, PasswordHash: string(hash)})
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login verifies the secret and issues a token. Unknown emails yield
// common.ErrorNotFound, wrong secrets common.ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, secret string) (*Session, error) {
	user, err := s.users.GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// keeps response time close to the found-user path
			_ = bcrypt.CompareHashAndPassword(s.getDummyHash(), []byte(secret))
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(secret)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: issuing token: %v", common.ErrorInternal, err)
	}
	return &Session{Token: token, ExpiresAt: expiresAt}, nil
}

func (s *UserService) getDummyHash() []byte {
	s.dummyOnce.Do(func() {
		random, err := common.MakeRandHexString(16)
		if err != nil {
			random = "ledgerkeeper"
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(random), s.hashCost)
		if err != nil {
			hash = []byte(fallbackDummyHash)
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}
