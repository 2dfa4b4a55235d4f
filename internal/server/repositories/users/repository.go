package users

import (
	"context"

	"github.com/dmitrijs2005/ledgerkeeper/internal/server/models"
)

// Repository stores user credentials. GetUserByEmail returns
// common.ErrorNotFound when no user matches; Create returns
// common.ErrDuplicateEmail when the email is taken.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}
