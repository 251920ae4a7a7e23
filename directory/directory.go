// Package directory resolves operators to fixed user records. The
// directory is preloaded and read-only; there is no registration.
package directory

import (
	"context"
	"errors"

	"toolroom/models"
)

var ErrUserNotFound = errors.New("user not found")

// Directory is satisfied by db.Repo (postgres) and by Mem below.
type Directory interface {
	FindUserByID(ctx context.Context, id string) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	TouchUserSeen(ctx context.Context, id string) error
}
