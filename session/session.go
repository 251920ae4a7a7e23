package session

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("session not found")

// AppSession is the persisted session payload. Rehydrating it on a later
// request is what keeps a user signed in across process restarts.
type AppSession struct {
	UserID    string `json:"uid"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

type Store interface {
	Create(ctx context.Context, id, userID string) error
	Get(ctx context.Context, id string) (*AppSession, error)
	Delete(ctx context.Context, id string) error
}
