package directory

import (
	"context"
	"strings"
	"sync"
	"time"

	"toolroom/models"
)

// Mem is the in-process directory used when the record store does not run
// on postgres (and by the test suite).
type Mem struct {
	mu    sync.Mutex
	users []models.User
}

func NewMem(users []models.User) *Mem {
	cp := make([]models.User, len(users))
	copy(cp, users)
	return &Mem{users: cp}
}

func (m *Mem) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].ID == id {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *Mem) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if strings.EqualFold(m.users[i].Email, email) {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *Mem) TouchUserSeen(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].ID == id {
			now := time.Now().UTC()
			m.users[i].LastSeenAt = &now
			return nil
		}
	}
	return ErrUserNotFound
}
