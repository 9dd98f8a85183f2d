package repository

import (
	"context"

	"access-log-service/internal/models"
)

// MemoryUserRepository serves a fixed set of seeded credentials.
type MemoryUserRepository struct {
	users map[string]models.User
}

func NewMemoryUserRepo(users []models.User) *MemoryUserRepository {
	r := &MemoryUserRepository{users: make(map[string]models.User, len(users))}
	for _, u := range users {
		// first record wins, matching the one-credential-per-username rule
		if _, exists := r.users[u.Username]; !exists {
			r.users[u.Username] = u
		}
	}
	return r
}

// FindByUsername finds a user by exact username
func (r *MemoryUserRepository) FindByUsername(_ context.Context, username string) (*models.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &u, nil
}
