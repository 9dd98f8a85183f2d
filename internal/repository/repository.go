package repository

import (
	"context"
	"errors"

	"access-log-service/internal/models"
)

var (
	ErrLogNotFound  = errors.New("log not found")
	ErrUserNotFound = errors.New("user not found")
	// ErrReadOnly is returned by backends without a write path.
	ErrReadOnly = errors.New("storage backend is read-only")
)

// LogRepository persists access log entries.
type LogRepository interface {
	// Create stores entry and sets its ID.
	Create(ctx context.Context, entry *models.LogEntry) error
	List(ctx context.Context) ([]models.LogEntry, error)
	UpdateAction(ctx context.Context, id uint, action string) (*models.LogEntry, error)
	Delete(ctx context.Context, id uint) error
}

// UserRepository looks up login credentials.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

// Pinger is implemented by backends that can check their connection.
type Pinger interface {
	Ping(ctx context.Context) error
}
