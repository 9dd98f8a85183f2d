package repository

import (
	"context"
	"sync"

	"access-log-service/internal/models"
)

// MemoryLogRepository keeps log entries for the lifetime of the process.
// All access goes through mu; IDs are never reused after a delete.
type MemoryLogRepository struct {
	mu     sync.RWMutex
	logs   []models.LogEntry
	lastID uint
}

func NewMemoryLogRepo(seed ...models.LogEntry) *MemoryLogRepository {
	r := &MemoryLogRepository{logs: make([]models.LogEntry, 0, len(seed))}
	for _, entry := range seed {
		r.logs = append(r.logs, entry)
		if entry.ID > r.lastID {
			r.lastID = entry.ID
		}
	}
	return r
}

// Create appends a new log entry with the next free ID
func (r *MemoryLogRepository) Create(_ context.Context, entry *models.LogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	entry.ID = r.lastID
	r.logs = append(r.logs, *entry)
	return nil
}

// List returns a copy of all entries in insertion order
func (r *MemoryLogRepository) List(_ context.Context) ([]models.LogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	logs := make([]models.LogEntry, len(r.logs))
	copy(logs, r.logs)
	return logs, nil
}

// UpdateAction replaces the action of an existing entry
func (r *MemoryLogRepository) UpdateAction(_ context.Context, id uint, action string) (*models.LogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, ErrLogNotFound
	}
	r.logs[i].Action = action
	updated := r.logs[i]
	return &updated, nil
}

// Delete removes an entry by ID
func (r *MemoryLogRepository) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrLogNotFound
	}
	r.logs = append(r.logs[:i], r.logs[i+1:]...)
	return nil
}

func (r *MemoryLogRepository) indexOf(id uint) int {
	for i := range r.logs {
		if r.logs[i].ID == id {
			return i
		}
	}
	return -1
}
