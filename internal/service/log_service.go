package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"access-log-service/internal/models"
	"access-log-service/internal/repository"
)

type LogService struct {
	logRepo repository.LogRepository
	now     func() time.Time
}

func NewLogService(logRepo repository.LogRepository) *LogService {
	return &LogService{
		logRepo: logRepo,
		now:     time.Now,
	}
}

// WithClock replaces the time source used for new entries
func (s *LogService) WithClock(now func() time.Time) *LogService {
	s.now = now
	return s
}

// Create records a new log entry stamped with the current server time
func (s *LogService) Create(ctx context.Context, username, action string) (*models.LogEntry, error) {
	if isBlank(username) || isBlank(action) {
		return nil, newValidationError("username and action are required")
	}

	entry := &models.LogEntry{
		Username:  username,
		Action:    action,
		Timestamp: s.now().UTC(),
	}
	if err := s.logRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create log: %w", err)
	}

	return entry, nil
}

// List returns all entries, most recent first; equal timestamps keep
// the order the backend returned them in
func (s *LogService) List(ctx context.Context) ([]models.LogEntry, error) {
	logs, err := s.logRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}

	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].Timestamp.After(logs[j].Timestamp)
	})
	return logs, nil
}

// Update replaces the action of an existing entry
func (s *LogService) Update(ctx context.Context, id uint, action string) (*models.LogEntry, error) {
	if isBlank(action) {
		return nil, newValidationError("action is required")
	}

	entry, err := s.logRepo.UpdateAction(ctx, id, action)
	if err != nil {
		return nil, fmt.Errorf("failed to update log %d: %w", id, err)
	}
	return entry, nil
}

// Delete removes an entry
func (s *LogService) Delete(ctx context.Context, id uint) error {
	if err := s.logRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete log %d: %w", id, err)
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
