package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"access-log-service/internal/models"
)

// FileLogRepository reads log entries from a JSON document on every List.
// It has no write path.
type FileLogRepository struct {
	path string
}

func NewFileLogRepo(path string) *FileLogRepository {
	return &FileLogRepository{path: path}
}

// List reads the whole file; a missing file is an empty collection
func (r *FileLogRepository) List(_ context.Context) ([]models.LogEntry, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.LogEntry{}, nil
		}
		return nil, fmt.Errorf("failed to read log file: %w", err)
	}

	var records []fileRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse log file %s: %w", r.path, err)
	}

	logs := make([]models.LogEntry, 0, len(records))
	for _, rec := range records {
		ts, err := parseTimestamp(rec.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("log %d in %s: %w", rec.ID, r.path, err)
		}
		logs = append(logs, models.LogEntry{
			ID:        rec.ID,
			Username:  rec.Username,
			Action:    rec.Action,
			Timestamp: ts,
		})
	}
	return logs, nil
}

type fileRecord struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Action    string `json:"action"`
	Timestamp string `json:"timestamp"`
}

// Accepted timestamp layouts; zone-less values are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

func parseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", value)
}

func (r *FileLogRepository) Create(context.Context, *models.LogEntry) error {
	return ErrReadOnly
}

func (r *FileLogRepository) UpdateAction(context.Context, uint, string) (*models.LogEntry, error) {
	return nil, ErrReadOnly
}

func (r *FileLogRepository) Delete(context.Context, uint) error {
	return ErrReadOnly
}
