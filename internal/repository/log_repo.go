package repository

import (
	"context"
	"errors"

	"access-log-service/internal/models"

	"gorm.io/gorm"
)

// LogRepo stores log entries in the access_logs table.
// The database assigns IDs.
type LogRepo struct {
	db *gorm.DB
}

func NewLogRepo(db *gorm.DB) *LogRepo {
	return &LogRepo{db: db}
}

// Create inserts a new log entry
func (r *LogRepo) Create(ctx context.Context, entry *models.LogEntry) error {
	entry.ID = 0
	return r.db.WithContext(ctx).Create(entry).Error
}

// List returns all entries, most recent first
func (r *LogRepo) List(ctx context.Context) ([]models.LogEntry, error) {
	var logs []models.LogEntry
	err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Order("id ASC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// UpdateAction changes the action column of one entry
func (r *LogRepo) UpdateAction(ctx context.Context, id uint, action string) (*models.LogEntry, error) {
	db := r.db.WithContext(ctx)

	result := db.Model(&models.LogEntry{}).
		Where("id = ?", id).
		Update("action", action)
	if result.Error != nil {
		return nil, result.Error
	}

	// RowsAffected is not used for the existence check: MySQL reports
	// zero affected rows when the value is unchanged.
	return r.findByID(ctx, id)
}

// Delete removes an entry by ID
func (r *LogRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.LogEntry{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLogNotFound
	}
	return nil
}

// Ping runs a round-trip against the database
func (r *LogRepo) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *LogRepo) findByID(ctx context.Context, id uint) (*models.LogEntry, error) {
	var entry models.LogEntry
	err := r.db.WithContext(ctx).First(&entry, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLogNotFound
		}
		return nil, err
	}
	return &entry, nil
}
