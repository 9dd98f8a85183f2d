package models

import "time"

// LogEntry represents the access_logs table.
// Timestamp is filled from the gorm NowFunc when left zero.
// Only Action may change after creation.
type LogEntry struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"size:255;not null" json:"username"`
	Action    string    `gorm:"size:255;not null" json:"action"`
	Timestamp time.Time `gorm:"not null;index;autoCreateTime" json:"timestamp"`
}

// TableName specifies the table name for LogEntry model
func (LogEntry) TableName() string {
	return "access_logs"
}

// Login outcomes recorded as log actions
const (
	ActionLoginSuccessful = "login successful"
	ActionLoginFailed     = "login failed"
)
