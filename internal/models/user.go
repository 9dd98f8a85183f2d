package models

// User represents the users table.
// Password holds the stored secret as-is: plaintext in the seed data, or a bcrypt hash.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id" yaml:"id"`
	Username string `gorm:"uniqueIndex;not null;size:50" json:"username" yaml:"username"`
	Password string `gorm:"not null;size:255" json:"-" yaml:"password"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// DefaultUsers is the credential seed used when no seed file is configured.
func DefaultUsers() []User {
	return []User{
		{ID: 1, Username: "Aryan", Password: "password123"},
		{ID: 2, Username: "admin", Password: "admin123"},
	}
}
