package utils

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// IsBcryptHash reports whether stored looks like a bcrypt hash
func IsBcryptHash(stored string) bool {
	return len(stored) == 60 &&
		(strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$"))
}

// ComparePassword checks password against the stored secret.
// Bcrypt hashes are verified with bcrypt; anything else is treated as a
// plaintext secret and compared in constant time.
func ComparePassword(stored, password string) bool {
	if IsBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}

// HashPassword generates a bcrypt hash, for preparing seed files
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}
