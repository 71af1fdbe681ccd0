package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest password bcrypt accepts. The limit is in
// bytes, so a password of multi-byte characters reaches it with fewer runes.
const MaxPasswordBytes = 72

// HashPassword hashes a plaintext password with bcrypt at the default cost.
// Passwords longer than MaxPasswordBytes return bcrypt.ErrPasswordTooLong.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash reports whether password matches a hash made by HashPassword.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
