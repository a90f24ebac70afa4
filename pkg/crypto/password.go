// Package crypto wraps bcrypt password hashing so callers never deal with
// cost factors or byte conversions directly.
package crypto

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a plaintext password with the default bcrypt cost.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the stored
// bcrypt hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
