package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword creates a one-way bcrypt digest of the given password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash compares a plaintext password against a stored
// digest. The comparison inside bcrypt is not vulnerable to the
// string-equality timing leak of a plain digest compare.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
