// Package cryptox checks operator passwords against stored credentials.
//
// Stored values are either plaintext (the historical format) or bcrypt
// hashes produced by HashPassword. Both live in the same password column of
// the credential file, so hashing credentials needs no format change.
package cryptox

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

// IsHashed reports whether stored looks like a bcrypt hash.
func IsHashed(stored string) bool {
	for _, p := range bcryptPrefixes {
		if strings.HasPrefix(stored, p) {
			return true
		}
	}
	return false
}

// VerifyPassword reports whether candidate matches the stored password.
func VerifyPassword(stored, candidate string) bool {
	if IsHashed(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}

// HashPassword returns a bcrypt hash of password suitable for the
// credential file. The hash never contains the field separator.
func HashPassword(password []byte) (string, error) {
	const op = "cryptox.HashPassword"
	h, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(h), nil
}
