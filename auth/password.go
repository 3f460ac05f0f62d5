// password.go - Salted password hashing and verification

package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	pbkdf2Iterations = 260000
	saltBytes        = 8
	keyBytes         = 32
)

// HashPassword derives a PBKDF2-SHA256 hash with a fresh random salt and
// encodes everything needed for verification into one string:
//
//	pbkdf2:sha256:<iterations>$<salt>$<hexdigest>
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	saltHex := hex.EncodeToString(salt)
	key := pbkdf2.Key([]byte(password), []byte(saltHex), pbkdf2Iterations, keyBytes, sha256.New)

	return fmt.Sprintf("pbkdf2:sha256:%d$%s$%s", pbkdf2Iterations, saltHex, hex.EncodeToString(key)), nil
}

// CheckPassword recomputes the hash with the parameters embedded in encoded
// and compares in constant time. Any malformed credential reads as a
// mismatch, never an error.
func CheckPassword(password, encoded string) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 3 {
		return false
	}
	method, salt, digest := parts[0], parts[1], parts[2]

	methodParts := strings.Split(method, ":")
	if len(methodParts) != 3 || methodParts[0] != "pbkdf2" || methodParts[1] != "sha256" {
		return false
	}
	iterations, err := strconv.Atoi(methodParts[2])
	if err != nil || iterations <= 0 {
		return false
	}

	want, err := hex.DecodeString(digest)
	if err != nil {
		return false
	}

	got := pbkdf2.Key([]byte(password), []byte(salt), iterations, len(want), sha256.New)
	return subtle.ConstantTimeCompare(got, want) == 1
}
