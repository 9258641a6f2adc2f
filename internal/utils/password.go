package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	hashMethod       = "pbkdf2:sha256"
	saltLength       = 8
	saltChars        = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	DefaultHashIters = 600000
)

// HashPassword derives a PBKDF2-HMAC-SHA256 hash with a random 8 character
// salt. The result looks like "pbkdf2:sha256:600000$salt$hexdigest" and
// carries everything CheckPasswordHash needs.
func HashPassword(password string, iterations int) (string, error) {
	if iterations <= 0 {
		iterations = DefaultHashIters
	}
	salt, err := randomSalt(saltLength)
	if err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	digest := derive(password, salt, iterations)
	return fmt.Sprintf("%s:%d$%s$%s", hashMethod, iterations, salt, digest), nil
}

// CheckPasswordHash reports whether password matches hash. Malformed hashes
// never match.
func CheckPasswordHash(password, hash string) bool {
	parts := strings.SplitN(hash, "$", 3)
	if len(parts) != 3 {
		return false
	}
	method, salt, want := parts[0], parts[1], parts[2]

	fields := strings.Split(method, ":")
	if len(fields) != 3 || fields[0] != "pbkdf2" || fields[1] != "sha256" {
		return false
	}
	iterations, err := strconv.Atoi(fields[2])
	if err != nil || iterations <= 0 || salt == "" || want == "" {
		return false
	}

	got := derive(password, salt, iterations)
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}

func derive(password, salt string, iterations int) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, sha256.Size, sha256.New)
	return hex.EncodeToString(key)
}

func randomSalt(n int) (string, error) {
	max := big.NewInt(int64(len(saltChars)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = saltChars[idx.Int64()]
	}
	return string(b), nil
}
