package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testIters = 1000

func TestHashPasswordFormat(t *testing.T) {
	hash, err := HashPassword("hunter22", testIters)
	require.NoError(t, err)

	parts := strings.Split(hash, "$")
	require.Len(t, parts, 3)
	assert.Equal(t, "pbkdf2:sha256:1000", parts[0])
	assert.Len(t, parts[1], 8)
	assert.Len(t, parts[2], 64)
	assert.NotContains(t, hash, "hunter22")
}

func TestHashPasswordIsSalted(t *testing.T) {
	a, err := HashPassword("same-password", testIters)
	require.NoError(t, err)
	b, err := HashPassword("same-password", testIters)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, CheckPasswordHash("same-password", a))
	assert.True(t, CheckPasswordHash("same-password", b))
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := HashPassword("correct horse", testIters)
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("correct horse", hash))
	assert.False(t, CheckPasswordHash("correct horsE", hash))
	assert.False(t, CheckPasswordHash("", hash))
}

func TestCheckPasswordHashKnownVector(t *testing.T) {
	// Well-known PBKDF2-HMAC-SHA256 vector: "password", "salt", 1 iteration, 32 bytes.
	hash := "pbkdf2:sha256:1$salt$120fb6cffcf8b32c43e7225256c4f837a86548c92ccc35480805987cb70be17b"
	assert.True(t, CheckPasswordHash("password", hash))
	assert.False(t, CheckPasswordHash("Password", hash))
}

func TestCheckPasswordHashMalformed(t *testing.T) {
	for _, hash := range []string{
		"",
		"plaintext",
		"pbkdf2:sha256$salt$abcd",
		"pbkdf2:sha256:abc$salt$abcd",
		"pbkdf2:sha256:-5$salt$abcd",
		"pbkdf2:sha1:1000$salt$abcd",
		"scrypt:32768:8:1$salt$abcd",
		"pbkdf2:sha256:1000$$abcd",
		"pbkdf2:sha256:1000$salt$",
	} {
		assert.False(t, CheckPasswordHash("password", hash), hash)
	}
}
