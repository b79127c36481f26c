package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("Password123", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, CheckPasswordHash("Password123", hash))
	assert.False(t, CheckPasswordHash("password123", hash))
	assert.False(t, CheckPasswordHash("", hash))
}

func TestHashPasswordClampsCost(t *testing.T) {
	// Out-of-range costs fall back to the bcrypt default instead of failing
	hash, err := HashPassword("Password123", 0)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestValidatePassword(t *testing.T) {
	assert.True(t, ValidatePassword("Password123"))

	assert.False(t, ValidatePassword("Pass1"))       // too short
	assert.False(t, ValidatePassword("password123")) // no uppercase
	assert.False(t, ValidatePassword("PASSWORD123")) // no lowercase
	assert.False(t, ValidatePassword("Passwordabc")) // no digit
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("ana@example.com"))
	assert.True(t, ValidateEmail("ana.souza+tag@sub.example.com.br"))

	assert.False(t, ValidateEmail("not-an-email"))
	assert.False(t, ValidateEmail("@example.com"))
	assert.False(t, ValidateEmail("ana@"))
}

func TestSanitizeEmail(t *testing.T) {
	assert.Equal(t, "ana@example.com", SanitizeEmail("  Ana@Example.COM "))
}
