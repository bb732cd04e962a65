package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("student123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NotEqual(t, "student123", hash)
	assert.True(t, CheckPassword(hash, "student123"))
	assert.False(t, CheckPassword(hash, "Student123"))
	assert.False(t, CheckPassword(hash, ""))
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	first, err := HashPassword("pw1")
	require.NoError(t, err)
	second, err := HashPassword("pw1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
