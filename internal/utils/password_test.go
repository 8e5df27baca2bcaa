package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("User@1234")
	require.NoError(t, err)
	assert.NotEqual(t, "User@1234", hash)
	assert.True(t, CheckPasswordHash("User@1234", hash))
}

func TestCheckPasswordHash_WrongCredential(t *testing.T) {
	hash, err := HashPassword("User@1234")
	require.NoError(t, err)
	assert.False(t, CheckPasswordHash("User@1235", hash))
}
