package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateVoterID_Format(t *testing.T) {
	now := time.Date(2025, time.August, 29, 12, 0, 0, 0, time.UTC)
	pattern := regexp.MustCompile(`^VOT-2025-\d{4}$`)

	for i := 0; i < 50; i++ {
		id, err := GenerateVoterID(now)
		require.NoError(t, err)
		assert.Regexp(t, pattern, id)
	}
}

func TestSecureRandomInt_Bounds(t *testing.T) {
	for i := 0; i < 100; i++ {
		n, err := SecureRandomInt(3)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 3)
	}
}

func TestSecureRandomInt_RejectsNonPositiveMax(t *testing.T) {
	_, err := SecureRandomInt(0)
	assert.Error(t, err)
}
