package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSecureRandomString_HexOfRequestedLength(t *testing.T) {
	s, err := GenerateSecureRandomString(32)
	require.NoError(t, err)
	assert.Len(t, s, 64)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]+$`), s)
}

func TestGenerateSecureRandomString_RejectsNonPositiveLength(t *testing.T) {
	_, err := GenerateSecureRandomString(0)
	assert.Error(t, err)
}
