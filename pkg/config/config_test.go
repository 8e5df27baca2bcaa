package config_test

import (
	"testing"

	"github.com/avis-project/avis_backend/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_UsesProvidedJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "configured-secret")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "configured-secret", cfg.JWTSecret)
}

func TestLoadConfig_GeneratesEphemeralJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	// 32 random bytes, hex encoded.
	assert.Regexp(t, `^[0-9a-f]{64}$`, cfg.JWTSecret)
}
