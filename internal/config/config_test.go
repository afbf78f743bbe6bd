package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.ServerPort)
	assert.False(t, cfg.Debug)
	assert.Equal(t, 0, cfg.BcryptCost)
	assert.Contains(t, cfg.DatabaseURL, "postgres://")
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DEBUG", "true")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/voltlog")
	t.Setenv("BCRYPT_COST", "12")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "postgres://u:p@db:5432/voltlog", cfg.DatabaseURL)
	assert.Equal(t, 12, cfg.BcryptCost)
}

func TestLoadIgnoresInvalidValues(t *testing.T) {
	t.Setenv("DEBUG", "not-a-bool")
	t.Setenv("BCRYPT_COST", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.Debug)
	assert.Equal(t, 0, cfg.BcryptCost)
}
