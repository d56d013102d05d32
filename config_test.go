package invitekit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/invitekit"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		t.Setenv("INVITEKIT_API_KEY", testAPIKey)

		cfg, err := invitekit.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, testAPIKey, cfg.APIKey)
		assert.Equal(t, "https://api.invitekit.com", cfg.BaseURL)
		assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	})

	t.Run("overrides respected", func(t *testing.T) {
		t.Setenv("INVITEKIT_API_KEY", testAPIKey)
		t.Setenv("INVITEKIT_BASE_URL", "https://staging.invitekit.com")
		t.Setenv("INVITEKIT_HTTP_TIMEOUT", "5s")

		cfg, err := invitekit.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "https://staging.invitekit.com", cfg.BaseURL)
		assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	})

	t.Run("missing api key", func(t *testing.T) {
		t.Setenv("INVITEKIT_API_KEY", "")

		_, err := invitekit.LoadConfig()
		require.ErrorIs(t, err, invitekit.ErrParsingConfig)
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	cfg := invitekit.Config{
		APIKey:      testAPIKey,
		BaseURL:     "https://staging.invitekit.com",
		HTTPTimeout: 5 * time.Second,
	}
	client := invitekit.NewFromConfig(cfg)
	require.NotNil(t, client)

	id, err := client.KeyID()
	require.NoError(t, err)
	assert.Equal(t, "00010203-0405-0607-0809-0a0b0c0d0e0f", id)
}
