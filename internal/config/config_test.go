package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://adsapi.snapchat.com/v1/", cfg.Snap.BaseURL)
	assert.Equal(t, "https://accounts.snapchat.com/login/oauth2/authorize", cfg.Snap.AuthorizeURL)
	assert.Equal(t, "https://accounts.snapchat.com/login/oauth2/access_token", cfg.Snap.AccessTokenURL)
	assert.Equal(t, "0123456789876543210", cfg.Snap.State)
	assert.Equal(t, []string{"snapchat-marketing-api"}, cfg.Snap.Scopes)
	assert.Equal(t, 30*time.Second, cfg.Snap.HTTPTimeout)
	assert.Equal(t, 1, cfg.Snap.MaxConcurrentRequests)
	assert.Equal(t, 29, cfg.StatsSync.LookbackDays)
	assert.False(t, cfg.StatsSync.Enabled)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
}

func TestNewConfig_Environment(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("SNAP_CLIENT_ID", "client-id")
	t.Setenv("SNAP_ORG_ID", "org-1")
	t.Setenv("SNAP_BASE_URL", "http://localhost:9999/v1")
	t.Setenv("SNAP_HTTP_TIMEOUT", "5s")
	t.Setenv("SNAP_MAX_CONCURRENT_REQUESTS", "0")
	t.Setenv("STATS_SYNC_ENABLED", "true")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "client-id", cfg.Snap.ClientID)
	assert.Equal(t, "org-1", cfg.Snap.OrgID)
	assert.Equal(t, "http://localhost:9999/v1/", cfg.Snap.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Snap.HTTPTimeout)
	assert.Equal(t, 1, cfg.Snap.MaxConcurrentRequests)
	assert.True(t, cfg.StatsSync.Enabled)
}
