package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/central-university-dev/go-reactbot/internal/config"
)

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("RULES_PATH", "/tmp/reactions.yaml")
	t.Setenv("STORE_FLUSH_INTERVAL", "30s")
	t.Setenv("RATE_LIMIT_REQUESTS", "3")
	t.Setenv("MODERATOR_IDS", "1, 2,3")

	cfg := config.LoadConfig()

	assert.Equal(t, "/tmp/reactions.yaml", cfg.RulesPath)
	assert.Equal(t, 30*time.Second, cfg.StoreFlushInterval)
	assert.Equal(t, 3, cfg.RateLimitRequests)
	assert.Equal(t, 20*time.Second, cfg.RateLimitWindow)
	assert.Equal(t, "react list", cfg.FooterLabel)

	ids, err := cfg.ModeratorIDList()
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids)
}

func TestLoadConfig_NonPositiveValuesFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_REQUESTS", "0")
	t.Setenv("RATE_LIMIT_WINDOW", "0s")
	t.Setenv("STORE_FLUSH_INTERVAL", "-1m")
	t.Setenv("HTTP_REQUEST_TIMEOUT", "0s")

	cfg := config.LoadConfig()

	assert.Equal(t, 5, cfg.RateLimitRequests)
	assert.Equal(t, 20*time.Second, cfg.RateLimitWindow)
	assert.Equal(t, time.Minute, cfg.StoreFlushInterval)
	assert.Equal(t, 10*time.Second, cfg.HTTPRequestTimeout)
}

func TestConfig_ModeratorIDList(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    []int64
		wantErr bool
	}{
		{name: "пусто", value: "", want: nil},
		{name: "один", value: "42", want: []int64{42}},
		{name: "лишние запятые", value: ",7,,8,", want: []int64{7, 8}},
		{name: "мусор", value: "1,abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{ModeratorIDs: tt.value}

			ids, err := cfg.ModeratorIDList()
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, ids)
		})
	}
}
