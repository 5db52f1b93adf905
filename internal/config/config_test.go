package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("API_TOKEN", "secret")
	t.Setenv("OPEN_AI_URL", "http://localhost:8081")
	t.Setenv("OPEN_AI_MODEL", "gpt-3.5-turbo")
}

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
	assert.Equal(t, ProviderOpenAI, cfg.Provider)
	assert.Equal(t, ReplyModeInline, cfg.ReplyMode)
	assert.Equal(t, "https://api.telegram.org", cfg.TelegramBaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.LogPretty)
}

func TestLoad_MissingRequired(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T)
	}{
		{
			name: "missing API_TOKEN",
			setup: func(t *testing.T) {
				t.Setenv("OPEN_AI_URL", "http://localhost:8081")
				t.Setenv("OPEN_AI_MODEL", "gpt-3.5-turbo")
			},
		},
		{
			name: "missing OPEN_AI_URL",
			setup: func(t *testing.T) {
				t.Setenv("API_TOKEN", "secret")
				t.Setenv("OPEN_AI_MODEL", "gpt-3.5-turbo")
			},
		},
		{
			name: "missing OPEN_AI_MODEL",
			setup: func(t *testing.T) {
				t.Setenv("API_TOKEN", "secret")
				t.Setenv("OPEN_AI_URL", "http://localhost:8081")
			},
		},
		{
			name: "send mode without bot token",
			setup: func(t *testing.T) {
				setRequired(t)
				t.Setenv("TELEGRAM_REPLY_MODE", "send")
			},
		},
		{
			name: "openrouter provider without api key",
			setup: func(t *testing.T) {
				t.Setenv("API_TOKEN", "secret")
				t.Setenv("COMPLETION_PROVIDER", "openrouter")
				t.Setenv("OPENROUTER_MODEL", "openai/gpt-4.1")
			},
		},
		{
			name: "unknown provider",
			setup: func(t *testing.T) {
				setRequired(t)
				t.Setenv("COMPLETION_PROVIDER", "bedrock")
			},
		},
		{
			name: "unknown reply mode",
			setup: func(t *testing.T) {
				setRequired(t)
				t.Setenv("TELEGRAM_REPLY_MODE", "queue")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			viper.Reset()
			tc.setup(t)

			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestLoad_SendMode(t *testing.T) {
	viper.Reset()
	setRequired(t)
	t.Setenv("TELEGRAM_REPLY_MODE", "send")
	t.Setenv("TELEGRAM_API_BASE_URL", "http://localhost:9090")
	t.Setenv("TELEGRAM_BOT_TOKEN", "bot-token")
	t.Setenv("REQUEST_TIMEOUT", "10s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ReplyModeSend, cfg.ReplyMode)
	assert.Equal(t, "http://localhost:9090", cfg.TelegramBaseURL)
	assert.Equal(t, "bot-token", cfg.TelegramBotToken)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestLoad_OpenRouterProvider(t *testing.T) {
	viper.Reset()
	t.Setenv("API_TOKEN", "secret")
	t.Setenv("COMPLETION_PROVIDER", "openrouter")
	t.Setenv("OPENROUTER_API_KEY", "or-key")
	t.Setenv("OPENROUTER_MODEL", "openai/gpt-4.1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ProviderOpenRouter, cfg.Provider)
	assert.Equal(t, "or-key", cfg.OpenRouterAPIKey)
	assert.Equal(t, "openai/gpt-4.1", cfg.OpenRouterModel)
}
