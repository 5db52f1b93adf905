package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ProviderOpenAI     = "openai"
	ProviderOpenRouter = "openrouter"

	ReplyModeInline = "inline"
	ReplyModeSend   = "send"
)

// Config holds every environment-sourced value, resolved once at startup and
// immutable for the process lifetime.
type Config struct {
	Host string
	Port string

	// Expected bearer token for inbound requests.
	APIToken string

	Provider         string
	OpenAIURL        string
	OpenAIModel      string
	OpenAIAPIKey     string
	OpenRouterAPIKey string
	OpenRouterModel  string

	ReplyMode        string
	TelegramBaseURL  string
	TelegramBotToken string

	// Per outbound call.
	RequestTimeout time.Duration

	LogLevel  string
	LogPretty bool
}

// Load reads configuration from environment variables, applies defaults and
// validates the result. A missing required value is a startup failure, never
// a per-request error.
func Load() (Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_HOST_NAME", "127.0.0.1")
	viper.SetDefault("SERVER_HOST_PORT", "8080")
	viper.SetDefault("COMPLETION_PROVIDER", ProviderOpenAI)
	viper.SetDefault("TELEGRAM_REPLY_MODE", ReplyModeInline)
	viper.SetDefault("TELEGRAM_API_BASE_URL", "https://api.telegram.org")
	viper.SetDefault("REQUEST_TIMEOUT", "30s")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_PRETTY", false)

	cfg := Config{
		Host:             viper.GetString("SERVER_HOST_NAME"),
		Port:             viper.GetString("SERVER_HOST_PORT"),
		APIToken:         viper.GetString("API_TOKEN"),
		Provider:         strings.ToLower(viper.GetString("COMPLETION_PROVIDER")),
		OpenAIURL:        viper.GetString("OPEN_AI_URL"),
		OpenAIModel:      viper.GetString("OPEN_AI_MODEL"),
		OpenAIAPIKey:     viper.GetString("OPEN_AI_API_KEY"),
		OpenRouterAPIKey: viper.GetString("OPENROUTER_API_KEY"),
		OpenRouterModel:  viper.GetString("OPENROUTER_MODEL"),
		ReplyMode:        strings.ToLower(viper.GetString("TELEGRAM_REPLY_MODE")),
		TelegramBaseURL:  viper.GetString("TELEGRAM_API_BASE_URL"),
		TelegramBotToken: viper.GetString("TELEGRAM_BOT_TOKEN"),
		RequestTimeout:   viper.GetDuration("REQUEST_TIMEOUT"),
		LogLevel:         strings.ToLower(viper.GetString("LOG_LEVEL")),
		LogPretty:        viper.GetBool("LOG_PRETTY"),
	}

	if strings.TrimSpace(cfg.APIToken) == "" {
		return cfg, errors.New("API_TOKEN must not be empty")
	}

	switch cfg.Provider {
	case ProviderOpenAI:
		if strings.TrimSpace(cfg.OpenAIURL) == "" {
			return cfg, errors.New("OPEN_AI_URL must not be empty")
		}
		if strings.TrimSpace(cfg.OpenAIModel) == "" {
			return cfg, errors.New("OPEN_AI_MODEL must not be empty")
		}
	case ProviderOpenRouter:
		if strings.TrimSpace(cfg.OpenRouterAPIKey) == "" {
			return cfg, errors.New("OPENROUTER_API_KEY must not be empty")
		}
		if strings.TrimSpace(cfg.OpenRouterModel) == "" {
			return cfg, errors.New("OPENROUTER_MODEL must not be empty")
		}
	default:
		return cfg, fmt.Errorf("COMPLETION_PROVIDER must be %q or %q", ProviderOpenAI, ProviderOpenRouter)
	}

	switch cfg.ReplyMode {
	case ReplyModeInline:
	case ReplyModeSend:
		if strings.TrimSpace(cfg.TelegramBaseURL) == "" {
			return cfg, errors.New("TELEGRAM_API_BASE_URL must not be empty")
		}
		if strings.TrimSpace(cfg.TelegramBotToken) == "" {
			return cfg, errors.New("TELEGRAM_BOT_TOKEN must not be empty")
		}
	default:
		return cfg, fmt.Errorf("TELEGRAM_REPLY_MODE must be %q or %q", ReplyModeInline, ReplyModeSend)
	}

	if cfg.RequestTimeout <= 0 {
		return cfg, errors.New("REQUEST_TIMEOUT must be a positive duration")
	}

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}
