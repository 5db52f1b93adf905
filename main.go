package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"tgcompanion/internal/adapters/generator"
	"tgcompanion/internal/adapters/handler"
	"tgcompanion/internal/adapters/sender"
	"tgcompanion/internal/config"
	"tgcompanion/internal/core/port"
	"tgcompanion/internal/core/service"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Info().Msg("starting tgcompanion...")

	if err := godotenv.Load(); err == nil {
		log.Info().Msg("loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	switch cfg.LogLevel {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	var textGenerator port.TextGenerator
	switch cfg.Provider {
	case config.ProviderOpenRouter:
		textGenerator = generator.NewOpenRouter(cfg.OpenRouterAPIKey, cfg.OpenRouterModel)
	default:
		textGenerator = generator.NewOpenAI(cfg.OpenAIURL, cfg.OpenAIModel, cfg.OpenAIAPIKey, cfg.RequestTimeout)
	}

	var messageSender port.MessageSender
	if cfg.ReplyMode == config.ReplyModeSend {
		messageSender = sender.NewTelegram(cfg.TelegramBaseURL, cfg.TelegramBotToken, cfg.RequestTimeout)
		log.Info().Msg("webhook replies will be delivered via sendMessage")
	} else {
		log.Info().Msg("webhook replies will be returned inline")
	}

	relay := service.NewRelay(textGenerator, messageSender)

	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(relay, cfg)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
