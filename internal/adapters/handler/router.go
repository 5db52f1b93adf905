package handler

import (
	"net/http"
	"strings"
	"tgcompanion/internal/adapters/handler/middleware"
	"tgcompanion/internal/config"
	"tgcompanion/internal/core/service"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the gin engine: correlation id and logging first, then
// panic recovery, metrics and CORS, then the bearer-gated API routes.
func NewRouter(relay *service.Relay, cfg config.Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.Metrics())

	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return strings.HasPrefix(origin, "http://localhost") || origin == "null"
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Authorization", "Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	h := New(relay)

	authed := r.Group("", middleware.Auth(cfg.APIToken))
	{
		authed.POST("/chat", h.Chat)
		authed.POST("/telegram/webhook", h.TelegramWebhook)
	}

	return r
}
