package handler

import (
	"errors"
	"net/http"
	"tgcompanion/internal/core/domain"
	"tgcompanion/internal/core/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Handler carries the relay service shared by all routes.
type Handler struct {
	relay *service.Relay
}

func New(relay *service.Relay) *Handler {
	return &Handler{relay: relay}
}

type chatRequest struct {
	Prompt string `json:"prompt"`
}

// Chat answers a direct prompt with the provider's completion text as a
// plain-text body.
func (h *Handler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid request body")
		return
	}

	reply, err := h.relay.Ask(c.Request.Context(), req.Prompt)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyPrompt) {
			c.String(http.StatusBadRequest, "Prompt cannot be empty")
			return
		}

		log.Error().Err(err).Msg("error calling chat API")
		c.String(http.StatusInternalServerError, "Error calling chat API")
		return
	}

	c.String(http.StatusOK, reply)
}
