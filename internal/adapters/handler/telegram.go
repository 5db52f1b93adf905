package handler

import (
	"errors"
	"net/http"
	"tgcompanion/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

// TelegramWebhook handles one update delivery from the Telegram bot API.
// Depending on how the relay was wired, the reply is either written back
// inline or pushed via sendMessage with a fixed ack body.
func (h *Handler) TelegramWebhook(c *gin.Context) {
	var update models.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		c.String(http.StatusBadRequest, "Invalid request body")
		return
	}

	var message domain.InboundMessage
	if update.Message != nil {
		message.ChatID = update.Message.Chat.ID
		message.Text = update.Message.Text
	}

	reply, err := h.relay.Answer(c.Request.Context(), message)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoMessageText):
			c.String(http.StatusBadRequest, "No Message Text")
		case isDeliveryError(err):
			log.Error().Err(err).Int64("chatId", message.ChatID).Msg("error sending telegram message")
			c.String(http.StatusInternalServerError, "Error sending Telegram message")
		default:
			log.Error().Err(err).Msg("error calling chat API")
			c.String(http.StatusInternalServerError, "Error calling chat API")
		}
		return
	}

	c.String(http.StatusOK, reply)
}

func isDeliveryError(err error) bool {
	var platformErr *domain.PlatformError
	return errors.Is(err, domain.ErrDeliveryTransport) || errors.As(err, &platformErr)
}
