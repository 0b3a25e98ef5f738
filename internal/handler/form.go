package handler

import (
	"strings"

	"ersbot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText fills the field the form is waiting for
func (h *Handler) handleText(c tele.Context) error {
	chatID := c.Chat().ID
	text := c.Text()

	// Ignore commands (starting with /)
	if strings.HasPrefix(strings.TrimSpace(text), "/") {
		return nil
	}

	var filled domain.Field
	if _, ok := h.updateSession(chatID, func(s *domain.Session) {
		filled = s.Fill(text)
	}); !ok {
		return c.Send("Send /start to create an account.")
	}

	if filled == domain.FieldNone {
		return c.Send("Choose a field on the form to change it.")
	}

	if filled.Secret() {
		// Keep passwords out of the chat history
		if err := c.Delete(); err != nil {
			h.logger.Warn("Failed to delete password message",
				zap.Error(err),
				zap.Int64("chat_id", chatID),
			)
		}
	}

	h.logger.Debug("Form field filled",
		zap.Int64("chat_id", chatID),
		zap.String("field", string(filled)),
	)

	// Move the form below the user's message
	h.updateSession(chatID, func(s *domain.Session) {
		s.CardMessageID = 0
	})
	if err := h.renderCard(chatID); err != nil {
		h.logger.Error("Failed to render form", zap.Error(err), zap.Int64("chat_id", chatID))
		return c.Send("Something went wrong. Please try again later.")
	}
	return nil
}
