package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	chatID := c.Chat().ID

	h.logger.Info("User opened signup form",
		zap.Int64("user_id", c.Sender().ID),
		zap.String("username", c.Sender().Username),
	)

	h.redirector.Cancel(chatID)
	h.openSession(chatID)

	if err := h.renderCard(chatID); err != nil {
		h.logger.Error("Failed to render form", zap.Error(err), zap.Int64("chat_id", chatID))
		return c.Send("Something went wrong. Please try again later.")
	}
	return nil
}

// handleCancel discards the open form
func (h *Handler) handleCancel(c tele.Context) error {
	chatID := c.Chat().ID

	h.redirector.Cancel(chatID)
	if !h.dropSession(chatID) {
		return c.Send("There is no open form. Send /start to sign up.")
	}

	h.logger.Info("User cancelled signup", zap.Int64("user_id", c.Sender().ID))
	return c.Send("Signup cancelled. Send /start to begin again.")
}

// handleLogin handles /login command
func (h *Handler) handleLogin(c tele.Context) error {
	h.goToLogin(c.Chat().ID)
	return nil
}

// handleStatus shows the registration linked to the sender
func (h *Handler) handleStatus(c tele.Context) error {
	userID := c.Sender().ID

	user, err := h.accounts.GetUser(userID)
	if err != nil {
		h.logger.Error("Failed to load user", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send("Something went wrong. Please try again later.")
	}

	return c.Send(statusText(user))
}
