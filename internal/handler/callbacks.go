package handler

import (
	"strings"
	"unicode"

	"ersbot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// isNotModified reports whether an edit failed only because the card
// already shows the same content, e.g. after a double click
func isNotModified(err error) bool {
	return err != nil && strings.Contains(err.Error(), "message is not modified")
}

// handleCallback handles callback queries that did not match a registered button
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Clean data from all non-printable characters
	data := cleanCallbackData(callback.Data)
	h.logger.Info("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("id", callback.ID),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	unique, payload := callback.Unique, data
	if unique == "" {
		unique, payload, _ = strings.Cut(data, "|")
	}

	switch unique {
	case btnRole.Unique:
		return h.selectRole(c, payload)
	case btnField.Unique:
		return h.editField(c, payload)
	case btnSubmit.Unique:
		return h.handleSubmit(c)
	case btnLogin.Unique:
		return h.handleLoginLink(c)
	}

	// If it's not handled, acknowledge it anyway
	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// handleRole handles a click on one of the role toggles
func (h *Handler) handleRole(c tele.Context) error {
	return h.selectRole(c, c.Callback().Data)
}

func (h *Handler) selectRole(c tele.Context, data string) error {
	chatID := c.Chat().ID

	role, err := domain.ParseRole(cleanCallbackData(data))
	if err != nil {
		h.logger.Warn("Unknown role in callback", zap.String("data", data))
		return c.Respond(&tele.CallbackResponse{Text: "Unknown role"})
	}

	if _, ok := h.updateSession(chatID, func(s *domain.Session) {
		adoptCard(s, c)
		s.SelectRole(role)
	}); !ok {
		return respondExpired(c)
	}

	if err := h.renderCard(chatID); err != nil {
		h.logger.Error("Failed to render form", zap.Error(err), zap.Int64("chat_id", chatID))
	}
	return c.Respond()
}

// handleField handles a click on one of the field buttons
func (h *Handler) handleField(c tele.Context) error {
	return h.editField(c, c.Callback().Data)
}

func (h *Handler) editField(c tele.Context, data string) error {
	chatID := c.Chat().ID

	field, ok := domain.ParseField(cleanCallbackData(data))
	if !ok {
		h.logger.Warn("Unknown field in callback", zap.String("data", data))
		return c.Respond(&tele.CallbackResponse{Text: "Unknown field"})
	}

	if _, ok := h.updateSession(chatID, func(s *domain.Session) {
		adoptCard(s, c)
		s.Await(field)
	}); !ok {
		return respondExpired(c)
	}

	if err := h.renderCard(chatID); err != nil {
		h.logger.Error("Failed to render form", zap.Error(err), zap.Int64("chat_id", chatID))
	}
	return c.Respond(&tele.CallbackResponse{Text: promptText(field)})
}

// handleSubmit handles a click on the submit control
func (h *Handler) handleSubmit(c tele.Context) error {
	chatID := c.Chat().ID
	userID := c.Sender().ID

	var (
		form  domain.Form
		owner *domain.Session
		began bool
	)
	if _, ok := h.updateSession(chatID, func(s *domain.Session) {
		adoptCard(s, c)
		began = s.Begin()
		form = s.Form
		owner = s
	}); !ok {
		return respondExpired(c)
	}

	if !began {
		return c.Respond(&tele.CallbackResponse{Text: "Please wait…"})
	}

	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}

	h.submit(chatID, userID, owner, form)
	return nil
}

// handleLoginLink handles the "already have an account" link
func (h *Handler) handleLoginLink(c tele.Context) error {
	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}
	h.goToLogin(c.Chat().ID)
	return nil
}

// adoptCard makes the clicked message the card that later updates edit
func adoptCard(s *domain.Session, c tele.Context) {
	if msg := c.Message(); msg != nil && msg.ID != 0 {
		s.CardMessageID = msg.ID
	}
}

func respondExpired(c tele.Context) error {
	return c.Respond(&tele.CallbackResponse{
		Text:      "This form is no longer open. Send /start to sign up.",
		ShowAlert: true,
	})
}
