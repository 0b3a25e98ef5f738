package handler

import (
	"strconv"

	"ersbot/internal/domain"
	"ersbot/internal/metrics"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// submit runs one submission for a form already marked in flight. Results
// only touch owner; a form opened later in the same chat is left alone.
func (h *Handler) submit(chatID, userID int64, owner *domain.Session, form domain.Form) {
	if h.signup.Validate(form) == nil && h.ownsSession(chatID, owner) {
		// Show the progress label only when a request is about to go out
		if err := h.renderCard(chatID); err != nil {
			h.logger.Warn("Failed to render progress", zap.Error(err), zap.Int64("chat_id", chatID))
		}
	}

	outcome := h.signup.Submit(h.ctx, userID, form)

	if _, ok := h.updateOwnedSession(chatID, owner, func(s *domain.Session) {
		s.Finish(outcome)
	}); !ok {
		// The form was closed or replaced while the request was in flight
		h.logger.Info("Signup finished after form was closed",
			zap.Int64("chat_id", chatID),
			zap.String("request_id", outcome.RequestID),
			zap.String("outcome", string(outcome.Kind)),
		)
		return
	}

	if err := h.renderCard(chatID); err != nil {
		h.logger.Error("Failed to render form", zap.Error(err), zap.Int64("chat_id", chatID))
	}

	if outcome.Succeeded() {
		h.redirector.Schedule(chatID, func() {
			if !h.ownsSession(chatID, owner) {
				return
			}
			h.goToLogin(chatID)
		})
	}
}

// goToLogin closes the chat's form and shows the login screen
func (h *Handler) goToLogin(chatID int64) {
	h.redirector.Cancel(chatID)
	h.dropSession(chatID)
	metrics.RecordRedirect()

	text, markup := loginScreen(h.loginURL)
	opts := []interface{}{}
	if markup != nil {
		opts = append(opts, markup)
	}
	if _, err := h.messenger.Send(tele.ChatID(chatID), text, opts...); err != nil {
		h.logger.Error("Failed to send login screen", zap.Error(err), zap.Int64("chat_id", chatID))
	}
}

// renderCard shows the chat's form, editing the current card when there is one
func (h *Handler) renderCard(chatID int64) error {
	s, ok := h.session(chatID)
	if !ok {
		return nil
	}

	text, markup := cardText(s), cardMarkup(s)

	if s.CardMessageID != 0 {
		card := tele.StoredMessage{MessageID: strconv.Itoa(s.CardMessageID), ChatID: chatID}
		_, err := h.messenger.Edit(card, text, markup)
		if err == nil || isNotModified(err) {
			return nil
		}
		h.logger.Warn("Failed to edit form, sending new",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
		)
	}

	msg, err := h.messenger.Send(tele.ChatID(chatID), text, markup)
	if err != nil {
		return err
	}
	h.updateSession(chatID, func(s *domain.Session) {
		s.CardMessageID = msg.ID
	})
	return nil
}
