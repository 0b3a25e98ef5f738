package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// UserRecorder stores Telegram users the bot has seen
type UserRecorder interface {
	EnsureUserExists(userID int64) error
}

// EnsureUser creates middleware that records the sender before any handler runs
func EnsureUser(users UserRecorder, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return next(c)
			}

			if err := users.EnsureUserExists(sender.ID); err != nil {
				logger.Error("Failed to ensure user exists in middleware",
					zap.Error(err),
					zap.Int64("user_id", sender.ID),
				)
				if c.Callback() != nil {
					return c.Respond(&tele.CallbackResponse{Text: "Something went wrong. Please try again later."})
				}
				return c.Send("Something went wrong. Please try again later.")
			}

			return next(c)
		}
	}
}

// PrivateOnly keeps the signup form out of group chats
func PrivateOnly(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			chat := c.Chat()
			if chat != nil && chat.Type != tele.ChatPrivate {
				logger.Debug("Ignoring update from non-private chat",
					zap.Int64("chat_id", chat.ID),
					zap.String("type", string(chat.Type)),
				)
				return nil
			}
			return next(c)
		}
	}
}
