package handler

import (
	"context"
	"sync"

	"ersbot/internal/domain"
	"ersbot/internal/metrics"
	"ersbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Messenger sends and edits bot messages outside of an update context
type Messenger interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
	Edit(msg tele.Editable, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// SignupSubmitter validates and submits signup forms
type SignupSubmitter interface {
	Validate(form domain.Form) error
	Submit(ctx context.Context, userID int64, form domain.Form) domain.Outcome
}

// AccountLookup returns what the bot knows about a Telegram user
type AccountLookup interface {
	GetUser(userID int64) (*domain.User, error)
}

// Handler manages all bot interactions
type Handler struct {
	bot        *tele.Bot
	messenger  Messenger
	signup     SignupSubmitter
	accounts   AccountLookup
	redirector *service.Redirector
	loginURL   string
	logger     *zap.Logger

	// Parent of every signup request; cancelled by Shutdown
	ctx    context.Context
	cancel context.CancelFunc

	// Open signup forms by chat
	sessions   map[int64]*domain.Session
	sessionMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	signup SignupSubmitter,
	accounts AccountLookup,
	redirector *service.Redirector,
	loginURL string,
	logger *zap.Logger,
) *Handler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Handler{
		bot:        bot,
		messenger:  bot,
		signup:     signup,
		accounts:   accounts,
		redirector: redirector,
		loginURL:   loginURL,
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
		sessions:   make(map[int64]*domain.Session),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/cancel", h.handleCancel)
	h.bot.Handle("/login", h.handleLogin)
	h.bot.Handle("/status", h.handleStatus)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnRole, h.handleRole)
	h.bot.Handle(&btnField, h.handleField)
	h.bot.Handle(&btnSubmit, h.handleSubmit)
	h.bot.Handle(&btnLogin, h.handleLoginLink)

	// Generic callback handler for buttons that arrive without a registered unique
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// Shutdown cancels in-flight signup requests and every pending login redirect
func (h *Handler) Shutdown() {
	h.cancel()
	h.redirector.Stop()
}

// session returns a copy of the chat's open form
func (h *Handler) session(chatID int64) (domain.Session, bool) {
	h.sessionMux.RLock()
	defer h.sessionMux.RUnlock()

	s, ok := h.sessions[chatID]
	if !ok {
		return domain.Session{}, false
	}
	return *s, true
}

// openSession replaces the chat's form with an empty one
func (h *Handler) openSession(chatID int64) domain.Session {
	h.sessionMux.Lock()
	s := domain.NewSession()
	h.sessions[chatID] = s
	open := len(h.sessions)
	h.sessionMux.Unlock()

	metrics.SetOpenSessions(open)
	return *s
}

// updateSession applies fn to the chat's form under the lock and returns
// the updated copy. It reports false when the chat has no open form.
func (h *Handler) updateSession(chatID int64, fn func(s *domain.Session)) (domain.Session, bool) {
	h.sessionMux.Lock()
	defer h.sessionMux.Unlock()

	s, ok := h.sessions[chatID]
	if !ok {
		return domain.Session{}, false
	}
	fn(s)
	return *s, true
}

// updateOwnedSession is updateSession restricted to one form instance.
// It reports false once the chat's form was closed or replaced by a new one.
func (h *Handler) updateOwnedSession(chatID int64, owner *domain.Session, fn func(s *domain.Session)) (domain.Session, bool) {
	h.sessionMux.Lock()
	defer h.sessionMux.Unlock()

	s, ok := h.sessions[chatID]
	if !ok || s != owner {
		return domain.Session{}, false
	}
	fn(s)
	return *s, true
}

// ownsSession reports whether owner is still the chat's open form
func (h *Handler) ownsSession(chatID int64, owner *domain.Session) bool {
	h.sessionMux.RLock()
	defer h.sessionMux.RUnlock()

	s, ok := h.sessions[chatID]
	return ok && s == owner
}

// dropSession discards the chat's form
func (h *Handler) dropSession(chatID int64) bool {
	h.sessionMux.Lock()
	_, ok := h.sessions[chatID]
	delete(h.sessions, chatID)
	open := len(h.sessions)
	h.sessionMux.Unlock()

	metrics.SetOpenSessions(open)
	return ok
}

// Inline keyboard buttons
var (
	btnRole = tele.Btn{
		Unique: "role",
	}
	btnField = tele.Btn{
		Unique: "field",
	}
	btnSubmit = tele.Btn{
		Unique: "submit",
	}
	btnLogin = tele.Btn{
		Unique: "login",
		Text:   "Already have an account? Log in",
	}
)
