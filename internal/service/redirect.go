package service

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultRedirectDelay is how long the success banner stays before login
const DefaultRedirectDelay = 2 * time.Second

type pendingRedirect struct {
	timer *time.Timer
}

// Redirector runs one deferred callback per chat. Scheduling again replaces
// the pending callback; a cancelled or replaced callback never runs.
type Redirector struct {
	delay  time.Duration
	logger *zap.Logger

	mu      sync.Mutex
	pending map[int64]*pendingRedirect
	stopped bool
}

// NewRedirector creates a redirector firing after delay
func NewRedirector(delay time.Duration, logger *zap.Logger) *Redirector {
	return &Redirector{
		delay:   delay,
		logger:  logger,
		pending: make(map[int64]*pendingRedirect),
	}
}

// Schedule runs fn once after the delay unless cancelled first
func (r *Redirector) Schedule(chatID int64, fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped {
		return
	}
	if prev, ok := r.pending[chatID]; ok {
		prev.timer.Stop()
	}

	entry := &pendingRedirect{}
	entry.timer = time.AfterFunc(r.delay, func() {
		r.mu.Lock()
		current, ok := r.pending[chatID]
		if !ok || current != entry {
			r.mu.Unlock()
			return
		}
		delete(r.pending, chatID)
		r.mu.Unlock()

		r.logger.Debug("Running scheduled redirect", zap.Int64("chat_id", chatID))
		fn()
	})
	r.pending[chatID] = entry
}

// Cancel drops the pending callback of a chat. It reports whether one was pending.
func (r *Redirector) Cancel(chatID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.pending[chatID]
	if !ok {
		return false
	}
	entry.timer.Stop()
	delete(r.pending, chatID)
	return true
}

// Pending reports whether a callback is scheduled for the chat
func (r *Redirector) Pending(chatID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.pending[chatID]
	return ok
}

// Stop cancels every pending callback and ignores later Schedule calls
func (r *Redirector) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for chatID, entry := range r.pending {
		entry.timer.Stop()
		delete(r.pending, chatID)
	}
	r.stopped = true
}
