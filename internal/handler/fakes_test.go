package handler

import (
	"context"
	"strings"
	"sync"

	"ersbot/internal/domain"
	"ersbot/internal/service"
	"ersbot/internal/testutil"

	tele "gopkg.in/telebot.v3"
)

const testChatID = int64(1001)

// fakeContext implements the parts of tele.Context the handlers use
type fakeContext struct {
	tele.Context

	chat     *tele.Chat
	sender   *tele.User
	text     string
	callback *tele.Callback

	mu        sync.Mutex
	sent      []interface{}
	responses []*tele.CallbackResponse
	deleted   bool
}

func newTextContext(text string) *fakeContext {
	return &fakeContext{
		chat:   &tele.Chat{ID: testChatID, Type: tele.ChatPrivate},
		sender: &tele.User{ID: testChatID, Username: "alice"},
		text:   text,
	}
}

func newCallbackContext(unique, data string, messageID int) *fakeContext {
	c := newTextContext("")
	c.callback = &tele.Callback{
		ID:      "cb",
		Unique:  unique,
		Data:    data,
		Message: &tele.Message{ID: messageID, Chat: c.chat},
	}
	return c
}

func (c *fakeContext) Chat() *tele.Chat         { return c.chat }
func (c *fakeContext) Sender() *tele.User       { return c.sender }
func (c *fakeContext) Text() string             { return c.text }
func (c *fakeContext) Callback() *tele.Callback { return c.callback }

func (c *fakeContext) Message() *tele.Message {
	if c.callback != nil {
		return c.callback.Message
	}
	return &tele.Message{ID: 1, Chat: c.chat, Text: c.text}
}

func (c *fakeContext) Send(what interface{}, opts ...interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, what)
	return nil
}

func (c *fakeContext) Respond(resp ...*tele.CallbackResponse) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(resp) == 0 {
		c.responses = append(c.responses, &tele.CallbackResponse{})
		return nil
	}
	c.responses = append(c.responses, resp[0])
	return nil
}

func (c *fakeContext) Delete() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleted = true
	return nil
}

func (c *fakeContext) lastResponse() *tele.CallbackResponse {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.responses) == 0 {
		return nil
	}
	return c.responses[len(c.responses)-1]
}

type sentMessage struct {
	text   string
	markup *tele.ReplyMarkup
	edit   bool
}

// fakeMessenger records messages instead of calling Telegram
type fakeMessenger struct {
	mu     sync.Mutex
	nextID int
	log    []sentMessage
}

func (m *fakeMessenger) record(what interface{}, opts []interface{}, edit bool) {
	msg := sentMessage{edit: edit}
	msg.text, _ = what.(string)
	for _, opt := range opts {
		if markup, ok := opt.(*tele.ReplyMarkup); ok {
			msg.markup = markup
		}
	}
	m.log = append(m.log, msg)
}

func (m *fakeMessenger) Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	m.record(what, opts, false)
	return &tele.Message{ID: m.nextID}, nil
}

func (m *fakeMessenger) Edit(msg tele.Editable, what interface{}, opts ...interface{}) (*tele.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record(what, opts, true)
	return &tele.Message{}, nil
}

func (m *fakeMessenger) messages() []sentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]sentMessage, len(m.log))
	copy(out, m.log)
	return out
}

func (m *fakeMessenger) last() sentMessage {
	msgs := m.messages()
	if len(msgs) == 0 {
		return sentMessage{}
	}
	return msgs[len(msgs)-1]
}

func (m *fakeMessenger) countContaining(substr string) int {
	n := 0
	for _, msg := range m.messages() {
		if strings.Contains(msg.text, substr) {
			n++
		}
	}
	return n
}

// fakeSubmitter applies the real validation rules and returns a canned outcome
type fakeSubmitter struct {
	mu      sync.Mutex
	calls   int
	forms   []domain.Form
	outcome domain.Outcome

	started chan struct{}
	release chan struct{}
	// hold blocks Submit for one username until its channel is closed
	hold map[string]chan struct{}
}

func (f *fakeSubmitter) Validate(form domain.Form) error {
	return service.NewSignupService(nil, nil, nil, testutil.NewTestLogger()).Validate(form)
}

func (f *fakeSubmitter) Submit(ctx context.Context, userID int64, form domain.Form) domain.Outcome {
	f.mu.Lock()
	f.calls++
	f.forms = append(f.forms, form)
	f.mu.Unlock()

	if err := f.Validate(form); err != nil {
		return domain.Outcome{Status: domain.StatusFailed, Kind: domain.OutcomeValidationError, Message: err.Error()}
	}

	if f.started != nil {
		f.started <- struct{}{}
	}
	gate := f.release
	if ch, ok := f.hold[form.Username]; ok {
		gate = ch
	}
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return domain.Outcome{Status: domain.StatusFailed, Kind: domain.OutcomeTransportError, Message: ctx.Err().Error()}
		}
	}
	return f.outcome
}

func (f *fakeSubmitter) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeAccounts serves /status lookups
type fakeAccounts struct {
	user *domain.User
	err  error
}

func (a *fakeAccounts) GetUser(userID int64) (*domain.User, error) {
	return a.user, a.err
}
