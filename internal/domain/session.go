package domain

// Session is the per-chat state of an open signup form
type Session struct {
	Form       Form
	Submission Submission
	// Awaiting is the field the next text message fills
	Awaiting Field
	// CardMessageID is the message that renders the form
	CardMessageID int
}

// NewSession opens an empty form that prompts for the username first
func NewSession() *Session {
	return &Session{
		Form:       NewForm(),
		Submission: Submission{Status: StatusIdle},
		Awaiting:   FieldUsername,
	}
}

// SelectRole sets the role unconditionally
func (s *Session) SelectRole(r Role) {
	s.Form.UserType = r
}

// Await marks the field that the next text message fills
func (s *Session) Await(f Field) {
	s.Awaiting = f
}

// Fill stores value into the awaited field and moves on to the next empty
// field. It returns the field that was filled.
func (s *Session) Fill(value string) Field {
	filled := s.Awaiting
	if filled == FieldNone {
		return FieldNone
	}
	s.Form.Set(filled, value)
	s.Awaiting = s.nextEmpty(filled)
	return filled
}

func (s *Session) nextEmpty(after Field) Field {
	fields := Fields()
	start := 0
	for i, f := range fields {
		if f == after {
			start = i + 1
			break
		}
	}
	for i := 0; i < len(fields)-1; i++ {
		f := fields[(start+i)%len(fields)]
		if s.Form.Value(f) == "" {
			return f
		}
	}
	return FieldNone
}

// Begin clears both banners and marks the submission in flight.
// It returns false when a request is already in flight.
func (s *Session) Begin() bool {
	if s.Submission.Submitting() {
		return false
	}
	s.Submission = Submission{Status: StatusSubmitting}
	return true
}

// Fail records a failure banner and clears the in-flight flag
func (s *Session) Fail(message string) {
	s.Submission = Submission{Status: StatusFailed, ErrorMessage: message}
}

// Finish applies the outcome of a submit
func (s *Session) Finish(o Outcome) {
	if o.Succeeded() {
		s.Submission = Submission{Status: StatusSucceeded, SuccessMessage: o.Message}
		return
	}
	s.Fail(o.Message)
}
