package domain

// SubmissionStatus is the lifecycle state of a signup submission
type SubmissionStatus string

const (
	StatusIdle       SubmissionStatus = "idle"
	StatusSubmitting SubmissionStatus = "submitting"
	StatusSucceeded  SubmissionStatus = "succeeded"
	StatusFailed     SubmissionStatus = "failed"
)

// Submission holds the submit state and the banner shown with the form
type Submission struct {
	Status         SubmissionStatus
	ErrorMessage   string
	SuccessMessage string
}

// Submitting reports whether a request is in flight
func (s Submission) Submitting() bool {
	return s.Status == StatusSubmitting
}

// OutcomeKind classifies how a submission ended
type OutcomeKind string

const (
	OutcomeSucceeded       OutcomeKind = "succeeded"
	OutcomeValidationError OutcomeKind = "validation_error"
	OutcomeServerError     OutcomeKind = "server_error"
	OutcomeTransportError  OutcomeKind = "transport_error"
)

// Outcome is the result of one submit
type Outcome struct {
	Status     SubmissionStatus
	Kind       OutcomeKind
	Message    string
	StatusCode int
	RequestID  string
}

// Succeeded reports whether the signup was accepted
func (o Outcome) Succeeded() bool {
	return o.Status == StatusSucceeded
}
