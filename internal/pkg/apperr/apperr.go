package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a request failure for logging. The wire shape is the same
// for every kind: {"error": message} with status 500.
type Kind string

const (
	KindConfiguration       Kind = "CONFIGURATION"
	KindCompletionCall      Kind = "COMPLETION_CALL"
	KindMalformedCompletion Kind = "MALFORMED_COMPLETION"
	KindPersistence         Kind = "PERSISTENCE"
	KindValidationInput     Kind = "VALIDATION_INPUT"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
	// Raw holds the unparseable completion text for malformed-completion
	// failures. Logged, never returned to the client.
	Raw string
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Configuration(message string) *Error {
	return &Error{Kind: KindConfiguration, Message: message}
}

func CompletionCall(message string, err error) *Error {
	return &Error{Kind: KindCompletionCall, Message: message, Err: err}
}

func MalformedCompletion(message string, err error, raw string) *Error {
	return &Error{Kind: KindMalformedCompletion, Message: message, Err: err, Raw: raw}
}

func Persistence(message string, err error) *Error {
	return &Error{Kind: KindPersistence, Message: message, Err: err}
}

func ValidationInput(message string) *Error {
	return &Error{Kind: KindValidationInput, Message: message}
}

// KindOf returns the classification of err, or an empty Kind for plain errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

func As(err error) (*Error, bool) {
	var appErr *Error
	ok := errors.As(err, &appErr)
	return appErr, ok
}
