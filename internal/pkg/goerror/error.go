package goerror

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that the requested record could not be found.
// Repository implementations return it so callers can branch with errors.Is.
var ErrNotFound = errors.New("record not found")

// Kind classifies failures into the buckets the HTTP layer knows how to map.
//
// The set is closed on purpose: every error that reaches the error codec is
// either one of these or gets routed to the server branch.
type Kind int

const (
	// KindServer represents server-side faults, including collaborator errors.
	KindServer Kind = iota
	// KindNotFound indicates a referenced record does not exist.
	KindNotFound
	// KindBadRequest indicates a malformed request outside field validation.
	KindBadRequest
	// KindValidation indicates one or more field-level rule violations.
	KindValidation
)

// String returns the string representation of the failure kind.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "FAILURE_NOT_FOUND"
	case KindBadRequest:
		return "FAILURE_BAD_REQUEST"
	case KindValidation:
		return "FAILURE_VALIDATION"
	default:
		return "FAILURE_SERVER"
	}
}

// Error is the structured failure used across the application.
//
// It can wrap an underlying cause while carrying a user-facing message, a
// failure kind, and (for validation failures) the per-field messages.
type Error struct {
	err    error
	msg    string
	kind   Kind
	fields map[string][]string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	if e.msg != "" {
		return e.msg
	}
	return "unknown failure"
}

// Msg returns the user-facing message.
func (e *Error) Msg() string {
	return e.msg
}

// Kind returns the failure kind.
func (e *Error) Kind() Kind {
	return e.kind
}

// Fields returns per-field validation messages, nil for non-validation kinds.
func (e *Error) Fields() map[string][]string {
	return e.fields
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.err
}

// StatusCode maps the failure kind to an HTTP status code.
func (e *Error) StatusCode() int {
	switch e.kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindBadRequest, KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// KindOf returns the failure kind of err, or KindServer when err is not an
// *Error. It never fails, so callers can branch on it directly.
func KindOf(err error) Kind {
	var gerr *Error
	if errors.As(err, &gerr) {
		return gerr.Kind()
	}
	return KindServer
}

// NewNotFound creates a not-found failure naming the entity type and key.
func NewNotFound(entity, key string) error {
	return &Error{
		msg:  fmt.Sprintf("%s with id '%s' was not found", entity, key),
		kind: KindNotFound,
	}
}

// NewBadRequest creates a bad-request failure with the provided message.
func NewBadRequest(msgs ...string) error {
	msg := "Invalid request body"
	if len(msgs) > 0 && msgs[0] != "" {
		msg = msgs[0]
	}
	return &Error{msg: msg, kind: KindBadRequest}
}

// NewValidation creates a validation failure carrying per-field messages.
func NewValidation(fields map[string][]string) error {
	return &Error{
		msg:    "One or more validation errors occurred.",
		kind:   KindValidation,
		fields: fields,
	}
}

// NewServer wraps an unclassified failure as a server fault.
//
// Handlers call it on every collaborator error that is not already an *Error,
// so nothing escapes the error codec unmapped.
func NewServer(err error) error {
	return &Error{err: err, msg: "Internal server error", kind: KindServer}
}
