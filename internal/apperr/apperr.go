// Package apperr classifies every failure a workflow can surface so that
// callers (HTTP handlers, CLI) never see an uncategorized error.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is the user-facing failure category.
type Kind int

const (
	// Unknown is the fallback for anything the classifier cannot place.
	Unknown Kind = iota
	// Validation means a required input was empty or missing.
	Validation
	// InvalidInput means an input was present but unparseable.
	InvalidInput
	// MissingCredential means no API key is configured for the call.
	MissingCredential
	// NotFound means the remote reported zero results.
	NotFound
	// RequestFailed means the remote reported a non-success status.
	RequestFailed
	// EmptyResult means an expected non-empty AI sequence came back empty.
	EmptyResult
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case InvalidInput:
		return "invalid_input"
	case MissingCredential:
		return "missing_credential"
	case NotFound:
		return "not_found"
	case RequestFailed:
		return "request_failed"
	case EmptyResult:
		return "empty_result"
	default:
		return "unknown"
	}
}

// Error carries a Kind alongside the underlying failure.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// New creates a classified error with no cause.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Newf creates a classified error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a Kind to an underlying error.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf extracts the Kind from err. Errors produced by this package keep
// their kind; anything else falls back to message inspection, matching
// the known substrings remote APIs and transports put in their messages.
func KindOf(err error) Kind {
	if err == nil {
		return Unknown
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return classifyMessage(err.Error())
}

func classifyMessage(msg string) Kind {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "invalid url"):
		return InvalidInput
	case strings.Contains(lower, "no videos found"):
		return NotFound
	case strings.Contains(lower, "not found"):
		return NotFound
	case strings.Contains(lower, "failed to fetch"):
		return RequestFailed
	default:
		return Unknown
	}
}
