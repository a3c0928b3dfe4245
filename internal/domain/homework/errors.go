package homework

import (
	"errors"
	"fmt"
)

// Kind classifies failures so the poll loop can decide how to react without
// inspecting error strings.
type Kind string

const (
	KindConfig        Kind = "config"         // missing or malformed secrets, fatal before the loop starts
	KindRequest       Kind = "request"        // non-200 status or an unclassified transport failure
	KindConnection    Kind = "connection"     // the API host could not be reached
	KindTimeout       Kind = "timeout"        // the API did not answer in time
	KindSchema        Kind = "schema"         // the response body has an unexpected shape
	KindMissingField  Kind = "missing_field"  // homework_name absent or not a string
	KindUnknownStatus Kind = "unknown_status" // status absent or not in the verdict table
	KindDelivery      Kind = "delivery"       // the chat message could not be sent
)

// Error is the single error type shared by the config loader, the API client,
// the validator, the formatter and the notifier.
type Error struct {
	Kind       Kind
	Msg        string // stable, user-facing text; never includes Err
	StatusCode int   // set for KindRequest when the API answered with a non-200 status
	Err        error // underlying cause, if any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports a match for any *Error of the same kind, so callers can write
// errors.Is(err, &homework.Error{Kind: homework.KindTimeout}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Msg == "" || t.Msg == e.Msg)
}

// Display returns the text announced in the chat for err: Msg for an *Error,
// so the volatile cause (URLs, cursors) does not leak into the dedup key.
func Display(err error) string {
	var he *Error
	if errors.As(err, &he) {
		return he.Msg
	}
	return err.Error()
}

// KindOf returns the kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var he *Error
	if errors.As(err, &he) {
		return he.Kind
	}
	return ""
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error of the given kind around cause.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	e := newError(kind, format, args...)
	e.Err = cause
	return e
}

// Errorf builds an *Error of the given kind without an underlying cause.
func Errorf(kind Kind, format string, args ...any) *Error {
	return newError(kind, format, args...)
}
