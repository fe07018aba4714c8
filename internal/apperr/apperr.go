// Package apperr defines the error kinds shared across the aggregation
// pipeline, letting callers branch on failure class without string matching.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so callers can decide whether it is fatal to a
// connector, a subscription, or neither.
type Kind int

const (
	Unknown Kind = iota
	Transport
	Parse
	Config
	NoVenues
	ChannelClosed
)

func (k Kind) String() string {
	switch k {
	case Transport:
		return "transport"
	case Parse:
		return "parse"
	case Config:
		return "config"
	case NoVenues:
		return "no_venues"
	case ChannelClosed:
		return "channel_closed"
	default:
		return "unknown"
	}
}

// Error wraps an underlying cause with a Kind so callers can inspect it with
// errors.As without parsing messages.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds an *Error of the given kind whose cause is a plain error
// carrying msg.
func New(kind Kind, op, msg string) *Error {
	return &Error{Kind: kind, Op: op, Err: errors.New(msg)}
}

// Wrap attaches a Kind and operation name to an existing error. Wrap returns
// nil when err is nil so call sites can write `return apperr.Wrap(...)`
// unconditionally after an `if err != nil` guard-free call.
func Wrap(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf extracts the Kind of err, returning Unknown if err is not (or does
// not wrap) an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
