package def

import (
	"errors"
	"log/slog"
	"slices"
	"strings"
)

// ErrReadInput reports a failure to read definitions text from a reader.
var ErrReadInput = NewError("failed to read input")

// Error is an error with structured attributes for logging. Sentinels are
// created with [NewError] and specialized with [Error.Wrap] and [Error.With],
// which return new values and leave the receiver untouched.
type Error struct {
	msg   string
	err   error
	attrs []slog.Attr
	base  *Error
}

// NewError returns a sentinel error with message msg.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// AsError returns err as an *Error, wrapping it when it is not one already.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}

	return &Error{err: err}
}

func (e *Error) Error() string {
	parts := make([]string, 0, 2)

	if e.msg != "" {
		parts = append(parts, e.msg)
	}

	if e.err != nil {
		parts = append(parts, e.err.Error())
	}

	return strings.Join(parts, ": ")
}

func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the sentinel e was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.root() == t.root()
}

func (e *Error) root() *Error {
	if e.base != nil {
		return e.base
	}

	return e
}

// Attrs returns the structured attributes attached to e.
func (e *Error) Attrs() []slog.Attr { return slices.Clone(e.attrs) }

// LogValue implements [slog.LogValuer].
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("msg", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap returns a copy of e caused by err.
func (e *Error) Wrap(err error) *Error {
	return &Error{msg: e.msg, err: err, attrs: e.attrs, base: e.root()}
}

// With returns a copy of e with attrs appended.
func (e *Error) With(attrs ...slog.Attr) *Error {
	merged := make([]slog.Attr, 0, len(e.attrs)+len(attrs))
	merged = append(append(merged, e.attrs...), attrs...)

	return &Error{msg: e.msg, err: e.err, attrs: merged, base: e.root()}
}
