// Package errs defines the error kinds shared by the indexing and retrieval
// engine. Fatal kinds (BadFormat, IOError, BufferUnderrun) are meant to
// terminate the calling CLI; the rest are recoverable conditions the caller
// is expected to log and continue past.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrBadFormat is returned when an index file's magic bytes or
	// structural layout do not match what the reader expects.
	ErrBadFormat = errors.New("bad index format")
	// ErrIOError wraps a failure to open, read, or write an index file.
	ErrIOError = errors.New("index i/o error")
	// ErrBufferUnderrun is returned when a varbyte decoder runs past the
	// end of its input buffer.
	ErrBufferUnderrun = errors.New("buffer underrun")
	// ErrMalformedInput marks a document line missing its two tab
	// separators. Never fatal; the caller skips the line.
	ErrMalformedInput = errors.New("malformed input line")
	// ErrUnknownTerm marks a query term absent from the dictionary. Never
	// an error in practice — callers treat it as an empty posting list.
	ErrUnknownTerm = errors.New("unknown term")
	// ErrMalformedQuery marks an unexpected token sequence during query
	// parsing. The parser recovers and never returns this to a caller;
	// it exists so tests and logs can name the condition.
	ErrMalformedQuery = errors.New("malformed query")
)

// Error wraps a sentinel error kind with positional or file context.
type Error struct {
	Err     error
	Context string
}

func (e *Error) Error() string {
	if e.Context == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Context)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap attaches context to a sentinel error kind.
func Wrap(sentinel error, context string) *Error {
	return &Error{Err: sentinel, Context: context}
}

// Wrapf is Wrap with a format string for the context.
func Wrapf(sentinel error, format string, args ...any) *Error {
	return &Error{Err: sentinel, Context: fmt.Sprintf(format, args...)}
}
