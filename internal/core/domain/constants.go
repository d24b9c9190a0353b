package domain

import "errors"

var (
	// ErrNoMatch is returned by a matcher that declines a line.
	ErrNoMatch = errors.New("no match")

	// ErrCantParseLine is returned by a handler when none of its bindings
	// recognized the line. The owning context recovers it by trying the
	// next handler; it never reaches the user directly.
	ErrCantParseLine = errors.New("can't parse line")

	// ErrUnrecognized is returned by a context after every handler declined.
	ErrUnrecognized = errors.New("unrecognized command")

	// ErrExitContext signals that the current context should be left.
	ErrExitContext = errors.New("exit context")
)
