package port

import "io"

type CommandContext interface {
	// Name returns the context's display name, empty for the default.
	Name() string
	// Prompt returns the prompt string rendered before each read.
	Prompt() string
	// Execute dispatches one line across the context's handlers in order.
	// It returns nil once a handler ran an action, an error wrapping
	// domain.ErrUnrecognized if every handler declined, or the first hard
	// failure a handler surfaced.
	Execute(line string) error
	// Write sends text to the context's output sink.
	Write(text string)
	// SetOutput injects the output sink, usually at session start.
	SetOutput(w io.Writer)
	// Enter requests that the session switch to a nested context after the
	// current line finishes dispatching.
	Enter(next CommandContext)
	// TakePending returns and clears the context requested via Enter.
	TakePending() (CommandContext, bool)
}
