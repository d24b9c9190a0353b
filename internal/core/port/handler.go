package port

import "replkit/internal/core/domain"

// Action is the code bound to a matcher, invoked with the owning context
// and the matcher's bound values when the matcher accepts a line. Actions
// report results by writing to the context's output sink.
type Action func(ctx CommandContext, vals domain.Values) error

type Binding interface {
	// Try evaluates the binding against line. It returns domain.ErrNoMatch
	// if the binding does not apply, nil if it matched and its action ran,
	// or any error the matcher or action produced.
	Try(ctx CommandContext, line string) error
}

type BindingSource interface {
	// Bindings returns the source's bindings in declaration order. The
	// returned slice is the caller's to keep; the source stays immutable.
	Bindings() []Binding
}

type Handler interface {
	// TryExecute attempts to parse and execute a command. It returns an
	// error wrapping domain.ErrCantParseLine if the handler does not
	// recognize the line, so the owning context can try the next handler.
	TryExecute(line string) error
}
