package dispatch

import (
	"errors"
	"fmt"
	"io"

	"replkit/internal/core/domain"
	"replkit/internal/core/port"
)

// Context is an ordered composition of handlers sharing one output sink.
// Insertion order is dispatch precedence. A context lives for one session
// and is not safe for concurrent use; dispatch is strictly sequential.
type Context struct {
	name     string
	handlers []port.Handler
	out      io.Writer
	pending  port.CommandContext

	promptFn       func(c *Context) string
	unrecognizedFn func(c *Context, line string) error
}

// NewContext builds a bare context. Unrecognized lines surface as an error
// wrapping domain.ErrUnrecognized; wrap with NewStandardPrompt for the
// user-facing diagnostic instead.
func NewContext(name string, handlers ...port.Handler) *Context {
	c := &Context{
		name:     name,
		handlers: append([]port.Handler{}, handlers...),
		promptFn: defaultPrompt,
		unrecognizedFn: func(c *Context, line string) error {
			return fmt.Errorf("%w: %s", domain.ErrUnrecognized, line)
		},
	}

	for _, h := range c.handlers {
		c.attach(h)
	}

	return c
}

func (c *Context) attach(h port.Handler) {
	if a, ok := h.(interface{ Attach(port.CommandContext) }); ok {
		a.Attach(c)
	}
}

// Append adds a handler at the lowest precedence. The handler list is
// append-only after construction.
func (c *Context) Append(h port.Handler) {
	c.attach(h)
	c.handlers = append(c.handlers, h)
}

func (c *Context) Name() string {
	return c.name
}

func (c *Context) Prompt() string {
	return c.promptFn(c)
}

func defaultPrompt(c *Context) string {
	if c.name != "" {
		return c.name + " > "
	}

	return ">>> "
}

// Execute dispatches one line: each handler is tried in order, the first
// one that recognizes the line wins, and a handler's decline moves on to
// the next. Hard failures (usage errors, exit signals, action errors) stop
// the walk and propagate unchanged.
func (c *Context) Execute(line string) error {
	for _, h := range c.handlers {
		err := h.TryExecute(line)
		if errors.Is(err, domain.ErrCantParseLine) {
			continue
		}

		return err
	}

	return c.unrecognizedFn(c, line)
}

func (c *Context) Write(text string) {
	if c.out == nil {
		return
	}

	_, _ = io.WriteString(c.out, text)
	if f, ok := c.out.(interface{ Flush() error }); ok {
		_ = f.Flush()
	}
}

func (c *Context) SetOutput(w io.Writer) {
	c.out = w
}

func (c *Context) Enter(next port.CommandContext) {
	c.pending = next
}

func (c *Context) TakePending() (port.CommandContext, bool) {
	p := c.pending
	c.pending = nil
	return p, p != nil
}

// Clone builds a context with the same behavior and handler chain under a
// new name. Handlers exposing Clone are duplicated so their context
// back-references stay independent; stateless handlers are shared.
func (c *Context) Clone(name string) *Context {
	handlers := make([]port.Handler, 0, len(c.handlers))
	for _, h := range c.handlers {
		if cl, ok := h.(interface{ Clone() port.Handler }); ok {
			handlers = append(handlers, cl.Clone())
		} else {
			handlers = append(handlers, h)
		}
	}

	clone := NewContext(name, handlers...)
	clone.promptFn = c.promptFn
	clone.unrecognizedFn = c.unrecognizedFn
	clone.out = c.out
	return clone
}

// NewStandardPrompt builds the top-level REPL-facing context: the supplied
// handlers first, then the built-ins at the lowest precedence (blank lines
// ignored, echo, exit) so user handlers can shadow them. A line nobody
// recognizes is absorbed into an "Invalid command" diagnostic on the sink
// instead of an error.
func NewStandardPrompt(name string, handlers ...port.Handler) *Context {
	all := append(append([]port.Handler{}, handlers...),
		NewEmptyHandler(), NewEchoHandler(), NewExitHandler())

	c := NewContext(name, all...)
	c.unrecognizedFn = func(c *Context, line string) error {
		c.Write("Invalid command: " + line + "\n")
		return nil
	}

	return c
}
