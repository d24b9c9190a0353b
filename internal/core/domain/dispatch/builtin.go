package dispatch

import (
	"fmt"
	"strings"

	"replkit/internal/core/domain"
	"replkit/internal/core/port"
)

var exitRegistry = NewRegistry().BindExact("exit", func(ctx port.CommandContext, _ domain.Values) error {
	ctx.Write("Bye!\n")
	return domain.ErrExitContext
})

// NewExitHandler returns the built-in handler that leaves the context on an
// "exit" command, after a farewell on the sink.
func NewExitHandler() *Handler {
	return NewHandler(exitRegistry)
}

var echoRegistry = NewRegistry().BindRegex(`^echo (?P<what>.*)$`, func(ctx port.CommandContext, vals domain.Values) error {
	ctx.Write(vals.String("what") + "\n")
	return nil
})

// NewEchoHandler returns the built-in handler imitating the echo shell
// command.
func NewEchoHandler() *Handler {
	return NewHandler(echoRegistry)
}

// EmptyHandler swallows whitespace-only lines and declines everything else.
type EmptyHandler struct{}

func NewEmptyHandler() *EmptyHandler {
	return &EmptyHandler{}
}

func (h *EmptyHandler) TryExecute(line string) error {
	if strings.TrimSpace(line) == "" {
		return nil
	}

	return fmt.Errorf("%w: %s", domain.ErrCantParseLine, line)
}
