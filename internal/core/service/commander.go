package service

import (
	"errors"
	"fmt"
	"io"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"replkit/internal/core/domain"
	"replkit/internal/core/port"
)

// Commander drives one console session: it reads lines, dispatches them
// against the current context and manages the context stack. Execution is
// single-threaded; one line is fully dispatched before the next is read.
type Commander struct {
	stack  []port.CommandContext
	reader port.LineReader
	out    io.Writer
	logger zerolog.Logger
}

func NewCommander(root port.CommandContext, reader port.LineReader, out io.Writer) *Commander {
	id, _ := uuid.NewV4()

	c := &Commander{
		reader: reader,
		out:    out,
		logger: log.With().Str("session", id.String()).Logger(),
	}
	c.enter(root)

	return c
}

// Context returns the context currently on top of the stack, nil once the
// session has ended.
func (c *Commander) Context() port.CommandContext {
	if len(c.stack) == 0 {
		return nil
	}

	return c.stack[len(c.stack)-1]
}

// Execute dispatches one line against the current context and applies the
// session-level outcomes: a usage error becomes a diagnostic on the sink,
// an exit signal pops the stack, a context requested by the action is
// entered, and any other action failure is logged without ending the
// session.
func (c *Commander) Execute(line string) {
	ctx := c.Context()
	if ctx == nil {
		return
	}

	c.logger.Debug().Str("context", ctx.Name()).Str("line", line).Msg("dispatching line")

	err := ctx.Execute(line)

	var usage *domain.UsageError
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrExitContext):
		c.exitCurrent()
	case errors.As(err, &usage):
		ctx.Write(usage.Error() + "\n")
	default:
		c.logger.Err(err).Str("context", ctx.Name()).Msg("command failed")
	}

	if next, ok := ctx.TakePending(); ok {
		c.enter(next)
	}
}

// Run reads and dispatches lines until the context stack empties or the
// input source is exhausted.
func (c *Commander) Run() error {
	defer func() {
		if err := c.reader.Close(); err != nil {
			c.logger.Warn().Err(err).Msg("failed to close line reader")
		}
	}()

	c.logger.Info().Msg("starting session")

	for len(c.stack) > 0 {
		line, err := c.reader.ReadLine(c.Context().Prompt())
		if errors.Is(err, io.EOF) {
			c.logger.Info().Msg("input exhausted, ending session")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read line: %w", err)
		}

		c.Execute(line)
	}

	c.logger.Info().Msg("session ended")
	return nil
}

func (c *Commander) enter(ctx port.CommandContext) {
	ctx.SetOutput(c.out)
	c.stack = append(c.stack, ctx)
	c.logger.Debug().Str("context", ctx.Name()).Msg("entering context")
}

func (c *Commander) exitCurrent() {
	ctx := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.logger.Debug().Str("context", ctx.Name()).Msg("leaving context")
}
