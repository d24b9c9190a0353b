package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"replkit/internal/core/domain"
	"replkit/internal/core/domain/dispatch"
	"replkit/internal/core/domain/match"
	"replkit/internal/core/port"
)

var simpleCmd = &cobra.Command{
	Use:   "simple",
	Short: "Mixed-handler console: berries, games and nested contexts",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runConsole(newSimpleContext())
	},
}

func init() {
	rootCmd.AddCommand(simpleCmd)
}

var berryRegistry = dispatch.NewRegistry().
	BindRegex(`pick a (?P<berry_kind>\w+)`, func(ctx port.CommandContext, vals domain.Values) error {
		ctx.Write("Picked a " + vals.String("berry_kind") + "\n")
		return nil
	}).
	BindRegex(`make (?P<berry_kind>\w+) jam`, func(ctx port.CommandContext, vals domain.Values) error {
		ctx.Write("Made some " + vals.String("berry_kind") + " jam\n")
		return nil
	})

var gameRegistry = dispatch.NewRegistry().
	BindArgs(match.NewArgGrammar("play",
		[]match.Positional{{Name: "game", Default: "nothing"}},
		[]match.Flag{{Name: "well", Kind: match.Bool, Help: "play it well"}},
	), func(ctx port.CommandContext, vals domain.Values) error {
		msg := "I play " + vals.String("game")
		if vals.Bool("well") {
			msg += " very well"
		}
		ctx.Write(msg + "\n")
		return nil
	}).
	BindArgs(match.NewArgGrammar("win", nil, nil), func(ctx port.CommandContext, _ domain.Values) error {
		ctx.Write("I just won!\n")
		return nil
	})

var raynorRegistry = dispatch.NewRegistry().
	BindExact("kerrigan", func(ctx port.CommandContext, _ domain.Values) error {
		ctx.Write("Oh, Sarah...\n")
		return nil
	})

// deeperHandler clones the current context and enters the clone, one level
// per "deeper" line. A hand-written port.Handler, unlike the registry-built
// ones around it.
type deeperHandler struct {
	ctx   port.CommandContext
	depth int
}

func (h *deeperHandler) Attach(ctx port.CommandContext) {
	h.ctx = ctx
}

func (h *deeperHandler) Clone() port.Handler {
	return &deeperHandler{depth: h.depth + 1}
}

func (h *deeperHandler) TryExecute(line string) error {
	if strings.TrimSpace(line) != "deeper" {
		return fmt.Errorf("%w: %s", domain.ErrCantParseLine, line)
	}

	base, ok := h.ctx.(*dispatch.Context)
	if !ok {
		return errors.New("deeper requires a cloneable context")
	}

	next := base.Clone(fmt.Sprintf("depth %d", h.depth+1))
	h.ctx.Write("Going deeper!\nNow in: " + next.Name() + "\n")
	h.ctx.Enter(next)
	return nil
}

func newSimpleContext() *dispatch.Context {
	return dispatch.NewStandardPrompt("",
		&deeperHandler{},
		dispatch.NewHandler(berryRegistry),
		dispatch.NewHandler(gameRegistry),
		dispatch.NewHandler(raynorRegistry),
	)
}
