package match

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"

	"replkit/internal/core/domain"
)

// Kind is the value type a positional argument or flag carries.
type Kind int

const (
	String Kind = iota
	Int
	Bool
)

// Positional describes one positional argument of a command grammar, in
// declaration order. Optional positionals yield Default when absent.
type Positional struct {
	Name     string
	Kind     Kind
	Required bool
	Default  any
}

// Flag describes one named option. Bool flags are switches; the others take
// a value as "--name value" or "--name=value". Short is an optional
// one-letter alias.
type Flag struct {
	Name    string
	Short   string
	Kind    Kind
	Default any
	Help    string
}

// ArgGrammar recognizes a line whose first whitespace-delimited token equals
// the command token, then parses the remaining tokens against its declared
// positionals and flags. A line naming the command but violating the grammar yields a
// *domain.UsageError rather than a non-match, because the command token
// already identified intent.
type ArgGrammar struct {
	command     string
	positionals []Positional
	flags       []Flag
}

func NewArgGrammar(command string, positionals []Positional, flags []Flag) *ArgGrammar {
	return &ArgGrammar{command: command, positionals: positionals, flags: flags}
}

// Command returns the grammar's command token.
func (g *ArgGrammar) Command() string {
	return g.command
}

func (g *ArgGrammar) Match(line string) (domain.Values, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || fields[0] != g.command {
		return nil, domain.ErrNoMatch
	}

	tokens, err := domain.SplitTokens(line)
	if err != nil {
		return nil, g.usageError(err.Error())
	}

	fs := g.flagSet()
	if err := fs.Parse(tokens[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, &domain.HelpRequest{Command: g.command, Usage: g.Usage()}
		}
		return nil, g.usageError(err.Error())
	}

	rest := fs.Args()
	if len(rest) > len(g.positionals) {
		return nil, g.usageError(fmt.Sprintf("unexpected argument %q", rest[len(g.positionals)]))
	}

	vals := domain.Values{}
	for i, p := range g.positionals {
		if i >= len(rest) {
			if p.Required {
				return nil, g.usageError(fmt.Sprintf("missing required argument %q", p.Name))
			}
			vals[p.Name] = p.Default
			continue
		}

		v, err := coerce(rest[i], p.Kind)
		if err != nil {
			return nil, g.usageError(fmt.Sprintf("argument %q: %v", p.Name, err))
		}
		vals[p.Name] = v
	}

	for _, f := range g.flags {
		switch f.Kind {
		case Bool:
			b, _ := fs.GetBool(f.Name)
			vals[f.Name] = b
		case Int:
			n, _ := fs.GetInt(f.Name)
			vals[f.Name] = n
		default:
			s, _ := fs.GetString(f.Name)
			vals[f.Name] = s
		}
	}

	return vals, nil
}

// Usage renders a one-command usage block: synopsis line plus pflag's flag
// listing when the grammar declares flags.
func (g *ArgGrammar) Usage() string {
	var b strings.Builder
	b.WriteString("usage: ")
	b.WriteString(g.command)

	for _, p := range g.positionals {
		if p.Required {
			fmt.Fprintf(&b, " <%s>", p.Name)
		} else {
			fmt.Fprintf(&b, " [%s]", p.Name)
		}
	}

	if len(g.flags) > 0 {
		b.WriteString(" [flags]\n")
		b.WriteString(g.flagSet().FlagUsages())
	} else {
		b.WriteString("\n")
	}

	return b.String()
}

func (g *ArgGrammar) flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(g.command, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	for _, f := range g.flags {
		switch f.Kind {
		case Bool:
			fs.BoolP(f.Name, f.Short, cast.ToBool(f.Default), f.Help)
		case Int:
			fs.IntP(f.Name, f.Short, cast.ToInt(f.Default), f.Help)
		default:
			fs.StringP(f.Name, f.Short, cast.ToString(f.Default), f.Help)
		}
	}

	return fs
}

func (g *ArgGrammar) usageError(reason string) *domain.UsageError {
	return &domain.UsageError{Command: g.command, Reason: reason}
}

func coerce(raw string, k Kind) (any, error) {
	switch k {
	case Int:
		return cast.ToIntE(raw)
	case Bool:
		return cast.ToBoolE(raw)
	default:
		return raw, nil
	}
}
