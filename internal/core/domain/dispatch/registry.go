package dispatch

import (
	"errors"

	"github.com/rs/zerolog/log"

	"replkit/internal/core/domain"
	"replkit/internal/core/domain/match"
	"replkit/internal/core/port"
)

type matcherKind int

const (
	kindExact matcherKind = iota
	kindRegex
	kindArgs
	kindOther
)

// Registry collects (matcher, action) bindings in declaration order. Build
// one per handler type, usually in a package-level var, and construct any
// number of handlers from it: the bindings are resolved once and shared
// read-only, so every handler built from one registry has identical
// precedence. Declaring two bindings with equivalent matchers is legal;
// the earlier one silently wins.
type Registry struct {
	bindings []port.Binding
	kinds    []matcherKind
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Bind appends a binding at the next ordinal slot.
func (r *Registry) Bind(m port.Matcher, action port.Action) *Registry {
	r.bindings = append(r.bindings, matcherBinding{matcher: m, action: action})
	r.kinds = append(r.kinds, kindOf(m))
	log.Debug().Int("ordinal", len(r.bindings)-1).Msg("registered binding")
	return r
}

func (r *Registry) BindExact(literal string, action port.Action) *Registry {
	return r.Bind(match.NewExact(literal), action)
}

func (r *Registry) BindRegex(pattern string, action port.Action) *Registry {
	return r.Bind(match.NewRegex(pattern), action)
}

func (r *Registry) BindArgs(grammar *match.ArgGrammar, action port.Action) *Registry {
	return r.Bind(grammar, action)
}

// BindHandler folds a whole sub-handler into a single ordinal slot. The
// sub-handler retries across its own bindings internally; its decline maps
// to a plain non-match of this slot.
func (r *Registry) BindHandler(sub port.Handler) *Registry {
	r.bindings = append(r.bindings, handlerBinding{sub: sub})
	r.kinds = append(r.kinds, kindOther)
	log.Debug().Int("ordinal", len(r.bindings)-1).Msg("registered sub-handler binding")
	return r
}

// Bindings implements port.BindingSource.
func (r *Registry) Bindings() []port.Binding {
	out := make([]port.Binding, len(r.bindings))
	copy(out, r.bindings)
	return out
}

// kindHandlers groups the registry's bindings into one handler per matcher
// kind, kinds ordered by first declaration and ordinals preserved within
// each kind. Used by the prebuilt contexts.
func (r *Registry) kindHandlers() []port.Handler {
	var order []matcherKind
	groups := make(map[matcherKind][]port.Binding)

	for i, b := range r.bindings {
		k := r.kinds[i]
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], b)
	}

	handlers := make([]port.Handler, 0, len(order))
	for _, k := range order {
		handlers = append(handlers, &Handler{bindings: groups[k]})
	}

	return handlers
}

func kindOf(m port.Matcher) matcherKind {
	switch m.(type) {
	case *match.Exact:
		return kindExact
	case *match.Regex:
		return kindRegex
	case *match.ArgGrammar:
		return kindArgs
	default:
		return kindOther
	}
}

type matcherBinding struct {
	matcher port.Matcher
	action  port.Action
}

func (b matcherBinding) Try(ctx port.CommandContext, line string) error {
	vals, err := b.matcher.Match(line)
	if err != nil {
		return err
	}

	return b.action(ctx, vals)
}

type handlerBinding struct {
	sub port.Handler
}

func (b handlerBinding) Try(ctx port.CommandContext, line string) error {
	if a, ok := b.sub.(interface{ Attach(port.CommandContext) }); ok {
		a.Attach(ctx)
	}

	err := b.sub.TryExecute(line)
	if errors.Is(err, domain.ErrCantParseLine) {
		return domain.ErrNoMatch
	}

	return err
}
