package dispatch

import "replkit/internal/core/port"

// NewPrebuiltContext builds a context directly from a registry: the
// registry's bindings are wrapped into one internal handler per matcher
// kind (kinds ordered by first declaration, ordinals preserved within each
// kind) and placed ahead of any explicitly supplied handlers, so declared
// bindings take precedence.
func NewPrebuiltContext(name string, reg *Registry, extra ...port.Handler) *Context {
	return NewContext(name, prebuiltChain(reg, extra)...)
}

// NewPrebuiltPrompt composes the prebuilt binding chain with the standard
// prompt behavior: built-ins at the lowest precedence and unrecognized
// lines reported on the sink.
func NewPrebuiltPrompt(name string, reg *Registry, extra ...port.Handler) *Context {
	return NewStandardPrompt(name, prebuiltChain(reg, extra)...)
}

func prebuiltChain(reg *Registry, extra []port.Handler) []port.Handler {
	return append(reg.kindHandlers(), extra...)
}
