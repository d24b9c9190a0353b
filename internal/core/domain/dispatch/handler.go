package dispatch

import (
	"errors"
	"fmt"

	"replkit/internal/core/domain"
	"replkit/internal/core/port"
)

// Handler tries its bindings against a line in ordinal order and runs the
// first action whose matcher accepts it. Bindings are shared with the
// registry the handler was built from; per-handler state is only the
// context attached at composition time.
type Handler struct {
	bindings []port.Binding
	ctx      port.CommandContext
}

func NewHandler(src port.BindingSource) *Handler {
	return &Handler{bindings: src.Bindings()}
}

// Attach injects the owning context. Called by the context when the handler
// is added to it; the handler uses it only to reach the output sink.
func (h *Handler) Attach(ctx port.CommandContext) {
	h.ctx = ctx
}

// Clone returns a handler over the same bindings with no context attached,
// so one handler type can serve several contexts at once.
func (h *Handler) Clone() port.Handler {
	return &Handler{bindings: h.bindings}
}

func (h *Handler) TryExecute(line string) error {
	for _, b := range h.bindings {
		err := b.Try(h.ctx, line)
		if errors.Is(err, domain.ErrNoMatch) {
			continue
		}

		var help *domain.HelpRequest
		if errors.As(err, &help) {
			if h.ctx != nil {
				h.ctx.Write(help.Usage)
			}
			return nil
		}

		// First fit wins: a match, a usage error or an action failure all
		// stop the walk here.
		return err
	}

	return fmt.Errorf("%w: %s", domain.ErrCantParseLine, line)
}
