package dispatch

import (
	"encoding/json"
	"strings"

	"replkit/internal/core/domain"
	"replkit/internal/core/port"
)

// DoneFunc reports whether a capture is complete after seeing line. It may
// keep state across calls.
type DoneFunc func(line string) bool

// FinishFunc consumes the captured buffer once the capture completes.
type FinishFunc func(ctx port.CommandContext, buffer string) error

// captureHandler buffers every line it sees and never declines. When done
// reports completion it runs finish and leaves the context.
type captureHandler struct {
	ctx    port.CommandContext
	buf    strings.Builder
	done   DoneFunc
	finish FinishFunc
}

func (h *captureHandler) Attach(ctx port.CommandContext) {
	h.ctx = ctx
}

func (h *captureHandler) TryExecute(line string) error {
	if h.done(line) {
		if err := h.finish(h.ctx, h.buf.String()); err != nil {
			return err
		}
		return domain.ErrExitContext
	}

	h.buf.WriteString(line)
	h.buf.WriteByte('\n')
	return nil
}

// OverOnTwoEmptyLines returns a DoneFunc that completes the capture after
// two consecutive blank lines.
func OverOnTwoEmptyLines() DoneFunc {
	empty := 0
	return func(line string) bool {
		if strings.TrimSpace(line) != "" {
			empty = 0
			return false
		}

		empty++
		return empty > 1
	}
}

// NewMultiLineContext builds a nested context that swallows every line into
// a buffer until done reports completion, then hands the buffer to finish
// and exits. The prompt marks continuation.
func NewMultiLineContext(name string, done DoneFunc, finish FinishFunc) *Context {
	c := NewContext(name, &captureHandler{done: done, finish: finish})
	c.promptFn = func(*Context) string { return "... " }
	return c
}

// NewJSONContext captures lines until two consecutive blanks and decodes
// the buffer as JSON. Valid input goes to callback; invalid input is
// reported through onErr (default: the decode error on the sink). Either
// way the context exits.
func NewJSONContext(callback func(data any), onErr func(ctx port.CommandContext, err error)) *Context {
	if onErr == nil {
		onErr = func(ctx port.CommandContext, err error) {
			ctx.Write(err.Error() + "\n")
		}
	}

	return NewMultiLineContext("", OverOnTwoEmptyLines(), func(ctx port.CommandContext, buffer string) error {
		var data any
		if err := json.Unmarshal([]byte(buffer), &data); err != nil {
			onErr(ctx, err)
			return nil
		}

		callback(data)
		return nil
	})
}
