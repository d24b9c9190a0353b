package dispatch

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"replkit/internal/core/domain"
	"replkit/internal/core/port"
)

func TestContextHandlerPrecedence(t *testing.T) {
	first := NewHandler(NewRegistry().BindExact("target", writeAction("first\n")))
	second := NewHandler(NewRegistry().BindExact("target", writeAction("second\n")))

	ctx, out := newAttached(first, second)

	require.NoError(t, ctx.Execute("target"))
	assert.Equal(t, "first\n", out.String())
}

func TestContextFallsThroughToLaterHandler(t *testing.T) {
	first := NewHandler(NewRegistry().BindExact("other", writeAction("other\n")))
	second := NewHandler(NewRegistry().BindExact("target", writeAction("second\n")))

	ctx, out := newAttached(first, second)

	require.NoError(t, ctx.Execute("target"))
	assert.Equal(t, "second\n", out.String())
}

func TestContextUnrecognized(t *testing.T) {
	ctx, out := newAttached(NewHandler(NewRegistry().BindExact("known", writeAction("ok\n"))))

	err := ctx.Execute("qwerty")

	require.ErrorIs(t, err, domain.ErrUnrecognized)
	assert.Contains(t, err.Error(), "qwerty")
	assert.Empty(t, out.String())
}

func TestContextDefaultPrompts(t *testing.T) {
	assert.Equal(t, ">>> ", NewContext("").Prompt())
	assert.Equal(t, "salad > ", NewContext("salad").Prompt())
}

func TestContextAppendLowestPrecedence(t *testing.T) {
	ctx, out := newAttached(NewHandler(NewRegistry().BindExact("target", writeAction("original\n"))))
	ctx.Append(NewHandler(NewRegistry().BindExact("target", writeAction("appended\n"))))

	require.NoError(t, ctx.Execute("target"))
	assert.Equal(t, "original\n", out.String())

	out.Reset()
	require.NoError(t, ctx.Execute("late"))
	assert.Empty(t, out.String())
}

func TestContextIdempotentDispatch(t *testing.T) {
	ctx, out := newAttached(NewHandler(NewRegistry().BindRegex(`pick a (?P<kind>\w+)`, func(c port.CommandContext, vals domain.Values) error {
		c.Write("Picked a " + vals.String("kind") + "\n")
		return nil
	})))

	require.NoError(t, ctx.Execute("pick a strawberry"))
	first := out.String()

	out.Reset()
	require.NoError(t, ctx.Execute("pick a strawberry"))

	assert.Equal(t, first, out.String())
}

func TestContextEnterPending(t *testing.T) {
	nested := NewContext("nested")
	ctx, _ := newAttached()

	_, ok := ctx.TakePending()
	assert.False(t, ok)

	ctx.Enter(nested)

	pending, ok := ctx.TakePending()
	require.True(t, ok)
	assert.Equal(t, nested, pending)

	_, ok = ctx.TakePending()
	assert.False(t, ok)
}

func TestContextCloneIndependentAttachment(t *testing.T) {
	h := NewHandler(NewRegistry().BindExact("ping", writeAction("pong\n")))
	ctx, out := newAttached(h)

	cloneOut := &bytes.Buffer{}
	clone := ctx.Clone("deeper")
	clone.SetOutput(cloneOut)

	require.NoError(t, clone.Execute("ping"))
	require.NoError(t, ctx.Execute("ping"))

	// Each context's handler writes to its own sink.
	assert.Equal(t, "pong\n", cloneOut.String())
	assert.Equal(t, "pong\n", out.String())
	assert.Equal(t, "deeper > ", clone.Prompt())
}

func TestStandardPromptInvalidCommand(t *testing.T) {
	out := &bytes.Buffer{}
	ctx := NewStandardPrompt("")
	ctx.SetOutput(out)

	require.NoError(t, ctx.Execute("qwerty uiop"))
	assert.Equal(t, "Invalid command: qwerty uiop\n", out.String())
}

func TestStandardPromptEcho(t *testing.T) {
	out := &bytes.Buffer{}
	ctx := NewStandardPrompt("")
	ctx.SetOutput(out)

	require.NoError(t, ctx.Execute("echo hello"))
	assert.Equal(t, "hello\n", out.String())
}

func TestStandardPromptExit(t *testing.T) {
	out := &bytes.Buffer{}
	ctx := NewStandardPrompt("")
	ctx.SetOutput(out)

	err := ctx.Execute("exit")

	require.ErrorIs(t, err, domain.ErrExitContext)
	assert.Equal(t, "Bye!\n", out.String())
}

func TestStandardPromptIgnoresBlankLines(t *testing.T) {
	out := &bytes.Buffer{}
	ctx := NewStandardPrompt("")
	ctx.SetOutput(out)

	require.NoError(t, ctx.Execute(""))
	require.NoError(t, ctx.Execute("   \t"))
	assert.Empty(t, out.String())
}

func TestStandardPromptUserHandlersShadowBuiltins(t *testing.T) {
	custom := NewHandler(NewRegistry().BindExact("exit", writeAction("not so fast\n")))

	out := &bytes.Buffer{}
	ctx := NewStandardPrompt("", custom)
	ctx.SetOutput(out)

	require.NoError(t, ctx.Execute("exit"))
	assert.Equal(t, "not so fast\n", out.String())
}
