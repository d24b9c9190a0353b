package dispatch

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"replkit/internal/core/domain"
	"replkit/internal/core/port"
)

func TestOverOnTwoEmptyLines(t *testing.T) {
	done := OverOnTwoEmptyLines()

	assert.False(t, done("some text"))
	assert.False(t, done(""))
	assert.False(t, done("more text")) // counter resets
	assert.False(t, done(""))
	assert.True(t, done(""))
}

func TestMultiLineContextBuffersUntilDone(t *testing.T) {
	var captured string
	ctx := NewMultiLineContext("editor", OverOnTwoEmptyLines(),
		func(_ port.CommandContext, buffer string) error {
			captured = buffer
			return nil
		})
	ctx.SetOutput(&bytes.Buffer{})

	require.NoError(t, ctx.Execute("first line"))
	require.NoError(t, ctx.Execute("second line"))
	require.NoError(t, ctx.Execute(""))

	err := ctx.Execute("")

	require.ErrorIs(t, err, domain.ErrExitContext)
	assert.Equal(t, "first line\nsecond line\n\n", captured)
}

func TestMultiLineContextPrompt(t *testing.T) {
	ctx := NewMultiLineContext("", OverOnTwoEmptyLines(), func(port.CommandContext, string) error {
		return nil
	})

	assert.Equal(t, "... ", ctx.Prompt())
}

func TestJSONContextValidInput(t *testing.T) {
	var decoded any
	ctx := NewJSONContext(func(data any) { decoded = data }, nil)
	ctx.SetOutput(&bytes.Buffer{})

	require.NoError(t, ctx.Execute(`{"warp": 9.99}`))
	require.NoError(t, ctx.Execute(""))

	err := ctx.Execute("")

	require.ErrorIs(t, err, domain.ErrExitContext)
	require.IsType(t, map[string]any{}, decoded)
	assert.Equal(t, 9.99, decoded.(map[string]any)["warp"])
}

func TestJSONContextInvalidInput(t *testing.T) {
	out := &bytes.Buffer{}
	called := false
	ctx := NewJSONContext(func(any) { called = true }, nil)
	ctx.SetOutput(out)

	require.NoError(t, ctx.Execute("{not json"))
	require.NoError(t, ctx.Execute(""))

	err := ctx.Execute("")

	// Invalid input still leaves the capture context.
	require.ErrorIs(t, err, domain.ErrExitContext)
	assert.False(t, called)
	assert.NotEmpty(t, out.String())
}
