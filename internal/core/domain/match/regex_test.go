package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"replkit/internal/core/domain"
)

func TestRegexNamedCaptures(t *testing.T) {
	m := NewRegex(`go to date (?P<new_date>.*?)\s*$`)

	vals, err := m.Match("go to date October 10 2058")

	require.NoError(t, err)
	assert.Equal(t, "October 10 2058", vals.String("new_date"))
}

func TestRegexMultipleGroups(t *testing.T) {
	m := NewRegex(`(?P<action>raise|drop) shields`)

	vals, err := m.Match("raise shields")
	require.NoError(t, err)
	assert.Equal(t, "raise", vals.String("action"))

	vals, err = m.Match("drop shields")
	require.NoError(t, err)
	assert.Equal(t, "drop", vals.String("action"))
}

func TestRegexNoMatch(t *testing.T) {
	m := NewRegex(`^echo (?P<what>.*)$`)

	_, err := m.Match("qwerty")

	require.ErrorIs(t, err, domain.ErrNoMatch)
}

func TestRegexNoImplicitAnchoring(t *testing.T) {
	unanchored := NewRegex(`pick a (?P<berry_kind>\w+)`)
	vals, err := unanchored.Match("please pick a strawberry now")
	require.NoError(t, err)
	assert.Equal(t, "strawberry", vals.String("berry_kind"))

	anchored := NewRegex(`^pick a (?P<berry_kind>\w+)$`)
	_, err = anchored.Match("please pick a strawberry now")
	require.ErrorIs(t, err, domain.ErrNoMatch)
}

func TestRegexUnnamedGroupsIgnored(t *testing.T) {
	m := NewRegex(`^ls(\s+(?P<dirname>\S+))?\s*$`)

	vals, err := m.Match("ls")
	require.NoError(t, err)
	assert.Equal(t, "", vals.String("dirname"))

	vals, err = m.Match("ls docs")
	require.NoError(t, err)
	assert.Equal(t, "docs", vals.String("dirname"))
	assert.Len(t, vals, 1)
}
