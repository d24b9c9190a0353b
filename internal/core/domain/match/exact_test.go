package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"replkit/internal/core/domain"
)

func TestExactMatch(t *testing.T) {
	type TestCase struct {
		description string
		line        string
		wantMatch   bool
	}

	m := NewExact("exit")

	testCases := []TestCase{
		{
			description: "exact literal matches",
			line:        "exit",
			wantMatch:   true,
		},
		{
			description: "surrounding whitespace is trimmed",
			line:        "  exit \t",
			wantMatch:   true,
		},
		{
			description: "case sensitive",
			line:        "Exit",
			wantMatch:   false,
		},
		{
			description: "prefix does not match",
			line:        "exit now",
			wantMatch:   false,
		},
		{
			description: "empty line does not match",
			line:        "",
			wantMatch:   false,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			vals, err := m.Match(testCase.line)

			if testCase.wantMatch {
				require.NoError(t, err)
				assert.Empty(t, vals)
			} else {
				require.ErrorIs(t, err, domain.ErrNoMatch)
			}
		})
	}
}
