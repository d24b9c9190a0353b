package match

import (
	"strings"

	"replkit/internal/core/domain"
)

// Exact recognizes a line that equals a literal, case-sensitively, after
// trimming surrounding whitespace. It binds no values.
type Exact struct {
	literal string
}

func NewExact(literal string) *Exact {
	return &Exact{literal: literal}
}

func (m *Exact) Match(line string) (domain.Values, error) {
	if strings.TrimSpace(line) != m.literal {
		return nil, domain.ErrNoMatch
	}

	return nil, nil
}
