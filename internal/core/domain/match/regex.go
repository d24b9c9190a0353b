package match

import (
	"regexp"

	"replkit/internal/core/domain"
)

// Regex recognizes a line by regular expression and binds its named capture
// groups as string values. The pattern is applied to the raw, untrimmed
// line and is not anchored implicitly; pattern authors write ^...$ where
// they need it.
type Regex struct {
	re *regexp.Regexp
}

// NewRegex compiles pattern at declaration time and panics on an invalid
// expression, so a bad binding fails at startup rather than at dispatch.
func NewRegex(pattern string) *Regex {
	return &Regex{re: regexp.MustCompile(pattern)}
}

func (m *Regex) Match(line string) (domain.Values, error) {
	groups := m.re.FindStringSubmatch(line)
	if groups == nil {
		return nil, domain.ErrNoMatch
	}

	vals := domain.Values{}
	for i, name := range m.re.SubexpNames() {
		if i == 0 || name == "" {
			continue
		}
		vals[name] = groups[i]
	}

	return vals, nil
}
