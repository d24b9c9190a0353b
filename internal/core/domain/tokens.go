package domain

import (
	"fmt"
	"strings"
	"unicode"
)

// SplitTokens splits a line into shell-style tokens. Quoted substrings,
// single or double, form a single token with the quotes stripped.
func SplitTokens(line string) ([]string, error) {
	var tokens []string
	var current strings.Builder
	var quote rune
	inToken := false

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			inToken = true
		case unicode.IsSpace(r):
			if inToken {
				tokens = append(tokens, current.String())
				current.Reset()
				inToken = false
			}
		default:
			current.WriteRune(r)
			inToken = true
		}
	}

	if quote != 0 {
		return nil, fmt.Errorf("unterminated %c quote", quote)
	}

	if inToken {
		tokens = append(tokens, current.String())
	}

	return tokens, nil
}
