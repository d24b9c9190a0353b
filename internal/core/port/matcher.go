package port

import "replkit/internal/core/domain"

type Matcher interface {
	// Match tests one line of input. A nil error means the line was
	// recognized and vals carries the bound parameters. domain.ErrNoMatch
	// means this matcher declines the line. A *domain.UsageError means the
	// command token matched but the remaining tokens are malformed.
	Match(line string) (domain.Values, error)
}
