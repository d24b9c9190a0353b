package domain

import "fmt"

// UsageError reports that a line named a known command but its arguments
// violate the command's grammar. Unlike ErrNoMatch it is a hard failure:
// the command token already identified intent, so sibling bindings and
// later handlers must not be tried.
type UsageError struct {
	Command string
	Reason  string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%s: %s", e.Command, e.Reason)
}

// HelpRequest is produced when the user asked a command for its usage text
// instead of running it. Handlers render Usage to the output sink and treat
// the line as handled.
type HelpRequest struct {
	Command string
	Usage   string
}

func (e *HelpRequest) Error() string {
	return fmt.Sprintf("help requested for %s", e.Command)
}
