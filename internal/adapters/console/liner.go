package console

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/rs/zerolog/log"
)

// Liner reads lines interactively with line editing and persistent history.
type Liner struct {
	state       *liner.State
	historyFile string
}

// NewLiner opens the terminal for interactive input. historyFile may be
// empty to keep history in memory only.
func NewLiner(historyFile string) *Liner {
	s := liner.NewLiner()
	s.SetCtrlCAborts(true)

	l := &Liner{state: s, historyFile: historyFile}
	l.loadHistory()

	return l
}

func (l *Liner) ReadLine(prompt string) (string, error) {
	line, err := l.state.Prompt(promptStyle.Render(prompt))
	if err != nil {
		// Ctrl+C ends the session the same way Ctrl+D does.
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", io.EOF
		}
		return "", err
	}

	if strings.TrimSpace(line) != "" {
		l.state.AppendHistory(line)
	}

	return line, nil
}

func (l *Liner) Close() error {
	l.saveHistory()
	return l.state.Close()
}

func (l *Liner) loadHistory() {
	if l.historyFile == "" {
		return
	}

	f, err := os.Open(l.historyFile)
	if err != nil {
		return
	}
	defer f.Close()

	if _, err := l.state.ReadHistory(f); err != nil {
		log.Warn().Err(err).Str("file", l.historyFile).Msg("failed to read history")
	}
}

func (l *Liner) saveHistory() {
	if l.historyFile == "" {
		return
	}

	f, err := os.OpenFile(l.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		log.Warn().Err(err).Str("file", l.historyFile).Msg("failed to save history")
		return
	}
	defer f.Close()

	if _, err := l.state.WriteHistory(f); err != nil {
		log.Warn().Err(err).Str("file", l.historyFile).Msg("failed to write history")
	}
}
