package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"
)

// LineReader reads one line of terminal input at a time
type LineReader interface {
	SetPrompt(prompt string)
	Readline() (string, error)
	Close() error
}

var _ LineReader = (*readline.Instance)(nil)

// NewInputHandler creates a readline instance that keeps history in historyFile
func NewInputHandler(historyFile string, stdin io.ReadCloser, stdout io.Writer) (*readline.Instance, error) {
	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:     historyFile,
		HistoryLimit:    1000,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdin:           stdin,
		Stdout:          stdout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return rl, nil
}

// isEndOfInput reports whether err means the user closed the input (Ctrl+D) or interrupted it (Ctrl+C)
func isEndOfInput(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt)
}
