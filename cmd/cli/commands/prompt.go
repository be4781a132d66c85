package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"
)

// TerminalPrompter asks yes/no questions on the terminal.
// Without a terminal every question is declined unless AssumeYes is set.
type TerminalPrompter struct {
	In        *bufio.Reader
	Out       io.Writer
	AssumeYes bool
	Logger    *zap.Logger

	// IsTerminal reports whether answers can be read. Defaults to checking stdin
	IsTerminal func() bool
}

// NewTerminalPrompter creates a prompter on stdin/stdout
func NewTerminalPrompter(in *bufio.Reader, assumeYes bool, logger *zap.Logger) *TerminalPrompter {
	return &TerminalPrompter{
		In:        in,
		Out:       os.Stdout,
		AssumeYes: assumeYes,
		Logger:    logger,
		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
	}
}

func (p *TerminalPrompter) Confirm(message string) bool {
	if p.AssumeYes {
		p.Logger.Debug("Confirmed without asking", zap.String("message", message))
		return true
	}

	if p.IsTerminal != nil && !p.IsTerminal() {
		p.Logger.Warn("No terminal to confirm on, declining", zap.String("message", message))
		return false
	}

	fmt.Fprintf(p.Out, "\n%s [y/N]: ", message)
	answer, err := p.In.ReadString('\n')
	if err != nil && answer == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
