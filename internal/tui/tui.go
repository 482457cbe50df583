package tui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsTTY returns true if we can use a TTY for interactive prompts
func IsTTY() bool {
	// First check if stdin/stdout are terminals
	if !(isTerminal(os.Stdin) && isTerminal(os.Stdout)) {
		return false
	}
	// Also try to open /dev/tty to verify it's actually available
	f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}

// IsStdoutTerminal reports whether stdout is attached to a terminal
func IsStdoutTerminal() bool {
	return isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
