package session

import (
	"io"
	"os/exec"
)

// PTY is the master side of a pseudo-terminal.
type PTY interface {
	io.ReadWriteCloser

	// Resize changes the PTY window size.
	Resize(cols, rows uint16) error
}

// StartPTY starts cmd with a new PTY as its controlling terminal.
func StartPTY(cmd *exec.Cmd, cols, rows uint16) (PTY, error) {
	return startPTY(cmd, cols, rows)
}
