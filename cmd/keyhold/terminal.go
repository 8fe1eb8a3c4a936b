package main

import (
	"os"

	"golang.org/x/term"
)

// rawTerminal restores the terminal mode saved by makeRaw.
type rawTerminal struct {
	fd    int
	state *term.State
}

// makeRaw puts f into raw mode. Input that is not a terminal is left
// alone so keyhold can be driven from a pipe.
func makeRaw(f *os.File) (*rawTerminal, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return &rawTerminal{fd: -1}, nil
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &rawTerminal{fd: fd, state: state}, nil
}

func (r *rawTerminal) restore() {
	if r.state != nil {
		_ = term.Restore(r.fd, r.state)
		r.state = nil
	}
}

// terminalSize returns the size of f, or 80x24 if it is not a terminal.
func terminalSize(f *os.File) (cols, rows int) {
	cols, rows, err := term.GetSize(int(f.Fd()))
	if err != nil || cols <= 0 || rows <= 0 {
		return 80, 24
	}
	return cols, rows
}
