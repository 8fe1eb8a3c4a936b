package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
)

// lineReader assembles lines from raw input chunks. Keeping the one input
// channel for both the prompt and attached sessions means no bytes are
// read by a stale reader.
type lineReader struct {
	in  <-chan []byte
	buf []byte
}

// ReadLine returns the next line without its line ending. It returns
// io.EOF when input ends with nothing buffered.
func (r *lineReader) ReadLine(ctx context.Context) (string, error) {
	for {
		if i := bytes.IndexByte(r.buf, '\n'); i >= 0 {
			line := string(bytes.TrimRight(r.buf[:i], "\r"))
			r.buf = r.buf[i+1:]
			return line, nil
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case chunk, ok := <-r.in:
			if !ok {
				if len(r.buf) == 0 {
					return "", io.EOF
				}
				line := string(r.buf)
				r.buf = nil
				return line, nil
			}
			r.buf = append(r.buf, chunk...)
		}
	}
}

// promptCommand is one line typed at the prompt.
type promptCommand struct {
	name string
	arg  string
}

var promptAliases = map[string]string{
	"ls":     "ls",
	"list":   "ls",
	"a":      "attach",
	"attach": "attach",
	"n":      "new",
	"new":    "new",
	"k":      "kill",
	"kill":   "kill",
	"q":      "quit",
	"quit":   "quit",
	"exit":   "quit",
	"?":      "help",
	"help":   "help",
}

// parseCommand parses a prompt line. An empty line yields an empty name.
func parseCommand(line string) (promptCommand, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return promptCommand{}, nil
	}

	name, ok := promptAliases[strings.ToLower(fields[0])]
	if !ok {
		return promptCommand{}, fmt.Errorf("unknown command %q (try help)", fields[0])
	}
	if len(fields) > 2 {
		return promptCommand{}, fmt.Errorf("%s takes at most one argument", name)
	}

	cmd := promptCommand{name: name}
	if len(fields) == 2 {
		cmd.arg = fields[1]
	}

	switch name {
	case "kill":
		if cmd.arg == "" {
			return promptCommand{}, fmt.Errorf("kill needs a session name")
		}
	case "ls", "quit", "help":
		if cmd.arg != "" {
			return promptCommand{}, fmt.Errorf("%s takes no argument", name)
		}
	}
	return cmd, nil
}

const promptHelp = `Commands:
  ls              list sessions
  attach [NAME]   attach to a session (default: the last one)
  new [NAME]      start a session and attach to it
  kill NAME       end a session
  quit            end all sessions and exit
`
