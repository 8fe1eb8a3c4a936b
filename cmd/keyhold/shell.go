package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dshills/keyhold/internal/session"
)

// shell drives the attach / prompt cycle.
type shell struct {
	app     *app
	mgr     *session.Manager
	scanner *session.Scanner
	input   <-chan []byte
	lines   *lineReader
	out     io.Writer

	current string
}

func (a *app) runShell(ctx context.Context, args []string) int {
	name := "main"
	if len(args) > 0 {
		name = args[0]
	}

	stopWatch := a.startWatch()
	defer stopWatch()

	cols, rows := terminalSize(os.Stdout)
	mgr := session.NewManager(session.ManagerConfig{
		Session: a.cfg.Session,
		Cols:    cols,
		Rows:    rows,
		Logger:  a.logger,
	})
	defer mgr.CloseAll()

	input := session.Pump(os.Stdin)
	sh := &shell{
		app:     a,
		mgr:     mgr,
		scanner: session.NewScanner(a.registry),
		input:   input,
		lines:   &lineReader{in: input},
		out:     os.Stdout,
		current: name,
	}

	if _, err := mgr.Create(session.Options{Name: name}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if err := sh.loop(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// loop alternates between the current session and the prompt until the
// user quits or input ends.
func (sh *shell) loop(ctx context.Context) error {
	for {
		if sh.current != "" {
			done, err := sh.attach(ctx, sh.current)
			if err != nil || done {
				return err
			}
		}

		done, err := sh.prompt(ctx)
		if err != nil || done {
			return err
		}
	}
}

// attach runs one attachment. done reports that keyhold should exit.
func (sh *shell) attach(ctx context.Context, name string) (done bool, err error) {
	s, err := sh.mgr.Get(name)
	if err != nil {
		fmt.Fprintf(sh.out, "%v\n", err)
		sh.current = ""
		return false, nil
	}

	raw, err := makeRaw(os.Stdin)
	if err != nil {
		return true, err
	}
	cols, rows := terminalSize(os.Stdout)
	_ = s.Resize(cols, rows)
	stopResize := watchResize(os.Stdout, func(cols, rows int) {
		if err := s.Resize(cols, rows); err != nil {
			sh.app.logger.Debug("resize %s: %v", name, err)
		}
	})

	res, err := s.Attach(ctx, sh.input, sh.out, sh.scanner)

	stopResize()
	raw.restore()

	if err != nil {
		return true, err
	}

	switch res.Reason {
	case session.Detached:
		fmt.Fprintf(sh.out, "\r\n[detached from %s]\n", name)
	case session.Exited:
		fmt.Fprintf(sh.out, "\r\n[%s exited with code %d]\n", name, s.ExitCode())
		sh.current = ""
		// Give the manager a moment to drop the session before listing.
		waitGone(sh.mgr, name, 100*time.Millisecond)
		if sh.mgr.Count() == 0 {
			return true, nil
		}
	case session.InputClosed, session.Canceled:
		return true, nil
	}
	return false, nil
}

// prompt reads commands until one attaches. done reports that keyhold
// should exit.
func (sh *shell) prompt(ctx context.Context) (done bool, err error) {
	for {
		sh.list()
		fmt.Fprint(sh.out, "keyhold> ")

		line, err := sh.lines.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				return true, nil
			}
			return true, err
		}

		cmd, err := parseCommand(line)
		if err != nil {
			fmt.Fprintf(sh.out, "%v\n", err)
			continue
		}

		switch cmd.name {
		case "":
			continue
		case "help":
			fmt.Fprint(sh.out, promptHelp)
		case "ls":
			// Listed on the next iteration.
		case "quit":
			return true, nil
		case "kill":
			if err := sh.mgr.Remove(cmd.arg); err != nil {
				fmt.Fprintf(sh.out, "%v\n", err)
			}
			if cmd.arg == sh.current {
				sh.current = ""
			}
		case "new":
			s, err := sh.mgr.Create(session.Options{Name: cmd.arg})
			if err != nil {
				fmt.Fprintf(sh.out, "%v\n", err)
				continue
			}
			sh.current = s.Name()
			return false, nil
		case "attach":
			name := cmd.arg
			if name == "" {
				name = sh.current
			}
			if name == "" {
				fmt.Fprintln(sh.out, "attach needs a session name")
				continue
			}
			if _, err := sh.mgr.Get(name); err != nil {
				fmt.Fprintf(sh.out, "%v\n", err)
				continue
			}
			sh.current = name
			return false, nil
		}
	}
}

// list prints the running sessions.
func (sh *shell) list() {
	sessions := sh.mgr.List()
	if len(sessions) == 0 {
		fmt.Fprintln(sh.out, "no sessions (new NAME starts one)")
		return
	}
	for _, s := range sessions {
		marker := " "
		if s.Name() == sh.current {
			marker = "*"
		}
		fmt.Fprintf(sh.out, "%s %-12s pid %-7d up %s\n", marker, s.Name(), s.PID(),
			time.Since(s.CreatedAt()).Truncate(time.Second))
	}
}

// waitGone polls until name is no longer listed or timeout passes.
func waitGone(mgr *session.Manager, name string, timeout time.Duration) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if _, err := mgr.Get(name); err != nil {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
}
