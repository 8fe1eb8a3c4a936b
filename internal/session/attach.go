package session

import (
	"context"
	"fmt"
	"io"

	"github.com/dshills/keyhold/internal/input/keymap"
)

// Reason says why Attach returned.
type Reason int

const (
	// Detached means a keybinding fired.
	Detached Reason = iota
	// Exited means the session's process ended.
	Exited
	// InputClosed means the client input channel was closed.
	InputClosed
	// Canceled means the context was canceled.
	Canceled
)

// String returns the reason name.
func (r Reason) String() string {
	switch r {
	case Detached:
		return "detached"
	case Exited:
		return "exited"
	case InputClosed:
		return "input closed"
	case Canceled:
		return "canceled"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// Result describes how an attachment ended.
type Result struct {
	Reason Reason
	// Action is the action that fired when Reason is Detached.
	Action keymap.Action
}

// Attach connects a client to the session until a keybinding fires, the
// session exits, in is closed or ctx is canceled. Session output is
// written to out. Input chunks are scanned and forwarded to the PTY.
//
// Only one client may be attached at a time.
func (s *Session) Attach(ctx context.Context, in <-chan []byte, out io.Writer, scanner *Scanner) (Result, error) {
	if s.closed.Load() || !s.IsRunning() {
		return Result{Reason: Exited}, ErrSessionClosed
	}
	if err := s.setOutput(out); err != nil {
		return Result{}, err
	}
	defer func() { _ = s.setOutput(nil) }()

	// A binding half typed before a previous detach does not carry over.
	scanner.Reset()
	s.logger.Debug("attached")

	for {
		select {
		case <-ctx.Done():
			return Result{Reason: Canceled}, nil

		case <-s.done:
			return Result{Reason: Exited}, nil

		case chunk, ok := <-in:
			if !ok {
				return Result{Reason: InputClosed}, nil
			}

			n, action, fired := scanner.Scan(chunk)
			if n > 0 {
				if _, err := s.Write(chunk[:n]); err != nil {
					if !s.IsRunning() || s.closed.Load() {
						return Result{Reason: Exited}, nil
					}
					return Result{}, fmt.Errorf("writing to session: %w", err)
				}
			}
			if fired {
				s.logger.Debug("detached by %s", action)
				return Result{Reason: Detached, Action: action}, nil
			}
		}
	}
}

// Pump reads r until it fails and sends each read on the returned
// channel, which is closed on EOF or error. Every chunk is a fresh slice.
func Pump(r io.Reader) <-chan []byte {
	ch := make(chan []byte)
	go func() {
		defer close(ch)
		buf := make([]byte, 4096)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				chunk := make([]byte, n)
				copy(chunk, buf[:n])
				ch <- chunk
			}
			if err != nil {
				return
			}
		}
	}()
	return ch
}
