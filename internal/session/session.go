package session

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/keyhold/internal/logging"
)

// Session is a process running on a PTY.
type Session struct {
	id      string
	name    string
	created time.Time

	pty    PTY
	cmd    *exec.Cmd
	logger *logging.Logger

	mu     sync.Mutex
	output io.Writer // attached client, nil when detached

	done     chan struct{}
	exitCode atomic.Int32
	closed   atomic.Bool

	ptyOnce sync.Once
	ptyErr  error
}

// Options configures a new session.
type Options struct {
	// Name identifies the session in a Manager.
	Name string

	// Shell is the program to run (defaults to $SHELL or /bin/sh).
	Shell string

	// Args are passed to Shell.
	Args []string

	// Env are additional environment variables.
	Env []string

	// Term sets TERM in the session (default xterm-256color).
	Term string

	// WorkDir is the working directory for the shell.
	WorkDir string

	// Cols is the number of columns (default 80).
	Cols int

	// Rows is the number of rows (default 24).
	Rows int

	// Logger receives lifecycle messages.
	Logger *logging.Logger
}

func (o *Options) setDefaults() {
	if o.Shell == "" {
		o.Shell = os.Getenv("SHELL")
		if o.Shell == "" {
			o.Shell = "/bin/sh"
		}
	}
	if o.Term == "" {
		o.Term = "xterm-256color"
	}
	if o.Cols <= 0 {
		o.Cols = 80
	}
	if o.Rows <= 0 {
		o.Rows = 24
	}
	if o.Logger == nil {
		o.Logger = logging.Null()
	}
}

// Start runs the configured shell on a new PTY.
func Start(opts Options) (*Session, error) {
	opts.setDefaults()

	if _, err := exec.LookPath(opts.Shell); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrShellNotFound, opts.Shell)
	}

	cmd := exec.Command(opts.Shell, opts.Args...)
	cmd.Dir = opts.WorkDir
	cmd.Env = append(os.Environ(), opts.Env...)
	cmd.Env = append(cmd.Env, "TERM="+opts.Term)

	pty, err := StartPTY(cmd, uint16(opts.Cols), uint16(opts.Rows))
	if err != nil {
		return nil, fmt.Errorf("start PTY: %w", err)
	}

	s := newSession(opts.Name, pty, cmd, opts.Logger)
	s.logger.Info("started %s (pid %d)", opts.Shell, s.PID())
	return s, nil
}

// newSession wraps a started PTY. cmd may be nil.
func newSession(name string, pty PTY, cmd *exec.Cmd, logger *logging.Logger) *Session {
	if logger == nil {
		logger = logging.Null()
	}
	id := uuid.New().String()
	s := &Session{
		id:      id,
		name:    name,
		created: time.Now(),
		pty:     pty,
		cmd:     cmd,
		logger:  logger.WithComponent("session").WithField("session", name),
		done:    make(chan struct{}),
	}
	s.exitCode.Store(-1)

	go s.readLoop()
	return s
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// Name returns the session name.
func (s *Session) Name() string {
	return s.name
}

// CreatedAt returns when the session was started.
func (s *Session) CreatedAt() time.Time {
	return s.created
}

// PID returns the shell process ID, or -1.
func (s *Session) PID() int {
	if s.cmd == nil || s.cmd.Process == nil {
		return -1
	}
	return s.cmd.Process.Pid
}

// Write sends input to the PTY.
func (s *Session) Write(data []byte) (int, error) {
	if s.closed.Load() {
		return 0, ErrSessionClosed
	}
	return s.pty.Write(data)
}

// Resize changes the PTY size.
func (s *Session) Resize(cols, rows int) error {
	if s.closed.Load() {
		return ErrSessionClosed
	}
	if cols < 1 || rows < 1 || cols > 0xffff || rows > 0xffff {
		return ErrInvalidSize
	}
	if err := s.pty.Resize(uint16(cols), uint16(rows)); err != nil {
		return fmt.Errorf("resize PTY: %w", err)
	}
	return nil
}

// Attached reports whether a client is attached.
func (s *Session) Attached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.output != nil
}

// setOutput installs w as the client output. A nil w detaches.
func (s *Session) setOutput(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w != nil && s.output != nil {
		return ErrAlreadyAttached
	}
	s.output = w
	return nil
}

// Close kills the process and releases the PTY.
func (s *Session) Close() error {
	if s.closed.Swap(true) {
		return nil
	}

	if s.cmd != nil && s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
	err := s.closePTY()

	<-s.done
	s.logger.Info("closed")
	return err
}

// Done returns a channel that is closed when the session exits.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// ExitCode returns the exit code after the session exits.
// Returns -1 if still running or if the process was killed.
func (s *Session) ExitCode() int {
	return int(s.exitCode.Load())
}

// IsRunning reports whether the session has not exited.
func (s *Session) IsRunning() bool {
	select {
	case <-s.done:
		return false
	default:
		return true
	}
}

func (s *Session) closePTY() error {
	s.ptyOnce.Do(func() {
		s.ptyErr = s.pty.Close()
	})
	return s.ptyErr
}

// readLoop copies PTY output to the attached client. Output produced
// while detached is discarded.
func (s *Session) readLoop() {
	defer close(s.done)

	buf := make([]byte, 4096)
	for {
		n, err := s.pty.Read(buf)
		if n > 0 {
			s.mu.Lock()
			if s.output != nil {
				if _, werr := s.output.Write(buf[:n]); werr != nil {
					s.logger.Warn("writing output: %v", werr)
				}
			}
			s.mu.Unlock()
		}
		if err != nil {
			// Linux reports EIO once the last slave descriptor closes.
			if !errors.Is(err, io.EOF) && !s.closed.Load() {
				s.logger.Debug("read loop ended: %v", err)
			}
			break
		}
	}
	_ = s.closePTY()

	if s.cmd != nil && s.cmd.Process != nil {
		if err := s.cmd.Wait(); err != nil {
			var exitErr *exec.ExitError
			if !errors.As(err, &exitErr) {
				s.logger.Debug("wait: %v", err)
			}
		}
		if state := s.cmd.ProcessState; state != nil {
			s.exitCode.Store(int32(state.ExitCode()))
		}
	}
	s.logger.Debug("exited with code %d", s.ExitCode())
}
