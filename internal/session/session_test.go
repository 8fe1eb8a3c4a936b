package session

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"
	"time"
)

// fakePTY is an in-memory PTY. Bytes written to shell appear as session
// output; bytes the session writes are collected in input.
type fakePTY struct {
	outR  *io.PipeReader
	shell *io.PipeWriter

	mu      sync.Mutex
	input   bytes.Buffer
	cols    uint16
	rows    uint16
	closeOnce sync.Once
}

func newFakePTY() *fakePTY {
	r, w := io.Pipe()
	return &fakePTY{outR: r, shell: w}
}

func (p *fakePTY) Read(buf []byte) (int, error) {
	return p.outR.Read(buf)
}

func (p *fakePTY) Write(data []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.input.Write(data)
}

func (p *fakePTY) Resize(cols, rows uint16) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cols, p.rows = cols, rows
	return nil
}

func (p *fakePTY) Close() error {
	p.closeOnce.Do(func() {
		p.shell.Close()
		p.outR.Close()
	})
	return nil
}

// exit simulates the shell going away.
func (p *fakePTY) exit() {
	p.shell.Close()
}

func (p *fakePTY) received() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.input.String()
}

// syncBuffer is a bytes.Buffer safe for concurrent use.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestSessionWriteAndResize(t *testing.T) {
	pty := newFakePTY()
	s := newSession("test", pty, nil, nil)
	defer s.Close()

	if s.ID() == "" || s.Name() != "test" {
		t.Errorf("ID/Name = %q/%q", s.ID(), s.Name())
	}
	if s.PID() != -1 {
		t.Errorf("PID() = %d, want -1 without a process", s.PID())
	}

	if _, err := s.Write([]byte("echo hi\n")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if got := pty.received(); got != "echo hi\n" {
		t.Errorf("pty received %q", got)
	}

	if err := s.Resize(120, 40); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	if pty.cols != 120 || pty.rows != 40 {
		t.Errorf("pty size = %dx%d, want 120x40", pty.cols, pty.rows)
	}
}

func TestSessionResizeInvalid(t *testing.T) {
	s := newSession("test", newFakePTY(), nil, nil)
	defer s.Close()

	tests := []struct {
		cols, rows int
	}{
		{0, 24},
		{80, 0},
		{-1, -1},
		{70000, 24},
	}
	for _, tt := range tests {
		if err := s.Resize(tt.cols, tt.rows); err != ErrInvalidSize {
			t.Errorf("Resize(%d, %d) error = %v, want ErrInvalidSize", tt.cols, tt.rows, err)
		}
	}
}

func TestSessionOutputDiscardedWhileDetached(t *testing.T) {
	pty := newFakePTY()
	s := newSession("test", pty, nil, nil)
	defer s.Close()

	// Nobody is attached; the writes must not block. The pipe hands over
	// the second write only after the first has been handled.
	for _, chunk := range []string{"lost", "x"} {
		if _, err := io.WriteString(pty.shell, chunk); err != nil {
			t.Fatalf("shell write error = %v", err)
		}
	}

	out := &syncBuffer{}
	if err := s.setOutput(out); err != nil {
		t.Fatalf("setOutput() error = %v", err)
	}
	if _, err := io.WriteString(pty.shell, "seen"); err != nil {
		t.Fatalf("shell write error = %v", err)
	}
	waitFor(t, "output", func() bool { return strings.HasSuffix(out.String(), "seen") })
	if strings.Contains(out.String(), "lost") {
		t.Errorf("output written while detached was delivered: %q", out.String())
	}
}

func TestSessionClose(t *testing.T) {
	s := newSession("test", newFakePTY(), nil, nil)

	if !s.IsRunning() {
		t.Error("new session should be running")
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if s.IsRunning() {
		t.Error("closed session should not be running")
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if _, err := s.Write([]byte("x")); err != ErrSessionClosed {
		t.Errorf("Write() after Close error = %v, want ErrSessionClosed", err)
	}
	if err := s.Resize(80, 24); err != ErrSessionClosed {
		t.Errorf("Resize() after Close error = %v, want ErrSessionClosed", err)
	}
}

func TestSessionExit(t *testing.T) {
	pty := newFakePTY()
	s := newSession("test", pty, nil, nil)

	pty.exit()

	select {
	case <-s.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("session did not notice the exit")
	}
	if s.ExitCode() != -1 {
		t.Errorf("ExitCode() = %d, want -1 without a process", s.ExitCode())
	}
	if !strings.Contains(Exited.String(), "exit") {
		t.Errorf("Exited.String() = %q", Exited.String())
	}
}
