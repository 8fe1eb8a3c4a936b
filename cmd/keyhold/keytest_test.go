package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/dshills/keyhold/internal/input/keymap"
	"github.com/dshills/keyhold/internal/session"
)

func TestDescribeByte(t *testing.T) {
	tests := []struct {
		b    byte
		want string
	}{
		{0, "Ctrl-Space"},
		{1, "Ctrl-a"},
		{' ', "Space"},
		{'q', "q"},
		{27, "Ctrl-["},
		{127, "Ctrl-?"},
		{0xc3, "-"},
	}
	for _, tt := range tests {
		if got := describeByte(tt.b); got != tt.want {
			t.Errorf("describeByte(%d) = %q, want %q", tt.b, got, tt.want)
		}
	}
}

func TestKeytestStopsOnBinding(t *testing.T) {
	in := make(chan []byte, 2)
	in <- []byte("l")
	in <- []byte{0, 17, 'x'}

	var out bytes.Buffer
	action, err := keytest(context.Background(), in, &out, session.NewScanner(keymap.NewRegistry()))
	if err != nil {
		t.Fatalf("keytest() error = %v", err)
	}
	if action != keymap.ActionDetach {
		t.Errorf("action = %v, want Detach", action)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\r\n"), "\r\n")
	if len(lines) != 3 {
		t.Fatalf("printed %d lines, want 3: %q", len(lines), out.String())
	}
	if !strings.Contains(lines[1], "Ctrl-Space") || !strings.Contains(lines[1], "(pending)") {
		t.Errorf("line for NUL = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "021  0x11  Ctrl-q") {
		t.Errorf("line for Ctrl-q = %q", lines[2])
	}
}

func TestKeytestInputClosed(t *testing.T) {
	in := make(chan []byte)
	close(in)

	action, err := keytest(context.Background(), in, &bytes.Buffer{}, session.NewScanner(keymap.NewRegistry()))
	if err != nil || action != keymap.ActionNone {
		t.Errorf("keytest() = %v, %v, want None, nil", action, err)
	}
}
