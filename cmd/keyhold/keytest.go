package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dshills/keyhold/internal/input/key"
	"github.com/dshills/keyhold/internal/input/keymap"
	"github.com/dshills/keyhold/internal/session"
)

// chordNames maps a byte to the first chord in the control table that
// sends it.
var chordNames = func() map[byte]string {
	m := make(map[byte]string, len(key.ControlCodes))
	for _, cc := range key.ControlCodes {
		if _, ok := m[cc.Code]; !ok {
			m[cc.Code] = cc.Chord
		}
	}
	return m
}()

// describeByte names the key that sends b.
func describeByte(b byte) string {
	switch {
	case b == ' ':
		return key.Space
	case chordNames[b] != "":
		return chordNames[b]
	case b < 0x80 && b > ' ':
		return string(rune(b))
	default:
		return "-"
	}
}

// runKeytest echoes every byte read from the terminal until a binding
// fires or input ends.
func (a *app) runKeytest(ctx context.Context) int {
	stopWatch := a.startWatch()
	defer stopWatch()

	raw, err := makeRaw(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer raw.restore()

	fmt.Fprintf(os.Stdout, "Press keys to see their bytes. A keybinding ends the test.\r\n")
	action, err := keytest(ctx, session.Pump(os.Stdin), os.Stdout, session.NewScanner(a.registry))
	if err != nil {
		return 1
	}
	if action != keymap.ActionNone {
		fmt.Fprintf(os.Stdout, "%s\r\n", action)
	}
	return 0
}

// keytest prints one line per input byte and returns the action that
// ended it, if any.
func keytest(ctx context.Context, in <-chan []byte, out io.Writer, sc *session.Scanner) (keymap.Action, error) {
	for {
		select {
		case <-ctx.Done():
			return keymap.ActionNone, nil
		case chunk, ok := <-in:
			if !ok {
				return keymap.ActionNone, nil
			}
			for _, b := range chunk {
				_, action, fired := sc.Scan([]byte{b})
				pending := ""
				if sc.Pending() {
					pending = "  (pending)"
				}
				if _, err := fmt.Fprintf(out, "%03o  0x%02x  %-10s%s\r\n", b, b, describeByte(b), pending); err != nil {
					return keymap.ActionNone, err
				}
				if fired {
					return action, nil
				}
			}
		}
	}
}
