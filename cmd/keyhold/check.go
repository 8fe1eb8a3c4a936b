package main

import (
	"fmt"
	"io"
	"strings"
)

// runCheck prints the compiled keybindings. Loading already validated the
// configuration, so reaching here means it is usable.
func (a *app) runCheck(w io.Writer) int {
	bindings, _ := a.registry.Current()

	fmt.Fprintf(w, "config: %s\n", a.configPath)
	fmt.Fprintf(w, "shell:  %s %s\n", a.cfg.Session.Shell, strings.Join(a.cfg.Session.Args, " "))
	fmt.Fprintf(w, "term:   %s\n", a.cfg.Session.Term)
	fmt.Fprintf(w, "keybindings (%d, %d distinct chords):\n", bindings.Len(), bindings.ChordCount())

	for _, e := range bindings.Entries() {
		codes := make([]string, len(e.Codes))
		for i, c := range e.Codes {
			codes[i] = fmt.Sprintf("0x%02x", c)
		}
		fmt.Fprintf(w, "  %-24s %-8s [%s]", e.Sequence, e.Action, strings.Join(codes, " "))
		if e.Description != "" {
			fmt.Fprintf(w, "  %s", e.Description)
		}
		fmt.Fprintln(w)
	}
	return 0
}
