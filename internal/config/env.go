package config

import (
	"strings"

	"github.com/dshills/keyhold/internal/input/keymap"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "KEYHOLD_"

// Environment overrides.
const (
	EnvShell    = EnvPrefix + "SHELL"
	EnvTerm     = EnvPrefix + "TERM"
	EnvLogLevel = EnvPrefix + "LOG_LEVEL"
	EnvDetach   = EnvPrefix + "DETACH"
)

// applyEnv overrides cfg from the environment. Empty values are ignored.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	get := func(name string) (string, bool) {
		v, ok := lookup(name)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvShell); ok {
		cfg.Session.Shell = v
	}
	if v, ok := get(EnvTerm); ok {
		cfg.Session.Term = v
	}
	if v, ok := get(EnvLogLevel); ok {
		cfg.Log.Level = v
	}
	if v, ok := get(EnvDetach); ok {
		cfg.Keybindings = []Keybinding{{
			Binding:     v,
			Action:      keymap.ActionDetach.String(),
			Description: "Set by " + EnvDetach,
		}}
	}
}
