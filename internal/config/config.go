package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dshills/keyhold/internal/input/keymap"
	"github.com/dshills/keyhold/internal/logging"
)

// Config is the decoded configuration file.
type Config struct {
	// Keybindings replace the default bindings when non-nil.
	Keybindings []Keybinding `toml:"keybinding" yaml:"keybinding"`

	// Session configures the shell started for new sessions.
	Session SessionConfig `toml:"session" yaml:"session"`

	// Log configures logging.
	Log LogConfig `toml:"log" yaml:"log"`
}

// Keybinding is one [[keybinding]] entry.
type Keybinding struct {
	Binding     string `toml:"binding" yaml:"binding"`
	Action      string `toml:"action" yaml:"action"`
	Description string `toml:"description,omitempty" yaml:"description,omitempty"`
}

// SessionConfig configures the command run in a session.
type SessionConfig struct {
	// Shell is the program to run. Defaults to $SHELL, then /bin/sh.
	Shell string `toml:"shell" yaml:"shell"`
	// Args are passed to Shell.
	Args []string `toml:"args" yaml:"args"`
	// Env is appended to the inherited environment, as KEY=value.
	Env []string `toml:"env" yaml:"env"`
	// Term sets TERM for the session.
	Term string `toml:"term" yaml:"term"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}

	defaults := keymap.DefaultBindings()
	bindings := make([]Keybinding, len(defaults))
	for i, b := range defaults {
		bindings[i] = Keybinding{
			Binding:     b.Keys,
			Action:      b.Action.String(),
			Description: b.Description,
		}
	}

	return &Config{
		Keybindings: bindings,
		Session: SessionConfig{
			Shell: shell,
			Term:  "xterm-256color",
		},
		Log: LogConfig{Level: "info"},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/keyhold/config.toml, falling back
// to ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("locating config directory: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "keyhold", "config.toml"), nil
}

// Bindings converts the keybinding entries into keymap bindings. Binding
// text is not parsed here; see Validate.
func (c *Config) Bindings() ([]keymap.Binding, error) {
	out := make([]keymap.Binding, 0, len(c.Keybindings))
	for i, kb := range c.Keybindings {
		action, err := keymap.ParseAction(kb.Action)
		if err != nil {
			return nil, &ValidationError{Field: fmt.Sprintf("keybinding[%d].action", i), Err: err}
		}
		out = append(out, keymap.NewBinding(kb.Binding, action).WithDescription(kb.Description))
	}
	return out, nil
}

// LogLevel returns the parsed log level.
func (c *Config) LogLevel() (logging.Level, error) {
	level, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		return level, &ValidationError{Field: "log.level", Err: err}
	}
	return level, nil
}

// Compile converts and compiles the keybindings.
func (c *Config) Compile() (*keymap.Bindings, error) {
	bindings, err := c.Bindings()
	if err != nil {
		return nil, err
	}
	compiled, err := keymap.Compile(bindings)
	if err != nil {
		return nil, &ValidationError{Field: "keybinding", Err: err}
	}
	return compiled, nil
}

// Validate checks the log level and that every keybinding compiles.
func (c *Config) Validate() error {
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if c.Session.Shell == "" {
		return &ValidationError{Field: "session.shell", Err: fmt.Errorf("must not be empty")}
	}
	if _, err := c.Compile(); err != nil {
		return err
	}
	return nil
}
