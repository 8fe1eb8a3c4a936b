package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/dshills/keyhold/internal/input/keymap"
	"github.com/dshills/keyhold/internal/logging"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}

	b, err := cfg.Compile()
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if b.Len() != len(keymap.DefaultBindings()) {
		t.Errorf("compiled %d bindings, want %d", b.Len(), len(keymap.DefaultBindings()))
	}

	level, err := cfg.LogLevel()
	if err != nil || level != logging.LevelInfo {
		t.Errorf("LogLevel() = %v, %v, want INFO", level, err)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	got, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error = %v", err)
	}
	if want := filepath.Join("/tmp/xdg", "keyhold", "config.toml"); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/someone")
	got, err = DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error = %v", err)
	}
	if want := filepath.Join("/home/someone", ".config", "keyhold", "config.toml"); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{"empty shell", func(c *Config) { c.Session.Shell = "" }, "session.shell"},
		{"bad level", func(c *Config) { c.Log.Level = "verbose" }, "log.level"},
		{"bad action", func(c *Config) { c.Keybindings[0].Action = "none" }, "keybinding[0].action"},
		{"bad binding", func(c *Config) { c.Keybindings[0].Binding = "Ctrl-Ctrl" }, "keybinding"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error = %v, want *ValidationError", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", verr.Field, tt.wantField)
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Error("error should match ErrInvalidConfig")
			}
		})
	}
}

func TestValidateNoKeybindings(t *testing.T) {
	cfg := Default()
	cfg.Keybindings = []Keybinding{}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() with no keybindings error = %v", err)
	}
}

func TestParseErrorFormat(t *testing.T) {
	tests := []struct {
		err  *ParseError
		want string
	}{
		{&ParseError{Path: "c.toml", Line: 2, Column: 5, Message: "bad"}, "parse error in c.toml at line 2, column 5: bad"},
		{&ParseError{Path: "c.yaml", Line: 3, Message: "bad"}, "parse error in c.yaml at line 3: bad"},
		{&ParseError{Path: "c.toml", Message: "bad"}, "parse error in c.toml: bad"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}
