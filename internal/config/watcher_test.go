package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	writeFile(t, path, "[log]\nlevel = \"info\"\n")

	reloaded := make(chan *Config, 4)
	w, err := NewWatcher(path,
		WithLoader(NewLoader(WithLookupEnv(nil))),
		WithDebounce(20*time.Millisecond),
		OnReload(func(c *Config) { reloaded <- c }),
	)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	writeFile(t, path, "[[keybinding]]\nbinding = \"Ctrl-b d\"\naction = \"detach\"\n")

	select {
	case cfg := <-reloaded:
		if len(cfg.Keybindings) != 1 || cfg.Keybindings[0].Binding != "Ctrl-b d" {
			t.Errorf("reloaded keybindings = %+v", cfg.Keybindings)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcherReportsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	writeFile(t, path, "")

	errs := make(chan error, 4)
	w, err := NewWatcher(path,
		WithLoader(NewLoader(WithLookupEnv(nil))),
		WithDebounce(20*time.Millisecond),
		OnReload(func(*Config) { t.Error("invalid config should not be delivered") }),
		OnError(func(err error) { errs <- err }),
	)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	writeFile(t, path, "[[keybinding]]\nbinding = \"Ctrl\"\naction = \"detach\"\n")

	select {
	case err := <-errs:
		if err == nil {
			t.Error("OnError called with nil")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for error")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	reloaded := make(chan *Config, 4)
	w, err := NewWatcher(path,
		WithLoader(NewLoader(WithLookupEnv(nil))),
		WithDebounce(10*time.Millisecond),
		OnReload(func(c *Config) { reloaded <- c }),
	)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	writeFile(t, filepath.Join(dir, "other.toml"), "x = 1\n")

	select {
	case <-reloaded:
		t.Error("change to another file triggered a reload")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}
