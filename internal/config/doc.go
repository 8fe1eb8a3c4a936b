// Package config loads keyhold's configuration file.
//
// The file is TOML (the default) or YAML, chosen by extension:
//
//	[[keybinding]]
//	binding = "Ctrl-Space Ctrl-q"
//	action  = "detach"
//
//	[session]
//	shell = "/bin/bash"
//	args  = ["-l"]
//	term  = "xterm-256color"
//
//	[log]
//	level = "info"
//
// A file without a keybinding list keeps the default bindings. A list,
// even an empty one, replaces them. A missing file is not an error; the
// defaults are used.
//
// Environment variables prefixed with KEYHOLD_ override the file:
//
//	KEYHOLD_SHELL      session.shell
//	KEYHOLD_TERM       session.term
//	KEYHOLD_LOG_LEVEL  log.level
//	KEYHOLD_DETACH     replaces the keybindings with one detach binding
//
// Watcher reloads the file when it changes on disk.
package config
