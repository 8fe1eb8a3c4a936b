// Package main is the entry point for keyhold, a detachable shell session
// holder.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/keyhold/internal/config"
	"github.com/dshills/keyhold/internal/input/keymap"
	"github.com/dshills/keyhold/internal/logging"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// options holds the parsed command line.
type options struct {
	configPath string
	logLevel   string
	logFile    string
	command    string
	args       []string
}

// app is the state shared by every command.
type app struct {
	cfg        *config.Config
	configPath string
	logger     *logging.Logger
	registry   *keymap.Registry
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	a, closeLog, err := newApp(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch opts.command {
	case "check":
		return a.runCheck(os.Stdout)
	case "keytest":
		return a.runKeytest(ctx)
	case "", "shell":
		return a.runShell(ctx, opts.args)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", opts.command)
		flag.Usage()
		return 2
	}
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the config file")
	flag.StringVar(&opts.logFile, "log-file", "", "Write logs to this file (the shell command logs nothing otherwise)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "keyhold - detachable shell sessions\n\n")
		fmt.Fprintf(os.Stderr, "Usage: keyhold [options] [command]\n\n")
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  shell [NAME]   Start a session and attach to it (default)\n")
		fmt.Fprintf(os.Stderr, "  check          Validate the configuration and list keybindings\n")
		fmt.Fprintf(os.Stderr, "  keytest        Show the bytes each key sends and which bindings fire\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  keyhold                      Attach to a new session named main\n")
		fmt.Fprintf(os.Stderr, "  keyhold -c ./keys.toml check Check a configuration file\n")
		fmt.Fprintf(os.Stderr, "  KEYHOLD_DETACH='Ctrl-b d' keyhold\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("keyhold %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if opts.logLevel != "" {
		if _, err := logging.ParseLevel(opts.logLevel); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.logLevel)
			os.Exit(1)
		}
	}

	if args := flag.Args(); len(args) > 0 {
		opts.command = args[0]
		opts.args = args[1:]
	}

	return opts
}

// newApp loads the configuration and sets up logging. The returned func
// closes the log file, if any.
func newApp(opts options) (*app, func(), error) {
	path := opts.configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return nil, nil, err
		}
	}

	cfg, err := config.NewLoader().Load(path)
	if err != nil {
		return nil, nil, err
	}

	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, nil, err
	}

	logger, closeLog, err := openLogger(opts, level)
	if err != nil {
		return nil, nil, err
	}

	bindings, err := cfg.Bindings()
	if err != nil {
		closeLog()
		return nil, nil, err
	}
	registry := keymap.NewRegistry()
	if err := registry.Load(bindings); err != nil {
		closeLog()
		return nil, nil, err
	}

	return &app{
		cfg:        cfg,
		configPath: path,
		logger:     logger,
		registry:   registry,
	}, closeLog, nil
}

func openLogger(opts options, level logging.Level) (*logging.Logger, func(), error) {
	var out io.Writer = os.Stderr
	closeLog := func() {}

	switch {
	case opts.logFile != "":
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		out = f
		closeLog = func() { _ = f.Close() }
	case opts.command == "" || opts.command == "shell":
		// Log lines would land in the middle of the attached session.
		return logging.Null(), closeLog, nil
	}

	cfg := logging.DefaultConfig()
	cfg.Level = level
	cfg.Output = out
	return logging.New(cfg), closeLog, nil
}

// watchConfig reloads keybindings into the registry when the config file
// changes. A failed reload keeps the current bindings.
func (a *app) watchConfig() (io.Closer, error) {
	w, err := config.NewWatcher(a.configPath,
		config.WithLogger(a.logger.WithComponent("config")),
		config.OnReload(func(cfg *config.Config) {
			bindings, err := cfg.Bindings()
			if err == nil {
				err = a.registry.Load(bindings)
			}
			if err != nil {
				a.logger.Warn("keeping previous keybindings: %v", err)
				return
			}
			a.logger.Info("loaded %d keybindings", len(bindings))
		}),
		config.OnError(func(err error) {
			a.logger.Warn("config reload: %v", err)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("watching %s: %w", a.configPath, err)
	}
	return w, nil
}

// startWatch is watchConfig for commands that can run without reloads.
func (a *app) startWatch() func() {
	w, err := a.watchConfig()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			a.logger.Warn("%v", err)
		}
		return func() {}
	}
	return func() { _ = w.Close() }
}
