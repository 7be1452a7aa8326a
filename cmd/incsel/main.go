// Package main is the entry point for the incsel terminal demo.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/dshills/incsel/internal/app"
	"github.com/dshills/incsel/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, tabWidth, files := parseFlags()

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer func() { _ = application.Close() }()

	if len(files) == 0 {
		application.OpenView("")
	}
	for _, path := range files {
		if _, err := application.OpenFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}
	if err := application.Watch(); err != nil {
		application.Logger().Sugar().Warnw("config watch disabled", "error", err)
	}

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}
	defer term.Shutdown()

	// Handle signals by posting a quit key.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		term.PostEvent(quitEvent)
	}()

	ed := newEditor(application, term)
	ed.renderer.SetTabWidth(tabWidth)
	ed.run()
	return 0
}

func parseFlags() (app.Options, int, []string) {
	var opts app.Options
	var showVersion bool
	var tabWidth int

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (.toml, .yaml)")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.LogFile, "log-file", filepath.Join(os.TempDir(), "incsel.log"), "Log file")
	flag.IntVar(&tabWidth, "tab-width", 4, "Columns per tab stop")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "incsel - incremental multi-region selection demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: incsel [options] [files...]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  arrows, home, end    move every caret\n")
		fmt.Fprintf(os.Stderr, "  shift+arrows         extend the last region\n")
		fmt.Fprintf(os.Stderr, "  ctrl+n               add a caret on the next line\n")
		fmt.Fprintf(os.Stderr, "  esc                  keep only the last caret\n")
		fmt.Fprintf(os.Stderr, "  alt+a / alt+s        add / subtract the live selection\n")
		fmt.Fprintf(os.Stderr, "  alt+c / alt+t        clear / toggle the saved selection\n")
		fmt.Fprintf(os.Stderr, "  ctrl+z / ctrl+y      undo / redo\n")
		fmt.Fprintf(os.Stderr, "  ctrl+q               quit\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("incsel %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch opts.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		os.Exit(1)
	}

	return opts, tabWidth, flag.Args()
}
