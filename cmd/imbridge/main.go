// Package main is the entry point for imbridge.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/imbridge/internal/app"
	"github.com/dshills/imbridge/internal/config"
	"github.com/dshills/imbridge/internal/host/ebitenhost"
	"github.com/dshills/imbridge/internal/host/term"
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
	opts, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts == nil {
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(*opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Close()

	switch h := application.Host().(type) {
	case *ebitenhost.Host:
		err = runEbiten(ctx, application, h)
	case *term.Host:
		go drawLoop(ctx, h.Screen(), application)
		err = application.Run(ctx)
	default:
		err = application.Run(ctx)
		fmt.Print(application.Status())
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// runEbiten hands the frame loop to Ebitengine, which must own the main
// goroutine.
func runEbiten(ctx context.Context, application *app.Application, h *ebitenhost.Host) error {
	frame := func() error {
		if ctx.Err() != nil {
			return ebitenhost.ErrQuit
		}
		application.Frame()
		return nil
	}
	return ebitenhost.NewGame(h, frame, application.Status).Run("imbridge")
}

// parseFlags returns nil options when the process should exit
// successfully without running (-version).
func parseFlags(fs *flag.FlagSet, args []string) (*app.Options, error) {
	opts := app.Options{
		OpenHost:  openHost,
		Watch:     true,
		Overrides: make(map[string]any),
	}

	var (
		hostKind    string
		fps         int
		logLevel    string
		keyUp       bool
		noWatch     bool
		showVersion bool
	)

	fs.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (TOML or YAML)")
	fs.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&hostKind, "host", "", "Input host: term, evdev, ebiten or sim")
	fs.IntVar(&fps, "fps", 0, "Frames per second")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&keyUp, "key-up", true, "Report key releases as key-up events")
	fs.BoolVar(&noWatch, "no-watch", false, "Don't reload the config file when it changes")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "imbridge - forwards host input into an immediate-mode GUI\n\n")
		fmt.Fprintf(out, "Usage: imbridge [options]\n\n")
		fmt.Fprintf(out, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nEnvironment:\n")
		fmt.Fprintf(out, "  IMBRIDGE_HOST, IMBRIDGE_FPS, IMBRIDGE_LOG_LEVEL, IMBRIDGE_KEY_UP,\n")
		fmt.Fprintf(out, "  IMBRIDGE_<SECTION>_<SETTING> for any other setting\n")
		fmt.Fprintf(out, "\nExamples:\n")
		fmt.Fprintf(out, "  imbridge                     Show terminal input state\n")
		fmt.Fprintf(out, "  imbridge -host ebiten        Open a window\n")
		fmt.Fprintf(out, "  imbridge -host evdev -fps 30 Read /dev/input directly\n")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if showVersion {
		fmt.Printf("imbridge %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		return nil, nil
	}

	if opts.ConfigPath == "" {
		if _, err := os.Stat(config.DefaultPath()); err == nil {
			opts.ConfigPath = config.DefaultPath()
		}
	}

	// only flags given on the command line override the config
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "host":
			opts.Overrides["host.kind"] = hostKind
		case "fps":
			opts.Overrides["frame.fps"] = int64(fps)
		case "log-level":
			opts.Overrides["logging.level"] = logLevel
		case "key-up":
			opts.Overrides["input.emitKeyUp"] = keyUp
		}
	})
	opts.Watch = !noWatch

	return &opts, nil
}
