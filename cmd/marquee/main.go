package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/term"

	"github.com/andyrewlee/marquee/internal/app"
	"github.com/andyrewlee/marquee/internal/config"
	"github.com/andyrewlee/marquee/internal/logging"
	"github.com/andyrewlee/marquee/internal/messages"
	"github.com/andyrewlee/marquee/internal/safego"
	"github.com/andyrewlee/marquee/internal/source"
)

// Version info set by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args)
	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprint(stdout, usage())
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "marquee: %v\n\n%s", err, usage())
		return 2
	}
	if opts.version {
		fmt.Fprintf(stdout, "marquee %s (commit: %s, built: %s)\n", version, commit, date)
		return 0
	}
	if !term.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(stderr, "marquee: stdout is not a terminal")
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "marquee: %v\n", err)
		return 1
	}
	opts.apply(cfg)
	if err := cfg.Scroll.Validate(); err != nil {
		fmt.Fprintf(stderr, "marquee: %v\n", err)
		return 2
	}
	if err := cfg.Paths.EnsureDirectories(); err != nil {
		fmt.Fprintf(stderr, "marquee: %v\n", err)
		return 1
	}

	level, ok := logging.ParseLevel(cfg.LogLevel)
	if err := logging.Initialize(cfg.Paths.LogsRoot, level); err != nil {
		fmt.Fprintf(stderr, "Warning: could not initialize logging: %v\n", err)
	}
	defer logging.Close()
	if !ok {
		logging.Warn("Unknown log level %q, using %s", cfg.LogLevel, level)
	}
	logging.Info("Starting marquee %s", version)

	stdinIsTTY := term.IsTerminal(os.Stdin.Fd())
	src, err := selectSource(opts, cfg, stdinIsTTY)
	if err != nil {
		fmt.Fprintf(stderr, "marquee: %v\n", err)
		return 2
	}

	a, err := app.New(cfg, src, app.Options{
		Width:     opts.width,
		Height:    opts.height,
		Version:   version,
		Overrides: opts.apply,
	})
	if err != nil {
		logging.Error("Failed to initialize app: %v", err)
		fmt.Fprintf(stderr, "Error initializing app: %v\n", err)
		return 1
	}

	programOpts := []tea.ProgramOption{}
	if !stdinIsTTY {
		// stdin carries the content; read keys from the controlling terminal.
		tty, err := openTTY()
		if err != nil {
			fmt.Fprintf(stderr, "marquee: open terminal: %v\n", err)
			return 1
		}
		defer tty.Close()
		programOpts = append(programOpts, tea.WithInput(tty))
	}

	p := tea.NewProgram(a, programOpts...)
	a.SetMsgSender(p.Send)
	safego.SetPanicHandler(func(name string, recovered any, _ []byte) {
		p.Send(messages.Toast{Message: fmt.Sprintf("%s crashed: %v", name, recovered), Level: messages.ToastError})
	})

	if _, err := p.Run(); err != nil {
		logging.Error("App exited with error: %v", err)
		fmt.Fprintf(stderr, "Error running app: %v\n", err)
		a.Shutdown()
		return 1
	}
	a.Shutdown()

	logging.Info("marquee shutdown complete")
	return 0
}

// selectSource picks the content source: a command, a file, or stdin.
func selectSource(opts cliOptions, cfg *config.Config, stdinIsTTY bool) (source.Source, error) {
	switch {
	case opts.command != "":
		dir, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		return source.NewCommand(opts.command, dir, opts.interval), nil
	case opts.file != "":
		fileOpts := []source.FileOption{source.WithWatch(opts.watch)}
		if opts.highlight {
			fileOpts = append(fileOpts, source.WithHighlighter(source.NewHighlighter(cfg.HighlightStyle)))
		}
		return source.NewFile(opts.file, fileOpts...), nil
	case !stdinIsTTY:
		return source.NewReader("stdin", os.Stdin), nil
	}
	return nil, errors.New("nothing to show: pass a file, --cmd, or pipe text on stdin")
}

func openTTY() (*os.File, error) {
	name := "/dev/tty"
	if runtime.GOOS == "windows" {
		name = "CONIN$"
	}
	return os.Open(name)
}
