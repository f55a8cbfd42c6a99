package main

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/andyrewlee/marquee/internal/config"
)

// cliOptions holds the parsed command line. Scroll flags only override the
// config file when they were given explicitly.
type cliOptions struct {
	height    int
	width     int
	gap       int
	duration  time.Duration
	delay     time.Duration
	perRow    time.Duration
	fps       int
	command   string
	interval  time.Duration
	watch     bool
	highlight bool
	fitScroll bool
	border    bool
	logLevel  string
	version   bool

	file string
	set  map[string]bool
}

// newFlagSet creates a flag set that never writes parse errors to stderr.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func defineFlags(fs *flag.FlagSet, o *cliOptions) {
	fs.IntVar(&o.height, "height", 0, "viewport height in rows, including the border (0 fills the terminal)")
	fs.IntVar(&o.width, "width", 0, "viewport width in columns, including the border (0 fills the terminal)")
	fs.IntVar(&o.gap, "gap", 0, "minimum blank rows before the content repeats")
	fs.DurationVar(&o.duration, "duration", 0, "fixed loop duration (0 scales with content height)")
	fs.DurationVar(&o.delay, "delay", 0, "pause before each loop")
	fs.DurationVar(&o.perRow, "per-row", 0, "scroll time per row when --duration is 0")
	fs.IntVar(&o.fps, "fps", 0, "animation frame rate")
	fs.StringVar(&o.command, "cmd", "", "run a shell command and scroll its output")
	fs.DurationVar(&o.interval, "interval", 0, "re-run --cmd on this interval")
	fs.BoolVar(&o.watch, "watch", false, "reload the file when it changes")
	fs.BoolVar(&o.highlight, "highlight", false, "syntax-highlight the file")
	fs.BoolVar(&o.fitScroll, "fit-scroll", false, "loop content even when it fits")
	fs.BoolVar(&o.border, "border", true, "draw a border around the viewport")
	fs.StringVar(&o.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.BoolVar(&o.version, "version", false, "print version and exit")
}

func parseArgs(args []string) (cliOptions, error) {
	var o cliOptions
	fs := newFlagSet("marquee")
	defineFlags(fs, &o)
	if err := fs.Parse(args); err != nil {
		return o, err
	}

	o.set = map[string]bool{}
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })

	rest := fs.Args()
	switch {
	case len(rest) > 1:
		return o, fmt.Errorf("expected at most one file, got %d arguments", len(rest))
	case len(rest) == 1:
		o.file = rest[0]
	}
	if o.file != "" && o.command != "" {
		return o, fmt.Errorf("--cmd and a file are mutually exclusive")
	}
	if o.set["interval"] && o.command == "" {
		return o, fmt.Errorf("--interval requires --cmd")
	}
	if (o.watch || o.highlight) && o.file == "" {
		return o, fmt.Errorf("--watch and --highlight require a file")
	}
	if o.height < 0 || o.width < 0 {
		return o, fmt.Errorf("--height and --width must be >= 0")
	}
	if err := o.checkDurations(); err != nil {
		return o, err
	}
	return o, nil
}

// checkDurations rejects timing flags the config cannot store: it keeps
// whole milliseconds.
func (o cliOptions) checkDurations() error {
	for _, d := range []struct {
		name  string
		value time.Duration
	}{
		{"duration", o.duration},
		{"delay", o.delay},
		{"per-row", o.perRow},
	} {
		if !o.set[d.name] {
			continue
		}
		switch {
		case d.value < 0:
			return fmt.Errorf("--%s must be >= 0, got %s", d.name, d.value)
		case d.value%time.Millisecond != 0:
			return fmt.Errorf("--%s must be a whole number of milliseconds, got %s", d.name, d.value)
		}
	}
	if o.set["per-row"] && o.perRow == 0 {
		return fmt.Errorf("--per-row must be > 0")
	}
	return nil
}

// apply copies explicitly set flags over the loaded config.
func (o cliOptions) apply(cfg *config.Config) {
	s := &cfg.Scroll
	if o.set["gap"] {
		s.EndPaddingHeight = o.gap
	}
	if o.set["duration"] {
		s.DurationMs = int(o.duration / time.Millisecond)
	}
	if o.set["delay"] {
		s.DelayMs = int(o.delay / time.Millisecond)
	}
	if o.set["per-row"] {
		s.RowMs = int(o.perRow / time.Millisecond)
	}
	if o.set["fps"] {
		s.FPS = o.fps
	}
	if o.set["fit-scroll"] {
		s.ScrollWhenFits = o.fitScroll
	}
	if o.set["border"] {
		cfg.UI.Border = o.border
	}
	if o.set["log-level"] {
		cfg.LogLevel = o.logLevel
	}
}

func usage() string {
	var b strings.Builder
	b.WriteString("Usage: marquee [flags] [file]\n\n")
	b.WriteString("Scrolls a file, a command's output or stdin in a seamless loop.\n\nFlags:\n")
	fs := newFlagSet("marquee")
	defineFlags(fs, &cliOptions{})
	fs.VisitAll(func(f *flag.Flag) {
		name, help := flag.UnquoteUsage(f)
		if name != "" {
			name = " " + name
		}
		fmt.Fprintf(&b, "  --%s%s\n\t%s\n", f.Name, name, help)
	})
	return b.String()
}
