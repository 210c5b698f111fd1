// Package main is an interactive demo of crosshair highlighting.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/crosshair/internal/config"
	"github.com/dshills/crosshair/internal/crosshair"
	"github.com/dshills/crosshair/internal/hook"
	"github.com/dshills/crosshair/internal/input"
	"github.com/dshills/crosshair/internal/term"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const demoView = "demo"

var demoLines = []string{
	"Crosshair highlighting demo",
	"",
	"  x        toggle crosshair on/off",
	"  f        flash for the configured duration",
	"  p        pulse (extend an active flash)",
	"  1-9 x    toggle on for N seconds",
	"  arrows   move the cursor",
	"  q / Esc  quit",
	"",
	"The status line below echoes the cursor offset while",
	"the crosshair is active.",
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg := config.New()
	if opts.ConfigPath != "" {
		if err := cfg.Load(opts.ConfigPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
			return 1
		}
		if opts.Watch {
			if err := cfg.Watch(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: failed to watch config: %v\n", err)
				return 1
			}
			defer cfg.Unwatch()
		}
	}

	screen, err := term.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}
	defer screen.Fini()

	width, height := screen.Size()
	screen.AddView(demoView, demoLines, 0, 0, width, height-1)

	hooks := hook.NewManager()
	manager := crosshair.NewManager(screen.Capabilities(), hooks, cfg)
	handler := crosshair.NewHandler(manager)

	// Restore the terminal before dying on a signal.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		screen.Fini()
		os.Exit(0)
	}()

	screen.Draw()

	count := 0
	hasCount := false

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return 0
		}

		if !hooks.RunPre(ev) {
			screen.Draw()
			continue
		}

		if ev.Kind == input.KindKey {
			action := input.Action{ViewID: ev.ViewID, Source: input.SourceKeyboard}
			if hasCount {
				action = action.WithCount(count)
			}

			switch {
			case ev.Rune == 'q' || ev.Key == "Esc":
				return 0
			case ev.Rune >= '1' && ev.Rune <= '9':
				count = count*10 + int(ev.Rune-'0')
				hasCount = true
				continue
			case ev.Rune == 'x':
				action.Name = crosshair.ActionToggle
			case ev.Rune == 'f':
				action.Name = crosshair.ActionFlash
			case ev.Rune == 'p':
				action.Name = crosshair.ActionPulse
			case ev.Key == "Up" || ev.Key == "Down" || ev.Key == "Left" || ev.Key == "Right":
				moveCursor(screen, ev.ViewID, ev.Key)
			}
			count, hasCount = 0, false

			if action.Name != "" {
				if err := handler.HandleAction(action); err != nil {
					screen.Capabilities().Status.Echo(fmt.Sprintf("Error: %v", err))
				}
			}
		}

		hooks.RunPost(ev)
		screen.Draw()
	}
}

func moveCursor(screen *term.Screen, viewID, key string) {
	line, col := screen.Cursor(viewID)
	switch key {
	case "Up":
		line--
	case "Down":
		line++
	case "Left":
		col--
	case "Right":
		col++
	}
	screen.SetCursor(viewID, line, col)
}

type options struct {
	ConfigPath string
	Watch      bool
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.BoolVar(&opts.Watch, "watch", false, "Reload the configuration file when it changes")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "crosshair-demo - interactive crosshair highlighting demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: crosshair-demo [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("crosshair-demo %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	return opts
}
