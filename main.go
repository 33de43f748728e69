// sysdeck is a terminal system monitor widget.
//
// It samples CPU, memory, swap, GPU, disk and network once a second and
// renders them as a grid of tiles whose colors track each metric's health.
// Tiles can be rearranged, restyled, and clicked to change their
// visualization mode; everything persists to a plain-text config file.
//
// Usage:
//
//	sysdeck [flags]
//
// Flags:
//
//	-config string     Path to configuration file (default: ~/.config/sysdeck/config)
//	-layout string     Layout override (compact|wide|vertical|mini)
//	-mode string       Visualization mode override (bar|gauge|arc|ring|minimal)
//	-theme string      Theme override (classic|aurora|gruvbox|nord or a themes.yaml entry)
//	-once              Render a single frame to stdout and exit
//	-autostart string  Manage the XDG autostart entry (on|off|status)
//	-icon string       Write the application icon to PATH and exit
//	-icon-size int     Icon size in pixels (with -icon, default 128)
//	-icon-preview      Render the icon to the terminal and exit
//	-no-color          Disable color output
//	-verbose           Enable verbose logging
//	-version           Print version and exit
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"

	"gitlab.com/tinyland/lab/sysdeck/collectors"
	"gitlab.com/tinyland/lab/sysdeck/collectors/gpu"
	"gitlab.com/tinyland/lab/sysdeck/collectors/sysmetrics"
	"gitlab.com/tinyland/lab/sysdeck/config"
	"gitlab.com/tinyland/lab/sysdeck/display/color"
	"gitlab.com/tinyland/lab/sysdeck/display/colormap"
	"gitlab.com/tinyland/lab/sysdeck/display/tui"
	"gitlab.com/tinyland/lab/sysdeck/icon"
)

func main() {
	var (
		configPath    = flag.String("config", "", "Path to configuration file (default: ~/.config/sysdeck/config)")
		layoutFlag    = flag.String("layout", "", "Layout override (compact|wide|vertical|mini)")
		modeFlag      = flag.String("mode", "", "Visualization mode override (bar|gauge|arc|ring|minimal)")
		themeFlag     = flag.String("theme", "", "Theme override")
		runOnce       = flag.Bool("once", false, "Render a single frame to stdout and exit")
		autostartCmd  = flag.String("autostart", "", "Manage the XDG autostart entry (on|off|status)")
		iconPath      = flag.String("icon", "", "Write the application icon to PATH and exit")
		iconSize      = flag.Int("icon-size", 128, "Icon size in pixels (with -icon)")
		iconPreview   = flag.Bool("icon-preview", false, "Render the icon to the terminal and exit")
		noColor       = flag.Bool("no-color", false, "Disable color output")
		verbose       = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion   = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("sysdeck %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	logLevel := slog.LevelWarn
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	colorOn := false
	if *noColor {
		color.ForceDisable()
	} else {
		colorOn = color.Apply()
	}

	// ---------------------------------------------------------------
	// Config and themes
	// ---------------------------------------------------------------

	path := *configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sysdeck: %v\n", err)
		os.Exit(1)
	}

	themes := colormap.NewRegistry()
	if err := themes.LoadFile(config.ThemeFilePath()); err != nil {
		logger.Warn("user theme file ignored", "error", err)
	}

	applyOverride(&cfg.Layout, *layoutFlag, config.Layouts, "layout")
	applyOverride(&cfg.VisMode, *modeFlag, config.VisModes, "mode")
	if *themeFlag != "" {
		cfg.Theme = *themeFlag
	}

	// ---------------------------------------------------------------
	// One-shot commands
	// ---------------------------------------------------------------

	if *autostartCmd != "" {
		runAutostart(cfg, *autostartCmd)
		os.Exit(0)
	}

	if *iconPath != "" {
		if err := icon.Save(*iconPath, *iconSize, themes.Get(cfg.Theme)); err != nil {
			fmt.Fprintf(os.Stderr, "sysdeck: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "wrote %dpx icon to %s\n", *iconSize, *iconPath)
		os.Exit(0)
	}

	if *iconPreview {
		img := icon.Generate(128, themes.Get(cfg.Theme))
		out := icon.Preview(img, 32, 16)
		if !colorOn {
			// Preview writes raw 24-bit escapes that bypass lipgloss.
			out = color.StripANSI(out)
		}
		fmt.Println(out)
		os.Exit(0)
	}

	// ---------------------------------------------------------------
	// Collectors
	// ---------------------------------------------------------------

	registry := collectors.NewRegistry()
	registry.Register(sysmetrics.NewCollector(logger))
	registry.Register(gpu.NewCollector(logger))
	poller := collectors.NewPoller(registry, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if *runOnce {
		runSingleFrame(ctx, cfg, themes, poller, logger)
		os.Exit(0)
	}

	// ---------------------------------------------------------------
	// Dashboard
	// ---------------------------------------------------------------

	defer func() {
		if r := recover(); r != nil {
			// Attempt to restore terminal from alt-screen before printing.
			fmt.Print("\x1b[?1049l\x1b[?25h")
			fmt.Fprintf(os.Stderr, "sysdeck: panic: %v\n", r)
			os.Exit(1)
		}
	}()

	model := tui.NewModel(cfg, themes, poller, logger)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "sysdeck: %v\n", err)
		os.Exit(1)
	}
}

// applyOverride validates a flag value against the allowed set before it
// replaces the configured one.
func applyOverride(target *string, value string, allowed []string, name string) {
	if value == "" {
		return
	}
	for _, v := range allowed {
		if v == value {
			*target = value
			return
		}
	}
	fmt.Fprintf(os.Stderr, "sysdeck: invalid %s %q (choose from %v)\n", name, value, allowed)
	os.Exit(2)
}

// runAutostart handles the -autostart on|off|status subcommand.
func runAutostart(cfg *config.Config, cmd string) {
	path := config.AutostartPath()
	switch cmd {
	case "on":
		if err := cfg.SetAutostart(true, path); err != nil {
			fmt.Fprintf(os.Stderr, "sysdeck: %v\n", err)
			os.Exit(1)
		}
		if err := cfg.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "sysdeck: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("autostart enabled")

	case "off":
		if err := cfg.SetAutostart(false, path); err != nil {
			fmt.Fprintf(os.Stderr, "sysdeck: %v\n", err)
			os.Exit(1)
		}
		if err := cfg.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "sysdeck: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("autostart disabled")

	case "status":
		if config.AutostartEnabled(path) {
			fmt.Println("autostart: enabled")
		} else {
			fmt.Println("autostart: disabled")
		}

	default:
		fmt.Fprintf(os.Stderr, "sysdeck: invalid autostart command %q (on|off|status)\n", cmd)
		os.Exit(2)
	}
}

// runSingleFrame polls twice so counter-based rates have a delta, then
// prints one rendered frame.
func runSingleFrame(ctx context.Context, cfg *config.Config, themes *colormap.Registry, poller *collectors.Poller, logger *slog.Logger) {
	poller.Poll(ctx)
	time.Sleep(250 * time.Millisecond)
	snap := poller.Poll(ctx)

	width, height := 100, 40
	if w, h, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 && h > 0 {
		width, height = w, h
	}

	model := tui.NewModel(cfg, themes, poller, logger)
	model.SetSize(width, height)
	model.SetSnapshot(snap)
	fmt.Println(model.View())
}
