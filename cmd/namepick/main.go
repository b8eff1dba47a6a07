package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"namepick/internal/config"
	"namepick/internal/eventbus"
	"namepick/internal/logger"
	"namepick/internal/roster"
	"namepick/internal/ui"
)

// Build-time variables (set via ldflags)
var version = "dev"

var (
	configPath string
	rosterPath string
	delay      time.Duration
	logLevel   string
	printPick  bool
)

var rootCmd = &cobra.Command{
	Use:   "namepick",
	Short: "Pick a person from a roster by typing part of their name",
	Long: `namepick is a terminal autocomplete over a roster of people.

Type part of a name and the list narrows to matching candidates shortly
after you stop typing. Confirm one with Enter. The roster comes from a
TOML file, or a small builtin list when none is configured.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.Version = version
	rootCmd.Flags().StringVar(&configPath, "config", "", "Config file (default: the user config dir)")
	rootCmd.Flags().StringVar(&rosterPath, "roster", "", "Roster TOML file (overrides the config)")
	rootCmd.Flags().DurationVar(&delay, "delay", 0, "Debounce interval, e.g. 150ms (overrides the config)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().BoolVar(&printPick, "print", false, "Print the picked name on exit")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Set up logging; the TUI owns the terminal, so logs go to a file
	logFile, err := logger.SetupFile("namepick.log")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
	} else {
		defer logFile.Close()
	}

	// Create event bus
	bus := eventbus.New()
	defer bus.Stop()

	// Load configuration
	var configSvc config.ConfigService
	if configPath != "" {
		configSvc = config.NewConfigServiceAt(bus, configPath)
	} else {
		configSvc = config.NewConfigServiceWithBus(bus)
	}
	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	// First run: persist the defaults so there is a file to edit and watch
	if _, err := os.Stat(configSvc.Path()); os.IsNotExist(err) {
		if err := configSvc.Save(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Could not write default config: %v\n", err)
		}
	}

	// Flag overrides
	if delay > 0 {
		cfg.DebounceDelayMs = int(delay / time.Millisecond)
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	appLog := logger.New("main")

	// Load the roster, falling back to the builtin one
	path := rosterPath
	if path == "" {
		path = cfg.RosterPath
	}
	source := "builtin"
	candidates := roster.Builtin()
	if path != "" {
		loaded, err := roster.Load(path)
		if err != nil {
			appLog.Error("failed to load roster", "path", path, "err", err)
			bus.Publish(eventbus.ErrorEvent{
				Message: fmt.Sprintf("Could not load roster %s, using the builtin list", path),
				Err:     err,
			})
		} else {
			candidates = loaded
			source = path
		}
	}
	appLog.Info("roster ready", "source", source, "people", len(candidates))

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, candidates)
	uiModel.SetPrintOnSelect(printPick)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			appLog.Warn("event channel full, dropping event", "type", e.Type())
		}
	}
	unsubs := []func(){
		bus.Subscribe(eventbus.EventRosterLoaded, forward),
		bus.Subscribe(eventbus.EventError, forward),
		bus.Subscribe(eventbus.EventAppReady, forward),
	}

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Watch the config file so edits apply without a restart
	watcher, err := config.NewWatcher(configSvc, logger.New("config"), func(next *config.Config) {
		bus.Publish(eventbus.ConfigReloadedEvent{Path: configSvc.Path()})
		p.Send(ui.ConfigReloadedMsg{Config: next})
	})
	if err != nil {
		appLog.Warn("config hot reload disabled", "err", err)
	} else {
		defer watcher.Close()
	}

	bus.Publish(eventbus.RosterLoadedEvent{Source: source, Candidates: candidates})
	bus.Publish(eventbus.AppReadyEvent{RosterSize: len(candidates)})

	// Run the UI
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	// Cleanup
	for _, unsub := range unsubs {
		unsub()
	}
	close(eventChan)

	if printPick {
		if m, ok := finalModel.(*ui.Model); ok {
			if sel, ok := m.Selected(); ok {
				fmt.Println(sel.Name)
			}
		}
	}
	return nil
}
