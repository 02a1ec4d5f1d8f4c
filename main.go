package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	cli "github.com/urfave/cli/v3"

	"emojipick/internal/catalog"
	"emojipick/internal/clipboard"
	"emojipick/internal/config"
	"emojipick/internal/domain"
	"emojipick/internal/eventbus"
	"emojipick/internal/index"
	"emojipick/internal/ui"
	"emojipick/internal/ui/grid"
)

var version = "dev"

func main() {
	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newApp().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "emojipick",
		Usage:   "Pick an emoji and copy it to the clipboard",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the TOML config file",
				Value:   config.DefaultPath(),
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "write logs to this file (overrides log_file from the config)",
			},
		},
		Action: runPicker,
		Commands: []*cli.Command{
			{
				Name:      "list",
				Usage:     "Print emoji matching a query",
				ArgsUsage: "[query]",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return writeMatches(cmd.Root().Writer, index.BuildDescriptors(catalog.GitHub()), cmd.Args().First())
				},
			},
			{
				Name:  "config",
				Usage: "Write the default config if missing and print its path",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					path, err := ensureConfig(config.NewConfigService(cmd.String("config")))
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.Root().Writer, path)
					return nil
				},
			},
		},
	}
}

// runPicker starts the interactive picker
func runPicker(ctx context.Context, cmd *cli.Command) error {
	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	cfg, closeLog, err := loadConfigAndLogging(config.NewConfigService(cmd.String("config")), cmd.String("log-file"))
	if err != nil {
		return err
	}
	defer closeLog()

	subscribeLogging(bus)

	descriptors := index.BuildDescriptors(catalog.GitHub())
	bus.Publish(domain.CatalogLoadedEvent{Count: len(descriptors)})

	uiModel := ui.NewModel(bus, cfg, descriptors, clipboard.NewService(cfg.Clipboard))

	p := tea.NewProgram(uiModel,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	uiModel.SetProgram(p)

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("error running program: %w", err)
	}
	log.Printf("UI exited normally")
	return nil
}

// loadConfigAndLogging reads the config, then points the standard logger at the
// log file it names (the flag wins) and records where the config came from.
func loadConfigAndLogging(configSvc config.ConfigService, logFlag string) (*config.Config, func(), error) {
	cfg, err := configSvc.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logPath := logFlag
	if logPath == "" {
		logPath = cfg.LogFile
	}
	if logPath == "" {
		logPath = config.DefaultLogFile()
	}
	closeLog, err := setupLogging(logPath)
	if err != nil {
		// Terminal output would corrupt the TUI
		log.SetOutput(io.Discard)
		closeLog = func() {}
	}

	if _, err := os.Stat(configSvc.Path()); err == nil {
		log.Printf("Loaded config from %s", configSvc.Path())
	} else {
		log.Printf("No config at %s, using defaults", configSvc.Path())
	}
	return cfg, closeLog, nil
}

// setupLogging redirects the standard logger to path
func setupLogging(path string) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}
	log.SetOutput(logFile)
	return func() { _ = logFile.Close() }, nil
}

// subscribeLogging records domain events in the log
func subscribeLogging(bus eventbus.EventBus) {
	bus.Subscribe(eventbus.EventCatalogLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.CatalogLoadedEvent); ok {
			log.Printf("Catalog loaded: %d emoji", event.Count)
		}
	})
	bus.Subscribe(eventbus.EventGlyphCopied, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.GlyphCopiedEvent); ok {
			log.Printf("Copied %s", event.Glyph)
		}
	})
	bus.Subscribe(eventbus.EventClipboardFailed, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ClipboardFailedEvent); ok {
			log.Printf("Clipboard write failed for %s: %v", event.Glyph, event.Err)
		}
	})
}

// ensureConfig writes the default config when the file does not exist yet
func ensureConfig(configSvc config.ConfigService) (string, error) {
	path := configSvc.Path()
	if _, err := os.Stat(path); err == nil {
		return path, nil
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to stat config: %w", err)
	}
	if err := configSvc.Save(config.DefaultConfig()); err != nil {
		return "", err
	}
	return path, nil
}

// writeMatches prints glyph, name and keywords of every descriptor matching query
func writeMatches(w io.Writer, descriptors []domain.Descriptor, query string) error {
	q := grid.NormalizeQuery(query)
	for _, d := range descriptors {
		if q != "" && !grid.Matches(d.Keywords, q) {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", d.Glyph, d.Name, d.Keywords); err != nil {
			return err
		}
	}
	return nil
}
