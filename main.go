package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"fnetgrip/internal/api"
	"fnetgrip/internal/browser"
	"fnetgrip/internal/config"
	"fnetgrip/internal/documents"
	"fnetgrip/internal/download"
	"fnetgrip/internal/eventbus"
	"fnetgrip/internal/logging"
	"fnetgrip/internal/ui"
)

func main() {
	var (
		configPath string
		baseURL    string
		ticker     string
		pageSize   int
	)
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.StringVar(&baseURL, "base-url", "", "Document API base URL (overrides config and "+config.EnvBaseURL+")")
	flag.StringVar(&ticker, "ticker", "", "Search this ticker on start")
	flag.IntVar(&pageSize, "max", 0, "Documents per search (10, 20, 50 or 100)")
	flag.Parse()

	if ticker == "" && flag.NArg() > 0 {
		ticker = flag.Arg(0)
	}

	cfg, err := loadConfig(configPath, baseURL, pageSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	closeLog, err := logging.Setup(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	client := api.New(
		api.WithBaseURL(cfg.API.BaseURL),
		api.WithSearchPath(cfg.API.SearchPath),
		api.WithPageSizeParam(cfg.API.PageSizeParam),
		api.WithHealthPath(cfg.API.HealthPath),
		api.WithTimeout(cfg.API.Timeout.Duration),
		api.WithRateLimit(cfg.API.RequestsPerSec),
	)
	log.Info().Str("base_url", client.BaseURL()).Msg("starting")

	bus := eventbus.New()
	defer bus.Close()

	svc := documents.NewService(ctx, bus, client, download.NewSaver(cfg.Download.Dir))

	uiModel := ui.NewModel(bus, cfg, browser.NewOpener(), client.ResolveURL)
	uiModel.SetTicker(ticker)

	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	// Forward completion events to the UI
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	bus.Subscribe(eventbus.EventSearchCompleted, forward)
	bus.Subscribe(eventbus.EventDownloadCompleted, forward)
	bus.Subscribe(eventbus.EventHealthChecked, forward)
	bus.Subscribe(eventbus.EventError, forward)

	go svc.CheckHealth()

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		log.Error().Err(err).Msg("error running program")
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("UI exited normally")
}

// loadConfig reads the config file and applies env and flag overrides, later wins
func loadConfig(path, baseURL string, pageSize int) (*config.Config, error) {
	configSvc := config.NewConfigService()
	if path != "" {
		configSvc = config.NewConfigServiceAt(path)
	}
	cfg, err := configSvc.Load()
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	if baseURL != "" {
		cfg.API.BaseURL = baseURL
	}
	if pageSize != 0 {
		cfg.UISettings.DefaultPageSize = pageSize
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
