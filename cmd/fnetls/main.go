// Command fnetls lists the FNET documents of a ticker without the TUI.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"fnetgrip/internal/api"
	"fnetgrip/internal/config"
	"fnetgrip/internal/domain"
	"fnetgrip/internal/download"
	"fnetgrip/internal/logging"
	"fnetgrip/internal/ui/logic"
	"fnetgrip/internal/ui/state"
	"fnetgrip/internal/ui/views"
)

type options struct {
	configPath string
	baseURL    string
	ticker     string
	pageSize   int
	category   string
	downloadID int
	jsonOut    bool
	logLevel   string
	logFile    string
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Path to config file")
	flag.StringVar(&opts.baseURL, "base-url", "", "Document API base URL")
	flag.StringVar(&opts.ticker, "ticker", "", "Ticker to search (required)")
	flag.IntVar(&opts.pageSize, "max", 0, "Documents per search (10, 20, 50 or 100)")
	flag.StringVar(&opts.category, "category", domain.CategoryAll, "Only list this category")
	flag.IntVar(&opts.downloadID, "download", 0, "Download the document with this id")
	flag.BoolVar(&opts.jsonOut, "json", false, "Print the result as JSON")
	flag.StringVar(&opts.logLevel, "log-level", "warn", "Log level")
	flag.StringVar(&opts.logFile, "log-file", "", "Write logs to this file instead of stderr")
	flag.Parse()

	if opts.ticker == "" && flag.NArg() > 0 {
		opts.ticker = flag.Arg(0)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, opts, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, out io.Writer) error {
	closeLog, err := logging.Setup(logging.Config{Level: opts.logLevel, File: opts.logFile})
	if err != nil {
		return err
	}
	defer closeLog()

	ticker := state.NormalizeTicker(opts.ticker)
	if ticker == "" {
		return fmt.Errorf("a ticker is required")
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	client := api.New(
		api.WithBaseURL(cfg.API.BaseURL),
		api.WithSearchPath(cfg.API.SearchPath),
		api.WithPageSizeParam(cfg.API.PageSizeParam),
		api.WithTimeout(cfg.API.Timeout.Duration),
		api.WithRateLimit(cfg.API.RequestsPerSec),
	)

	result, err := client.Search(ctx, ticker, cfg.UISettings.DefaultPageSize)
	if err != nil {
		return fmt.Errorf("%s", api.UserMessage(err))
	}

	docs := logic.FilterDocuments(result.Documents, opts.category)
	if opts.jsonOut {
		filtered := *result
		filtered.Documents = docs
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(filtered); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(out, renderTable(result, docs, views.NewPalette(cfg.Categories)))
	}

	if opts.downloadID == 0 {
		return nil
	}
	doc, ok := result.Document(opts.downloadID)
	if !ok {
		return fmt.Errorf("document %d is not in the result", opts.downloadID)
	}
	body, err := client.Download(ctx, doc)
	if err != nil {
		return fmt.Errorf("%s: %s", state.DownloadFailedMessage, api.UserMessage(err))
	}
	defer body.Close()

	saved, err := download.NewSaver(cfg.Download.Dir).Save(ticker, doc.ID, body)
	if err != nil {
		return fmt.Errorf("%s: %w", state.DownloadFailedMessage, err)
	}
	fmt.Fprintf(os.Stderr, "saved %s (%d bytes)\n", saved.Path, saved.Bytes)
	return nil
}

func loadConfig(opts options) (*config.Config, error) {
	svc := config.NewConfigService()
	if opts.configPath != "" {
		svc = config.NewConfigServiceAt(opts.configPath)
	}
	cfg, err := svc.Load()
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	if opts.baseURL != "" {
		cfg.API.BaseURL = opts.baseURL
	}
	if opts.pageSize != 0 {
		cfg.UISettings.DefaultPageSize = opts.pageSize
	}
	return cfg, cfg.Validate()
}

func renderTable(result *domain.SearchResult, docs []domain.Document, palette *views.Palette) string {
	header := fmt.Sprintf("%s · %s listed of %s · fetched %s",
		result.Ticker,
		logic.FormatCount(len(result.Documents)),
		logic.FormatCount(result.TotalAvailable),
		logic.FormatDate(result.FetchedAt))
	if reg := result.Registration(); reg != "" {
		header += " · CNPJ " + reg
	}

	if len(docs) == 0 {
		return header + "\n" + views.EmptyFilterMessage
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("241"))).
		Headers("ID", "Category", "Type", "Delivered", "Reference").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			if col == 1 && row >= 0 && row < len(docs) {
				return palette.Badge(docs[row].Category)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, d := range docs {
		t.Row(
			strconv.Itoa(d.ID),
			d.Category,
			d.Type,
			logic.FormatDate(d.DeliveredAt),
			logic.FormatDate(d.ReferenceDate),
		)
	}
	return header + "\n" + t.Render()
}
