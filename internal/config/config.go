package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"fnetgrip/internal/domain"
	"fnetgrip/internal/logging"
)

// EnvBaseURL overrides the configured API base URL
const EnvBaseURL = "FNETGRIP_BASE_URL"

// Config represents the application configuration
type Config struct {
	Version    int               `toml:"version"`
	API        APISettings       `toml:"api"`
	UISettings UISettings        `toml:"ui"`
	Download   DownloadSettings  `toml:"download"`
	Log        logging.Config    `toml:"log"`
	Categories map[string]string `toml:"categories"` // category name -> hex color
}

// APISettings describes how to reach the document API
type APISettings struct {
	BaseURL        string   `toml:"base_url"`
	SearchPath     string   `toml:"search_path"` // {ticker} is substituted
	PageSizeParam  string   `toml:"page_size_param"`
	HealthPath     string   `toml:"health_path"`
	Timeout        Duration `toml:"timeout"` // zero means no timeout
	RequestsPerSec float64  `toml:"requests_per_sec"` // zero means unlimited
}

// UISettings represents UI-related configuration
type UISettings struct {
	DefaultPageSize int `toml:"default_page_size"`
	HistorySize     int `toml:"history_size"`
}

// DownloadSettings controls where downloaded PDFs go
type DownloadSettings struct {
	Dir string `toml:"dir"`
}

// Duration is a time.Duration encoded as a string like "30s"
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		d.Duration = 0
		return nil
	}
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service backed by the user config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return &configService{
		filePath: filepath.Join(configDir, "fnetgrip", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service for an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, returning defaults when the file does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path.
// Missing keys keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Categories == nil {
		cfg.Categories = make(map[string]string)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ApplyEnv overrides values from the environment
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvBaseURL); v != "" {
		c.API.BaseURL = v
	}
}

// Validate checks the values the rest of the program relies on
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api.base_url %q is not an absolute URL", c.API.BaseURL)
	}
	if c.API.SearchPath == "" {
		return errors.New("api.search_path is empty")
	}
	if !domain.ValidPageSize(c.UISettings.DefaultPageSize) {
		return fmt.Errorf("ui.default_page_size %d must be one of %v", c.UISettings.DefaultPageSize, domain.PageSizes)
	}
	if c.API.RequestsPerSec < 0 {
		return errors.New("api.requests_per_sec must not be negative")
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	downloadDir := "."
	if home, err := os.UserHomeDir(); err == nil {
		downloadDir = filepath.Join(home, "Downloads")
	}

	return &Config{
		Version: 1,
		API: APISettings{
			BaseURL:       "http://localhost:8000",
			SearchPath:    "/documents/{ticker}",
			PageSizeParam: "max",
			HealthPath:    "/health",
		},
		UISettings: UISettings{
			DefaultPageSize: domain.DefaultPageSize,
			HistorySize:     20,
		},
		Download: DownloadSettings{
			Dir: downloadDir,
		},
		Log:        logging.DefaultConfig(),
		Categories: make(map[string]string),
	}
}
