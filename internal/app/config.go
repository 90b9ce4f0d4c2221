package app

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development"`
	AppAddr           string        `envconfig:"APP_ADDR" default:":8080"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"30s"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`

	// PlotlySrc is the charting library script. Empty disables chart
	// rendering and pages show the "Plotly not loaded." diagnostic.
	PlotlySrc    string `envconfig:"PLOTLY_SRC" default:"https://cdn.plot.ly/plotly-2.35.2.min.js"`
	ThemeFile    string `envconfig:"THEME_FILE"`
	DefaultTheme string `envconfig:"DEFAULT_THEME" default:"emerald"`

	RateLimitPerMinute       int `envconfig:"RATE_LIMIT_PER_MINUTE" default:"120"`
	ExportRateLimitPerMinute int `envconfig:"EXPORT_RATE_LIMIT_PER_MINUTE" default:"10"`
}

// LoadConfig reads configuration from environment variables. A .env file in
// the working directory is loaded first when present; real environment
// variables take precedence.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Default().Warn("load .env", slog.Any("error", err))
	}
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.RateLimitPerMinute <= 0 {
		return errors.New("rate limit must be positive")
	}
	if c.ExportRateLimitPerMinute <= 0 {
		return errors.New("export rate limit must be positive")
	}
	if c.PlotlySrc != "" {
		u, err := url.Parse(c.PlotlySrc)
		if err != nil {
			return fmt.Errorf("plotly src: %w", err)
		}
		if u.Scheme != "" && u.Scheme != "https" && u.Scheme != "http" {
			return fmt.Errorf("plotly src: unsupported scheme %q", u.Scheme)
		}
	}
	return nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}

// PlotlyOrigin returns the scheme and host of PlotlySrc for the CSP, or ""
// when the script is served from this origin or disabled.
func (c *Config) PlotlyOrigin() string {
	if c == nil || c.PlotlySrc == "" {
		return ""
	}
	u, err := url.Parse(c.PlotlySrc)
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}
