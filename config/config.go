package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the scraper settings.
type Config struct {
	Site struct {
		BaseURL   string `yaml:"base_url"`
		NewsPath  string `yaml:"news_path"` // fmt template taking symbol and page number
		UserAgent string `yaml:"user_agent"`
	} `yaml:"site"`

	// Engine selects how pages are fetched: "rod" drives a headless browser,
	// "colly" does plain HTTP for pages that render without JavaScript.
	Engine string `yaml:"engine"`

	StabilizeSeconds int    `yaml:"stabilize_seconds"`
	DefaultPages     int    `yaml:"default_pages"`
	LogFile          string `yaml:"log_file"`
}

// Load loads configuration from a YAML file. Keys absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.Site.BaseURL = "https://www.investing.com"
	cfg.Site.NewsPath = "/currencies/%s-news/%d/"
	cfg.Site.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	cfg.Engine = "rod"
	cfg.StabilizeSeconds = 10
	cfg.DefaultPages = 1
	return cfg
}

// StabilizeTimeout returns how long Navigate waits for a page to settle.
func (c *Config) StabilizeTimeout() time.Duration {
	return time.Duration(c.StabilizeSeconds) * time.Second
}

// ListingURL builds the listing page URL for a symbol and 1-based page index.
func (c *Config) ListingURL(symbol string, page int) string {
	return c.Site.BaseURL + fmt.Sprintf(c.Site.NewsPath, symbol, page)
}
