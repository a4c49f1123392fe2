package etfscope

import (
	"fmt"
	"os"

	"github.com/etnz/etfscope/date"
	"gopkg.in/yaml.v3"
)

// Config is the application configuration, loaded from a YAML file.
type Config struct {
	Database     DatabaseConfig  `yaml:"database"`
	Provider     string          `yaml:"provider"`
	DateRange    DateRangeConfig `yaml:"date_range"`
	RiskFreeRate float64         `yaml:"risk_free_rate"`
	ETFs         []Security      `yaml:"etfs"`
}

// DatabaseConfig locates the local SQLite database.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// DateRangeConfig bounds the historical data kept by the ETL.
// An empty End means today.
type DateRangeConfig struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// DefaultConfig returns the configuration used when a field is left unset.
func DefaultConfig() Config {
	return Config{
		Database:     DatabaseConfig{Path: "data/etf.db"},
		Provider:     "yahoo",
		DateRange:    DateRangeConfig{Start: "2015-01-01"},
		RiskFreeRate: 0.02,
	}
}

// LoadConfig reads and validates a YAML configuration file.
// Missing fields fall back to DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read config %q: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("cannot parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for mistakes with actionable messages.
func (c Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is empty")
	}
	switch c.Provider {
	case "yahoo", "eodhd":
	default:
		return fmt.Errorf("unknown provider %q (want yahoo or eodhd)", c.Provider)
	}
	if c.RiskFreeRate < 0 || c.RiskFreeRate >= 1 {
		return fmt.Errorf("risk_free_rate %v out of range: want a fraction like 0.02", c.RiskFreeRate)
	}
	if _, err := c.Range(); err != nil {
		return err
	}
	seen := make(map[string]bool, len(c.ETFs))
	for _, etf := range c.ETFs {
		if err := etf.Validate(); err != nil {
			return err
		}
		if seen[etf.Ticker] {
			return fmt.Errorf("duplicate ticker %q in etfs", etf.Ticker)
		}
		seen[etf.Ticker] = true
	}
	return nil
}

// Range resolves the configured date range. An empty end means today.
func (c Config) Range() (date.Range, error) {
	start, err := date.Parse(c.DateRange.Start)
	if err != nil {
		return date.Range{}, fmt.Errorf("date_range.start: %w", err)
	}
	end := date.Today()
	if c.DateRange.End != "" {
		end, err = date.Parse(c.DateRange.End)
		if err != nil {
			return date.Range{}, fmt.Errorf("date_range.end: %w", err)
		}
	}
	if end.Before(start) {
		return date.Range{}, fmt.Errorf("date_range: end %s is before start %s", end, start)
	}
	return date.NewRange(start, end), nil
}

// Save validates the configuration and writes it as YAML.
func (c Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	content, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("cannot write config %q: %w", path, err)
	}
	return nil
}

// Security returns the configured descriptor for a ticker.
func (c Config) Security(ticker string) (Security, bool) {
	for _, etf := range c.ETFs {
		if etf.Ticker == ticker {
			return etf, true
		}
	}
	return Security{}, false
}
