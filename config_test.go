package etfscope

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
database:
  path: data/test.db
provider: yahoo
date_range:
  start: 2020-01-01
  end: 2024-12-31
risk_free_rate: 0.03
etfs:
  - ticker: SPY
    name: SPDR S&P 500 ETF Trust
    theme: US Large Cap
    currency: USD
  - ticker: IWDA.AS
    name: iShares Core MSCI World
    theme: Global
    currency: EUR
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	want := Config{
		Database:     DatabaseConfig{Path: "data/test.db"},
		Provider:     "yahoo",
		DateRange:    DateRangeConfig{Start: "2020-01-01", End: "2024-12-31"},
		RiskFreeRate: 0.03,
		ETFs: []Security{
			{Ticker: "SPY", Name: "SPDR S&P 500 ETF Trust", Theme: "US Large Cap", Currency: "USD"},
			{Ticker: "IWDA.AS", Name: "iShares Core MSCI World", Theme: "Global", Currency: "EUR"},
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("LoadConfig mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
etfs:
  - ticker: SPY
    name: SPDR S&P 500 ETF Trust
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Provider != "yahoo" {
		t.Errorf("default provider = %q, want yahoo", cfg.Provider)
	}
	if cfg.Database.Path != "data/etf.db" {
		t.Errorf("default database path = %q, want data/etf.db", cfg.Database.Path)
	}
	if cfg.RiskFreeRate != 0.02 {
		t.Errorf("default risk-free rate = %v, want 0.02", cfg.RiskFreeRate)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestConfigValidate(t *testing.T) {
	valid := func() Config {
		cfg := DefaultConfig()
		cfg.ETFs = []Security{{Ticker: "SPY", Name: "S&P 500"}}
		return cfg
	}

	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"Valid", func(c *Config) {}, ""},
		{"Empty db path", func(c *Config) { c.Database.Path = "" }, "database.path"},
		{"Unknown provider", func(c *Config) { c.Provider = "bloomberg" }, "unknown provider"},
		{"Risk free out of range", func(c *Config) { c.RiskFreeRate = 2 }, "risk_free_rate"},
		{"Bad start date", func(c *Config) { c.DateRange.Start = "someday" }, "date_range.start"},
		{"End before start", func(c *Config) { c.DateRange.Start = "2024-01-01"; c.DateRange.End = "2020-01-01" }, "before start"},
		{"Lowercase ticker", func(c *Config) { c.ETFs[0].Ticker = "spy" }, "invalid ticker"},
		{"Duplicate ticker", func(c *Config) { c.ETFs = append(c.ETFs, Security{Ticker: "SPY"}) }, "duplicate ticker"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestConfigRangeDefaultsEndToToday(t *testing.T) {
	cfg := DefaultConfig()
	rng, err := cfg.Range()
	if err != nil {
		t.Fatalf("Range: %v", err)
	}
	if rng.To.Before(rng.From) {
		t.Errorf("range %v is inverted", rng)
	}
}

func TestSecurityLabel(t *testing.T) {
	s := Security{Ticker: "SPY", Name: "SPDR S&P 500 ETF Trust"}
	if got := s.Label(); got != "SPY - SPDR S&P 500 ETF Trust" {
		t.Errorf("Label() = %q", got)
	}
	if got := (Security{Ticker: "SPY"}).Label(); got != "SPY" {
		t.Errorf("Label() without name = %q, want SPY", got)
	}
}
