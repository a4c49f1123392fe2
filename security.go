package etfscope

import (
	"fmt"
	"regexp"
)

// tickers are plain exchange symbols, possibly suffixed with an exchange code (e.g. "IWDA.AS").
var tickerRE = regexp.MustCompile(`^[A-Z0-9][A-Z0-9.\-]*$`)

// Security describes one ETF tracked by the application.
type Security struct {
	Ticker   string `yaml:"ticker" json:"ticker"`
	Name     string `yaml:"name" json:"name"`
	Theme    string `yaml:"theme,omitempty" json:"theme,omitempty"`
	Currency string `yaml:"currency,omitempty" json:"currency,omitempty"`
}

// Label returns the human display label "TICKER - Name".
func (s Security) Label() string {
	if s.Name == "" {
		return s.Ticker
	}
	return s.Ticker + " - " + s.Name
}

// Validate checks that the security descriptor is usable.
func (s Security) Validate() error {
	if s.Ticker == "" {
		return fmt.Errorf("security has no ticker")
	}
	if !tickerRE.MatchString(s.Ticker) {
		return fmt.Errorf("invalid ticker %q: want uppercase letters, digits, dots or dashes", s.Ticker)
	}
	if s.Currency != "" && len(s.Currency) != 3 {
		return fmt.Errorf("invalid currency %q for %s: want a 3-letter ISO code", s.Currency, s.Ticker)
	}
	return nil
}
