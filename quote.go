package etfscope

import (
	"github.com/etnz/etfscope/date"
	"github.com/shopspring/decimal"
)

// Quote holds one day of market data for a security.
//
// Dividend is the per-share amount paid on that day (zero when none), and
// Split the split factor applied on that day (zero when none, e.g. 4 for
// a 4-for-1 split).
type Quote struct {
	Day      date.Date       `json:"date"`
	Open     decimal.Decimal `json:"open"`
	High     decimal.Decimal `json:"high"`
	Low      decimal.Decimal `json:"low"`
	Close    decimal.Decimal `json:"close"`
	Volume   int64           `json:"volume"`
	Dividend decimal.Decimal `json:"dividend,omitempty"`
	Split    decimal.Decimal `json:"split,omitempty"`
}
