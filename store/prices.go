package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/etnz/etfscope"
	"github.com/etnz/etfscope/date"
	"github.com/shopspring/decimal"
)

// SaveQuotes upserts the quotes of one ticker in a single transaction.
// A quote already stored for the same day is overwritten.
func (s *Store) SaveQuotes(ctx context.Context, ticker string, quotes []etfscope.Quote) error {
	if len(quotes) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save quotes for %s: %w", ticker, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO etf_prices (ticker, day, open, high, low, close, volume, dividend, split)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (ticker, day) DO UPDATE SET
		   open = excluded.open,
		   high = excluded.high,
		   low = excluded.low,
		   close = excluded.close,
		   volume = excluded.volume,
		   dividend = excluded.dividend,
		   split = excluded.split`)
	if err != nil {
		return fmt.Errorf("save quotes for %s: %w", ticker, err)
	}
	defer stmt.Close()

	for _, q := range quotes {
		if _, err := stmt.ExecContext(ctx,
			ticker, q.Day.String(),
			q.Open.String(), q.High.String(), q.Low.String(), q.Close.String(),
			q.Volume, q.Dividend.String(), q.Split.String(),
		); err != nil {
			return fmt.Errorf("save quote %s on %s: %w", ticker, q.Day, err)
		}
	}
	return tx.Commit()
}

// Prices returns the stored quotes of one ticker within the range,
// ordered by day.
func (s *Store) Prices(ctx context.Context, ticker string, rng date.Range) (etfscope.Series, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT day, open, high, low, close, volume, dividend, split
		   FROM etf_prices
		  WHERE ticker = ? AND day >= ? AND day <= ?
		  ORDER BY day`,
		ticker, rng.From.String(), rng.To.String())
	if err != nil {
		return etfscope.Series{}, fmt.Errorf("load prices for %s: %w", ticker, err)
	}
	defer rows.Close()

	series := etfscope.Series{Ticker: ticker}
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return etfscope.Series{}, fmt.Errorf("load prices for %s: %w", ticker, err)
		}
		// rows arrive in day order, append directly
		series.Quotes = append(series.Quotes, q)
	}
	if err := rows.Err(); err != nil {
		return etfscope.Series{}, fmt.Errorf("load prices for %s: %w", ticker, err)
	}
	return series, nil
}

// LastDay returns the most recent day with a stored price for the ticker,
// or ErrNotFound when no price is stored.
func (s *Store) LastDay(ctx context.Context, ticker string) (date.Date, error) {
	// MAX over an empty set yields one NULL row, not ErrNoRows.
	var day sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT MAX(day) FROM etf_prices WHERE ticker = ?`, ticker,
	).Scan(&day)
	if err != nil {
		return date.Date{}, fmt.Errorf("last day for %s: %w", ticker, err)
	}
	if !day.Valid {
		return date.Date{}, fmt.Errorf("prices for %s: %w", ticker, ErrNotFound)
	}
	return date.Parse(day.String)
}

// Coverage returns the stored date range and quote count of one ticker.
// A ticker with no stored price returns ErrNotFound.
func (s *Store) Coverage(ctx context.Context, ticker string) (date.Range, int, error) {
	count := s.countQuotes(ctx, ticker)
	if count == 0 {
		return date.Range{}, 0, fmt.Errorf("prices for %s: %w", ticker, ErrNotFound)
	}
	var first, last string
	err := s.db.QueryRowContext(ctx,
		`SELECT MIN(day), MAX(day) FROM etf_prices WHERE ticker = ?`, ticker,
	).Scan(&first, &last)
	if err != nil {
		return date.Range{}, 0, fmt.Errorf("coverage for %s: %w", ticker, err)
	}
	from, err := date.Parse(first)
	if err != nil {
		return date.Range{}, 0, fmt.Errorf("coverage for %s: %w", ticker, err)
	}
	to, err := date.Parse(last)
	if err != nil {
		return date.Range{}, 0, fmt.Errorf("coverage for %s: %w", ticker, err)
	}
	return date.NewRange(from, to), count, nil
}

func (s *Store) countQuotes(ctx context.Context, ticker string) int {
	var count int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM etf_prices WHERE ticker = ?`, ticker,
	).Scan(&count); err != nil {
		return 0
	}
	return count
}

func scanQuote(rows *sql.Rows) (etfscope.Quote, error) {
	var q etfscope.Quote
	var day, open, high, low, last, dividend, split string
	if err := rows.Scan(&day, &open, &high, &low, &last, &q.Volume, &dividend, &split); err != nil {
		return etfscope.Quote{}, err
	}
	var err error
	if q.Day, err = date.Parse(day); err != nil {
		return etfscope.Quote{}, err
	}
	for _, field := range []struct {
		text string
		dst  *decimal.Decimal
	}{
		{open, &q.Open}, {high, &q.High}, {low, &q.Low},
		{last, &q.Close}, {dividend, &q.Dividend}, {split, &q.Split},
	} {
		if *field.dst, err = decimal.NewFromString(field.text); err != nil {
			return etfscope.Quote{}, fmt.Errorf("invalid decimal %q on %s: %w", field.text, day, err)
		}
	}
	return q, nil
}
