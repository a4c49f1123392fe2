package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/etnz/etfscope"
)

// UpsertSecurity inserts the security, or updates its descriptive fields
// when the ticker already exists.
func (s *Store) UpsertSecurity(ctx context.Context, sec etfscope.Security) error {
	if err := sec.Validate(); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO etf_securities (ticker, name, theme, currency)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (ticker) DO UPDATE SET
		   name = excluded.name,
		   theme = excluded.theme,
		   currency = excluded.currency`,
		sec.Ticker, sec.Name, sec.Theme, sec.Currency,
	)
	if err != nil {
		return fmt.Errorf("upsert security %s: %w", sec.Ticker, err)
	}
	return nil
}

// Security returns the security with the given ticker, or ErrNotFound.
func (s *Store) Security(ctx context.Context, ticker string) (etfscope.Security, error) {
	var sec etfscope.Security
	err := s.db.QueryRowContext(ctx,
		`SELECT ticker, name, theme, currency FROM etf_securities WHERE ticker = ?`,
		ticker,
	).Scan(&sec.Ticker, &sec.Name, &sec.Theme, &sec.Currency)
	if errors.Is(err, sql.ErrNoRows) {
		return etfscope.Security{}, fmt.Errorf("security %s: %w", ticker, ErrNotFound)
	}
	if err != nil {
		return etfscope.Security{}, fmt.Errorf("get security %s: %w", ticker, err)
	}
	return sec, nil
}

// Securities returns all known securities ordered by ticker.
func (s *Store) Securities(ctx context.Context) ([]etfscope.Security, error) {
	return s.querySecurities(ctx,
		`SELECT ticker, name, theme, currency FROM etf_securities ORDER BY ticker`)
}

// SecuritiesByTheme returns the securities of one theme, ordered by ticker.
func (s *Store) SecuritiesByTheme(ctx context.Context, theme string) ([]etfscope.Security, error) {
	return s.querySecurities(ctx,
		`SELECT ticker, name, theme, currency FROM etf_securities WHERE theme = ? ORDER BY ticker`,
		theme)
}

// Themes returns the distinct non-empty themes, in alphabetical order.
func (s *Store) Themes(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT theme FROM etf_securities WHERE theme != '' ORDER BY theme`)
	if err != nil {
		return nil, fmt.Errorf("list themes: %w", err)
	}
	defer rows.Close()

	var themes []string
	for rows.Next() {
		var theme string
		if err := rows.Scan(&theme); err != nil {
			return nil, fmt.Errorf("list themes: %w", err)
		}
		themes = append(themes, theme)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list themes: %w", err)
	}
	return themes, nil
}

func (s *Store) querySecurities(ctx context.Context, query string, args ...any) ([]etfscope.Security, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list securities: %w", err)
	}
	defer rows.Close()

	var securities []etfscope.Security
	for rows.Next() {
		var sec etfscope.Security
		if err := rows.Scan(&sec.Ticker, &sec.Name, &sec.Theme, &sec.Currency); err != nil {
			return nil, fmt.Errorf("list securities: %w", err)
		}
		securities = append(securities, sec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list securities: %w", err)
	}
	return securities, nil
}
