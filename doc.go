// Package etfscope retrieves historical ETF prices from external
// providers, persists them in a local SQLite database, and computes the
// risk/return metrics used by the reporting commands.
//
// It is the domain package of the etfscope command line tool; the CLI
// itself lives in the cmd package.
package etfscope
