package migrations

import "embed"

// FS contains embedded SQLite migrations for the release ledger.
//
//go:embed *.sql
var FS embed.FS
