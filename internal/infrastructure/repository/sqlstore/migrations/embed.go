package migrations

import "embed"

// FS holds golang-migrate sources, one directory per SQL dialect.
//
//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
