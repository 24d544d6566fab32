package sqlstore

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	// DefaultSQLitePath is used when no DSN is configured.
	DefaultSQLitePath = "PremierLeagueDB.db"
)

var sqlitePragmas = []struct {
	name  string
	value string
}{
	{name: "foreign_keys", value: "foreign_keys(1)"},
	{name: "busy_timeout", value: "busy_timeout(5000)"},
	{name: "journal_mode", value: "journal_mode(WAL)"},
}

func normalizeDriver(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "sqlite", "sqlite3":
		return DriverSQLite
	case "postgres", "postgresql", "pg":
		return DriverPostgres
	default:
		return strings.ToLower(strings.TrimSpace(raw))
	}
}

// NormalizeDSN applies the driver defaults Open relies on: sqlite pragmas and the
// postgres prepared binary result flag.
func NormalizeDSN(driver, raw string, disablePreparedBinaryResult bool) (string, error) {
	switch normalizeDriver(driver) {
	case DriverSQLite:
		return normalizeSQLiteDSN(raw), nil
	case DriverPostgres:
		if strings.TrimSpace(raw) == "" {
			return "", fmt.Errorf("postgres dsn is required")
		}
		return normalizePostgresDSN(raw, disablePreparedBinaryResult), nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

// normalizeSQLiteDSN appends the pragmas the store relies on unless the caller set them.
// Timestamps are written in SQLite's own layout so they sort and compare as text.
func normalizeSQLiteDSN(raw string) string {
	dsn := strings.TrimSpace(raw)
	if dsn == "" {
		dsn = DefaultSQLitePath
	}

	path, rawQuery, _ := strings.Cut(dsn, "?")
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return dsn
	}

	existing := strings.ToLower(strings.Join(query["_pragma"], ","))
	for _, pragma := range sqlitePragmas {
		if strings.Contains(existing, pragma.name) {
			continue
		}
		query.Add("_pragma", pragma.value)
	}
	if query.Get("_time_format") == "" {
		query.Set("_time_format", "sqlite")
	}

	return path + "?" + query.Encode()
}

func normalizePostgresDSN(raw string, disablePreparedBinaryResult bool) string {
	if !disablePreparedBinaryResult {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed == nil || parsed.Scheme == "" {
		return raw
	}

	query := parsed.Query()
	if query.Get("disable_prepared_binary_result") == "" {
		query.Set("disable_prepared_binary_result", "yes")
		parsed.RawQuery = query.Encode()
	}

	return parsed.String()
}

// dbNameFromDSN returns the database name reported on query spans.
func dbNameFromDSN(driver, raw string) string {
	trimmed := strings.TrimSpace(raw)
	if driver == DriverSQLite {
		path, _, _ := strings.Cut(trimmed, "?")
		path = strings.TrimPrefix(path, "file:")
		if path == "" {
			path = DefaultSQLitePath
		}
		return filepath.Base(path)
	}

	parsed, err := url.Parse(trimmed)
	if err == nil && parsed != nil && parsed.Scheme != "" {
		name := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
		if name != "" {
			return name
		}
	}

	for _, token := range strings.Fields(trimmed) {
		if !strings.HasPrefix(token, "dbname=") {
			continue
		}
		name := strings.TrimSpace(strings.TrimPrefix(token, "dbname="))
		name = strings.Trim(name, `"'`)
		if name != "" {
			return name
		}
	}

	return ""
}
