// Package sqlstore is the persistence context for teams and matches.
//
// It owns one connection pool to a relational store, SQLite on a local file by
// default or Postgres when configured, and exposes a repository per entity.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/league-tracker/internal/platform/logging"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	_ "modernc.org/sqlite"
)

const maxTracedQueryLength = 512

var queryWhitespaceRegex = regexp.MustCompile(`\s+`)

func init() {
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

// Options configures Open. The zero value opens DefaultSQLitePath with migrations applied.
type Options struct {
	Driver string
	DSN    string
	// SkipMigrations leaves the schema untouched; use it when cmd/migration owns the schema.
	SkipMigrations              bool
	DisablePreparedBinaryResult bool
	MaxOpenConns                int
	Logger                      *logging.Logger
}

// Store holds the connection pool and the entity repositories built on it.
type Store struct {
	db      *sqlx.DB
	driver  string
	teams   *TeamRepository
	matches *MatchRepository
}

func Open(ctx context.Context, opts Options) (*Store, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}

	driver := normalizeDriver(opts.Driver)
	dsn, err := NormalizeDSN(driver, opts.DSN, opts.DisablePreparedBinaryResult)
	if err != nil {
		return nil, err
	}

	if !opts.SkipMigrations {
		version, err := Migrate(driver, dsn)
		if err != nil {
			return nil, err
		}
		logger.InfoContext(ctx, "database migrations applied", "driver", driver, "version", version)
	}

	dbName := dbNameFromDSN(driver, dsn)
	db, err := otelsqlx.Open(driver, dsn,
		otelsql.WithDBSystem(driver),
		otelsql.WithDBName(dbName),
		otelsql.WithQueryFormatter(formatQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}

	db.SetMaxOpenConns(maxOpenConns(driver, opts.MaxOpenConns))
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s database: %w", driver, err)
	}

	logger.InfoContext(ctx, "database connected", "driver", driver, "db_name", dbName)

	return &Store{
		db:      db,
		driver:  driver,
		teams:   NewTeamRepository(db),
		matches: NewMatchRepository(db),
	}, nil
}

func (s *Store) Teams() *TeamRepository {
	return s.teams
}

func (s *Store) Matches() *MatchRepository {
	return s.matches
}

func (s *Store) Driver() string {
	return s.driver
}

// DB exposes the underlying handle for instrumentation and tests.
func (s *Store) DB() *sql.DB {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.DB
}

func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("store is not configured")
	}
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// maxOpenConns keeps SQLite to a single writer connection unless told otherwise.
func maxOpenConns(driver string, configured int) int {
	if configured > 0 {
		return configured
	}
	if driver == DriverSQLite {
		return 1
	}
	return 10
}

func rowsAffected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read rows affected: %w", err)
	}
	return n > 0, nil
}

func formatQueryForTrace(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	normalized := queryWhitespaceRegex.ReplaceAllString(query, " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}

	return normalized[:maxTracedQueryLength] + "..."
}
