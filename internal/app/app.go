package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/league-tracker/internal/config"
	"github.com/riskibarqy/league-tracker/internal/domain/match"
	"github.com/riskibarqy/league-tracker/internal/domain/team"
	"github.com/riskibarqy/league-tracker/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/league-tracker/internal/infrastructure/repository/sqlstore"
	"github.com/riskibarqy/league-tracker/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/league-tracker/internal/platform/cache"
	"github.com/riskibarqy/league-tracker/internal/platform/logging"
	"github.com/riskibarqy/league-tracker/internal/usecase"
)

// App owns the HTTP server and the store behind it.
type App struct {
	Server *http.Server
	store  *sqlstore.Store
	cache  *basecache.Store
	logger *logging.Logger
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	store, err := sqlstore.Open(ctx, sqlstore.Options{
		Driver:                      cfg.DBDriver,
		DSN:                         cfg.DBURL,
		SkipMigrations:              !cfg.DBAutoMigrate,
		DisablePreparedBinaryResult: cfg.DBDisablePreparedBinary,
		MaxOpenConns:                cfg.DBMaxOpenConns,
		Logger:                      logger.Named("sqlstore"),
	})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	var (
		teamRepo  team.Repository  = store.Teams()
		matchRepo match.Repository = store.Matches()
		shared    *basecache.Store
	)
	if cfg.CacheEnabled {
		shared = basecache.NewStore(cfg.CacheTTL)
		teamRepo = cache.NewTeamRepository(teamRepo, shared)
		matchRepo = cache.NewMatchRepository(matchRepo, shared)
		logger.Info("repository cache enabled", "ttl", cfg.CacheTTL.String())
	}

	handler := httpapi.NewHandler(
		usecase.NewTeamService(teamRepo),
		usecase.NewMatchService(matchRepo),
		usecase.NewStandingsService(teamRepo, matchRepo, cfg.RecomputeWorkers),
		store,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterOptions{
		ServiceName:        cfg.ServiceName,
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	return &App{
		Server: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		store:  store,
		cache:  shared,
		logger: logger,
	}, nil
}

// Close releases the store. Shut the server down before calling it.
func (a *App) Close() error {
	if a == nil || a.store == nil {
		return nil
	}
	if a.cache != nil {
		stats := a.cache.Stats()
		a.logger.Info("repository cache stats", "hits", stats.Hits, "misses", stats.Misses, "entries", stats.Entries)
	}
	return a.store.Close()
}
