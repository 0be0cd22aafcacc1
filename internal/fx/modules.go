package fx

import (
	"database/sql"

	"mlb-inning-times/internal/api"
	"mlb-inning-times/internal/cache"
	"mlb-inning-times/internal/config"
	"mlb-inning-times/internal/database"
	"mlb-inning-times/internal/db"
	"mlb-inning-times/internal/export"
	"mlb-inning-times/internal/logger"
	"mlb-inning-times/internal/metrics"
	"mlb-inning-times/internal/repository"
	"mlb-inning-times/internal/server"
	"mlb-inning-times/internal/service"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func ProvideQueries(sqlDB *sql.DB) *db.Queries {
	return db.New(sqlDB)
}

func ProvideResultCache(cfg *config.Config) *cache.ResultCache {
	return cache.New(cfg.CacheTTL)
}

func ProvideMetrics() *metrics.Manager {
	return metrics.NewManager()
}

func trackCacheSize(m *metrics.Manager, results *cache.ResultCache) error {
	return m.TrackCacheSize(results.Len)
}

func applyLogLevel(cfg *config.Config, log zerolog.Logger) error {
	level, err := logger.ApplyLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log.Debug().Str("level", level.String()).Msg("log level applied")
	return nil
}

var Module = fx.Options(
	logger.Module,
	fx.Provide(config.Load),
	fx.Invoke(applyLogLevel),
	fx.Provide(database.New),
	fx.Provide(ProvideQueries),
	fx.Provide(ProvideMetrics),
	// repos
	fx.Provide(
		fx.Annotate(repository.NewGameRepository, fx.As(fx.Self()), fx.As(new(service.GameStore))),
	),
	// api client
	fx.Provide(
		fx.Annotate(api.NewStatsAPIClient, fx.As(new(service.PlayByPlayFetcher))),
	),
	// caches
	fx.Provide(ProvideResultCache),
	fx.Invoke(trackCacheSize),
	fx.Provide(export.NewStore),
	// svc
	fx.Provide(service.NewInningService),
	// server
	fx.Provide(server.NewInningsServer),
)
