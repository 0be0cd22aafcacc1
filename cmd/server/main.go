package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"mlb-inning-times/gen/proto/innings/v1/inningsv1connect"
	"mlb-inning-times/internal/cache"
	"mlb-inning-times/internal/config"
	"mlb-inning-times/internal/constants"
	"mlb-inning-times/internal/export"
	fxmodules "mlb-inning-times/internal/fx"
	"mlb-inning-times/internal/metrics"
	"mlb-inning-times/internal/middleware"
	"mlb-inning-times/internal/repository"
	"mlb-inning-times/internal/server"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

func main() {
	fx.New(
		fxmodules.Module,
		fx.Invoke(runServer),
	).Run()
}

func runServer(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	inningsServer *server.InningsServer,
	exports *export.Store,
	results *cache.ResultCache,
	games *repository.GameRepository,
	m *metrics.Manager,
	cfg *config.Config,
	db *sql.DB,
	logger zerolog.Logger,
) {
	mux := http.NewServeMux()

	path, handler := inningsv1connect.NewInningTimesHandler(inningsServer)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"Content-Disposition", "X-Request-ID"},
	})

	requestIDMiddleware := middleware.RequestID(logger, m)

	mux.Handle(path, requestIDMiddleware(c.Handler(handler)))
	mux.Handle("GET "+server.ExportsPath+"{token}", requestIDMiddleware(c.Handler(http.HandlerFunc(inningsServer.ServeExport))))
	mux.Handle("GET /metrics", m.Handler())
	mux.HandleFunc("GET /healthz", server.HealthCheck)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.ServerPort),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	runCtx, cancelRun := context.WithCancel(context.Background())
	g, gctx := errgroup.WithContext(runCtx)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			g.Go(func() error {
				logger.Info().Str("addr", srv.Addr).Msg("server starting")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error().Err(err).Msg("server failed")
					_ = shutdowner.Shutdown(fx.ExitCode(1))
					return err
				}
				return nil
			})
			g.Go(func() error {
				return exports.RunSweeper(gctx, constants.ExportSweepInterval)
			})
			g.Go(func() error {
				return results.RunSweeper(gctx, constants.CacheSweepInterval)
			})
			g.Go(func() error {
				return purgeStaleGames(gctx, games, cfg.StoreTTL, logger)
			})
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
			defer cancel()

			shutdownErr := srv.Shutdown(shutdownCtx)
			cancelRun()
			if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn().Err(err).Msg("background worker stopped with error")
			}

			if err := db.Close(); err != nil {
				logger.Warn().Err(err).Msg("error closing database connection")
			}

			if shutdownErr != nil {
				logger.Error().Err(shutdownErr).Msg("server shutdown failed")
				return shutdownErr
			}
			logger.Info().Msg("server stopped gracefully")
			return nil
		},
	})
}

// purgeStaleGames drops stored games that have outlived the refresh TTL
// several times over, so the database does not grow without bound.
func purgeStaleGames(ctx context.Context, games *repository.GameRepository, ttl time.Duration, logger zerolog.Logger) error {
	ticker := time.NewTicker(constants.StorePurgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			dbCtx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
			n, err := games.PurgeBefore(dbCtx, time.Now().Add(-4*ttl))
			cancel()
			if err != nil {
				logger.Warn().Err(err).Msg("failed to purge stale games")
				continue
			}
			if n > 0 {
				logger.Info().Int64("purged", n).Msg("purged stale games")
			}
		}
	}
}
