package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mlb-inning-times/internal/api"
	"mlb-inning-times/internal/cache"
	"mlb-inning-times/internal/config"
	"mlb-inning-times/internal/constants"
	"mlb-inning-times/internal/domain"
	"mlb-inning-times/internal/innings"
	"mlb-inning-times/internal/metrics"
	"mlb-inning-times/internal/repository"

	"github.com/rs/zerolog"
)

type PlayByPlayFetcher interface {
	GetPlayByPlay(ctx context.Context, gamePk string) (*api.PlayByPlayResponse, error)
}

type GameStore interface {
	Get(ctx context.Context, gamePk string) (*domain.GameResult, error)
	Save(ctx context.Context, result *domain.GameResult) error
	ShouldRefresh(ctx context.Context, gamePk string, ttl time.Duration) (bool, error)
}

type InningService struct {
	statsAPI PlayByPlayFetcher
	store    GameStore
	cache    *cache.ResultCache
	metrics  *metrics.Manager
	storeTTL time.Duration
	logger   zerolog.Logger
	now      func() time.Time
}

// NewInningService wires the lookup chain cache -> store -> Stats API. store
// may be nil, in which case results only live in the cache.
func NewInningService(statsAPI PlayByPlayFetcher, store GameStore, resultCache *cache.ResultCache, m *metrics.Manager, cfg *config.Config, logger zerolog.Logger) *InningService {
	return &InningService{
		statsAPI: statsAPI,
		store:    store,
		cache:    resultCache,
		metrics:  m,
		storeTTL: cfg.StoreTTL,
		logger:   logger,
		now:      time.Now,
	}
}

// GetGame returns the half-inning windows for one game. refresh skips both the
// cache and the store.
func (s *InningService) GetGame(ctx context.Context, gamePk string, refresh bool) (*domain.GameResult, error) {
	if refresh {
		s.logger.Debug().Str("game_pk", gamePk).Msg("manual refresh requested")
		s.cache.Delete(gamePk)
	}

	result, hit, err := s.cache.GetOrLoad(gamePk, func() (domain.GameResult, error) {
		return s.load(ctx, gamePk, refresh)
	})
	if err != nil {
		return nil, err
	}
	if hit {
		s.metrics.RecordLookup(metrics.SourceCache)
		s.logger.Debug().Str("game_pk", gamePk).Msg("returning cached game")
	}
	return &result, nil
}

func (s *InningService) load(ctx context.Context, gamePk string, refresh bool) (domain.GameResult, error) {
	if !refresh && s.store != nil {
		if stored, ok := s.fromStore(ctx, gamePk); ok {
			s.metrics.RecordLookup(metrics.SourceStore)
			return *stored, nil
		}
	}

	s.logger.Info().Str("game_pk", gamePk).Msg("fetching play-by-play")

	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	start := s.now()
	resp, err := s.statsAPI.GetPlayByPlay(apiCtx, gamePk)
	if err != nil {
		s.metrics.RecordFetch(metrics.OutcomeError, s.now().Sub(start))
		s.logger.Error().Err(err).Str("game_pk", gamePk).Msg("failed to fetch play-by-play")
		return domain.GameResult{}, fmt.Errorf("failed to fetch play-by-play: %w", err)
	}

	if n := resp.Undecodable(); n > 0 {
		s.logger.Warn().Str("game_pk", gamePk).Int("skipped", n).Msg("skipped undecodable plays")
	}

	result := innings.Aggregate(gamePk, resp.Plays())
	result.FetchedAt = s.now().UTC()

	outcome := metrics.OutcomeOK
	if result.Empty() {
		outcome = metrics.OutcomeEmpty
	}
	s.metrics.RecordFetch(outcome, s.now().Sub(start))
	s.metrics.RecordLookup(metrics.SourceAPI)

	s.logger.Debug().
		Str("game_pk", gamePk).
		Int("play_count", len(resp.AllPlays)).
		Int("window_count", len(result.Innings)).
		Msg("play-by-play aggregated")

	if s.store != nil {
		dbCtx, dbCancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
		defer dbCancel()
		if err := s.store.Save(dbCtx, &result); err != nil {
			s.logger.Warn().Err(err).Str("game_pk", gamePk).Msg("failed to store game")
		}
	}

	return result, nil
}

func (s *InningService) fromStore(ctx context.Context, gamePk string) (*domain.GameResult, bool) {
	dbCtx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	shouldRefresh, err := s.store.ShouldRefresh(dbCtx, gamePk, s.storeTTL)
	if err != nil {
		s.logger.Warn().Err(err).Str("game_pk", gamePk).Msg("failed to check if game should be refreshed")
		return nil, false
	}
	s.logger.Debug().Bool("should_refresh", shouldRefresh).Str("game_pk", gamePk).Msg("refresh decision for game")
	if shouldRefresh {
		return nil, false
	}

	stored, err := s.store.Get(dbCtx, gamePk)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn().Err(err).Str("game_pk", gamePk).Msg("failed to read stored game")
		}
		return nil, false
	}
	s.logger.Info().Str("game_pk", gamePk).Msg("returning stored game")
	return stored, true
}

// RunBatch looks up each identifier in order, one at a time. A failed lookup
// is recorded against its identifier and the batch carries on. Games without
// inning data are left out of Results. Duplicate identifiers each produce
// their own entry.
func (s *InningService) RunBatch(ctx context.Context, gamePks []string, refresh bool) (*domain.BatchResult, error) {
	if len(gamePks) == 0 {
		return nil, innings.ErrNoIdentifiers
	}

	s.metrics.RecordBatch(len(gamePks))
	s.logger.Info().Int("count", len(gamePks)).Bool("refresh", refresh).Msg("running batch")

	batch := &domain.BatchResult{Requested: len(gamePks)}
	refreshed := make(map[string]bool)

	for _, gamePk := range gamePks {
		// a refresh should hit the API once per identifier, not once per occurrence
		forceRefresh := refresh && !refreshed[gamePk]
		refreshed[gamePk] = true

		result, err := s.GetGame(ctx, gamePk, forceRefresh)
		if err != nil {
			batch.Failures = append(batch.Failures, domain.FetchFailure{GamePk: gamePk, Err: err})
			continue
		}
		if result.Empty() {
			batch.Empty = append(batch.Empty, gamePk)
			continue
		}
		batch.Results = append(batch.Results, *result)
	}

	innings.SortResults(batch.Results)

	s.logger.Info().
		Int("requested", batch.Requested).
		Int("results", len(batch.Results)).
		Int("failures", len(batch.Failures)).
		Int("empty", len(batch.Empty)).
		Msg("batch completed")

	return batch, nil
}

// ClearCache ends the current session's cache and returns the evicted count.
func (s *InningService) ClearCache() int {
	n := s.cache.Clear()
	s.logger.Info().Int("evicted", n).Msg("result cache cleared")
	return n
}
