package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"mlb-inning-times/internal/constants"
	"mlb-inning-times/internal/db"
	"mlb-inning-times/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

var ErrNotFound = errors.New("game not found")

type GameRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
	now     func() time.Time
}

func NewGameRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *GameRepository {
	return &GameRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
		now:     time.Now,
	}
}

func (r *GameRepository) Get(ctx context.Context, gamePk string) (*domain.GameResult, error) {
	game, err := r.queries.GetGame(ctx, gamePk)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game %s: %w", gamePk, err)
	}

	rows, err := r.queries.ListInningWindows(ctx, gamePk)
	if err != nil {
		return nil, fmt.Errorf("failed to list inning windows for %s: %w", gamePk, err)
	}

	result := &domain.GameResult{
		GamePk:    game.GamePk,
		Innings:   make([]domain.InningWindow, len(rows)),
		FetchedAt: game.FetchedAt,
	}
	for i, row := range rows {
		result.Innings[i] = domain.InningWindow{
			Inning:     int(row.Inning),
			HalfInning: row.HalfInning,
			Start:      row.StartTime,
			End:        row.EndTime,
		}
	}
	return result, nil
}

// Save replaces everything stored for the game with result.
func (r *GameRepository) Save(ctx context.Context, result *domain.GameResult) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)

	now := r.now().UTC()
	fetchedAt := result.FetchedAt.UTC()
	if result.FetchedAt.IsZero() {
		fetchedAt = now
	}

	if err := qtx.UpsertGame(ctx, db.UpsertGameParams{
		GamePk:    result.GamePk,
		FetchedAt: fetchedAt,
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		return fmt.Errorf("failed to upsert game %s: %w", result.GamePk, err)
	}

	if err := qtx.DeleteInningWindows(ctx, result.GamePk); err != nil {
		return fmt.Errorf("failed to clear inning windows for %s: %w", result.GamePk, err)
	}

	for i := 0; i < len(result.Innings); i += constants.DBBatchSize {
		end := min(i+constants.DBBatchSize, len(result.Innings))

		for pos, w := range result.Innings[i:end] {
			id, err := gonanoid.New()
			if err != nil {
				return fmt.Errorf("failed to generate nanoid: %w", err)
			}
			err = qtx.InsertInningWindow(ctx, db.InningWindow{
				ID:         id,
				GamePk:     result.GamePk,
				Position:   int64(i + pos),
				Inning:     int64(w.Inning),
				HalfInning: w.HalfInning,
				StartTime:  w.Start,
				EndTime:    w.End,
			})
			if err != nil {
				return fmt.Errorf("failed to insert inning window %s/%s: %w", result.GamePk, w.Label(), err)
			}
		}
	}

	return tx.Commit()
}

func (r *GameRepository) ShouldRefresh(ctx context.Context, gamePk string, ttl time.Duration) (bool, error) {
	fetchedAt, err := r.queries.GetGameFetchedAt(ctx, gamePk)
	if errors.Is(err, sql.ErrNoRows) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return r.now().Sub(fetchedAt) >= ttl, nil
}

// PurgeBefore drops games fetched before cutoff and returns how many went.
func (r *GameRepository) PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)
	cutoff = cutoff.UTC()

	if err := qtx.DeleteInningWindowsFetchedBefore(ctx, cutoff); err != nil {
		return 0, fmt.Errorf("failed to purge inning windows: %w", err)
	}
	n, err := qtx.DeleteGamesFetchedBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge games: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	r.logger.Debug().Int64("purged", n).Time("cutoff", cutoff).Msg("purged stale games")
	return n, nil
}
