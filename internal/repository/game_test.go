package repository

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"mlb-inning-times/internal/database"
	"mlb-inning-times/internal/db"
	"mlb-inning-times/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *GameRepository {
	t.Helper()
	logger := zerolog.New(io.Discard)

	sqlDB, err := database.Open(filepath.Join(t.TempDir(), "innings.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return NewGameRepository(sqlDB, db.New(sqlDB), logger)
}

func sampleResult(gamePk string, fetchedAt time.Time) *domain.GameResult {
	return &domain.GameResult{
		GamePk: gamePk,
		Innings: []domain.InningWindow{
			{Inning: 1, HalfInning: "Top", Start: "2024-04-01T17:10:00Z", End: "2024-04-01T17:20:00Z"},
			{Inning: 1, HalfInning: "Bottom", Start: "2024-04-01T17:22:00Z", End: "2024-04-01T17:31:00Z"},
			{Inning: 2, HalfInning: "Top", Start: "2024-04-01T17:33:00Z", End: "2024-04-01T17:40:00Z"},
		},
		FetchedAt: fetchedAt,
	}
}

func TestGameRepository_SaveAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	fetchedAt := time.Date(2024, 4, 1, 20, 0, 0, 0, time.UTC)

	want := sampleResult("745123", fetchedAt)
	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.Get(ctx, "745123")
	require.NoError(t, err)
	assert.Equal(t, want.GamePk, got.GamePk)
	assert.Equal(t, want.Innings, got.Innings)
	assert.True(t, fetchedAt.Equal(got.FetchedAt))
}

func TestGameRepository_SaveReplacesWindows(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleResult("1", time.Now())))

	updated := &domain.GameResult{
		GamePk:    "1",
		Innings:   []domain.InningWindow{{Inning: 9, HalfInning: "Bottom", Start: "a", End: "b"}},
		FetchedAt: time.Now(),
	}
	require.NoError(t, repo.Save(ctx, updated))

	got, err := repo.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, updated.Innings, got.Innings)
}

func TestGameRepository_EmptyResultRoundTrips(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &domain.GameResult{GamePk: "2"}))

	got, err := repo.Get(ctx, "2")
	require.NoError(t, err)
	assert.True(t, got.Empty())
	assert.False(t, got.FetchedAt.IsZero())
}

func TestGameRepository_GetMissing(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Get(context.Background(), "404")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGameRepository_ShouldRefresh(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	now := time.Date(2024, 4, 2, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	refresh, err := repo.ShouldRefresh(ctx, "745123", time.Hour)
	require.NoError(t, err)
	assert.True(t, refresh, "unknown games always need a fetch")

	require.NoError(t, repo.Save(ctx, sampleResult("745123", now.Add(-30*time.Minute))))

	refresh, err = repo.ShouldRefresh(ctx, "745123", time.Hour)
	require.NoError(t, err)
	assert.False(t, refresh)

	refresh, err = repo.ShouldRefresh(ctx, "745123", 10*time.Minute)
	require.NoError(t, err)
	assert.True(t, refresh)
}

func TestGameRepository_PurgeBefore(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	now := time.Date(2024, 4, 2, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, sampleResult("old", now.Add(-48*time.Hour))))
	require.NoError(t, repo.Save(ctx, sampleResult("new", now.Add(-time.Hour))))

	n, err := repo.PurgeBefore(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	_, err = repo.Get(ctx, "old")
	assert.ErrorIs(t, err, ErrNotFound)

	var windows int
	require.NoError(t, repo.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM inning_windows WHERE game_pk = 'old'").Scan(&windows))
	assert.Zero(t, windows)

	_, err = repo.Get(ctx, "new")
	assert.NoError(t, err)
}
