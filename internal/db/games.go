package db

import (
	"context"
	"time"
)

type Game struct {
	GamePk    string
	FetchedAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

type InningWindow struct {
	ID         string
	GamePk     string
	Position   int64
	Inning     int64
	HalfInning string
	StartTime  string
	EndTime    string
}

const upsertGame = `
INSERT INTO games (game_pk, fetched_at, created_at, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT (game_pk) DO UPDATE SET
    fetched_at = excluded.fetched_at,
    updated_at = excluded.updated_at
`

type UpsertGameParams struct {
	GamePk    string
	FetchedAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (q *Queries) UpsertGame(ctx context.Context, arg UpsertGameParams) error {
	_, err := q.db.ExecContext(ctx, upsertGame, arg.GamePk, arg.FetchedAt, arg.CreatedAt, arg.UpdatedAt)
	return err
}

const getGame = `
SELECT game_pk, fetched_at, created_at, updated_at
FROM games
WHERE game_pk = ?
`

func (q *Queries) GetGame(ctx context.Context, gamePk string) (Game, error) {
	row := q.db.QueryRowContext(ctx, getGame, gamePk)
	var g Game
	err := row.Scan(&g.GamePk, &g.FetchedAt, &g.CreatedAt, &g.UpdatedAt)
	return g, err
}

const getGameFetchedAt = `
SELECT fetched_at FROM games WHERE game_pk = ?
`

func (q *Queries) GetGameFetchedAt(ctx context.Context, gamePk string) (time.Time, error) {
	row := q.db.QueryRowContext(ctx, getGameFetchedAt, gamePk)
	var fetchedAt time.Time
	err := row.Scan(&fetchedAt)
	return fetchedAt, err
}

const deleteInningWindows = `
DELETE FROM inning_windows WHERE game_pk = ?
`

func (q *Queries) DeleteInningWindows(ctx context.Context, gamePk string) error {
	_, err := q.db.ExecContext(ctx, deleteInningWindows, gamePk)
	return err
}

const insertInningWindow = `
INSERT INTO inning_windows (id, game_pk, position, inning, half_inning, start_time, end_time)
VALUES (?, ?, ?, ?, ?, ?, ?)
`

func (q *Queries) InsertInningWindow(ctx context.Context, arg InningWindow) error {
	_, err := q.db.ExecContext(ctx, insertInningWindow,
		arg.ID,
		arg.GamePk,
		arg.Position,
		arg.Inning,
		arg.HalfInning,
		arg.StartTime,
		arg.EndTime,
	)
	return err
}

const listInningWindows = `
SELECT id, game_pk, position, inning, half_inning, start_time, end_time
FROM inning_windows
WHERE game_pk = ?
ORDER BY position
`

func (q *Queries) ListInningWindows(ctx context.Context, gamePk string) ([]InningWindow, error) {
	rows, err := q.db.QueryContext(ctx, listInningWindows, gamePk)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []InningWindow
	for rows.Next() {
		var i InningWindow
		if err := rows.Scan(
			&i.ID,
			&i.GamePk,
			&i.Position,
			&i.Inning,
			&i.HalfInning,
			&i.StartTime,
			&i.EndTime,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deleteInningWindowsFetchedBefore = `
DELETE FROM inning_windows
WHERE game_pk IN (SELECT game_pk FROM games WHERE fetched_at < ?)
`

func (q *Queries) DeleteInningWindowsFetchedBefore(ctx context.Context, cutoff time.Time) error {
	_, err := q.db.ExecContext(ctx, deleteInningWindowsFetchedBefore, cutoff)
	return err
}

const deleteGamesFetchedBefore = `
DELETE FROM games WHERE fetched_at < ?
`

func (q *Queries) DeleteGamesFetchedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteGamesFetchedBefore, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
