package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
)

type LeaderboardRepository interface {
	Record(ctx context.Context, username string, outcome entity.Outcome) error
	Standings(ctx context.Context) ([]entity.LeaderboardEntry, error)
	History(ctx context.Context, username string) ([]entity.GameRecord, error)
}

type leaderboardRepository struct {
	conn *sql.DB
}

func NewLeaderboardRepository(conn *sql.DB) LeaderboardRepository {
	return &leaderboardRepository{
		conn: conn,
	}
}

// Record bumps the standings of username and appends the result to the games history.
func (that *leaderboardRepository) Record(ctx context.Context, username string, outcome entity.Outcome) error {
	if !outcome.IsValid() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidGameOutcome, outcome)
	}

	tx, err := that.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var userID int64
	err = tx.QueryRowContext(ctx, `SELECT username_id FROM users WHERE username = ?`, username).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: user %s", apperror.ErrNotFound, username)
	}
	if err != nil {
		return fmt.Errorf("can't find user: %w", err)
	}

	var wins, losses, draws int
	switch outcome {
	case entity.OutcomeWin:
		wins = 1
	case entity.OutcomeLoss:
		losses = 1
	case entity.OutcomeDraw:
		draws = 1
	}

	upsert := `
INSERT INTO leaderboard (username_id, wins, losses, draws) VALUES (?, ?, ?, ?)
ON CONFLICT (username_id) DO UPDATE SET
    wins = wins + excluded.wins,
    losses = losses + excluded.losses,
    draws = draws + excluded.draws`

	if _, err = tx.ExecContext(ctx, upsert, userID, wins, losses, draws); err != nil {
		return fmt.Errorf("can't update leaderboard: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `INSERT INTO games (username_id, result) VALUES (?, ?)`, userID, string(outcome)); err != nil {
		return fmt.Errorf("can't save game result: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit result: %w", err)
	}

	return nil
}

// Standings returns the leaderboard ordered by wins, then draws, then fewest losses.
func (that *leaderboardRepository) Standings(ctx context.Context) ([]entity.LeaderboardEntry, error) {
	query := `
SELECT u.username, l.wins, l.losses, l.draws
FROM leaderboard l
JOIN users u ON u.username_id = l.username_id
ORDER BY l.wins DESC, l.draws DESC, l.losses ASC, u.username ASC`

	rows, err := that.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("can't load leaderboard: %w", err)
	}
	defer rows.Close()

	entries := make([]entity.LeaderboardEntry, 0)
	for rows.Next() {
		var entry entity.LeaderboardEntry
		if err = rows.Scan(&entry.Username, &entry.Wins, &entry.Losses, &entry.Draws); err != nil {
			return nil, fmt.Errorf("can't scan leaderboard row: %w", err)
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't load leaderboard: %w", err)
	}

	return entries, nil
}

func (that *leaderboardRepository) History(ctx context.Context, username string) ([]entity.GameRecord, error) {
	query := `
SELECT g.game_id, u.username, g.result, g.timestamp
FROM games g
JOIN users u ON u.username_id = g.username_id
WHERE u.username = ?
ORDER BY g.game_id`

	rows, err := that.conn.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("can't load games: %w", err)
	}
	defer rows.Close()

	records := make([]entity.GameRecord, 0)
	for rows.Next() {
		var record entity.GameRecord
		if err = rows.Scan(&record.ID, &record.Username, &record.Result, &record.RecordedAt); err != nil {
			return nil, fmt.Errorf("can't scan game row: %w", err)
		}

		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't load games: %w", err)
	}

	return records, nil
}
