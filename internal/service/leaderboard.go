package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
)

type LeaderboardService interface {
	RecordResult(ctx context.Context, username string, outcome entity.Outcome) error
	Refresh(ctx context.Context) error
	Standings(ctx context.Context) ([]entity.LeaderboardEntry, error)
	History(ctx context.Context, username string) ([]entity.GameRecord, error)
}

type leaderboardStore interface {
	Record(ctx context.Context, username string, outcome entity.Outcome) error
	Standings(ctx context.Context) ([]entity.LeaderboardEntry, error)
	History(ctx context.Context, username string) ([]entity.GameRecord, error)
}

type leaderboardCache interface {
	Save(ctx context.Context, entries []entity.LeaderboardEntry) error
	Get(ctx context.Context) ([]entity.LeaderboardEntry, error)
}

type leaderboardService struct {
	logger *slog.Logger

	store leaderboardStore
	cache leaderboardCache
}

func NewLeaderboardService(logger *slog.Logger, store leaderboardStore, cache leaderboardCache) LeaderboardService {
	return &leaderboardService{
		logger: logger.With("component", "leaderboard"),
		store:  store,
		cache:  cache,
	}
}

func (that *leaderboardService) RecordResult(ctx context.Context, username string, outcome entity.Outcome) error {
	if err := that.store.Record(ctx, username, outcome); err != nil {
		return fmt.Errorf("could not record %s for %s: %w", outcome, username, err)
	}

	return nil
}

// Refresh reloads the standings from storage into the cache.
func (that *leaderboardService) Refresh(ctx context.Context) error {
	log := that.logger.With("method", "Refresh")

	entries, err := that.store.Standings(ctx)
	if err != nil {
		return fmt.Errorf("could not load standings: %w", err)
	}

	if err = that.cache.Save(ctx, entries); err != nil {
		return fmt.Errorf("could not cache standings: %w", err)
	}

	if len(entries) == 0 {
		return apperror.ErrEmptyLeaderboard
	}

	log.Debug("leaderboard refreshed", "entries", len(entries))

	return nil
}

// Standings serves the cached leaderboard and falls back to storage on a miss.
func (that *leaderboardService) Standings(ctx context.Context) ([]entity.LeaderboardEntry, error) {
	log := that.logger.With("method", "Standings")

	entries, err := that.cache.Get(ctx)
	if err == nil {
		return entries, nil
	}

	if !errors.Is(err, apperror.ErrNotFound) {
		log.Warn("leaderboard cache unavailable", "error", err)
	}

	entries, err = that.store.Standings(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load standings: %w", err)
	}

	if err = that.cache.Save(ctx, entries); err != nil {
		log.Warn("failed to cache standings", "error", err)
	}

	return entries, nil
}

func (that *leaderboardService) History(ctx context.Context, username string) ([]entity.GameRecord, error) {
	records, err := that.store.History(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("could not load history of %s: %w", username, err)
	}

	return records, nil
}
