package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
)

const leaderboardKey = "leaderboard"

type LeaderboardCache interface {
	Save(ctx context.Context, entries []entity.LeaderboardEntry) error
	Get(ctx context.Context) ([]entity.LeaderboardEntry, error)
	Clear(ctx context.Context) error
}

type dbLeaderboard struct {
	client *redis.Client
}

func NewLeaderboardCache(client *redis.Client) LeaderboardCache {
	return &dbLeaderboard{
		client: client,
	}
}

func (that *dbLeaderboard) Save(ctx context.Context, entries []entity.LeaderboardEntry) error {
	entriesJSON, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("could not marshal leaderboard: %w", err)
	}

	if err = that.client.Set(ctx, leaderboardKey, entriesJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set leaderboard: %w", err)
	}

	return nil
}

func (that *dbLeaderboard) Get(ctx context.Context) ([]entity.LeaderboardEntry, error) {
	response, err := that.client.Get(ctx, leaderboardKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	var entries []entity.LeaderboardEntry
	if err = json.Unmarshal([]byte(response), &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal leaderboard: %w", err)
	}

	return entries, nil
}

func (that *dbLeaderboard) Clear(ctx context.Context) error {
	if err := that.client.Del(ctx, leaderboardKey).Err(); err != nil {
		return fmt.Errorf("failed to delete leaderboard: %w", err)
	}

	return nil
}
