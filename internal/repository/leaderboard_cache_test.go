package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
	"github.com/rocketscienceinc/tictactoe-server/testing/suite"
)

func TestLeaderboardCache_SaveAndGet(t *testing.T) {
	ctx, st := suite.New(t)

	cache := NewLeaderboardCache(st.Storage)

	// Given: a leaderboard snapshot
	entries := []entity.LeaderboardEntry{
		{Username: "alice", Wins: 3, Losses: 1},
		{Username: "bob", Wins: 1, Losses: 3, Draws: 2},
	}

	// When: it is cached
	err := cache.Save(ctx, entries)
	require.NoError(t, err)

	// Then: the same snapshot comes back
	cached, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, entries, cached)
}

func TestLeaderboardCache_Get_NotFound(t *testing.T) {
	ctx, st := suite.New(t)

	cache := NewLeaderboardCache(st.Storage)

	// When: nothing was cached yet
	cached, err := cache.Get(ctx)

	// Then: ErrNotFound is returned
	require.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Nil(t, cached)
}

func TestLeaderboardCache_Clear(t *testing.T) {
	ctx, st := suite.New(t)

	cache := NewLeaderboardCache(st.Storage)
	require.NoError(t, cache.Save(ctx, []entity.LeaderboardEntry{{Username: "alice", Wins: 1}}))

	// When: the cache is cleared
	require.NoError(t, cache.Clear(ctx))

	// Then: the snapshot is gone
	_, err := cache.Get(ctx)
	require.ErrorIs(t, err, apperror.ErrNotFound)
}
