package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
	mockedService "github.com/rocketscienceinc/tictactoe-server/mocks/service"
)

var errRedisDown = errors.New("redis down")

func newLeaderboard(t *testing.T) (LeaderboardService, *mockedService.MockleaderboardStore, *mockedService.MockleaderboardCache) {
	t.Helper()

	store := mockedService.NewMockleaderboardStore(t)
	cache := mockedService.NewMockleaderboardCache(t)

	return NewLeaderboardService(slog.New(slog.NewTextHandler(io.Discard, nil)), store, cache), store, cache
}

var standings = []entity.LeaderboardEntry{
	{Username: "alice", Wins: 2},
	{Username: "bob", Losses: 2},
}

func TestLeaderboardService_RecordResult(t *testing.T) {
	ctx := context.Background()

	t.Run("Passes the result to storage", func(t *testing.T) {
		service, store, _ := newLeaderboard(t)
		store.EXPECT().Record(mock.Anything, "alice", entity.OutcomeWin).Return(nil).Once()

		require.NoError(t, service.RecordResult(ctx, "alice", entity.OutcomeWin))
	})

	t.Run("Wraps storage errors", func(t *testing.T) {
		service, store, _ := newLeaderboard(t)
		store.EXPECT().Record(mock.Anything, "ghost", entity.OutcomeLoss).Return(apperror.ErrNotFound).Once()

		err := service.RecordResult(ctx, "ghost", entity.OutcomeLoss)

		require.ErrorIs(t, err, apperror.ErrNotFound)
	})
}

func TestLeaderboardService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("Copies standings into the cache", func(t *testing.T) {
		// Given: standings in storage
		service, store, cache := newLeaderboard(t)
		store.EXPECT().Standings(mock.Anything).Return(standings, nil).Once()
		cache.EXPECT().Save(mock.Anything, standings).Return(nil).Once()

		// When: Refresh is called
		err := service.Refresh(ctx)

		// Then: no error is returned
		require.NoError(t, err)
	})

	t.Run("Reports an empty leaderboard", func(t *testing.T) {
		service, store, cache := newLeaderboard(t)
		store.EXPECT().Standings(mock.Anything).Return([]entity.LeaderboardEntry{}, nil).Once()
		cache.EXPECT().Save(mock.Anything, []entity.LeaderboardEntry{}).Return(nil).Once()

		require.ErrorIs(t, service.Refresh(ctx), apperror.ErrEmptyLeaderboard)
	})

	t.Run("Reports a cache failure", func(t *testing.T) {
		service, store, cache := newLeaderboard(t)
		store.EXPECT().Standings(mock.Anything).Return(standings, nil).Once()
		cache.EXPECT().Save(mock.Anything, standings).Return(errRedisDown).Once()

		require.ErrorIs(t, service.Refresh(ctx), errRedisDown)
	})
}

func TestLeaderboardService_Standings(t *testing.T) {
	ctx := context.Background()

	t.Run("Serves the cached snapshot", func(t *testing.T) {
		service, _, cache := newLeaderboard(t)
		cache.EXPECT().Get(mock.Anything).Return(standings, nil).Once()

		entries, err := service.Standings(ctx)

		require.NoError(t, err)
		assert.Equal(t, standings, entries)
	})

	t.Run("Falls back to storage on a miss and fills the cache", func(t *testing.T) {
		// Given: an empty cache
		service, store, cache := newLeaderboard(t)
		cache.EXPECT().Get(mock.Anything).Return(nil, apperror.ErrNotFound).Once()
		store.EXPECT().Standings(mock.Anything).Return(standings, nil).Once()
		cache.EXPECT().Save(mock.Anything, standings).Return(nil).Once()

		// When: Standings is called
		entries, err := service.Standings(ctx)

		// Then: storage answered
		require.NoError(t, err)
		assert.Equal(t, standings, entries)
	})

	t.Run("Still answers when redis is down", func(t *testing.T) {
		service, store, cache := newLeaderboard(t)
		cache.EXPECT().Get(mock.Anything).Return(nil, errRedisDown).Once()
		store.EXPECT().Standings(mock.Anything).Return(standings, nil).Once()
		cache.EXPECT().Save(mock.Anything, standings).Return(errRedisDown).Once()

		entries, err := service.Standings(ctx)

		require.NoError(t, err)
		assert.Equal(t, standings, entries)
	})
}

func TestLeaderboardService_History(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the stored records", func(t *testing.T) {
		service, store, _ := newLeaderboard(t)
		records := []entity.GameRecord{{ID: 1, Username: "alice", Result: entity.OutcomeWin}}
		store.EXPECT().History(mock.Anything, "alice").Return(records, nil).Once()

		got, err := service.History(ctx, "alice")

		require.NoError(t, err)
		assert.Equal(t, records, got)
	})

	t.Run("Keeps the not found cause", func(t *testing.T) {
		service, store, _ := newLeaderboard(t)
		store.EXPECT().History(mock.Anything, "ghost").Return(nil, apperror.ErrNotFound).Once()

		_, err := service.History(ctx, "ghost")

		require.ErrorIs(t, err, apperror.ErrNotFound)
	})
}
