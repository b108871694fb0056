package rest

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
	mockedRest "github.com/rocketscienceinc/tictactoe-server/mocks/rest"
)

func newRouter(t *testing.T) (http.Handler, *mockedRest.MockleaderboardService) {
	t.Helper()

	leaderboard := mockedRest.NewMockleaderboardService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewRouter(NewHandlers(logger, leaderboard)), leaderboard
}

func TestPingHandler(t *testing.T) {
	router, _ := newRouter(t)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestLeaderboardHandler(t *testing.T) {
	t.Run("Returns the standings as JSON", func(t *testing.T) {
		// Given: two ranked players
		router, leaderboard := newRouter(t)
		leaderboard.EXPECT().Standings(mock.Anything).Return([]entity.LeaderboardEntry{
			{Username: "alice", Wins: 2, Draws: 1},
			{Username: "bob", Losses: 2, Draws: 1},
		}, nil).Once()

		// When: the leaderboard is requested
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leaderboard", nil))

		// Then: they are listed in order
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `[
			{"username":"alice","wins":2,"losses":0,"draws":1},
			{"username":"bob","wins":0,"losses":2,"draws":1}
		]`, rec.Body.String())
	})

	t.Run("Storage failure is a 500", func(t *testing.T) {
		router, leaderboard := newRouter(t)
		leaderboard.EXPECT().Standings(mock.Anything).Return(nil, errors.New("db locked")).Once()

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leaderboard", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("Only GET is routed", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/leaderboard", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestHistoryHandler(t *testing.T) {
	// Given: alice has one recorded win
	router, leaderboard := newRouter(t)
	leaderboard.EXPECT().History(mock.Anything, "alice").Return([]entity.GameRecord{
		{ID: 7, Username: "alice", Result: entity.OutcomeWin},
	}, nil).Once()

	// When: her games are requested
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/players/alice/games", nil))

	// Then: the record is returned
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":7,"username":"alice","result":"win","recorded_at":"0001-01-01T00:00:00Z"}]`, rec.Body.String())
}
