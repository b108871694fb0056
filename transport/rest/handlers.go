package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
)

type Handlers interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)

	LeaderboardHandler(w http.ResponseWriter, r *http.Request)
	HistoryHandler(w http.ResponseWriter, r *http.Request)
}

type leaderboardService interface {
	Standings(ctx context.Context) ([]entity.LeaderboardEntry, error)
	History(ctx context.Context, username string) ([]entity.GameRecord, error)
}

type handlers struct {
	logger      *slog.Logger
	leaderboard leaderboardService
}

func NewHandlers(logger *slog.Logger, leaderboard leaderboardService) Handlers {
	return &handlers{
		logger:      logger.With("component", "rest"),
		leaderboard: leaderboard,
	}
}

func (that *handlers) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.Debug("failed to write pong", "error", err)
	}
}

// LeaderboardHandler - returns the standings, best first.
func (that *handlers) LeaderboardHandler(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "LeaderboardHandler")

	entries, err := that.leaderboard.Standings(r.Context())
	if err != nil {
		log.Error("failed to load leaderboard", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	that.writeJSON(w, entries)
}

// HistoryHandler - returns the recorded results of one player.
func (that *handlers) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "HistoryHandler")

	username := r.PathValue("username")

	records, err := that.leaderboard.History(r.Context(), username)
	if err != nil {
		log.Error("failed to load history", "username", username, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	that.writeJSON(w, records)
}

func (that *handlers) writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}
