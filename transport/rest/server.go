package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	logger *slog.Logger
	srv    *http.Server
}

func New(logger *slog.Logger, port string, leaderboard leaderboardService) *Server {
	return &Server{
		logger: logger.With("component", "http_server"),
		srv: &http.Server{
			Addr:         ":" + port,
			Handler:      NewRouter(NewHandlers(logger, leaderboard)),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  30 * time.Second,
		},
	}
}

func NewRouter(h Handlers) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", h.PingHandler)
	mux.HandleFunc("GET /leaderboard", h.LeaderboardHandler)
	mux.HandleFunc("GET /players/{username}/games", h.HistoryHandler)

	return mux
}

// Start - serves HTTP until ctx is done, then shuts down gracefully.
func (that *Server) Start(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := that.srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down HTTP server", "error", err)
		}
	})
	defer stop()

	that.logger.Info("starting HTTP server", "addr", that.srv.Addr)

	if err := that.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
