package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-server/internal/config"
	"github.com/rocketscienceinc/tictactoe-server/internal/repository"
	"github.com/rocketscienceinc/tictactoe-server/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-server/internal/service"
	"github.com/rocketscienceinc/tictactoe-server/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-server/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-server/transport/rest"
	"github.com/rocketscienceinc/tictactoe-server/transport/tcp"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application until SIGINT or SIGTERM.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open sqlite storage: %w", err)
	}

	defer func() {
		if err = sqliteStorage.Close(); err != nil {
			log.Error("could not close sqlite storage", "error", err)
		}
	}()

	if err = sqliteStorage.Init(ctx); err != nil {
		return fmt.Errorf("could not init sqlite storage: %w", err)
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	userRepo := repository.NewUserRepository(sqliteStorage.Connection)
	leaderboardRepo := repository.NewLeaderboardRepository(sqliteStorage.Connection)
	leaderboardCache := repository.NewLeaderboardCache(redisStorage.Connection)

	leaderboardService := service.NewLeaderboardService(logger, leaderboardRepo, leaderboardCache)
	userUseCase := usecase.NewUserUseCase(logger, userRepo)
	gameManager := usecase.NewGameManager(logger, tictactoe.NewRegistry(logger), leaderboardService)

	bootstrap(ctx, log, userUseCase, leaderboardCache, leaderboardService)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.New(logger, conf.HTTPPort, leaderboardService).Start(groupCtx); httpErr != nil {
			return fmt.Errorf("HTTP server error: %w", httpErr)
		}
		return nil
	})

	group.Go(func() error {
		log.Info("Starting game server", "addr", conf.Server.GetAddr())
		if tcpErr := tcp.New(logger, conf.Server, gameManager, userUseCase).Start(groupCtx); tcpErr != nil {
			return fmt.Errorf("game server error: %w", tcpErr)
		}
		return nil
	})

	if err = group.Wait(); err != nil {
		return err
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

// bootstrap logs the known users and rebuilds the cached leaderboard from storage.
func bootstrap(ctx context.Context, log *slog.Logger, users usecase.UserUseCase, cache repository.LeaderboardCache, leaderboard service.LeaderboardService) {
	count, err := users.Count(ctx)
	if err != nil {
		log.Error("could not count users", "error", err)
	} else {
		log.Info("users loaded", "count", count)
	}

	if err = cache.Clear(ctx); err != nil {
		log.Warn("could not clear cached leaderboard", "error", err)
	}

	switch err = leaderboard.Refresh(ctx); {
	case errors.Is(err, apperror.ErrEmptyLeaderboard):
		log.Info("leaderboard is empty")
	case err != nil:
		log.Error("could not refresh leaderboard", "error", err)
	}
}
