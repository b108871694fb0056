package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
	"github.com/rocketscienceinc/tictactoe-server/internal/tictactoe"
)

type leaderboard interface {
	RecordResult(ctx context.Context, username string, outcome entity.Outcome) error
	Refresh(ctx context.Context) error
}

// GameManager ties rooms to result recording. Leaderboard failures never undo a move.
type GameManager struct {
	logger      *slog.Logger
	rooms       *tictactoe.Registry
	leaderboard leaderboard
}

func NewGameManager(logger *slog.Logger, rooms *tictactoe.Registry, leaderboard leaderboard) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		rooms:       rooms,
		leaderboard: leaderboard,
	}
}

func (that *GameManager) CreateGame(capacity int, username string, conn tictactoe.Conn) (*tictactoe.Room, error) {
	that.releaseFinished(username)

	room, err := that.rooms.Create(capacity, username, conn)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return room, nil
}

func (that *GameManager) AvailableGames() []string {
	return that.rooms.ListJoinable()
}

func (that *GameManager) AllGames() []string {
	return that.rooms.ListAll()
}

func (that *GameManager) JoinGame(gameID, username string, conn tictactoe.Conn) (*tictactoe.Room, error) {
	room, err := that.rooms.Get(gameID)
	if err != nil {
		return nil, err
	}

	that.releaseFinished(username)

	if err = that.rooms.Seat(room, username, conn); err != nil {
		return nil, fmt.Errorf("failed to join game %s: %w", gameID, err)
	}

	return room, nil
}

func (that *GameManager) ObserveGame(gameID string, conn tictactoe.Conn) (*tictactoe.Room, error) {
	room, err := that.rooms.Get(gameID)
	if err != nil {
		return nil, err
	}

	if err = room.Observe(conn); err != nil {
		return nil, fmt.Errorf("failed to observe game %s: %w", gameID, err)
	}

	return room, nil
}

// MakeMove applies the move and records results when it ends the game.
func (that *GameManager) MakeMove(ctx context.Context, gameID, username string, row, col int) (tictactoe.MoveResult, error) {
	room, err := that.rooms.Get(gameID)
	if err != nil {
		return tictactoe.MoveResult{}, err
	}

	result, err := room.MakeMove(username, row, col)
	if err != nil {
		return tictactoe.MoveResult{}, fmt.Errorf("failed to make move: %w", err)
	}

	switch result.Outcome {
	case tictactoe.MoveWin:
		that.record(ctx, result.Mover, entity.OutcomeWin)
		for _, loser := range result.Losers() {
			that.record(ctx, loser, entity.OutcomeLoss)
		}
		that.refresh(ctx)
	case tictactoe.MoveTie:
		for _, username := range result.Seated {
			that.record(ctx, username, entity.OutcomeDraw)
		}
		that.refresh(ctx)
	case tictactoe.MoveContinue:
	}

	return result, nil
}

// LeaveGame frees the seat of username and deletes the room once nobody is seated.
func (that *GameManager) LeaveGame(username string) (string, error) {
	room, ok := that.rooms.FindByPlayer(username)
	if !ok {
		return "", apperror.ErrNotInGame
	}

	that.leave(room, username, nil)

	return room.ID(), nil
}

// releaseFinished frees the seat username still holds in a game that already ended.
func (that *GameManager) releaseFinished(username string) {
	room, ok := that.rooms.FindByPlayer(username)
	if !ok || room.State() != tictactoe.StateFinished {
		return
	}

	that.leave(room, username, nil)
}

func (that *GameManager) leave(room *tictactoe.Room, username string, conn tictactoe.Conn) bool {
	result := that.rooms.Release(room, username, conn)
	if result.Abandoned {
		that.logger.Info("game abandoned", "gameID", room.ID(), "username", username)
	}

	return result.Removed
}

// Disconnect drops conn from game gameID. A seat is freed only while conn still holds it.
func (that *GameManager) Disconnect(gameID, username string, conn tictactoe.Conn) {
	if gameID == "" {
		return
	}

	room, err := that.rooms.Get(gameID)
	if err != nil {
		return
	}

	if username != "" && that.leave(room, username, conn) {
		return
	}

	room.RemoveConn(conn)
}

// Timeout penalizes username when the receive deadline of conn expired while
// the seat it holds in gameID had the turn.
func (that *GameManager) Timeout(ctx context.Context, gameID, username string, conn tictactoe.Conn) bool {
	if gameID == "" || username == "" {
		return false
	}

	room, err := that.rooms.Get(gameID)
	if err != nil {
		return false
	}

	if !room.TimeoutTurn(username, conn) {
		return false
	}

	that.logger.Info("turn timed out", "gameID", room.ID(), "username", username)
	that.record(ctx, username, entity.OutcomeLoss)
	that.refresh(ctx)

	return true
}

func (that *GameManager) record(ctx context.Context, username string, outcome entity.Outcome) {
	log := that.logger.With("method", "record")

	if err := that.leaderboard.RecordResult(ctx, username, outcome); err != nil {
		log.Error("failed to record result", "username", username, "outcome", outcome, "error", err)
	}
}

func (that *GameManager) refresh(ctx context.Context) {
	log := that.logger.With("method", "refresh")

	if err := that.leaderboard.Refresh(ctx); err != nil && !errors.Is(err, apperror.ErrEmptyLeaderboard) {
		log.Error("failed to refresh leaderboard", "error", err)
	}
}
