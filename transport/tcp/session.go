package tcp

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"strings"
	"time"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-server/internal/config"
	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
	"github.com/rocketscienceinc/tictactoe-server/internal/tictactoe"
)

type gameManager interface {
	CreateGame(capacity int, username string, conn tictactoe.Conn) (*tictactoe.Room, error)
	AvailableGames() []string
	AllGames() []string
	JoinGame(gameID, username string, conn tictactoe.Conn) (*tictactoe.Room, error)
	ObserveGame(gameID string, conn tictactoe.Conn) (*tictactoe.Room, error)
	MakeMove(ctx context.Context, gameID, username string, row, col int) (tictactoe.MoveResult, error)
	Disconnect(gameID, username string, conn tictactoe.Conn)
	Timeout(ctx context.Context, gameID, username string, conn tictactoe.Conn) bool
}

type userUseCase interface {
	Register(ctx context.Context, username, password string) (*entity.User, error)
	Login(ctx context.Context, username, password string) (*entity.User, error)
}

// Session serves one client connection. Only its own goroutine touches the fields below conn.
type Session struct {
	logger *slog.Logger
	conf   config.Server
	games  gameManager
	users  userUseCase

	raw    net.Conn
	reader *bufio.Reader
	codec  codec
	conn   *Conn

	user     string
	seat     string
	gameID   string
	watching string
	capacity int
}

func newSession(logger *slog.Logger, conf config.Server, codec codec, id string, raw net.Conn, games gameManager, users userUseCase) *Session {
	return &Session{
		logger: logger.With("component", "session", "connID", id, "remote", raw.RemoteAddr().String()),
		conf:   conf,
		games:  games,
		users:  users,

		raw:    raw,
		reader: bufio.NewReader(raw),
		codec:  codec,
		conn:   newConn(id, raw, codec, conf.WriteTimeout),

		capacity: entity.MinPlayers,
	}
}

// Run reads commands until exit, EOF, an I/O error or ctx cancellation.
func (that *Session) Run(ctx context.Context) {
	log := that.logger.With("method", "Run")

	stop := context.AfterFunc(ctx, func() {
		_ = that.conn.Close()
	})
	defer stop()

	defer that.cleanup()

	defer func() {
		if r := recover(); r != nil {
			log.Error("session panicked", "panic", r)
		}
	}()

	log.Info("client connected")

	for {
		if that.conf.MoveTimeout > 0 {
			if err := that.raw.SetReadDeadline(time.Now().Add(that.conf.MoveTimeout)); err != nil {
				log.Warn("failed to set read deadline", "error", err)
				return
			}
		}

		payload, err := that.codec.read(that.reader)
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() && ctx.Err() == nil {
				that.handleTimeout(ctx)
				continue
			}

			if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
				log.Info("client disconnected")
			} else {
				log.Warn("failed to read message, closing connection", "error", err)
			}

			return
		}

		line := strings.TrimSpace(string(payload))
		if line == "" {
			continue
		}

		cmd, err := ParseCommand(line)
		if err != nil {
			that.replyParseError(err)
			continue
		}

		log.Debug("command received", "keyword", cmd.Keyword())

		if done := that.dispatch(ctx, cmd); done {
			return
		}
	}
}

// dispatch handles cmd and reports whether the session is over.
func (that *Session) dispatch(ctx context.Context, cmd Command) bool {
	switch cmd := cmd.(type) {
	case RegisterCommand:
		that.register(ctx, cmd)
	case LoginCommand:
		that.login(ctx, cmd)
	case CreateGameCommand:
		that.createGame(cmd)
	case ListGamesCommand:
		that.reply(strings.Join(that.games.AvailableGames(), " "))
	case ListAllGamesCommand:
		that.listAllGames()
	case JoinGameCommand:
		that.joinGame(cmd)
	case ObserveGameCommand:
		that.observeGame(cmd)
	case MakeMoveCommand:
		that.makeMove(ctx, cmd)
	case SetPlayersCommand:
		that.setPlayers(cmd)
	case ExitGameCommand:
		that.exitGame()
		return true
	default:
		that.reply(replyUnknownCommand)
	}

	return false
}

func (that *Session) register(ctx context.Context, cmd RegisterCommand) {
	log := that.logger.With("method", "register")

	_, err := that.users.Register(ctx, cmd.Username, cmd.Password)
	switch {
	case err == nil:
		that.user = cmd.Username
		that.reply(replySuccess)
		that.reply(cmd.Username)
	case errors.Is(err, apperror.ErrUserExists):
		that.reply(replyExists)
	default:
		log.Error("failed to register user", "username", cmd.Username, "error", err)
		that.reply(replyFailure)
	}
}

func (that *Session) login(ctx context.Context, cmd LoginCommand) {
	log := that.logger.With("method", "login")

	_, err := that.users.Login(ctx, cmd.Username, cmd.Password)
	switch {
	case err == nil:
		that.user = cmd.Username
		that.reply(replySuccess)
	case errors.Is(err, apperror.ErrInvalidCredentials):
		that.reply(replyFailure)
	default:
		log.Error("failed to log in user", "username", cmd.Username, "error", err)
		that.reply(replyFailure)
	}
}

func (that *Session) createGame(cmd CreateGameCommand) {
	log := that.logger.With("method", "createGame")

	if !that.authorize(cmd.Username) {
		return
	}

	capacity := cmd.Capacity
	if capacity == 0 {
		capacity = that.capacity
	}

	room, err := that.games.CreateGame(capacity, cmd.Username, that.conn)
	switch {
	case err == nil:
		that.seat = cmd.Username
		that.gameID = room.ID()
		that.reply(gameCreatedReply(room.ID(), room.Capacity()))
	case errors.Is(err, apperror.ErrInvalidPlayerCount):
		that.reply(replyInvalidCount)
	case errors.Is(err, apperror.ErrAlreadyInGame):
		that.reply(replyAlreadyInGame)
	default:
		log.Error("failed to create game", "username", cmd.Username, "error", err)
		that.reply(replyInternalError)
	}
}

func (that *Session) listAllGames() {
	log := that.logger.With("method", "listAllGames")

	ids, err := json.Marshal(that.games.AllGames())
	if err != nil {
		log.Error("failed to marshal game list", "error", err)
		that.reply(replyInternalError)
		return
	}

	that.reply(string(ids))
}

func (that *Session) joinGame(cmd JoinGameCommand) {
	if !that.authorize(cmd.Username) {
		return
	}

	room, err := that.games.JoinGame(cmd.GameID, cmd.Username, that.conn)
	if errors.Is(err, apperror.ErrAlreadyInGame) {
		that.reply(replyAlreadyJoined)
		return
	}
	if err != nil {
		that.replyRoomError(cmd.GameID, err)
		return
	}

	that.seat = cmd.Username
	that.gameID = room.ID()
}

func (that *Session) observeGame(cmd ObserveGameCommand) {
	if cmd.Username != "" && !that.authorize(cmd.Username) {
		return
	}

	room, err := that.games.ObserveGame(cmd.GameID, that.conn)
	if err != nil {
		that.replyRoomError(cmd.GameID, err)
		return
	}

	that.watching = room.ID()
}

func (that *Session) makeMove(ctx context.Context, cmd MakeMoveCommand) {
	if !that.authorize(cmd.Username) {
		return
	}

	if _, err := that.games.MakeMove(ctx, cmd.GameID, cmd.Username, cmd.Row, cmd.Col); err != nil {
		that.replyRoomError(cmd.GameID, err)
	}
}

func (that *Session) setPlayers(cmd SetPlayersCommand) {
	if !entity.ValidPlayerCount(cmd.Capacity) {
		that.reply(replyInvalidCount)
		return
	}

	that.capacity = cmd.Capacity
	that.reply(playersUpdatedReply(cmd.Capacity))
}

// exitGame frees the seat held through this connection and closes it.
func (that *Session) exitGame() {
	that.leave()
	that.reply(replyClosing)
}

func (that *Session) handleTimeout(ctx context.Context) {
	log := that.logger.With("method", "handleTimeout")

	that.reply(replyTimeout)

	if that.games.Timeout(ctx, that.gameID, that.seat, that.conn) {
		log.Info("turn forfeited on timeout", "username", that.seat, "gameID", that.gameID)
	}
}

func (that *Session) leave() {
	if that.seat != "" || that.gameID != "" {
		that.games.Disconnect(that.gameID, that.seat, that.conn)
	}

	if that.watching != "" && that.watching != that.gameID {
		that.games.Disconnect(that.watching, "", that.conn)
	}

	that.seat = ""
	that.gameID = ""
	that.watching = ""
}

func (that *Session) cleanup() {
	that.leave()

	if err := that.conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		that.logger.Warn("failed to close connection", "error", err)
	}

	that.logger.Info("session closed")
}

// authorize checks the login requirement for a command acting as username.
func (that *Session) authorize(username string) bool {
	if !that.conf.RequireLogin {
		return true
	}

	if that.user == "" {
		that.reply(replyLoginRequired)
		return false
	}

	if username != that.user {
		that.reply(replyUsernameMismatch)
		return false
	}

	return true
}

func (that *Session) replyParseError(err error) {
	var formatErr *FormatError
	if errors.As(err, &formatErr) {
		that.reply(formatErr.Error())
		return
	}

	that.reply(replyUnknownCommand)
}

func (that *Session) replyRoomError(gameID string, err error) {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		that.reply(gameMissingReply(gameID))
	case errors.Is(err, apperror.ErrGameFull):
		that.reply(gameFullReply(gameID))
	case errors.Is(err, apperror.ErrNotYourTurn):
		that.reply(replyNotYourTurn)
	case errors.Is(err, apperror.ErrInvalidMove):
		that.reply(replyInvalidMove)
	case errors.Is(err, apperror.ErrAlreadyInGame):
		that.reply(replyAlreadyInGame)
	case errors.Is(err, apperror.ErrGameFinished):
		that.reply(replyGameFinished)
	default:
		that.logger.Error("room operation failed", "gameID", gameID, "error", err)
		that.reply(replyInternalError)
	}
}

func (that *Session) reply(msg string) {
	if err := that.conn.SendString(msg); err != nil {
		that.logger.Debug("failed to send reply", "error", err)
	}
}
