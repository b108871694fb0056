package tictactoe

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
)

type State string

const (
	StateForming    State = "forming"
	StateInProgress State = "in_progress"
	StateFinished   State = "finished"
)

type MoveOutcome int

const (
	MoveContinue MoveOutcome = iota
	MoveWin
	MoveTie
)

// Conn is the send side of one participant's connection.
type Conn interface {
	ID() string
	Send(msg []byte) error
}

// MoveResult describes an accepted move.
type MoveResult struct {
	Outcome MoveOutcome
	Mover   string
	Mark    string
	// Seated lists every seated player at the time of the move, mover included.
	Seated []string
	Turn   int
}

// Losers returns every seated player except the mover.
func (that MoveResult) Losers() []string {
	losers := make([]string, 0, len(that.Seated))
	for _, username := range that.Seated {
		if username != that.Mover {
			losers = append(losers, username)
		}
	}

	return losers
}

// LeaveResult describes what RemovePlayer did.
type LeaveResult struct {
	Removed   bool
	Empty     bool
	Abandoned bool
}

// Room is one game session. Every field below mu is guarded by it.
type Room struct {
	id        string
	capacity  int
	createdAt time.Time
	logger    *slog.Logger

	mu         sync.Mutex
	board      entity.Board
	players    []*entity.Player
	seatConns  map[string]Conn
	spectators []Conn
	conns      []Conn
	turn       int
	moves      int
	state      State
	closed     bool
}

func NewRoom(logger *slog.Logger, id string, capacity int, creator string, conn Conn) (*Room, error) {
	if !entity.ValidPlayerCount(capacity) {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidPlayerCount, capacity)
	}

	room := &Room{
		id:        id,
		capacity:  capacity,
		createdAt: time.Now(),
		logger:    logger.With("component", "room", "gameID", id),

		board:     entity.NewBoard(entity.BoardSizeFor(capacity)),
		players:   []*entity.Player{{Username: creator, Mark: entity.MarkFor(0)}},
		seatConns: map[string]Conn{creator: conn},
		conns:     []Conn{conn},
		state:     StateForming,
	}

	return room, nil
}

func (that *Room) ID() string {
	return that.id
}

func (that *Room) Capacity() int {
	return that.capacity
}

func (that *Room) CreatedAt() time.Time {
	return that.createdAt
}

// Join seats username with the next free mark and sends the join reply and current board to conn.
func (that *Room) Join(conn Conn, username string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return apperror.ErrGameNotFound
	}

	if that.state == StateFinished {
		return apperror.ErrGameFinished
	}

	if that.seatOf(username) >= 0 {
		return apperror.ErrAlreadyInGame
	}

	if len(that.players) >= that.capacity {
		return apperror.ErrGameFull
	}

	player := &entity.Player{Username: username, Mark: that.freeMark()}
	that.players = append(that.players, player)
	that.seatConns[username] = conn
	that.addConn(conn)

	if err := that.greet(conn); err != nil {
		that.players = that.players[:len(that.players)-1]
		delete(that.seatConns, username)
		that.dropConn(conn)

		return err
	}

	if len(that.players) == that.capacity && that.state == StateForming {
		that.state = StateInProgress
	}

	that.logger.Info("player joined", "username", username, "mark", player.Mark, "seated", len(that.players))

	return nil
}

// Observe registers conn as a spectator and sends it the join reply and current board.
func (that *Room) Observe(conn Conn) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return apperror.ErrGameNotFound
	}

	that.spectators = append(that.spectators, conn)
	that.addConn(conn)

	if err := that.greet(conn); err != nil {
		that.dropConn(conn)
		return err
	}

	that.logger.Info("spectator joined", "connID", conn.ID())

	return nil
}

func (that *Room) greet(conn Conn) error {
	if err := conn.Send([]byte(JoinedMessage(that.id, that.capacity))); err != nil {
		return fmt.Errorf("failed to send join reply: %w", err)
	}

	board, err := boardMessage(that.board)
	if err != nil {
		return err
	}

	if err = conn.Send(board); err != nil {
		return fmt.Errorf("failed to send board: %w", err)
	}

	return nil
}

// MakeMove applies a move for username, broadcasts the board and then the win, tie or nothing.
func (that *Room) MakeMove(username string, row, col int) (MoveResult, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return MoveResult{}, apperror.ErrGameNotFound
	}

	if that.state == StateFinished {
		return MoveResult{}, apperror.ErrGameFinished
	}

	if !that.isTurnOf(username) {
		return MoveResult{}, apperror.ErrNotYourTurn
	}

	mark := that.players[that.turn].Mark
	if !that.board.Place(row, col, mark) {
		return MoveResult{}, fmt.Errorf("%w: cell %d,%d", apperror.ErrInvalidMove, row, col)
	}

	that.moves++
	if that.state == StateForming {
		that.state = StateInProgress
	}

	board, err := boardMessage(that.board)
	if err != nil {
		return MoveResult{}, err
	}
	that.broadcastLocked(board)

	result := MoveResult{
		Mover:  username,
		Mark:   mark,
		Seated: that.usernames(),
	}

	switch {
	case that.board.CheckWin(mark):
		that.state = StateFinished
		result.Outcome = MoveWin
		that.broadcastLocked([]byte(WinMessage(username)))
		that.logger.Info("game won", "username", username, "moves", that.moves)
	case that.board.CheckTie():
		that.state = StateFinished
		result.Outcome = MoveTie
		that.broadcastLocked([]byte(TieMessage()))
		that.logger.Info("game tied", "moves", that.moves)
	default:
		that.turn = (that.turn + 1) % len(that.players)
		result.Outcome = MoveContinue
	}

	result.Turn = that.turn

	return result, nil
}

// RemovePlayer frees the seat of username. The room closes when no seat is left.
func (that *Room) RemovePlayer(username string) LeaveResult {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.removeSeat(username)
}

// RemovePlayerConn frees the seat of username only while it is held through conn.
func (that *Room) RemovePlayerConn(username string, conn Conn) LeaveResult {
	that.mu.Lock()
	defer that.mu.Unlock()

	if !that.seatedThrough(username, conn) {
		return LeaveResult{}
	}

	return that.removeSeat(username)
}

func (that *Room) removeSeat(username string) LeaveResult {
	seat := that.seatOf(username)
	if seat < 0 {
		return LeaveResult{}
	}

	that.players = slices.Delete(that.players, seat, seat+1)
	if conn, ok := that.seatConns[username]; ok {
		delete(that.seatConns, username)
		that.dropConn(conn)
	}

	if len(that.players) == 0 {
		that.closed = true
		that.state = StateFinished
		that.logger.Info("last player left, room closed", "username", username)

		return LeaveResult{Removed: true, Empty: true}
	}

	if seat < that.turn {
		that.turn--
	}
	if that.turn >= len(that.players) {
		that.turn = 0
	}

	that.broadcastLocked([]byte(LeftMessage(username, that.id)))

	result := LeaveResult{Removed: true}
	if that.state == StateInProgress && len(that.players) < entity.MinPlayers {
		that.state = StateFinished
		result.Abandoned = true
		that.broadcastLocked([]byte(AbandonedMessage(that.id)))
	}

	that.logger.Info("player left", "username", username, "seated", len(that.players), "turn", that.turn)

	return result
}

// RemoveConn drops conn from the broadcast list. Seats are untouched.
func (that *Room) RemoveConn(conn Conn) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.dropConn(conn)
}

// TimeoutTurn passes the turn on when username, seated through conn, holds it in a running game.
func (that *Room) TimeoutTurn(username string, conn Conn) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed || that.state != StateInProgress || !that.isTurnOf(username) || !that.seatedThrough(username, conn) {
		return false
	}

	that.turn = (that.turn + 1) % len(that.players)
	that.broadcastLocked([]byte(TurnTimeoutMessage(username, that.players[that.turn].Username)))

	return true
}

// Broadcast sends msg to every participant.
func (that *Room) Broadcast(msg []byte) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.broadcastLocked(msg)
}

// broadcastLocked sends msg to every connection and prunes the ones that fail.
func (that *Room) broadcastLocked(msg []byte) {
	var failed []Conn

	for _, conn := range that.conns {
		if err := conn.Send(msg); err != nil {
			that.logger.Warn("failed to send to participant, dropping connection", "connID", conn.ID(), "error", err)
			failed = append(failed, conn)
		}
	}

	for _, conn := range failed {
		that.dropConn(conn)
	}
}

func (that *Room) addConn(conn Conn) {
	if !slices.Contains(that.conns, conn) {
		that.conns = append(that.conns, conn)
	}
}

func (that *Room) dropConn(conn Conn) {
	that.conns = slices.DeleteFunc(that.conns, func(c Conn) bool { return c == conn })
	that.spectators = slices.DeleteFunc(that.spectators, func(c Conn) bool { return c == conn })
}

func (that *Room) seatOf(username string) int {
	return slices.IndexFunc(that.players, func(p *entity.Player) bool { return p.Username == username })
}

func (that *Room) seatedThrough(username string, conn Conn) bool {
	held, ok := that.seatConns[username]
	return ok && held == conn
}

func (that *Room) isTurnOf(username string) bool {
	return that.turn >= 0 && that.turn < len(that.players) && that.players[that.turn].Username == username
}

// freeMark returns the first mark no seated player holds.
func (that *Room) freeMark() string {
	for _, mark := range entity.Marks {
		if !slices.ContainsFunc(that.players, func(p *entity.Player) bool { return p.Mark == mark }) {
			return mark
		}
	}

	return ""
}

func (that *Room) usernames() []string {
	names := make([]string, 0, len(that.players))
	for _, player := range that.players {
		names = append(names, player.Username)
	}

	return names
}

func (that *Room) State() State {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.state
}

func (that *Room) Turn() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.turn
}

// CurrentPlayer returns the username holding the turn, empty when no seat is taken.
func (that *Room) CurrentPlayer() string {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.turn < 0 || that.turn >= len(that.players) {
		return ""
	}

	return that.players[that.turn].Username
}

func (that *Room) Players() []entity.Player {
	that.mu.Lock()
	defer that.mu.Unlock()

	players := make([]entity.Player, 0, len(that.players))
	for _, player := range that.players {
		players = append(players, *player)
	}

	return players
}

func (that *Room) Seated() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.players)
}

func (that *Room) Moves() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.moves
}

func (that *Room) Board() entity.Board {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.board.Clone()
}

func (that *Room) HasPlayer(username string) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.seatOf(username) >= 0
}

func (that *Room) Participants() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.conns)
}

// Joinable reports a free seat in a room that is still open.
func (that *Room) Joinable() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return !that.closed && that.state != StateFinished && len(that.players) < that.capacity
}

func (that *Room) close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.closed = true
}
