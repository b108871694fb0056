package tictactoe

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
	"github.com/rocketscienceinc/tictactoe-server/internal/pkg"
)

// Registry maps room ids to rooms and usernames to the room holding their seat.
// seatsMu is taken before mu and no registry lock is held while a room is locked.
type Registry struct {
	logger *slog.Logger
	newID  func() string

	seatsMu sync.Mutex
	seats   map[string]*Room

	mu    sync.RWMutex
	rooms map[string]*Room
}

func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		logger: logger,
		newID:  pkg.GenerateGameID,
		seats:  make(map[string]*Room),
		rooms:  make(map[string]*Room),
	}
}

// Create opens a room seating username at index 0.
func (that *Registry) Create(capacity int, username string, conn Conn) (*Room, error) {
	if !entity.ValidPlayerCount(capacity) {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidPlayerCount, capacity)
	}

	that.seatsMu.Lock()
	defer that.seatsMu.Unlock()

	if current, ok := that.seats[username]; ok {
		return nil, fmt.Errorf("%w: game id %s", apperror.ErrAlreadyInGame, current.ID())
	}

	that.mu.Lock()
	id := that.newID()
	for _, exists := that.rooms[id]; exists; _, exists = that.rooms[id] {
		id = that.newID()
	}

	room, err := NewRoom(that.logger, id, capacity, username, conn)
	if err != nil {
		that.mu.Unlock()
		return nil, err
	}

	that.rooms[id] = room
	that.mu.Unlock()

	that.seats[username] = room
	that.logger.With("component", "registry").Info("room created", "gameID", id, "capacity", capacity, "creator", username)

	return room, nil
}

// Seat joins username to room unless they already hold a seat in another room.
func (that *Registry) Seat(room *Room, username string, conn Conn) error {
	that.seatsMu.Lock()
	current, ok := that.seats[username]
	if ok && current != room {
		that.seatsMu.Unlock()
		return fmt.Errorf("%w: game id %s", apperror.ErrAlreadyInGame, current.ID())
	}
	that.seats[username] = room
	that.seatsMu.Unlock()

	err := room.Join(conn, username)
	if err == nil || ok || room.HasPlayer(username) {
		return err
	}

	that.seatsMu.Lock()
	if that.seats[username] == room {
		delete(that.seats, username)
	}
	that.seatsMu.Unlock()

	return err
}

// Release frees the seat username holds in room through conn, or through any
// connection when conn is nil, and removes the room once nobody is seated.
func (that *Registry) Release(room *Room, username string, conn Conn) LeaveResult {
	var result LeaveResult
	if conn == nil {
		result = room.RemovePlayer(username)
	} else {
		result = room.RemovePlayerConn(username, conn)
	}

	if !result.Removed {
		return result
	}

	that.seatsMu.Lock()
	if that.seats[username] == room {
		delete(that.seats, username)
	}
	that.seatsMu.Unlock()

	if result.Empty {
		that.Remove(room.ID())
	}

	return result
}

func (that *Registry) Get(id string) (*Room, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	room, ok := that.rooms[id]
	if !ok {
		return nil, fmt.Errorf("%w: game id %s", apperror.ErrGameNotFound, id)
	}

	return room, nil
}

// Remove deletes the room. Removing an unknown id is a no-op.
func (that *Registry) Remove(id string) {
	that.mu.Lock()
	room, ok := that.rooms[id]
	if !ok {
		that.mu.Unlock()
		return
	}

	delete(that.rooms, id)
	that.mu.Unlock()

	room.close()

	that.seatsMu.Lock()
	for username, seated := range that.seats {
		if seated == room {
			delete(that.seats, username)
		}
	}
	that.seatsMu.Unlock()

	that.logger.With("component", "registry").Info("room removed", "gameID", id)
}

// FindByPlayer returns the room where username holds a seat.
func (that *Registry) FindByPlayer(username string) (*Room, bool) {
	that.seatsMu.Lock()
	defer that.seatsMu.Unlock()

	room, ok := that.seats[username]

	return room, ok
}

// ListJoinable returns ids of rooms with a free seat, oldest first.
func (that *Registry) ListJoinable() []string {
	ids := make([]string, 0)
	for _, room := range that.sorted() {
		if room.Joinable() {
			ids = append(ids, room.ID())
		}
	}

	return ids
}

// ListAll returns ids of every room, oldest first.
func (that *Registry) ListAll() []string {
	rooms := that.sorted()

	ids := make([]string, 0, len(rooms))
	for _, room := range rooms {
		ids = append(ids, room.ID())
	}

	return ids
}

func (that *Registry) Len() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.rooms)
}

func (that *Registry) sorted() []*Room {
	that.mu.RLock()
	rooms := make([]*Room, 0, len(that.rooms))
	for _, room := range that.rooms {
		rooms = append(rooms, room)
	}
	that.mu.RUnlock()

	sort.Slice(rooms, func(i, j int) bool {
		if rooms[i].CreatedAt().Equal(rooms[j].CreatedAt()) {
			return rooms[i].ID() < rooms[j].ID()
		}
		return rooms[i].CreatedAt().Before(rooms[j].CreatedAt())
	})

	return rooms
}
