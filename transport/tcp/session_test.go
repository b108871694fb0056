package tcp

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-server/internal/config"
	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
	"github.com/rocketscienceinc/tictactoe-server/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-server/internal/usecase"
	mockedTCP "github.com/rocketscienceinc/tictactoe-server/mocks/tcp"
	mockedUseCase "github.com/rocketscienceinc/tictactoe-server/mocks/usecase"
)

const (
	readTimeout = 2 * time.Second
	emptyBoard  = `{"game_board":[[" "," "," "],[" "," "," "],[" "," "," "]]}`
)

type testServer struct {
	addr  string
	board *mockedUseCase.Mockleaderboard
	users *mockedTCP.MockuserUseCase
}

// startServer serves on a loopback listener until the test ends.
func startServer(t *testing.T, conf config.Server) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	board := mockedUseCase.NewMockleaderboard(t)
	users := mockedTCP.NewMockuserUseCase(t)
	games := usecase.NewGameManager(logger, tictactoe.NewRegistry(logger), board)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- New(logger, conf, games, users).Serve(ctx, ln)
	}()

	t.Cleanup(func() {
		cancel()
		require.NoError(t, <-done)
	})

	return &testServer{addr: ln.Addr().String(), board: board, users: users}
}

type client struct {
	t      *testing.T
	conn   net.Conn
	reader *bufio.Reader
}

func dial(t *testing.T, addr string) *client {
	t.Helper()

	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &client{t: t, conn: conn, reader: bufio.NewReader(conn)}
}

func (that *client) send(line string) {
	that.t.Helper()

	_, err := that.conn.Write([]byte(line + "\n"))
	require.NoError(that.t, err)
}

func (that *client) read() (string, error) {
	if err := that.conn.SetReadDeadline(time.Now().Add(readTimeout)); err != nil {
		return "", err
	}

	line, err := that.reader.ReadString('\n')
	if err != nil {
		return "", err
	}

	return strings.TrimRight(line, "\n"), nil
}

func (that *client) expect(want string) {
	that.t.Helper()

	got, err := that.read()
	require.NoError(that.t, err)
	assert.Equal(that.t, want, got)
}

// expectEventually skips unrelated lines such as idle timeout notices.
func (that *client) expectEventually(want string) {
	that.t.Helper()

	for {
		got, err := that.read()
		require.NoError(that.t, err, "waiting for %q", want)

		if got == want {
			return
		}
	}
}

// createGame sends create_game and returns the id from the reply.
func (that *client) createGame(capacity, username string) string {
	that.t.Helper()

	that.send("create_game " + capacity + " " + username)

	reply, err := that.read()
	require.NoError(that.t, err)
	require.True(that.t, strings.HasPrefix(reply, "Game created! Your game ID: "), reply)

	fields := strings.Fields(reply)
	require.Len(that.t, fields, 9)

	return fields[5]
}

func openConf() config.Server {
	return config.Server{
		MoveTimeout:  time.Minute,
		WriteTimeout: time.Second,
		Framing:      config.FramingLine,
	}
}

func TestSession_WinScenario(t *testing.T) {
	// Given: alice created a 2 player game and bob joined it
	server := startServer(t, openConf())
	alice := dial(t, server.addr)
	bob := dial(t, server.addr)

	gameID := alice.createGame("2", "alice")

	bob.send("join_game " + gameID + " bob")
	bob.expect("Joined game successfully!," + gameID + ",2,.")
	bob.expect(emptyBoard)

	server.board.EXPECT().RecordResult(mock.Anything, "alice", entity.OutcomeWin).Return(nil).Once()
	server.board.EXPECT().RecordResult(mock.Anything, "bob", entity.OutcomeLoss).Return(nil).Once()
	server.board.EXPECT().Refresh(mock.Anything).Return(nil).Once()

	// When: they play until alice completes the top row
	moves := []struct {
		player   *client
		username string
		cell     string
	}{
		{alice, "alice", "0,0"}, {bob, "bob", "1,1"}, {alice, "alice", "0,1"}, {bob, "bob", "2,2"}, {alice, "alice", "0,2"},
	}

	for _, m := range moves {
		m.player.send("make_move " + gameID + " " + m.username + " " + m.cell)

		for _, c := range []*client{alice, bob} {
			line, err := c.read()
			require.NoError(t, err)
			require.True(t, strings.HasPrefix(line, `{"game_board":`), line)
		}
	}

	// Then: both receive the win announcement
	alice.expect("Congratulations! Player alice wins the game!")
	bob.expect("Congratulations! Player alice wins the game!")

	// And: the finished room refuses further moves
	bob.send("make_move " + gameID + " bob 2,0")
	bob.expect("Game is already finished.")
}

func TestSession_Rejections(t *testing.T) {
	server := startServer(t, openConf())
	alice := dial(t, server.addr)
	bob := dial(t, server.addr)

	gameID := alice.createGame("2", "alice")
	bob.send("join_game " + gameID + " bob")
	bob.expect("Joined game successfully!," + gameID + ",2,.")
	bob.expect(emptyBoard)

	t.Run("Move out of turn", func(t *testing.T) {
		bob.send("make_move " + gameID + " bob 0,0")
		bob.expect("It's not your turn.")
	})

	t.Run("Malformed move", func(t *testing.T) {
		alice.send("make_move " + gameID + " alice 00")
		alice.expect("Invalid format for make_move message.")
	})

	t.Run("Move off the board", func(t *testing.T) {
		alice.send("make_move " + gameID + " alice 3,3")
		alice.expect("Invalid move. Try again.")
	})

	t.Run("Unknown command", func(t *testing.T) {
		alice.send("dance")
		alice.expect("Unknown command.")
	})

	t.Run("Full room", func(t *testing.T) {
		carol := dial(t, server.addr)
		carol.send("join_game " + gameID + " carol")
		carol.expect("Game " + gameID + " is full. Cannot join.")
	})

	t.Run("Missing room", func(t *testing.T) {
		carol := dial(t, server.addr)
		carol.send("join_game nope carol")
		carol.expect("Game nope does not exist.")
	})

	t.Run("Second game while seated", func(t *testing.T) {
		alice.send("create_game 2 alice")
		alice.expect(replyAlreadyInGame)
	})

	t.Run("Joining another game while seated", func(t *testing.T) {
		carol := dial(t, server.addr)
		otherID := carol.createGame("2", "carol")

		alice.send("join_game " + otherID + " alice")
		alice.expect(replyAlreadyJoined)
	})

	t.Run("Joining own game again", func(t *testing.T) {
		bob.send("join_game " + gameID + " bob")
		bob.expect(replyAlreadyJoined)
	})

	t.Run("Invalid player count", func(t *testing.T) {
		carol := dial(t, server.addr)
		carol.send("set_players 7")
		carol.expect("Invalid number of players. Please enter 2, 3, 4, or 5.")
		carol.send("create_game 1 carol")
		carol.expect("Invalid number of players. Please enter 2, 3, 4, or 5.")
	})

	t.Run("Connection stays usable", func(t *testing.T) {
		alice.send("make_move " + gameID + " alice 0,0")
		alice.expect(`{"game_board":[["X"," "," "],[" "," "," "],[" "," "," "]]}`)
		bob.expect(`{"game_board":[["X"," "," "],[" "," "," "],[" "," "," "]]}`)
	})
}

func TestSession_SetPlayersAndListing(t *testing.T) {
	// Given: alice picks a 4 player default
	server := startServer(t, openConf())
	alice := dial(t, server.addr)

	alice.send("set_players 4")
	alice.expect("Number of players updated to 4.")

	// When: she creates a game without a capacity
	gameID := alice.createGame("", "alice")

	// Then: the room has four seats and is listed as joinable
	observer := dial(t, server.addr)
	observer.send("get_available_games")
	observer.expect(gameID)
	observer.send("get_all_available_games")
	observer.expect(`["` + gameID + `"]`)

	observer.send("observer_join_game " + gameID)
	observer.expect("Joined game successfully!," + gameID + ",4,.")

	line, err := observer.read()
	require.NoError(t, err)

	board, err := entity.ParseBoardMessage([]byte(line))
	require.NoError(t, err)
	assert.Len(t, board, 5)
}

func TestSession_ExitGame(t *testing.T) {
	// Given: alice is alone in a room
	server := startServer(t, openConf())
	alice := dial(t, server.addr)
	alice.createGame("2", "alice")

	// When: she exits
	alice.send("exit_game alice")

	// Then: she gets the closing notice and the connection ends
	alice.expect("Server closing connection.")
	_, err := alice.read()
	require.ErrorIs(t, err, io.EOF)

	// And: the empty room is gone
	other := dial(t, server.addr)
	other.send("get_all_available_games")
	other.expect("[]")
}

func TestSession_DisconnectNotifiesRoom(t *testing.T) {
	// Given: a 3 player room with alice and bob
	server := startServer(t, openConf())
	alice := dial(t, server.addr)
	bob := dial(t, server.addr)

	gameID := alice.createGame("3", "alice")
	bob.send("join_game " + gameID + " bob")
	bob.expect("Joined game successfully!," + gameID + ",3,.")
	bob.expect(`{"game_board":[[" "," "," "," "],[" "," "," "," "],[" "," "," "," "],[" "," "," "," "]]}`)

	// When: alice drops the connection
	require.NoError(t, alice.conn.Close())

	// Then: bob is told she left
	bob.expect(tictactoe.LeftMessage("alice", gameID))
}

func TestSession_Login(t *testing.T) {
	conf := openConf()
	conf.RequireLogin = true

	server := startServer(t, conf)
	server.users.EXPECT().Register(mock.Anything, "alice", "pw").Return(nil, apperror.ErrUserExists).Once()
	server.users.EXPECT().Login(mock.Anything, "alice", "bad").Return(nil, apperror.ErrInvalidCredentials).Once()
	server.users.EXPECT().Login(mock.Anything, "alice", "pw").Return(&entity.User{Username: "alice"}, nil).Once()
	server.users.EXPECT().Register(mock.Anything, "bob", "pw").Return(&entity.User{Username: "bob"}, nil).Once()

	t.Run("Commands need a login", func(t *testing.T) {
		alice := dial(t, server.addr)

		alice.send("create_game 2 alice")
		alice.expect("Please log in first.")
	})

	t.Run("Existing user cannot register twice", func(t *testing.T) {
		alice := dial(t, server.addr)

		alice.send("register alice pw")
		alice.expect("exists")
	})

	t.Run("Login binds the session", func(t *testing.T) {
		alice := dial(t, server.addr)

		alice.send("login alice bad")
		alice.expect("failure")
		alice.send("login alice pw")
		alice.expect("success")

		alice.send("create_game 2 bob")
		alice.expect("Username does not match your session.")

		alice.createGame("2", "alice")
	})

	t.Run("Register logs the user in", func(t *testing.T) {
		bob := dial(t, server.addr)

		bob.send("register bob pw")
		bob.expect("success")
		bob.expect("bob")

		bob.createGame("2", "bob")
	})
}

func TestSession_Timeout(t *testing.T) {
	// Given: a running game with a short move timeout
	conf := openConf()
	conf.MoveTimeout = 200 * time.Millisecond

	server := startServer(t, conf)
	server.board.EXPECT().RecordResult(mock.Anything, "alice", entity.OutcomeLoss).Return(nil)
	server.board.EXPECT().RecordResult(mock.Anything, "bob", entity.OutcomeLoss).Return(nil).Maybe()
	server.board.EXPECT().Refresh(mock.Anything).Return(nil)

	alice := dial(t, server.addr)
	bob := dial(t, server.addr)

	gameID := alice.createGame("2", "alice")
	bob.send("join_game " + gameID + " bob")
	bob.expect("Joined game successfully!," + gameID + ",2,.")
	bob.expect(emptyBoard)

	// When: alice does not move in time
	// Then: she is notified and the turn passes to bob
	alice.expectEventually("Timeout: No move received within the time limit.")
	bob.expectEventually(tictactoe.TurnTimeoutMessage("alice", "bob"))

	// And: the connection stays open
	alice.send("get_all_available_games")
	alice.expectEventually(`["` + gameID + `"]`)
}

func TestServer_ServeConn(t *testing.T) {
	t.Run("Unknown framing is refused", func(t *testing.T) {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		conf := openConf()
		conf.Framing = "xml"

		serverSide, clientSide := net.Pipe()
		defer clientSide.Close()

		err := New(logger, conf, nil, nil).ServeConn(context.Background(), serverSide)

		require.ErrorIs(t, err, ErrUnknownFraming)
	})
}
