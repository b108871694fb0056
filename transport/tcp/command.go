package tcp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	keywordRegister       = "register"
	keywordLogin          = "login"
	keywordCreateGame     = "create_game"
	keywordAvailableGames = "get_available_games"
	keywordAllGames       = "get_all_available_games"
	keywordJoinGame       = "join_game"
	keywordObserveGame    = "observer_join_game"
	keywordMakeMove       = "make_move"
	keywordSetPlayers     = "set_players"
	keywordExitGame       = "exit_game"
)

var ErrUnknownCommand = errors.New("unknown command")

// FormatError is returned for a known keyword with malformed arguments.
type FormatError struct {
	Keyword string
}

func (that *FormatError) Error() string {
	return fmt.Sprintf("Invalid format for %s message.", that.Keyword)
}

// Command is one decoded client request. The set of implementations is closed.
type Command interface {
	Keyword() string
	command()
}

type RegisterCommand struct {
	Username string
	Password string
}

type LoginCommand struct {
	Username string
	Password string
}

// CreateGameCommand with Capacity 0 uses the capacity chosen by set_players.
type CreateGameCommand struct {
	Capacity int
	Username string
}

type ListGamesCommand struct{}

type ListAllGamesCommand struct{}

type JoinGameCommand struct {
	GameID   string
	Username string
}

type ObserveGameCommand struct {
	GameID   string
	Username string
}

type MakeMoveCommand struct {
	GameID   string
	Username string
	Row      int
	Col      int
}

type SetPlayersCommand struct {
	Capacity int
}

type ExitGameCommand struct {
	Username string
}

func (RegisterCommand) Keyword() string     { return keywordRegister }
func (LoginCommand) Keyword() string        { return keywordLogin }
func (CreateGameCommand) Keyword() string   { return keywordCreateGame }
func (ListGamesCommand) Keyword() string    { return keywordAvailableGames }
func (ListAllGamesCommand) Keyword() string { return keywordAllGames }
func (JoinGameCommand) Keyword() string     { return keywordJoinGame }
func (ObserveGameCommand) Keyword() string  { return keywordObserveGame }
func (MakeMoveCommand) Keyword() string     { return keywordMakeMove }
func (SetPlayersCommand) Keyword() string   { return keywordSetPlayers }
func (ExitGameCommand) Keyword() string     { return keywordExitGame }

func (RegisterCommand) command()     {}
func (LoginCommand) command()        {}
func (CreateGameCommand) command()   {}
func (ListGamesCommand) command()    {}
func (ListAllGamesCommand) command() {}
func (JoinGameCommand) command()     {}
func (ObserveGameCommand) command()  {}
func (MakeMoveCommand) command()     {}
func (SetPlayersCommand) command()   {}
func (ExitGameCommand) command()     {}

// ParseCommand decodes one space-delimited request.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, ErrUnknownCommand
	}

	keyword, args := fields[0], fields[1:]
	malformed := &FormatError{Keyword: keyword}

	switch keyword {
	case keywordRegister:
		if len(args) != 2 {
			return nil, malformed
		}
		return RegisterCommand{Username: args[0], Password: args[1]}, nil

	case keywordLogin:
		if len(args) != 2 {
			return nil, malformed
		}
		return LoginCommand{Username: args[0], Password: args[1]}, nil

	case keywordCreateGame:
		switch len(args) {
		case 1:
			return CreateGameCommand{Username: args[0]}, nil
		case 2:
			capacity, err := strconv.Atoi(args[0])
			if err != nil {
				return nil, malformed
			}
			return CreateGameCommand{Capacity: capacity, Username: args[1]}, nil
		default:
			return nil, malformed
		}

	case keywordAvailableGames:
		if len(args) != 0 {
			return nil, malformed
		}
		return ListGamesCommand{}, nil

	case keywordAllGames:
		if len(args) != 0 {
			return nil, malformed
		}
		return ListAllGamesCommand{}, nil

	case keywordJoinGame:
		if len(args) != 2 {
			return nil, malformed
		}
		return JoinGameCommand{GameID: args[0], Username: args[1]}, nil

	case keywordObserveGame:
		switch len(args) {
		case 1:
			return ObserveGameCommand{GameID: args[0]}, nil
		case 2:
			return ObserveGameCommand{GameID: args[0], Username: args[1]}, nil
		default:
			return nil, malformed
		}

	case keywordMakeMove:
		if len(args) != 3 {
			return nil, malformed
		}

		row, col, ok := parseCell(args[2])
		if !ok {
			return nil, malformed
		}
		return MakeMoveCommand{GameID: args[0], Username: args[1], Row: row, Col: col}, nil

	case keywordSetPlayers:
		if len(args) != 1 {
			return nil, malformed
		}

		capacity, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, malformed
		}
		return SetPlayersCommand{Capacity: capacity}, nil

	case keywordExitGame:
		switch len(args) {
		case 0:
			return ExitGameCommand{}, nil
		case 1:
			return ExitGameCommand{Username: args[0]}, nil
		default:
			return nil, malformed
		}

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, keyword)
	}
}

// parseCell parses "<row>,<col>".
func parseCell(value string) (int, int, bool) {
	rowStr, colStr, found := strings.Cut(value, ",")
	if !found {
		return 0, 0, false
	}

	row, err := strconv.Atoi(rowStr)
	if err != nil {
		return 0, 0, false
	}

	col, err := strconv.Atoi(colStr)
	if err != nil {
		return 0, 0, false
	}

	return row, col, true
}
