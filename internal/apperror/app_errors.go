package apperror

import "errors"

var (
	ErrGameFinished        = errors.New("game is already finished")
	ErrGameNotFound        = errors.New("game does not exist")
	ErrGameFull            = errors.New("game is full")
	ErrNotYourTurn         = errors.New("it's not your turn")
	ErrInvalidMove         = errors.New("invalid move")
	ErrAlreadyInGame       = errors.New("player is already in a game")
	ErrNotInGame           = errors.New("player is not in a game")
	ErrInvalidPlayerCount  = errors.New("invalid number of players")
	ErrNotFound            = errors.New("not found")
	ErrUserExists          = errors.New("user already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrEmptyLeaderboard    = errors.New("leaderboard is empty")
	ErrInvalidGameOutcome  = errors.New("invalid game outcome")
	ErrMalformedBoardState = errors.New("malformed board state")
)
