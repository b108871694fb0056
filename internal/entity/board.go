package entity

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
)

const (
	EmptyCell = " "

	// WinLength is the run of equal marks that wins, whatever the board size.
	WinLength = 3

	MinPlayers = 2
	MaxPlayers = 5
)

// Marks is the ordered alphabet handed out by seat index.
var Marks = []string{"X", "O", "Δ", "4", "5"}

// Board is an N×N grid of marks, EmptyCell meaning free.
type Board [][]string

// BoardMessage is the wire form of a board broadcast.
type BoardMessage struct {
	GameBoard Board `json:"game_board"`
}

func NewBoard(size int) Board {
	board := make(Board, size)
	for row := range board {
		board[row] = make([]string, size)
		for col := range board[row] {
			board[row][col] = EmptyCell
		}
	}

	return board
}

// BoardSizeFor returns the side of the board used by a room with the given number of players.
func BoardSizeFor(numPlayers int) int {
	return numPlayers + 1
}

func ValidPlayerCount(numPlayers int) bool {
	return numPlayers >= MinPlayers && numPlayers <= MaxPlayers
}

// MarkFor returns the mark of the given seat.
func MarkFor(seat int) string {
	if seat < 0 || seat >= len(Marks) {
		return ""
	}

	return Marks[seat]
}

func (that Board) Size() int {
	return len(that)
}

func (that Board) inBounds(row, col int) bool {
	return row >= 0 && row < len(that) && col >= 0 && col < len(that)
}

// Place marks a free in-range cell. Out-of-range or occupied cells leave the board untouched.
func (that Board) Place(row, col int, mark string) bool {
	if !that.inBounds(row, col) {
		return false
	}

	if that[row][col] != EmptyCell {
		return false
	}

	that[row][col] = mark

	return true
}

// CheckWin reports three consecutive marks on any row, any column or along one of the two
// full diagonals. Shorter diagonals are not scanned.
func (that Board) CheckWin(mark string) bool {
	size := len(that)
	if size < WinLength || mark == EmptyCell {
		return false
	}

	for i := 0; i < size; i++ {
		for j := 0; j+WinLength <= size; j++ {
			if that.run(mark, i, j, 0, 1) || that.run(mark, j, i, 1, 0) {
				return true
			}
		}
	}

	for i := 0; i+WinLength <= size; i++ {
		if that.run(mark, i, i, 1, 1) || that.run(mark, i, size-1-i, 1, -1) {
			return true
		}
	}

	return false
}

func (that Board) run(mark string, row, col, dRow, dCol int) bool {
	for step := 0; step < WinLength; step++ {
		if that[row+step*dRow][col+step*dCol] != mark {
			return false
		}
	}

	return true
}

// CheckTie reports a full board.
func (that Board) CheckTie() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == EmptyCell {
				return false
			}
		}
	}

	return true
}

func (that Board) Occupied() int {
	count := 0
	for _, row := range that {
		for _, cell := range row {
			if cell != EmptyCell {
				count++
			}
		}
	}

	return count
}

func (that Board) Clone() Board {
	clone := make(Board, len(that))
	for row := range that {
		clone[row] = append([]string(nil), that[row]...)
	}

	return clone
}

// MarshalBoardMessage encodes the board as {"game_board": [[...]]}.
func MarshalBoardMessage(board Board) ([]byte, error) {
	data, err := json.Marshal(BoardMessage{GameBoard: board})
	if err != nil {
		return nil, fmt.Errorf("could not marshal board: %w", err)
	}

	return data, nil
}

// ParseBoardMessage decodes a {"game_board": [[...]]} message and checks it is square.
func ParseBoardMessage(data []byte) (Board, error) {
	var msg BoardMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal board: %w", err)
	}

	for _, row := range msg.GameBoard {
		if len(row) != len(msg.GameBoard) {
			return nil, fmt.Errorf("%w: row of %d cells on %d rows", apperror.ErrMalformedBoardState, len(row), len(msg.GameBoard))
		}
	}

	return msg.GameBoard, nil
}
