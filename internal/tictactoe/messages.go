package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
)

func JoinedMessage(gameID string, capacity int) string {
	return fmt.Sprintf("Joined game successfully!,%s,%d,.", gameID, capacity)
}

func WinMessage(username string) string {
	return fmt.Sprintf("Congratulations! Player %s wins the game!", username)
}

func TieMessage() string {
	return "It's a tie!"
}

func LeftMessage(username, gameID string) string {
	return fmt.Sprintf("Player %s has left game %s.", username, gameID)
}

func AbandonedMessage(gameID string) string {
	return fmt.Sprintf("Game %s abandoned: not enough players.", gameID)
}

func TurnTimeoutMessage(username, next string) string {
	return fmt.Sprintf("Player %s did not move in time. Next turn: %s.", username, next)
}

func boardMessage(board entity.Board) ([]byte, error) {
	return entity.MarshalBoardMessage(board)
}
