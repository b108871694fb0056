package tcp

import "fmt"

const (
	replySuccess          = "success"
	replyFailure          = "failure"
	replyExists           = "exists"
	replyUnknownCommand   = "Unknown command."
	replyNotYourTurn      = "It's not your turn."
	replyInvalidMove      = "Invalid move. Try again."
	replyInvalidCount     = "Invalid number of players. Please enter 2, 3, 4, or 5."
	replyAlreadyInGame    = "You are already in a game. Finish or exit the current game before creating a new one."
	replyAlreadyJoined    = "You are already in a game. Finish or exit the current game before joining another one."
	replyGameFinished     = "Game is already finished."
	replyLoginRequired    = "Please log in first."
	replyUsernameMismatch = "Username does not match your session."
	replyTimeout          = "Timeout: No move received within the time limit."
	replyClosing          = "Server closing connection."
	replyInternalError    = "Internal server error."
)

func gameCreatedReply(gameID string, capacity int) string {
	return fmt.Sprintf("Game created! Your game ID: %s Num Players: %d", gameID, capacity)
}

func gameFullReply(gameID string) string {
	return fmt.Sprintf("Game %s is full. Cannot join.", gameID)
}

func gameMissingReply(gameID string) string {
	return fmt.Sprintf("Game %s does not exist.", gameID)
}

func playersUpdatedReply(capacity int) string {
	return fmt.Sprintf("Number of players updated to %d.", capacity)
}
