package entity

import "time"

type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
	OutcomeDraw Outcome = "draw"
)

func (that Outcome) IsValid() bool {
	switch that {
	case OutcomeWin, OutcomeLoss, OutcomeDraw:
		return true
	default:
		return false
	}
}

// LeaderboardEntry is one row of the standings.
type LeaderboardEntry struct {
	Username string `json:"username"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
	Draws    int    `json:"draws"`
}

// GameRecord is one finished game result kept in the history table.
type GameRecord struct {
	ID         int64     `json:"id"`
	Username   string    `json:"username"`
	Result     Outcome   `json:"result"`
	RecordedAt time.Time `json:"recorded_at"`
}
