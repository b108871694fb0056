package entity

// Player is a seated participant of a room.
type Player struct {
	Username string `json:"username"`
	Mark     string `json:"mark,omitempty"`
}

type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Token        string `json:"-"`
}
