package player

import "time"

// Player is a roster entry. Rows are upserted opportunistically whenever a
// stat import sees the player on a club, keyed by the EA player id.
type Player struct {
	ID         string
	TeamID     string
	EAPlayerID string
	Name       string
	Position   string
	LastSeenAt time.Time
}
