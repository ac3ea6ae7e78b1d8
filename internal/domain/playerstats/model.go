package playerstats

// Position is the canonical position code used for persisted stat lines.
type Position string

const (
	PositionGoalie       Position = "G"
	PositionLeftDefense  Position = "LD"
	PositionRightDefense Position = "RD"
	PositionCenter       Position = "C"
	PositionLeftWing     Position = "LW"
	PositionRightWing    Position = "RW"
	PositionDefense      Position = "D"
	PositionSkater       Position = "Skater"
)

const (
	CategoryGoalie  = "goalie"
	CategoryDefense = "defense"
	CategoryOffense = "offense"
)

// CategoryFor derives the category label from a canonical position.
func CategoryFor(pos Position) string {
	switch pos {
	case PositionGoalie:
		return CategoryGoalie
	case PositionLeftDefense, PositionRightDefense, PositionDefense:
		return CategoryDefense
	default:
		return CategoryOffense
	}
}

// GoalieStats holds the counters only goalies carry. Non-goalie stat lines
// keep the pointer nil so the columns persist as NULL.
type GoalieStats struct {
	Saves           int
	GoalsAgainst    int
	SavePct         float64
	ShotsAgainst    int
	GoalsAgainstAvg float64
}

// StatLine is one player's normalized line for one match. Counters default to
// zero when the source field is absent or unreadable; they are never null.
type StatLine struct {
	MatchID          string
	TeamID           string
	EAPlayerID       string
	EAClubID         string
	PlayerName       string
	Position         Position
	Category         string
	Goals            int
	Assists          int
	Points           int
	Shots            int
	ShotAttempts     int
	Hits             int
	PIM              int
	PlusMinus        int
	Blocks           int
	Takeaways        int
	Giveaways        int
	FaceoffsWon      int
	FaceoffsLost     int
	FaceoffsTaken    int
	FaceoffPct       float64
	PassAttempts     int
	PassCompleted    int
	PowerPlayGoals   int
	ShortHandedGoals int
	TOISeconds       int
	TOI              string
	Goalie           *GoalieStats
}

// IsGoalie reports whether the line carries goalie-only fields.
func (l StatLine) IsGoalie() bool {
	return l.Position == PositionGoalie
}
