package teamstats

// StatLine is one team's line for one match. Summed fields are derived from
// the team's player stat lines; sourced fields come straight from the club
// payload. Percentages are zero when their denominator is zero.
type StatLine struct {
	MatchID string
	TeamID  string

	// Summed from player stat lines.
	Hits           int
	PIM            int
	Blocks         int
	Takeaways      int
	Giveaways      int
	FaceoffsWon    int
	FaceoffsTaken  int
	ShotAttempts   int
	PassCompleted  int
	PassAttempts   int
	PowerPlayGoals int

	// Sourced from the club payload.
	Goals             int
	Shots             int
	PowerPlayOpps     int
	OffensiveZoneTime int

	// Derived ratios, guarded against division by zero.
	PowerPlayPct float64
	FaceoffPct   float64
	PassingPct   float64
	ShotPct      float64
}
