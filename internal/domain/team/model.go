package team

// Team is a league club. EAClubID links it to the club identifier EA uses in
// match payloads; a team without a linkage cannot resolve automatic scores.
type Team struct {
	ID       string
	Name     string
	Abbrev   string
	EAClubID string
	LogoURL  string
}

// SeasonStats aggregates a team's stat lines across all imported matches.
type SeasonStats struct {
	GamesPlayed    int
	Goals          int
	Shots          int
	Hits           int
	PIM            int
	Blocks         int
	Takeaways      int
	Giveaways      int
	FaceoffsWon    int
	FaceoffsTaken  int
	PowerPlayGoals int
	PowerPlayOpps  int
}
