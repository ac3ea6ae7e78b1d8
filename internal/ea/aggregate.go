package ea

import (
	"github.com/chelstats/chelstats/internal/domain/playerstats"
	"github.com/chelstats/chelstats/internal/domain/teamstats"
)

// AggregateTeam builds one team stat line by summing the team's normalized
// player lines and copying the club-level aggregates from the payload. A nil
// club (missing payload for one side) still yields a line with the summed
// fields so the other side is never blocked.
func AggregateTeam(matchID, teamID string, club *Club, lines []playerstats.StatLine) teamstats.StatLine {
	out := teamstats.StatLine{
		MatchID: matchID,
		TeamID:  teamID,
	}

	for _, line := range lines {
		out.Hits += line.Hits
		out.PIM += line.PIM
		out.Blocks += line.Blocks
		out.Takeaways += line.Takeaways
		out.Giveaways += line.Giveaways
		out.FaceoffsWon += line.FaceoffsWon
		out.FaceoffsTaken += line.FaceoffsTaken
		out.ShotAttempts += line.ShotAttempts
		out.PassCompleted += line.PassCompleted
		out.PassAttempts += line.PassAttempts
		out.PowerPlayGoals += line.PowerPlayGoals
	}

	if club != nil {
		// Same source precedence as score extraction: details.goals wins
		// whenever a details block is present, even at 0.
		out.Goals = club.Goals.Int()
		if club.Details != nil {
			out.Goals = club.Details.Goals.Int()
		}
		out.Shots = club.Shots.Int()
		out.PowerPlayOpps = club.PowerPlayOpps.Int()
		out.OffensiveZoneTime = club.TimeOnAttack.Int()
		if club.PowerPlayGoals.Int() > 0 {
			out.PowerPlayGoals = club.PowerPlayGoals.Int()
		}
		if club.PassCompleted.Int() > 0 {
			out.PassCompleted = club.PassCompleted.Int()
		}
		if club.PassAttempts.Int() > 0 {
			out.PassAttempts = club.PassAttempts.Int()
		}
	}

	out.PowerPlayPct = Pct(out.PowerPlayGoals, out.PowerPlayOpps)
	out.FaceoffPct = Pct(out.FaceoffsWon, out.FaceoffsTaken)
	out.PassingPct = Pct(out.PassCompleted, out.PassAttempts)
	out.ShotPct = Pct(out.Shots, out.ShotAttempts)

	return out
}
