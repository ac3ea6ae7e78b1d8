package ea

import (
	"fmt"

	"github.com/chelstats/chelstats/internal/domain/match"
)

// Scores is the extracted final score for one match payload.
type Scores struct {
	Home    int
	Away    int
	Periods []match.PeriodScore
	// Warnings records soft degradations (missing club entries) so the
	// orchestrator can log them without failing the import.
	Warnings []string
}

// ExtractScores reads the final score out of a payload. Manual imports use the
// top-level score fields and never consult the clubs map; automatic imports
// read each side from clubs[eaClubID].details.goals. A missing club entry
// degrades that side's score to zero.
func ExtractScores(payload *MatchPayload, manual bool, homeClubID, awayClubID string) Scores {
	out := Scores{}

	if manual {
		out.Home = payload.HomeScore.Int()
		out.Away = payload.AwayScore.Int()
		out.Periods = make([]match.PeriodScore, 0, len(payload.PeriodScores))
		for _, period := range payload.PeriodScores {
			out.Periods = append(out.Periods, match.PeriodScore{
				Home: period.Home.Int(),
				Away: period.Away.Int(),
			})
		}
		return out
	}

	out.Home = clubGoals(payload, homeClubID, "home", &out.Warnings)
	out.Away = clubGoals(payload, awayClubID, "away", &out.Warnings)
	return out
}

func clubGoals(payload *MatchPayload, clubID, side string, warnings *[]string) int {
	club, ok := payload.Clubs[clubID]
	if !ok {
		*warnings = append(*warnings, fmt.Sprintf("no club entry for %s side (ea_club_id=%s), score defaulted to 0", side, clubID))
		return 0
	}
	if club.Details != nil {
		return club.Details.Goals.Int()
	}
	return club.Goals.Int()
}
