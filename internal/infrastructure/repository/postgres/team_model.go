package postgres

import (
	"database/sql"

	"github.com/chelstats/chelstats/internal/domain/team"
)

var teamColumns = []string{
	"id",
	"name",
	"abbrev",
	"ea_club_id",
	"logo_url",
}

type teamTableModel struct {
	ID       string         `db:"id"`
	Name     string         `db:"name"`
	Abbrev   string         `db:"abbrev"`
	EAClubID sql.NullString `db:"ea_club_id"`
	LogoURL  sql.NullString `db:"logo_url"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:       m.ID,
		Name:     m.Name,
		Abbrev:   m.Abbrev,
		EAClubID: nullStringToString(m.EAClubID),
		LogoURL:  nullStringToString(m.LogoURL),
	}
}

type teamSeasonStatsRow struct {
	GamesPlayed    int `db:"games_played"`
	Goals          int `db:"goals"`
	Shots          int `db:"shots"`
	Hits           int `db:"hits"`
	PIM            int `db:"pim"`
	Blocks         int `db:"blocks"`
	Takeaways      int `db:"takeaways"`
	Giveaways      int `db:"giveaways"`
	FaceoffsWon    int `db:"faceoffs_won"`
	FaceoffsTaken  int `db:"faceoffs_taken"`
	PowerPlayGoals int `db:"power_play_goals"`
	PowerPlayOpps  int `db:"power_play_opps"`
}
