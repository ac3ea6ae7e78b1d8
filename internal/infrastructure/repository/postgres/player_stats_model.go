package postgres

import (
	"database/sql"

	"github.com/chelstats/chelstats/internal/domain/playerstats"
)

var playerStatLineColumns = []string{
	"match_id",
	"team_id",
	"ea_player_id",
	"ea_club_id",
	"player_name",
	"position",
	"category",
	"goals",
	"assists",
	"points",
	"shots",
	"shot_attempts",
	"hits",
	"pim",
	"plus_minus",
	"blocks",
	"takeaways",
	"giveaways",
	"faceoffs_won",
	"faceoffs_lost",
	"faceoffs_taken",
	"faceoff_pct",
	"pass_attempts",
	"pass_completed",
	"power_play_goals",
	"short_handed_goals",
	"toi_seconds",
	"toi",
	"saves",
	"goals_against",
	"save_pct",
	"shots_against",
	"goals_against_avg",
}

type playerStatLineTableModel struct {
	MatchID          string          `db:"match_id"`
	TeamID           string          `db:"team_id"`
	EAPlayerID       string          `db:"ea_player_id"`
	EAClubID         string          `db:"ea_club_id"`
	PlayerName       string          `db:"player_name"`
	Position         string          `db:"position"`
	Category         string          `db:"category"`
	Goals            int             `db:"goals"`
	Assists          int             `db:"assists"`
	Points           int             `db:"points"`
	Shots            int             `db:"shots"`
	ShotAttempts     int             `db:"shot_attempts"`
	Hits             int             `db:"hits"`
	PIM              int             `db:"pim"`
	PlusMinus        int             `db:"plus_minus"`
	Blocks           int             `db:"blocks"`
	Takeaways        int             `db:"takeaways"`
	Giveaways        int             `db:"giveaways"`
	FaceoffsWon      int             `db:"faceoffs_won"`
	FaceoffsLost     int             `db:"faceoffs_lost"`
	FaceoffsTaken    int             `db:"faceoffs_taken"`
	FaceoffPct       float64         `db:"faceoff_pct"`
	PassAttempts     int             `db:"pass_attempts"`
	PassCompleted    int             `db:"pass_completed"`
	PowerPlayGoals   int             `db:"power_play_goals"`
	ShortHandedGoals int             `db:"short_handed_goals"`
	TOISeconds       int             `db:"toi_seconds"`
	TOI              string          `db:"toi"`
	Saves            sql.NullInt64   `db:"saves"`
	GoalsAgainst     sql.NullInt64   `db:"goals_against"`
	SavePct          sql.NullFloat64 `db:"save_pct"`
	ShotsAgainst     sql.NullInt64   `db:"shots_against"`
	GoalsAgainstAvg  sql.NullFloat64 `db:"goals_against_avg"`
}

func playerStatLineToTableModel(line playerstats.StatLine) playerStatLineTableModel {
	row := playerStatLineTableModel{
		MatchID:          line.MatchID,
		TeamID:           line.TeamID,
		EAPlayerID:       line.EAPlayerID,
		EAClubID:         line.EAClubID,
		PlayerName:       line.PlayerName,
		Position:         string(line.Position),
		Category:         line.Category,
		Goals:            line.Goals,
		Assists:          line.Assists,
		Points:           line.Points,
		Shots:            line.Shots,
		ShotAttempts:     line.ShotAttempts,
		Hits:             line.Hits,
		PIM:              line.PIM,
		PlusMinus:        line.PlusMinus,
		Blocks:           line.Blocks,
		Takeaways:        line.Takeaways,
		Giveaways:        line.Giveaways,
		FaceoffsWon:      line.FaceoffsWon,
		FaceoffsLost:     line.FaceoffsLost,
		FaceoffsTaken:    line.FaceoffsTaken,
		FaceoffPct:       line.FaceoffPct,
		PassAttempts:     line.PassAttempts,
		PassCompleted:    line.PassCompleted,
		PowerPlayGoals:   line.PowerPlayGoals,
		ShortHandedGoals: line.ShortHandedGoals,
		TOISeconds:       line.TOISeconds,
		TOI:              line.TOI,
	}

	if line.Goalie != nil {
		row.Saves = sql.NullInt64{Int64: int64(line.Goalie.Saves), Valid: true}
		row.GoalsAgainst = sql.NullInt64{Int64: int64(line.Goalie.GoalsAgainst), Valid: true}
		row.SavePct = sql.NullFloat64{Float64: line.Goalie.SavePct, Valid: true}
		row.ShotsAgainst = sql.NullInt64{Int64: int64(line.Goalie.ShotsAgainst), Valid: true}
		row.GoalsAgainstAvg = sql.NullFloat64{Float64: line.Goalie.GoalsAgainstAvg, Valid: true}
	}
	return row
}

func (m playerStatLineTableModel) toDomain() playerstats.StatLine {
	line := playerstats.StatLine{
		MatchID:          m.MatchID,
		TeamID:           m.TeamID,
		EAPlayerID:       m.EAPlayerID,
		EAClubID:         m.EAClubID,
		PlayerName:       m.PlayerName,
		Position:         playerstats.Position(m.Position),
		Category:         m.Category,
		Goals:            m.Goals,
		Assists:          m.Assists,
		Points:           m.Points,
		Shots:            m.Shots,
		ShotAttempts:     m.ShotAttempts,
		Hits:             m.Hits,
		PIM:              m.PIM,
		PlusMinus:        m.PlusMinus,
		Blocks:           m.Blocks,
		Takeaways:        m.Takeaways,
		Giveaways:        m.Giveaways,
		FaceoffsWon:      m.FaceoffsWon,
		FaceoffsLost:     m.FaceoffsLost,
		FaceoffsTaken:    m.FaceoffsTaken,
		FaceoffPct:       m.FaceoffPct,
		PassAttempts:     m.PassAttempts,
		PassCompleted:    m.PassCompleted,
		PowerPlayGoals:   m.PowerPlayGoals,
		ShortHandedGoals: m.ShortHandedGoals,
		TOISeconds:       m.TOISeconds,
		TOI:              m.TOI,
	}

	if line.Position == playerstats.PositionGoalie {
		line.Goalie = &playerstats.GoalieStats{
			Saves:           int(m.Saves.Int64),
			GoalsAgainst:    int(m.GoalsAgainst.Int64),
			SavePct:         m.SavePct.Float64,
			ShotsAgainst:    int(m.ShotsAgainst.Int64),
			GoalsAgainstAvg: m.GoalsAgainstAvg.Float64,
		}
	}
	return line
}
