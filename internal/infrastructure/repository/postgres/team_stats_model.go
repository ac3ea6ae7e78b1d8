package postgres

import "github.com/chelstats/chelstats/internal/domain/teamstats"

var teamStatLineColumns = []string{
	"match_id",
	"team_id",
	"hits",
	"pim",
	"blocks",
	"takeaways",
	"giveaways",
	"faceoffs_won",
	"faceoffs_taken",
	"shot_attempts",
	"pass_completed",
	"pass_attempts",
	"power_play_goals",
	"goals",
	"shots",
	"power_play_opps",
	"offensive_zone_time",
	"power_play_pct",
	"faceoff_pct",
	"passing_pct",
	"shot_pct",
}

type teamStatLineTableModel struct {
	MatchID           string  `db:"match_id"`
	TeamID            string  `db:"team_id"`
	Hits              int     `db:"hits"`
	PIM               int     `db:"pim"`
	Blocks            int     `db:"blocks"`
	Takeaways         int     `db:"takeaways"`
	Giveaways         int     `db:"giveaways"`
	FaceoffsWon       int     `db:"faceoffs_won"`
	FaceoffsTaken     int     `db:"faceoffs_taken"`
	ShotAttempts      int     `db:"shot_attempts"`
	PassCompleted     int     `db:"pass_completed"`
	PassAttempts      int     `db:"pass_attempts"`
	PowerPlayGoals    int     `db:"power_play_goals"`
	Goals             int     `db:"goals"`
	Shots             int     `db:"shots"`
	PowerPlayOpps     int     `db:"power_play_opps"`
	OffensiveZoneTime int     `db:"offensive_zone_time"`
	PowerPlayPct      float64 `db:"power_play_pct"`
	FaceoffPct        float64 `db:"faceoff_pct"`
	PassingPct        float64 `db:"passing_pct"`
	ShotPct           float64 `db:"shot_pct"`
}

func teamStatLineToTableModel(line teamstats.StatLine) teamStatLineTableModel {
	return teamStatLineTableModel{
		MatchID:           line.MatchID,
		TeamID:            line.TeamID,
		Hits:              line.Hits,
		PIM:               line.PIM,
		Blocks:            line.Blocks,
		Takeaways:         line.Takeaways,
		Giveaways:         line.Giveaways,
		FaceoffsWon:       line.FaceoffsWon,
		FaceoffsTaken:     line.FaceoffsTaken,
		ShotAttempts:      line.ShotAttempts,
		PassCompleted:     line.PassCompleted,
		PassAttempts:      line.PassAttempts,
		PowerPlayGoals:    line.PowerPlayGoals,
		Goals:             line.Goals,
		Shots:             line.Shots,
		PowerPlayOpps:     line.PowerPlayOpps,
		OffensiveZoneTime: line.OffensiveZoneTime,
		PowerPlayPct:      line.PowerPlayPct,
		FaceoffPct:        line.FaceoffPct,
		PassingPct:        line.PassingPct,
		ShotPct:           line.ShotPct,
	}
}

func (m teamStatLineTableModel) toDomain() teamstats.StatLine {
	return teamstats.StatLine{
		MatchID:           m.MatchID,
		TeamID:            m.TeamID,
		Hits:              m.Hits,
		PIM:               m.PIM,
		Blocks:            m.Blocks,
		Takeaways:         m.Takeaways,
		Giveaways:         m.Giveaways,
		FaceoffsWon:       m.FaceoffsWon,
		FaceoffsTaken:     m.FaceoffsTaken,
		ShotAttempts:      m.ShotAttempts,
		PassCompleted:     m.PassCompleted,
		PassAttempts:      m.PassAttempts,
		PowerPlayGoals:    m.PowerPlayGoals,
		Goals:             m.Goals,
		Shots:             m.Shots,
		PowerPlayOpps:     m.PowerPlayOpps,
		OffensiveZoneTime: m.OffensiveZoneTime,
		PowerPlayPct:      m.PowerPlayPct,
		FaceoffPct:        m.FaceoffPct,
		PassingPct:        m.PassingPct,
		ShotPct:           m.ShotPct,
	}
}
