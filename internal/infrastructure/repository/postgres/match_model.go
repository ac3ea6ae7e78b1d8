package postgres

import (
	"database/sql"
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/chelstats/chelstats/internal/domain/match"
)

var matchColumns = []string{
	"id",
	"season",
	"week",
	"home_team_id",
	"away_team_id",
	"home_score",
	"away_score",
	"period_scores",
	"status",
	"ea_match_id",
	"is_combined",
	"scheduled_at",
	"imported_at",
}

type matchTableModel struct {
	ID           string         `db:"id"`
	Season       string         `db:"season"`
	Week         int            `db:"week"`
	HomeTeamID   string         `db:"home_team_id"`
	AwayTeamID   string         `db:"away_team_id"`
	HomeScore    sql.NullInt64  `db:"home_score"`
	AwayScore    sql.NullInt64  `db:"away_score"`
	PeriodScores []byte         `db:"period_scores"`
	Status       string         `db:"status"`
	EAMatchID    sql.NullString `db:"ea_match_id"`
	IsCombined   bool           `db:"is_combined"`
	ScheduledAt  time.Time      `db:"scheduled_at"`
	ImportedAt   sql.NullTime   `db:"imported_at"`
}

func (m matchTableModel) toDomain() (match.Match, error) {
	periods, err := decodePeriodScores(m.PeriodScores)
	if err != nil {
		return match.Match{}, fmt.Errorf("decode period scores for match %s: %w", m.ID, err)
	}

	return match.Match{
		ID:           m.ID,
		Season:       m.Season,
		Week:         m.Week,
		HomeTeamID:   m.HomeTeamID,
		AwayTeamID:   m.AwayTeamID,
		HomeScore:    nullInt64ToIntPtr(m.HomeScore),
		AwayScore:    nullInt64ToIntPtr(m.AwayScore),
		PeriodScores: periods,
		Status:       match.NormalizeStatus(m.Status),
		EAMatchID:    nullStringToString(m.EAMatchID),
		IsCombined:   m.IsCombined,
		ScheduledAt:  m.ScheduledAt,
		ImportedAt:   nullTimeToTimePtr(m.ImportedAt),
	}, nil
}

func encodePeriodScores(periods []match.PeriodScore) (string, error) {
	if len(periods) == 0 {
		return "[]", nil
	}
	encoded, err := sonic.Marshal(periods)
	if err != nil {
		return "", fmt.Errorf("encode period scores: %w", err)
	}
	return string(encoded), nil
}

func decodePeriodScores(raw []byte) ([]match.PeriodScore, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var periods []match.PeriodScore
	if err := sonic.Unmarshal(raw, &periods); err != nil {
		return nil, err
	}
	return periods, nil
}
