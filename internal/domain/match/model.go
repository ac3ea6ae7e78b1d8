package match

import (
	"strings"
	"time"
)

const (
	StatusScheduled = "SCHEDULED"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
)

// CombinedIDPrefix marks a logical match whose payload already merges several
// EA games; the merge happens upstream and is only recorded here.
const CombinedIDPrefix = "combined:"

// Match is one scheduled league game. Fixtures are created by the scheduling
// flow; the import pipeline only updates scores, status and the EA linkage.
type Match struct {
	ID           string
	Season       string
	Week         int
	HomeTeamID   string
	AwayTeamID   string
	HomeScore    *int
	AwayScore    *int
	PeriodScores []PeriodScore
	Status       string
	EAMatchID    string
	IsCombined   bool
	ScheduledAt  time.Time
	ImportedAt   *time.Time
}

type PeriodScore struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// ScoreUpdate carries the fields the import pipeline is allowed to touch.
type ScoreUpdate struct {
	HomeScore    int
	AwayScore    int
	PeriodScores []PeriodScore
	Status       string
	EAMatchID    string
	IsCombined   bool
}

func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return StatusScheduled
	}
	return status
}

func IsCombinedEAMatchID(eaMatchID string) bool {
	return strings.HasPrefix(strings.TrimSpace(eaMatchID), CombinedIDPrefix)
}
