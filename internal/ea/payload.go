package ea

import (
	"bytes"
	"strconv"
	"strings"
)

// FlexInt decodes EA's loosely typed JSON numbers. The stats proxy emits the
// same field as a number, a quoted number, null, or omits it entirely
// depending on game mode; anything unreadable decodes to zero instead of
// failing the batch.
type FlexInt int

func (v *FlexInt) UnmarshalJSON(data []byte) error {
	*v = FlexInt(parseFlexInt(data))
	return nil
}

func (v FlexInt) Int() int { return int(v) }

// FlexFloat is FlexInt's float counterpart, used for the ratio fields EA
// ships pre-computed (save percentage, goals against average).
type FlexFloat float64

func (v *FlexFloat) UnmarshalJSON(data []byte) error {
	*v = FlexFloat(parseFlexFloat(data))
	return nil
}

func (v FlexFloat) Float() float64 { return float64(v) }

// FlexString decodes either a JSON string or a bare number into a string.
// Position codes arrive both ways ("5" and 5).
type FlexString string

func (v *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*v = ""
		return nil
	}
	if trimmed[0] == '"' {
		unquoted, err := strconv.Unquote(string(trimmed))
		if err != nil {
			*v = FlexString(strings.Trim(string(trimmed), `"`))
			return nil
		}
		*v = FlexString(unquoted)
		return nil
	}
	*v = FlexString(string(trimmed))
	return nil
}

func (v FlexString) String() string { return string(v) }

func parseFlexInt(data []byte) int {
	raw := normalizeScalar(data)
	if raw == "" {
		return 0
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	// EA emits some counters as floats ("12.0").
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return int(f)
	}
	return 0
}

func parseFlexFloat(data []byte) float64 {
	raw := normalizeScalar(data)
	if raw == "" {
		return 0
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return 0
}

func normalizeScalar(data []byte) string {
	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		return ""
	}
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
	}
	return raw
}

// MatchPayload is one EA match-statistics blob. Manual imports carry the
// top-level score fields; automatic imports carry the clubs map keyed by EA
// club id. Player collections appear either nested under each club or in the
// top-level players map keyed by club id, depending on proxy version.
type MatchPayload struct {
	HomeScore    FlexInt                         `json:"homeScore"`
	AwayScore    FlexInt                         `json:"awayScore"`
	PeriodScores []PeriodScore                   `json:"periodScores"`
	Clubs        map[string]Club                 `json:"clubs"`
	Players      map[string]map[string]RawPlayer `json:"players"`
	Combined     bool                            `json:"combined"`
}

type PeriodScore struct {
	Home FlexInt `json:"home"`
	Away FlexInt `json:"away"`
}

// Club is the per-club aggregate block of a match payload.
type Club struct {
	Details        *ClubDetails         `json:"details"`
	Goals          FlexInt              `json:"goals"`
	GoalsAgainst   FlexInt              `json:"goalsAgainst"`
	Shots          FlexInt              `json:"shots"`
	PowerPlayGoals FlexInt              `json:"ppg"`
	PowerPlayOpps  FlexInt              `json:"ppo"`
	PassAttempts   FlexInt              `json:"passa"`
	PassCompleted  FlexInt              `json:"passc"`
	TimeOnAttack   FlexInt              `json:"toa"`
	TeamSide       FlexInt              `json:"teamSide"`
	Players        map[string]RawPlayer `json:"players"`
}

type ClubDetails struct {
	Name  FlexString `json:"name"`
	Goals FlexInt    `json:"goals"`
}

// RawPlayer mirrors EA's per-player stat record with its original field
// names. All skater counters use the "sk" prefix, goalie counters "gl".
type RawPlayer struct {
	PlayerName    FlexString `json:"playername"`
	Position      FlexString `json:"position"`
	PosSorted     FlexString `json:"posSorted"`
	Category      FlexString `json:"category"`
	Goals         FlexInt    `json:"skgoals"`
	Assists       FlexInt    `json:"skassists"`
	Shots         FlexInt    `json:"skshots"`
	ShotAttempts  FlexInt    `json:"skshotattempts"`
	Hits          FlexInt    `json:"skhits"`
	PIM           FlexInt    `json:"skpim"`
	PlusMinus     FlexInt    `json:"skplusmin"`
	Blocks        FlexInt    `json:"skbs"`
	Takeaways     FlexInt    `json:"sktakeaways"`
	Giveaways     FlexInt    `json:"skgiveaways"`
	FaceoffsWon   FlexInt    `json:"skfow"`
	FaceoffsLost  FlexInt    `json:"skfol"`
	PPGoals       FlexInt    `json:"skppg"`
	SHGoals       FlexInt    `json:"skshg"`
	PassCompleted FlexInt    `json:"skpasses"`
	PassAttempts  FlexInt    `json:"skpassattempts"`
	TOISeconds    FlexInt    `json:"toiseconds"`
	GoalieSaves   FlexInt    `json:"glsaves"`
	GoalieGA      FlexInt    `json:"glga"`
	GoalieSavePct FlexFloat  `json:"glsavepct"`
	GoalieShots   FlexInt    `json:"glshots"`
	GoalieGAA     FlexFloat  `json:"glgaa"`
}

// PlayersForClub returns the player records for one club, merging the nested
// club collection with the top-level players map. Top-level entries win on
// duplicate player ids since newer proxies populate only that shape.
func (p *MatchPayload) PlayersForClub(clubID string) map[string]RawPlayer {
	out := make(map[string]RawPlayer)
	if club, ok := p.Clubs[clubID]; ok {
		for id, raw := range club.Players {
			out[id] = raw
		}
	}
	for id, raw := range p.Players[clubID] {
		out[id] = raw
	}
	return out
}
