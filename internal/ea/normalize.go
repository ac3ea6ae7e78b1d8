package ea

import (
	"fmt"
	"sort"
	"strings"

	"github.com/chelstats/chelstats/internal/domain/playerstats"
)

// positionBySorted maps EA's composite "posSorted" labels onto canonical
// position codes.
var positionBySorted = map[string]playerstats.Position{
	"goalie":       playerstats.PositionGoalie,
	"leftdefense":  playerstats.PositionLeftDefense,
	"rightdefense": playerstats.PositionRightDefense,
	"defensemen":   playerstats.PositionDefense,
	"center":       playerstats.PositionCenter,
	"leftwing":     playerstats.PositionLeftWing,
	"rightwing":    playerstats.PositionRightWing,
}

// legacy numeric/string position codes still emitted by older proxy versions.
var positionByLegacyCode = map[string]playerstats.Position{
	"0":          playerstats.PositionGoalie,
	"goalie":     playerstats.PositionGoalie,
	"1":          playerstats.PositionRightDefense,
	"2":          playerstats.PositionLeftDefense,
	"5":          playerstats.PositionCenter,
	"center":     playerstats.PositionCenter,
	"4":          playerstats.PositionLeftWing,
	"leftWing":   playerstats.PositionLeftWing,
	"3":          playerstats.PositionRightWing,
	"rightWing":  playerstats.PositionRightWing,
	"defensemen": playerstats.PositionDefense,
}

// ResolvePosition maps a raw player onto a canonical position. posSorted wins
// when it resolves, then the legacy position codes, then the generic Skater
// fallback.
func ResolvePosition(raw RawPlayer) playerstats.Position {
	if sorted := strings.TrimSpace(raw.PosSorted.String()); sorted != "" {
		if pos, ok := positionBySorted[strings.ToLower(sorted)]; ok {
			return pos
		}
	}
	if code := strings.TrimSpace(raw.Position.String()); code != "" {
		if pos, ok := positionByLegacyCode[code]; ok {
			return pos
		}
	}
	return playerstats.PositionSkater
}

// FormatTOI renders a raw seconds count as minutes:seconds with zero-padded
// seconds. Zero or negative input renders as "0:00".
func FormatTOI(seconds int) string {
	if seconds <= 0 {
		return "0:00"
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// Pct computes numerator/denominator*100, returning 0 when the denominator is
// zero so derived ratios are never NaN or Inf.
func Pct(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0
	}
	return float64(numerator) / float64(denominator) * 100
}

// NormalizePlayer translates one raw EA player record into a canonical stat
// line. A single bad record never fails: unreadable numerics already decoded
// to zero, and unknown positions degrade to the Skater label.
func NormalizePlayer(matchID, teamID, eaClubID, eaPlayerID string, raw RawPlayer) playerstats.StatLine {
	pos := ResolvePosition(raw)

	category := strings.ToLower(strings.TrimSpace(raw.Category.String()))
	if category == "" {
		category = playerstats.CategoryFor(pos)
	}

	won := raw.FaceoffsWon.Int()
	lost := raw.FaceoffsLost.Int()
	toiSeconds := raw.TOISeconds.Int()

	line := playerstats.StatLine{
		MatchID:          matchID,
		TeamID:           teamID,
		EAPlayerID:       eaPlayerID,
		EAClubID:         eaClubID,
		PlayerName:       strings.TrimSpace(raw.PlayerName.String()),
		Position:         pos,
		Category:         category,
		Goals:            raw.Goals.Int(),
		Assists:          raw.Assists.Int(),
		Points:           raw.Goals.Int() + raw.Assists.Int(),
		Shots:            raw.Shots.Int(),
		ShotAttempts:     raw.ShotAttempts.Int(),
		Hits:             raw.Hits.Int(),
		PIM:              raw.PIM.Int(),
		PlusMinus:        raw.PlusMinus.Int(),
		Blocks:           raw.Blocks.Int(),
		Takeaways:        raw.Takeaways.Int(),
		Giveaways:        raw.Giveaways.Int(),
		FaceoffsWon:      won,
		FaceoffsLost:     lost,
		FaceoffsTaken:    won + lost,
		FaceoffPct:       Pct(won, won+lost),
		PassAttempts:     raw.PassAttempts.Int(),
		PassCompleted:    raw.PassCompleted.Int(),
		PowerPlayGoals:   raw.PPGoals.Int(),
		ShortHandedGoals: raw.SHGoals.Int(),
		TOISeconds:       toiSeconds,
		TOI:              FormatTOI(toiSeconds),
	}

	// Goalie-only fields ride on resolved position, never on the raw record:
	// skaters must not carry them even when the proxy echoes gl* zeros.
	if pos == playerstats.PositionGoalie {
		line.Goalie = &playerstats.GoalieStats{
			Saves:           raw.GoalieSaves.Int(),
			GoalsAgainst:    raw.GoalieGA.Int(),
			SavePct:         raw.GoalieSavePct.Float(),
			ShotsAgainst:    raw.GoalieShots.Int(),
			GoalsAgainstAvg: raw.GoalieGAA.Float(),
		}
	}

	return line
}

// NormalizeClubPlayers normalizes every player record for one club. Lines are
// ordered by EA player id so the same payload always produces the same slice.
func NormalizeClubPlayers(payload *MatchPayload, matchID, teamID, eaClubID string) []playerstats.StatLine {
	raws := payload.PlayersForClub(eaClubID)
	lines := make([]playerstats.StatLine, 0, len(raws))
	for eaPlayerID, raw := range raws {
		lines = append(lines, NormalizePlayer(matchID, teamID, eaClubID, eaPlayerID, raw))
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].EAPlayerID < lines[j].EAPlayerID })
	return lines
}
