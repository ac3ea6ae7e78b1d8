package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/chelstats/chelstats/internal/domain/match"
	"github.com/chelstats/chelstats/internal/domain/playerstats"
	"github.com/chelstats/chelstats/internal/domain/teamstats"
)

type periodScoreDTO struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

type matchDTO struct {
	ID           string           `json:"id"`
	Season       string           `json:"season"`
	Week         int              `json:"week"`
	HomeTeamID   string           `json:"homeTeamId"`
	AwayTeamID   string           `json:"awayTeamId"`
	HomeScore    *int             `json:"homeScore"`
	AwayScore    *int             `json:"awayScore"`
	PeriodScores []periodScoreDTO `json:"periodScores"`
	Status       string           `json:"status"`
	EAMatchID    string           `json:"eaMatchId,omitempty"`
	IsCombined   bool             `json:"isCombined"`
	ScheduledAt  time.Time        `json:"scheduledAt"`
	ImportedAt   *time.Time       `json:"importedAt,omitempty"`
}

type goalieStatsDTO struct {
	Saves           int     `json:"saves"`
	GoalsAgainst    int     `json:"goalsAgainst"`
	SavePct         float64 `json:"savePct"`
	ShotsAgainst    int     `json:"shotsAgainst"`
	GoalsAgainstAvg float64 `json:"goalsAgainstAvg"`
}

type playerStatLineDTO struct {
	TeamID           string          `json:"teamId"`
	EAPlayerID       string          `json:"eaPlayerId"`
	PlayerName       string          `json:"playerName"`
	Position         string          `json:"position"`
	Category         string          `json:"category"`
	Goals            int             `json:"goals"`
	Assists          int             `json:"assists"`
	Points           int             `json:"points"`
	Shots            int             `json:"shots"`
	ShotAttempts     int             `json:"shotAttempts"`
	Hits             int             `json:"hits"`
	PIM              int             `json:"pim"`
	PlusMinus        int             `json:"plusMinus"`
	Blocks           int             `json:"blocks"`
	Takeaways        int             `json:"takeaways"`
	Giveaways        int             `json:"giveaways"`
	FaceoffsWon      int             `json:"faceoffsWon"`
	FaceoffsLost     int             `json:"faceoffsLost"`
	FaceoffsTaken    int             `json:"faceoffsTaken"`
	FaceoffPct       float64         `json:"faceoffPct"`
	PassAttempts     int             `json:"passAttempts"`
	PassCompleted    int             `json:"passCompleted"`
	PowerPlayGoals   int             `json:"powerPlayGoals"`
	ShortHandedGoals int             `json:"shortHandedGoals"`
	TOISeconds       int             `json:"toiSeconds"`
	TOI              string          `json:"toi"`
	Goalie           *goalieStatsDTO `json:"goalie,omitempty"`
}

type teamStatLineDTO struct {
	TeamID            string  `json:"teamId"`
	Hits              int     `json:"hits"`
	PIM               int     `json:"pim"`
	Blocks            int     `json:"blocks"`
	Takeaways         int     `json:"takeaways"`
	Giveaways         int     `json:"giveaways"`
	FaceoffsWon       int     `json:"faceoffsWon"`
	FaceoffsTaken     int     `json:"faceoffsTaken"`
	ShotAttempts      int     `json:"shotAttempts"`
	PassCompleted     int     `json:"passCompleted"`
	PassAttempts      int     `json:"passAttempts"`
	PowerPlayGoals    int     `json:"powerPlayGoals"`
	Goals             int     `json:"goals"`
	Shots             int     `json:"shots"`
	PowerPlayOpps     int     `json:"powerPlayOpps"`
	OffensiveZoneTime int     `json:"offensiveZoneTime"`
	PowerPlayPct      float64 `json:"powerPlayPct"`
	FaceoffPct        float64 `json:"faceoffPct"`
	PassingPct        float64 `json:"passingPct"`
	ShotPct           float64 `json:"shotPct"`
}

type matchDetailDTO struct {
	Match       matchDTO            `json:"match"`
	PlayerStats []playerStatLineDTO `json:"playerStats"`
	TeamStats   []teamStatLineDTO   `json:"teamStats"`
}

func (h *Handler) GetMatchDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchDetail")
	defer span.End()

	matchID := r.PathValue("matchID")
	detail, err := h.matchService.GetMatchDetail(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match detail failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	playerLines := make([]playerStatLineDTO, 0, len(detail.PlayerLines))
	for _, line := range detail.PlayerLines {
		playerLines = append(playerLines, playerStatLineToDTO(line))
	}
	teamLines := make([]teamStatLineDTO, 0, len(detail.TeamLines))
	for _, line := range detail.TeamLines {
		teamLines = append(teamLines, teamStatLineToDTO(line))
	}

	writeData(ctx, w, http.StatusOK, matchDetailDTO{
		Match:       matchToDTO(detail.Match),
		PlayerStats: playerLines,
		TeamStats:   teamLines,
	})
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	season := strings.TrimSpace(r.URL.Query().Get("season"))
	matches, err := h.matchService.ListBySeason(ctx, season)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchToDTO(m))
	}
	writeData(ctx, w, http.StatusOK, items)
}

func matchToDTO(m match.Match) matchDTO {
	periods := make([]periodScoreDTO, 0, len(m.PeriodScores))
	for _, period := range m.PeriodScores {
		periods = append(periods, periodScoreDTO{Home: period.Home, Away: period.Away})
	}
	return matchDTO{
		ID:           m.ID,
		Season:       m.Season,
		Week:         m.Week,
		HomeTeamID:   m.HomeTeamID,
		AwayTeamID:   m.AwayTeamID,
		HomeScore:    m.HomeScore,
		AwayScore:    m.AwayScore,
		PeriodScores: periods,
		Status:       m.Status,
		EAMatchID:    m.EAMatchID,
		IsCombined:   m.IsCombined,
		ScheduledAt:  m.ScheduledAt,
		ImportedAt:   m.ImportedAt,
	}
}

func playerStatLineToDTO(line playerstats.StatLine) playerStatLineDTO {
	dto := playerStatLineDTO{
		TeamID:           line.TeamID,
		EAPlayerID:       line.EAPlayerID,
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
		dto.Goalie = &goalieStatsDTO{
			Saves:           line.Goalie.Saves,
			GoalsAgainst:    line.Goalie.GoalsAgainst,
			SavePct:         line.Goalie.SavePct,
			ShotsAgainst:    line.Goalie.ShotsAgainst,
			GoalsAgainstAvg: line.Goalie.GoalsAgainstAvg,
		}
	}
	return dto
}

func teamStatLineToDTO(line teamstats.StatLine) teamStatLineDTO {
	return teamStatLineDTO{
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
