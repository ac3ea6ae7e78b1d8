package httpapi

import (
	"net/http"
	"time"

	"github.com/chelstats/chelstats/internal/domain/team"
)

type teamDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Abbrev   string `json:"abbrev"`
	EAClubID string `json:"eaClubId,omitempty"`
	LogoURL  string `json:"logoUrl,omitempty"`
}

type rosterPlayerDTO struct {
	ID         string    `json:"id"`
	EAPlayerID string    `json:"eaPlayerId"`
	Name       string    `json:"name"`
	Position   string    `json:"position"`
	LastSeenAt time.Time `json:"lastSeenAt"`
}

type teamSeasonStatsDTO struct {
	GamesPlayed    int `json:"gamesPlayed"`
	Goals          int `json:"goals"`
	Shots          int `json:"shots"`
	Hits           int `json:"hits"`
	PIM            int `json:"pim"`
	Blocks         int `json:"blocks"`
	Takeaways      int `json:"takeaways"`
	Giveaways      int `json:"giveaways"`
	FaceoffsWon    int `json:"faceoffsWon"`
	FaceoffsTaken  int `json:"faceoffsTaken"`
	PowerPlayGoals int `json:"powerPlayGoals"`
	PowerPlayOpps  int `json:"powerPlayOpps"`
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.teamService.ListTeams(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}
	writeData(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeamRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamRoster")
	defer span.End()

	teamID := r.PathValue("teamID")
	roster, err := h.teamService.GetRoster(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team roster failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]rosterPlayerDTO, 0, len(roster))
	for _, p := range roster {
		items = append(items, rosterPlayerDTO{
			ID:         p.ID,
			EAPlayerID: p.EAPlayerID,
			Name:       p.Name,
			Position:   p.Position,
			LastSeenAt: p.LastSeenAt,
		})
	}
	writeData(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeamSeasonStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamSeasonStats")
	defer span.End()

	teamID := r.PathValue("teamID")
	stats, err := h.teamService.GetSeasonStats(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team season stats failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeData(ctx, w, http.StatusOK, teamSeasonStatsDTO{
		GamesPlayed:    stats.GamesPlayed,
		Goals:          stats.Goals,
		Shots:          stats.Shots,
		Hits:           stats.Hits,
		PIM:            stats.PIM,
		Blocks:         stats.Blocks,
		Takeaways:      stats.Takeaways,
		Giveaways:      stats.Giveaways,
		FaceoffsWon:    stats.FaceoffsWon,
		FaceoffsTaken:  stats.FaceoffsTaken,
		PowerPlayGoals: stats.PowerPlayGoals,
		PowerPlayOpps:  stats.PowerPlayOpps,
	})
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:       t.ID,
		Name:     t.Name,
		Abbrev:   t.Abbrev,
		EAClubID: t.EAClubID,
		LogoURL:  t.LogoURL,
	}
}
