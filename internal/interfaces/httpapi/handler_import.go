package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/chelstats/chelstats/internal/ea"
	"github.com/chelstats/chelstats/internal/usecase"
)

const statInsertErrorCode = "player_stat_insert_failed"

type importMatchRequest struct {
	MatchID        string          `json:"matchId"`
	EAMatchID      string          `json:"eaMatchId"`
	EAMatchData    json.RawMessage `json:"eaMatchData" validate:"required"`
	IsManualImport bool            `json:"isManualImport"`
	AdminOverride  bool            `json:"adminOverride"`
}

func (h *Handler) ImportMatchStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportMatchStats")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))

	var req importMatchRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	// A JSON null decodes into a non-empty RawMessage and slips past the
	// required tag, so it needs its own check.
	if strings.TrimSpace(string(req.EAMatchData)) == "null" {
		writeError(ctx, w, fmt.Errorf("%w: eaMatchData is required", usecase.ErrInvalidInput))
		return
	}
	if body := strings.TrimSpace(req.MatchID); body != "" && body != matchID {
		writeError(ctx, w, fmt.Errorf("%w: body matchId %q does not match path match id %q", usecase.ErrInvalidInput, body, matchID))
		return
	}

	var payload ea.MatchPayload
	if err := sonic.Unmarshal(req.EAMatchData, &payload); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid eaMatchData: %v", usecase.ErrInvalidInput, err))
		return
	}

	result, err := h.importService.Import(ctx, usecase.ImportRequest{
		MatchID:   matchID,
		EAMatchID: req.EAMatchID,
		Manual:    req.IsManualImport,
		Payload:   &payload,
		RawJSON:   req.EAMatchData,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "import failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.writeImportOutcome(ctx, w, result)
}

func (h *Handler) ImportMatchStatsFromEA(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportMatchStatsFromEA")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	result, err := h.importService.ImportFromEA(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "ea import failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.writeImportOutcome(ctx, w, result)
}

// writeImportOutcome reports partial failures with HTTP 200: the score update
// already stuck, so the caller gets a definitive body instead of a retryable
// status.
func (h *Handler) writeImportOutcome(ctx context.Context, w http.ResponseWriter, result usecase.ImportResult) {
	if !result.Partial() {
		writeJSON(ctx, w, http.StatusOK, importOutcomeBody{Success: true})
		return
	}

	writeJSON(ctx, w, http.StatusOK, importOutcomeBody{
		Success:       false,
		Error:         statInsertErrorCode,
		Message:       result.StatError.Error(),
		MigrationPath: usecase.MigrationPath,
	})
}

type recalcReportDTO struct {
	MatchesProcessed int      `json:"matchesProcessed"`
	MatchesFailed    int      `json:"matchesFailed"`
	Violations       []string `json:"violations"`
}

func (h *Handler) RecalcTeamStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecalcTeamStats")
	defer span.End()

	report, err := h.recalcService.RecalcTeamStats(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "team stats recalculation failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	violations := report.Violations
	if violations == nil {
		violations = []string{}
	}
	writeData(ctx, w, http.StatusOK, recalcReportDTO{
		MatchesProcessed: report.MatchesProcessed,
		MatchesFailed:    report.MatchesFailed,
		Violations:       violations,
	})
}
