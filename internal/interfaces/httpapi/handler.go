package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/chelstats/chelstats/internal/platform/logging"
	"github.com/chelstats/chelstats/internal/usecase"
)

type Handler struct {
	importService *usecase.ImportService
	matchService  *usecase.MatchService
	teamService   *usecase.TeamService
	recalcService *usecase.RecalcService
	logger        *logging.Logger
	validator     *validator.Validate
}

func NewHandler(
	importService *usecase.ImportService,
	matchService *usecase.MatchService,
	teamService *usecase.TeamService,
	recalcService *usecase.RecalcService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		importService: importService,
		matchService:  matchService,
		teamService:   teamService,
		recalcService: recalcService,
		logger:        logger,
		validator:     validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}
