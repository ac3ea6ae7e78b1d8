package usecase

import (
	"context"
	"fmt"
	"sync"

	ants "github.com/panjf2000/ants/v2"

	"github.com/chelstats/chelstats/internal/domain/match"
	"github.com/chelstats/chelstats/internal/domain/playerstats"
	"github.com/chelstats/chelstats/internal/domain/teamstats"
	"github.com/chelstats/chelstats/internal/ea"
	"github.com/chelstats/chelstats/internal/platform/logging"
)

const defaultRecalcWorkers = 8

// RecalcReport summarizes an admin recalculation run. Violations lists the
// matches whose stored team sums drifted from what the player lines add up to.
type RecalcReport struct {
	MatchesProcessed int
	MatchesFailed    int
	Violations       []string
}

// RecalcService rebuilds every imported match's team stat lines from the
// stored player lines. Club-sourced fields cannot be recomputed and are kept
// from the existing line.
type RecalcService struct {
	matchRepo       match.Repository
	playerStatsRepo playerstats.Repository
	teamStatsRepo   teamstats.Repository
	logger          *logging.Logger
	workers         int
}

func NewRecalcService(
	matchRepo match.Repository,
	playerStatsRepo playerstats.Repository,
	teamStatsRepo teamstats.Repository,
	workers int,
	logger *logging.Logger,
) *RecalcService {
	if workers <= 0 {
		workers = defaultRecalcWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &RecalcService{
		matchRepo:       matchRepo,
		playerStatsRepo: playerStatsRepo,
		teamStatsRepo:   teamStatsRepo,
		logger:          logger,
		workers:         workers,
	}
}

func (s *RecalcService) RecalcTeamStats(ctx context.Context) (RecalcReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecalcService.RecalcTeamStats")
	defer span.End()

	matches, err := s.matchRepo.ListImported(ctx)
	if err != nil {
		return RecalcReport{}, fmt.Errorf("list imported matches: %w", err)
	}
	if len(matches) == 0 {
		return RecalcReport{}, nil
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return RecalcReport{}, fmt.Errorf("create recalc pool: %w", err)
	}
	defer pool.Release()

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		report RecalcReport
	)
	for _, item := range matches {
		m := item
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()

			violations, err := s.recalcMatch(ctx, m)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.MatchesFailed++
				s.logger.ErrorContext(ctx, "match recalculation failed", "match_id", m.ID, "error", err)
				return
			}
			report.MatchesProcessed++
			report.Violations = append(report.Violations, violations...)
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			report.MatchesFailed++
			mu.Unlock()
			s.logger.ErrorContext(ctx, "recalc task not scheduled", "match_id", m.ID, "error", submitErr)
		}
	}
	wg.Wait()

	return report, nil
}

func (s *RecalcService) recalcMatch(ctx context.Context, m match.Match) ([]string, error) {
	lines, err := s.playerStatsRepo.ListByMatch(ctx, m.ID)
	if err != nil {
		return nil, fmt.Errorf("list player stat lines: %w", err)
	}
	existing, err := s.teamStatsRepo.ListByMatch(ctx, m.ID)
	if err != nil {
		return nil, fmt.Errorf("list team stat lines: %w", err)
	}

	byTeam := make(map[string][]playerstats.StatLine)
	for _, line := range lines {
		byTeam[line.TeamID] = append(byTeam[line.TeamID], line)
	}
	existingByTeam := make(map[string]teamstats.StatLine, len(existing))
	for _, line := range existing {
		existingByTeam[line.TeamID] = line
	}

	var violations []string
	rebuilt := make([]teamstats.StatLine, 0, 2)
	for _, teamID := range []string{m.HomeTeamID, m.AwayTeamID} {
		line := ea.AggregateTeam(m.ID, teamID, nil, byTeam[teamID])
		if prev, ok := existingByTeam[teamID]; ok {
			violations = append(violations, sumViolations(m.ID, prev, line)...)

			line.Goals = prev.Goals
			line.Shots = prev.Shots
			line.PowerPlayOpps = prev.PowerPlayOpps
			line.OffensiveZoneTime = prev.OffensiveZoneTime
			line.PowerPlayPct = ea.Pct(line.PowerPlayGoals, line.PowerPlayOpps)
			line.ShotPct = ea.Pct(line.Shots, line.ShotAttempts)
		}
		rebuilt = append(rebuilt, line)
	}

	if err := s.teamStatsRepo.ReplaceForMatch(ctx, m.ID, rebuilt); err != nil {
		return nil, fmt.Errorf("replace team stat lines: %w", err)
	}
	return violations, nil
}

func sumViolations(matchID string, stored, recomputed teamstats.StatLine) []string {
	checks := []struct {
		field      string
		stored     int
		recomputed int
	}{
		{"hits", stored.Hits, recomputed.Hits},
		{"pim", stored.PIM, recomputed.PIM},
		{"blocks", stored.Blocks, recomputed.Blocks},
		{"takeaways", stored.Takeaways, recomputed.Takeaways},
		{"giveaways", stored.Giveaways, recomputed.Giveaways},
		{"faceoffs_won", stored.FaceoffsWon, recomputed.FaceoffsWon},
	}

	var out []string
	for _, check := range checks {
		if check.stored != check.recomputed {
			out = append(out, fmt.Sprintf("match %s team %s: %s stored %d, recomputed %d",
				matchID, stored.TeamID, check.field, check.stored, check.recomputed))
		}
	}
	return out
}
