package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/chelstats/chelstats/internal/domain/match"
	"github.com/chelstats/chelstats/internal/domain/playerstats"
	"github.com/chelstats/chelstats/internal/domain/teamstats"
)

// MatchDetail is the read model for one match page: the match row plus every
// stat line imported for it.
type MatchDetail struct {
	Match       match.Match
	PlayerLines []playerstats.StatLine
	TeamLines   []teamstats.StatLine
}

type MatchService struct {
	matchRepo       match.Repository
	playerStatsRepo playerstats.Repository
	teamStatsRepo   teamstats.Repository
}

func NewMatchService(
	matchRepo match.Repository,
	playerStatsRepo playerstats.Repository,
	teamStatsRepo teamstats.Repository,
) *MatchService {
	return &MatchService{
		matchRepo:       matchRepo,
		playerStatsRepo: playerStatsRepo,
		teamStatsRepo:   teamStatsRepo,
	}
}

func (s *MatchService) GetMatchDetail(ctx context.Context, matchID string) (MatchDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetMatchDetail")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return MatchDetail{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	m, found, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return MatchDetail{}, fmt.Errorf("get match: %w", err)
	}
	if !found {
		return MatchDetail{}, fmt.Errorf("%w: match %s", ErrNotFound, matchID)
	}

	playerLines, err := s.playerStatsRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return MatchDetail{}, fmt.Errorf("list player stat lines: %w", err)
	}
	teamLines, err := s.teamStatsRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return MatchDetail{}, fmt.Errorf("list team stat lines: %w", err)
	}

	return MatchDetail{Match: m, PlayerLines: playerLines, TeamLines: teamLines}, nil
}

func (s *MatchService) ListBySeason(ctx context.Context, season string) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListBySeason")
	defer span.End()

	season = strings.TrimSpace(season)
	if season == "" {
		return nil, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}

	matches, err := s.matchRepo.ListBySeason(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("list matches by season: %w", err)
	}
	return matches, nil
}
