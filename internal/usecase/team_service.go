package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/chelstats/chelstats/internal/domain/player"
	"github.com/chelstats/chelstats/internal/domain/team"
)

type TeamService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
}

func NewTeamService(teamRepo team.Repository, playerRepo player.Repository) *TeamService {
	return &TeamService{teamRepo: teamRepo, playerRepo: playerRepo}
}

func (s *TeamService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

func (s *TeamService) GetRoster(ctx context.Context, teamID string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetRoster")
	defer span.End()

	if _, err := s.requireTeam(ctx, teamID); err != nil {
		return nil, err
	}

	roster, err := s.playerRepo.ListByTeam(ctx, strings.TrimSpace(teamID))
	if err != nil {
		return nil, fmt.Errorf("list team roster: %w", err)
	}
	return roster, nil
}

func (s *TeamService) GetSeasonStats(ctx context.Context, teamID string) (team.SeasonStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetSeasonStats")
	defer span.End()

	if _, err := s.requireTeam(ctx, teamID); err != nil {
		return team.SeasonStats{}, err
	}

	stats, err := s.teamRepo.GetSeasonStats(ctx, strings.TrimSpace(teamID))
	if err != nil {
		return team.SeasonStats{}, fmt.Errorf("get team season stats: %w", err)
	}
	return stats, nil
}

func (s *TeamService) requireTeam(ctx context.Context, teamID string) (team.Team, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	t, found, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !found {
		return team.Team{}, fmt.Errorf("%w: team %s", ErrNotFound, teamID)
	}
	return t, nil
}
