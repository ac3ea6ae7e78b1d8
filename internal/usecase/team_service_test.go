package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chelstats/chelstats/internal/domain/player"
	"github.com/chelstats/chelstats/internal/domain/team"
)

func TestTeamServiceGetRoster(t *testing.T) {
	t.Parallel()

	teamRepo := newStubTeamRepo(team.Team{ID: "t-home", Name: "Storm"})
	playerRepo := &rosterStubPlayerRepo{
		byTeam: map[string][]player.Player{
			"t-home": {
				{ID: "p1", TeamID: "t-home", EAPlayerID: "101", Name: "Alice"},
				{ID: "p2", TeamID: "t-home", EAPlayerID: "102", Name: "Bob"},
			},
		},
	}
	service := NewTeamService(teamRepo, playerRepo)

	roster, err := service.GetRoster(context.Background(), "t-home")
	require.NoError(t, err)
	require.Len(t, roster, 2)
}

func TestTeamServiceGetRosterUnknownTeam(t *testing.T) {
	t.Parallel()

	service := NewTeamService(newStubTeamRepo(), &rosterStubPlayerRepo{})

	_, err := service.GetRoster(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestTeamServiceGetSeasonStatsRequiresID(t *testing.T) {
	t.Parallel()

	service := NewTeamService(newStubTeamRepo(), &rosterStubPlayerRepo{})

	_, err := service.GetSeasonStats(context.Background(), "")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestTeamServiceListTeams(t *testing.T) {
	t.Parallel()

	teamRepo := newStubTeamRepo(
		team.Team{ID: "t-home", Name: "Storm"},
		team.Team{ID: "t-away", Name: "Kraken"},
	)
	service := NewTeamService(teamRepo, &rosterStubPlayerRepo{})

	teams, err := service.ListTeams(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 2)
}

type rosterStubPlayerRepo struct {
	byTeam map[string][]player.Player
}

func (r *rosterStubPlayerRepo) ListByTeam(_ context.Context, teamID string) ([]player.Player, error) {
	return r.byTeam[teamID], nil
}

func (r *rosterStubPlayerRepo) UpsertMany(_ context.Context, _ []player.Player) error {
	return nil
}
