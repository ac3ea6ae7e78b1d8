package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chelstats/chelstats/internal/domain/match"
	"github.com/chelstats/chelstats/internal/domain/playerstats"
	"github.com/chelstats/chelstats/internal/domain/teamstats"
)

func TestMatchServiceGetMatchDetail(t *testing.T) {
	t.Parallel()

	matchRepo := newStubMatchRepo(match.Match{ID: "m1", Season: "2026", HomeTeamID: "t-home", AwayTeamID: "t-away"})
	playerStatsRepo := newStubPlayerStatsRepo()
	playerStatsRepo.lists["m1"] = []playerstats.StatLine{
		{MatchID: "m1", TeamID: "t-home", PlayerName: "Alice", Goals: 2},
		{MatchID: "m1", TeamID: "t-away", PlayerName: "Bob", Goals: 1},
	}
	teamStatsRepo := newStubTeamStatsRepo()
	teamStatsRepo.lists["m1"] = []teamstats.StatLine{
		{MatchID: "m1", TeamID: "t-home", Goals: 4},
		{MatchID: "m1", TeamID: "t-away", Goals: 2},
	}

	service := NewMatchService(matchRepo, playerStatsRepo, teamStatsRepo)

	detail, err := service.GetMatchDetail(context.Background(), "m1")
	require.NoError(t, err)
	require.Equal(t, "m1", detail.Match.ID)
	require.Len(t, detail.PlayerLines, 2)
	require.Len(t, detail.TeamLines, 2)
	require.Equal(t, "Alice", detail.PlayerLines[0].PlayerName)
}

func TestMatchServiceGetMatchDetailNotFound(t *testing.T) {
	t.Parallel()

	service := NewMatchService(newStubMatchRepo(), newStubPlayerStatsRepo(), newStubTeamStatsRepo())

	_, err := service.GetMatchDetail(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMatchServiceGetMatchDetailRequiresID(t *testing.T) {
	t.Parallel()

	service := NewMatchService(newStubMatchRepo(), newStubPlayerStatsRepo(), newStubTeamStatsRepo())

	_, err := service.GetMatchDetail(context.Background(), "  ")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestMatchServiceListBySeason(t *testing.T) {
	t.Parallel()

	matchRepo := newStubMatchRepo(
		match.Match{ID: "m1", Season: "2026"},
		match.Match{ID: "m2", Season: "2026"},
		match.Match{ID: "m3", Season: "2025"},
	)
	service := NewMatchService(matchRepo, newStubPlayerStatsRepo(), newStubTeamStatsRepo())

	matches, err := service.ListBySeason(context.Background(), "2026")
	require.NoError(t, err)
	require.Len(t, matches, 2)

	_, err = service.ListBySeason(context.Background(), "")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
