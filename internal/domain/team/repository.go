package team

import "context"

type Repository interface {
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	GetByEAClubID(ctx context.Context, eaClubID string) (Team, bool, error)
	List(ctx context.Context) ([]Team, error)
	GetSeasonStats(ctx context.Context, teamID string) (SeasonStats, error)
}
