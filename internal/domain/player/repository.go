package player

import "context"

type Repository interface {
	ListByTeam(ctx context.Context, teamID string) ([]Player, error)
	UpsertMany(ctx context.Context, players []Player) error
}
