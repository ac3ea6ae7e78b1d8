package match

import "context"

type Repository interface {
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	ListBySeason(ctx context.Context, season string) ([]Match, error)
	ListImported(ctx context.Context) ([]Match, error)
	UpdateScore(ctx context.Context, matchID string, update ScoreUpdate) error
}
