package teamstats

import "context"

type Repository interface {
	ListByMatch(ctx context.Context, matchID string) ([]StatLine, error)
	ReplaceForMatch(ctx context.Context, matchID string, lines []StatLine) error
}
