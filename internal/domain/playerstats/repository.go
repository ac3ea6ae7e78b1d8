package playerstats

import "context"

// ReplaceOutcome reports the result of replacing a match's stat lines.
// Re-imports replace, they never append; batches that fail are skipped and
// surfaced here instead of aborting the rest.
type ReplaceOutcome struct {
	Inserted    int
	FailedLines int
	BatchErrors []error
}

func (o ReplaceOutcome) FirstError() error {
	if len(o.BatchErrors) == 0 {
		return nil
	}
	return o.BatchErrors[0]
}

type Repository interface {
	ListByMatch(ctx context.Context, matchID string) ([]StatLine, error)
	ListByMatchAndTeam(ctx context.Context, matchID, teamID string) ([]StatLine, error)
	ReplaceForMatch(ctx context.Context, matchID string, lines []StatLine, batchSize int) (ReplaceOutcome, error)
}
