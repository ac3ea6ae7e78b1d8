package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/chelstats/chelstats/internal/domain/playerstats"
	qb "github.com/chelstats/chelstats/internal/platform/querybuilder"
)

const defaultStatLineBatchSize = 25

type PlayerStatsRepository struct {
	db *sqlx.DB
}

func NewPlayerStatsRepository(db *sqlx.DB) *PlayerStatsRepository {
	return &PlayerStatsRepository{db: db}
}

func (r *PlayerStatsRepository) ListByMatch(ctx context.Context, matchID string) ([]playerstats.StatLine, error) {
	return r.list(ctx, qb.Eq("match_id", matchID))
}

func (r *PlayerStatsRepository) ListByMatchAndTeam(ctx context.Context, matchID, teamID string) ([]playerstats.StatLine, error) {
	return r.list(ctx, qb.Eq("match_id", matchID), qb.Eq("team_id", teamID))
}

func (r *PlayerStatsRepository) list(ctx context.Context, conditions ...qb.Condition) ([]playerstats.StatLine, error) {
	query, args, err := qb.Select(playerStatLineColumns...).From("player_stat_lines").
		Where(conditions...).
		OrderBy("team_id", "category", "player_name", "ea_player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list player stat lines query: %w", err)
	}

	var rows []playerStatLineTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list player stat lines: %w", err)
	}

	out := make([]playerstats.StatLine, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// ReplaceForMatch swaps a match's stat lines inside one transaction so readers
// never observe a half-imported match. Each insert batch runs under a
// savepoint: a failed batch is rolled back to its savepoint and later batches
// still run, with the failures collected in the outcome.
func (r *PlayerStatsRepository) ReplaceForMatch(ctx context.Context, matchID string, lines []playerstats.StatLine, batchSize int) (playerstats.ReplaceOutcome, error) {
	if batchSize <= 0 {
		batchSize = defaultStatLineBatchSize
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return playerstats.ReplaceOutcome{}, fmt.Errorf("begin tx replace player stat lines: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	deleteQuery, deleteArgs, err := qb.DeleteFrom("player_stat_lines").
		Where(qb.Eq("match_id", matchID)).
		ToSQL()
	if err != nil {
		return playerstats.ReplaceOutcome{}, fmt.Errorf("build delete player stat lines query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return playerstats.ReplaceOutcome{}, fmt.Errorf("delete player stat lines for match %s: %w", matchID, err)
	}

	var outcome playerstats.ReplaceOutcome
	for batchIdx, start := 0, 0; start < len(lines); batchIdx, start = batchIdx+1, start+batchSize {
		end := start + batchSize
		if end > len(lines) {
			end = len(lines)
		}
		batch := lines[start:end]

		savepoint := fmt.Sprintf("stat_batch_%d", batchIdx)
		if _, err := tx.ExecContext(ctx, "SAVEPOINT "+savepoint); err != nil {
			return outcome, fmt.Errorf("savepoint %s: %w", savepoint, err)
		}

		if err := insertStatLineBatch(ctx, tx, batch); err != nil {
			if _, rbErr := tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+savepoint); rbErr != nil {
				return outcome, fmt.Errorf("rollback to savepoint %s: %w", savepoint, rbErr)
			}
			outcome.FailedLines += len(batch)
			outcome.BatchErrors = append(outcome.BatchErrors,
				fmt.Errorf("insert player stat lines batch %d (%d lines): %w", batchIdx, len(batch), err))
			continue
		}
		outcome.Inserted += len(batch)
	}

	if err := tx.Commit(); err != nil {
		return playerstats.ReplaceOutcome{}, fmt.Errorf("commit replace player stat lines tx: %w", err)
	}
	return outcome, nil
}

func insertStatLineBatch(ctx context.Context, tx *sqlx.Tx, batch []playerstats.StatLine) error {
	rows := make([]playerStatLineTableModel, 0, len(batch))
	for _, line := range batch {
		rows = append(rows, playerStatLineToTableModel(line))
	}

	builder, err := qb.InsertModel("player_stat_lines", rows)
	if err != nil {
		return fmt.Errorf("build insert player stat lines query: %w", err)
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return fmt.Errorf("build insert player stat lines query: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return err
	}
	return nil
}
