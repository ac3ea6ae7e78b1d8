package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/chelstats/chelstats/internal/domain/teamstats"
	qb "github.com/chelstats/chelstats/internal/platform/querybuilder"
)

type TeamStatsRepository struct {
	db *sqlx.DB
}

func NewTeamStatsRepository(db *sqlx.DB) *TeamStatsRepository {
	return &TeamStatsRepository{db: db}
}

func (r *TeamStatsRepository) ListByMatch(ctx context.Context, matchID string) ([]teamstats.StatLine, error) {
	query, args, err := qb.Select(teamStatLineColumns...).From("team_stat_lines").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("team_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list team stat lines query: %w", err)
	}

	var rows []teamStatLineTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list team stat lines: %w", err)
	}

	out := make([]teamstats.StatLine, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TeamStatsRepository) ReplaceForMatch(ctx context.Context, matchID string, lines []teamstats.StatLine) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace team stat lines: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	deleteQuery, deleteArgs, err := qb.DeleteFrom("team_stat_lines").
		Where(qb.Eq("match_id", matchID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete team stat lines query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("delete team stat lines for match %s: %w", matchID, err)
	}

	if len(lines) > 0 {
		rows := make([]teamStatLineTableModel, 0, len(lines))
		for _, line := range lines {
			rows = append(rows, teamStatLineToTableModel(line))
		}
		builder, err := qb.InsertModel("team_stat_lines", rows)
		if err != nil {
			return fmt.Errorf("build insert team stat lines query: %w", err)
		}
		query, args, err := builder.ToSQL()
		if err != nil {
			return fmt.Errorf("build insert team stat lines query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert team stat lines for match %s: %w", matchID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace team stat lines tx: %w", err)
	}
	return nil
}
