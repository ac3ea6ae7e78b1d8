package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/chelstats/chelstats/internal/domain/match"
	qb "github.com/chelstats/chelstats/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select(matchColumns...).From("matches").
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match by id query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match by id: %w", err)
	}

	m, err := row.toDomain()
	if err != nil {
		return match.Match{}, false, err
	}
	return m, true, nil
}

func (r *MatchRepository) ListBySeason(ctx context.Context, season string) ([]match.Match, error) {
	query, args, err := qb.Select(matchColumns...).From("matches").
		Where(qb.Eq("season", season)).
		OrderBy("week", "scheduled_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches by season query: %w", err)
	}
	return r.list(ctx, query, args)
}

func (r *MatchRepository) ListImported(ctx context.Context) ([]match.Match, error) {
	query, args, err := qb.Select(matchColumns...).From("matches").
		Where(qb.Expr("imported_at IS NOT NULL")).
		OrderBy("imported_at DESC", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list imported matches query: %w", err)
	}
	return r.list(ctx, query, args)
}

func (r *MatchRepository) list(ctx context.Context, query string, args []any) ([]match.Match, error) {
	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		m, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *MatchRepository) UpdateScore(ctx context.Context, matchID string, update match.ScoreUpdate) error {
	periods, err := encodePeriodScores(update.PeriodScores)
	if err != nil {
		return err
	}

	query, args, err := qb.Update("matches").
		Set("home_score", update.HomeScore).
		Set("away_score", update.AwayScore).
		Set("period_scores", periods).
		Set("status", match.NormalizeStatus(update.Status)).
		Set("ea_match_id", nullableString(update.EAMatchID)).
		Set("is_combined", update.IsCombined).
		SetExpr("imported_at", "NOW()").
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update match score query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update match score: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update match score rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update match score: match %s not found", matchID)
	}
	return nil
}
