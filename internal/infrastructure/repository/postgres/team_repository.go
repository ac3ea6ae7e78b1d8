package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/chelstats/chelstats/internal/domain/team"
	qb "github.com/chelstats/chelstats/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	return r.getOne(ctx, qb.Eq("id", teamID), "get team by id")
}

func (r *TeamRepository) GetByEAClubID(ctx context.Context, eaClubID string) (team.Team, bool, error) {
	return r.getOne(ctx, qb.Eq("ea_club_id", eaClubID), "get team by ea club id")
}

func (r *TeamRepository) getOne(ctx context.Context, condition qb.Condition, op string) (team.Team, bool, error) {
	query, args, err := qb.Select(teamColumns...).From("teams").
		Where(condition).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build %s query: %w", op, err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("%s: %w", op, err)
	}
	return row.toDomain(), true, nil
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select(teamColumns...).From("teams").
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TeamRepository) GetSeasonStats(ctx context.Context, teamID string) (team.SeasonStats, error) {
	query, args, err := qb.Select(
		"COALESCE(COUNT(1), 0) AS games_played",
		"COALESCE(SUM(goals), 0) AS goals",
		"COALESCE(SUM(shots), 0) AS shots",
		"COALESCE(SUM(hits), 0) AS hits",
		"COALESCE(SUM(pim), 0) AS pim",
		"COALESCE(SUM(blocks), 0) AS blocks",
		"COALESCE(SUM(takeaways), 0) AS takeaways",
		"COALESCE(SUM(giveaways), 0) AS giveaways",
		"COALESCE(SUM(faceoffs_won), 0) AS faceoffs_won",
		"COALESCE(SUM(faceoffs_taken), 0) AS faceoffs_taken",
		"COALESCE(SUM(power_play_goals), 0) AS power_play_goals",
		"COALESCE(SUM(power_play_opps), 0) AS power_play_opps",
	).From("team_stat_lines").
		Where(qb.Eq("team_id", teamID)).
		ToSQL()
	if err != nil {
		return team.SeasonStats{}, fmt.Errorf("build get team season stats query: %w", err)
	}

	var row teamSeasonStatsRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return team.SeasonStats{}, fmt.Errorf("get team season stats: %w", err)
	}

	return team.SeasonStats{
		GamesPlayed:    row.GamesPlayed,
		Goals:          row.Goals,
		Shots:          row.Shots,
		Hits:           row.Hits,
		PIM:            row.PIM,
		Blocks:         row.Blocks,
		Takeaways:      row.Takeaways,
		Giveaways:      row.Giveaways,
		FaceoffsWon:    row.FaceoffsWon,
		FaceoffsTaken:  row.FaceoffsTaken,
		PowerPlayGoals: row.PowerPlayGoals,
		PowerPlayOpps:  row.PowerPlayOpps,
	}, nil
}
