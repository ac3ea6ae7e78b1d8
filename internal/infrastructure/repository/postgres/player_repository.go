package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/chelstats/chelstats/internal/domain/player"
	qb "github.com/chelstats/chelstats/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	query, args, err := qb.Select(
		"id",
		"team_id",
		"ea_player_id",
		"name",
		"position",
		"last_seen_at",
	).From("players").
		Where(qb.Eq("team_id", teamID)).
		OrderBy("name", "ea_player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players by team query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list players by team: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.Player{
			ID:         row.ID,
			TeamID:     row.TeamID,
			EAPlayerID: row.EAPlayerID,
			Name:       row.Name,
			Position:   row.Position,
			LastSeenAt: row.LastSeenAt,
		})
	}
	return out, nil
}

// UpsertMany refreshes roster rows seen in an import. The EA player id is the
// identity; team, name and position follow the latest sighting.
func (r *PlayerRepository) UpsertMany(ctx context.Context, players []player.Player) error {
	if len(players) == 0 {
		return nil
	}

	builder := qb.InsertInto("players").
		Columns("team_id", "ea_player_id", "name", "position", "last_seen_at")
	for _, p := range players {
		lastSeen := p.LastSeenAt
		if lastSeen.IsZero() {
			lastSeen = time.Now().UTC()
		}
		builder.Values(p.TeamID, p.EAPlayerID, p.Name, p.Position, lastSeen)
	}
	query, args, err := builder.Suffix(`ON CONFLICT (ea_player_id)
DO UPDATE SET
    team_id = EXCLUDED.team_id,
    name = EXCLUDED.name,
    position = EXCLUDED.position,
    last_seen_at = EXCLUDED.last_seen_at`).ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert players query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert players: %w", err)
	}
	return nil
}

type playerTableModel struct {
	ID         string    `db:"id"`
	TeamID     string    `db:"team_id"`
	EAPlayerID string    `db:"ea_player_id"`
	Name       string    `db:"name"`
	Position   string    `db:"position"`
	LastSeenAt time.Time `db:"last_seen_at"`
}
