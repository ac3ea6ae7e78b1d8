package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/chelstats/chelstats/internal/domain/rawdata"
	qb "github.com/chelstats/chelstats/internal/platform/querybuilder"
)

type RawDataRepository struct {
	db *sqlx.DB
}

func NewRawDataRepository(db *sqlx.DB) *RawDataRepository {
	return &RawDataRepository{db: db}
}

func (r *RawDataRepository) Upsert(ctx context.Context, item rawdata.Payload) error {
	insertModel := rawPayloadTableModel{
		Source:      item.Source,
		EntityType:  item.EntityType,
		EntityKey:   item.EntityKey,
		MatchID:     nullableString(item.MatchID),
		EAMatchID:   nullableString(item.EAMatchID),
		Payload:     item.PayloadJSON,
		PayloadHash: item.PayloadHash,
	}

	builder, err := qb.InsertModel("raw_payloads", insertModel)
	if err != nil {
		return fmt.Errorf("build upsert raw payload query: %w", err)
	}
	query, args, err := builder.Suffix(`ON CONFLICT (source, entity_type, entity_key)
DO UPDATE SET
    match_id = EXCLUDED.match_id,
    ea_match_id = EXCLUDED.ea_match_id,
    payload = EXCLUDED.payload,
    payload_hash = EXCLUDED.payload_hash,
    ingested_at = NOW()`).ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert raw payload query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert raw payload entity=%s key=%s: %w", item.EntityType, item.EntityKey, err)
	}
	return nil
}

func (r *RawDataRepository) GetByEntity(ctx context.Context, source, entityType, entityKey string) (rawdata.Payload, bool, error) {
	query, args, err := qb.Select(
		"source",
		"entity_type",
		"entity_key",
		"match_id",
		"ea_match_id",
		"payload",
		"payload_hash",
		"ingested_at",
	).From("raw_payloads").
		Where(
			qb.Eq("source", source),
			qb.Eq("entity_type", entityType),
			qb.Eq("entity_key", entityKey),
		).
		ToSQL()
	if err != nil {
		return rawdata.Payload{}, false, fmt.Errorf("build get raw payload query: %w", err)
	}

	var row rawPayloadSelectModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return rawdata.Payload{}, false, nil
		}
		return rawdata.Payload{}, false, fmt.Errorf("get raw payload: %w", err)
	}

	return rawdata.Payload{
		Source:      row.Source,
		EntityType:  row.EntityType,
		EntityKey:   row.EntityKey,
		MatchID:     nullStringToString(row.MatchID),
		EAMatchID:   nullStringToString(row.EAMatchID),
		PayloadJSON: row.Payload,
		PayloadHash: row.PayloadHash,
		IngestedAt:  nullTimeToTimePtr(row.IngestedAt),
	}, true, nil
}

type rawPayloadTableModel struct {
	Source      string  `db:"source"`
	EntityType  string  `db:"entity_type"`
	EntityKey   string  `db:"entity_key"`
	MatchID     *string `db:"match_id"`
	EAMatchID   *string `db:"ea_match_id"`
	Payload     string  `db:"payload"`
	PayloadHash string  `db:"payload_hash"`
}

type rawPayloadSelectModel struct {
	Source      string         `db:"source"`
	EntityType  string         `db:"entity_type"`
	EntityKey   string         `db:"entity_key"`
	MatchID     sql.NullString `db:"match_id"`
	EAMatchID   sql.NullString `db:"ea_match_id"`
	Payload     string         `db:"payload"`
	PayloadHash string         `db:"payload_hash"`
	IngestedAt  sql.NullTime   `db:"ingested_at"`
}
