package querybuilder

import (
	"reflect"
	"testing"
)

func TestSelectBuilder(t *testing.T) {
	sql, args, err := Select("id", "name").
		From("teams").
		Where(Eq("season", 3), In("status", []any{"completed", "cancelled"})).
		OrderBy("name ASC").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL: %v", err)
	}

	want := "SELECT id, name FROM teams WHERE season = $1 AND status IN ($2, $3) ORDER BY name ASC LIMIT 10"
	if sql != want {
		t.Fatalf("sql = %q, want %q", sql, want)
	}
	if !reflect.DeepEqual(args, []any{3, "completed", "cancelled"}) {
		t.Fatalf("args = %v", args)
	}
}

func TestSelectBuilderEmptyIn(t *testing.T) {
	sql, args, err := Select("id").From("matches").Where(In("id", nil)).ToSQL()
	if err != nil {
		t.Fatalf("ToSQL: %v", err)
	}
	if sql != "SELECT id FROM matches WHERE 1=0" {
		t.Fatalf("sql = %q", sql)
	}
	if len(args) != 0 {
		t.Fatalf("args = %v", args)
	}
}

func TestSelectBuilderExpr(t *testing.T) {
	sql, args, err := Select("id").
		From("matches").
		Where(Expr("imported_at > ?", "2026-01-01"), IsNull("cancelled_at")).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL: %v", err)
	}
	if sql != "SELECT id FROM matches WHERE imported_at > $1 AND cancelled_at IS NULL" {
		t.Fatalf("sql = %q", sql)
	}
	if !reflect.DeepEqual(args, []any{"2026-01-01"}) {
		t.Fatalf("args = %v", args)
	}
}

func TestInsertBuilderMultiRowWithSuffix(t *testing.T) {
	sql, args, err := InsertInto("players").
		Columns("ea_player_id", "name").
		Values("p1", "Alice").
		Values("p2", "Bob").
		Suffix("ON CONFLICT (ea_player_id) DO UPDATE SET name = EXCLUDED.name").
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL: %v", err)
	}

	want := "INSERT INTO players (ea_player_id, name) VALUES ($1, $2), ($3, $4) " +
		"ON CONFLICT (ea_player_id) DO UPDATE SET name = EXCLUDED.name"
	if sql != want {
		t.Fatalf("sql = %q, want %q", sql, want)
	}
	if !reflect.DeepEqual(args, []any{"p1", "Alice", "p2", "Bob"}) {
		t.Fatalf("args = %v", args)
	}
}

func TestInsertBuilderRowWidthMismatch(t *testing.T) {
	_, _, err := InsertInto("players").Columns("a", "b").Values("only-one").ToSQL()
	if err == nil {
		t.Fatal("expected an error for mismatched row width")
	}
}

func TestUpdateBuilder(t *testing.T) {
	sql, args, err := Update("matches").
		Set("home_score", 4).
		SetExpr("imported_at", "NOW()").
		Where(Eq("id", "m1")).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL: %v", err)
	}

	want := "UPDATE matches SET home_score = $1, imported_at = NOW() WHERE id = $2"
	if sql != want {
		t.Fatalf("sql = %q, want %q", sql, want)
	}
	if !reflect.DeepEqual(args, []any{4, "m1"}) {
		t.Fatalf("args = %v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	sql, args, err := DeleteFrom("player_stat_lines").Where(Eq("match_id", "m1")).ToSQL()
	if err != nil {
		t.Fatalf("ToSQL: %v", err)
	}
	if sql != "DELETE FROM player_stat_lines WHERE match_id = $1" {
		t.Fatalf("sql = %q", sql)
	}
	if !reflect.DeepEqual(args, []any{"m1"}) {
		t.Fatalf("args = %v", args)
	}
}

func TestDeleteBuilderRequiresConditions(t *testing.T) {
	if _, _, err := DeleteFrom("player_stat_lines").ToSQL(); err == nil {
		t.Fatal("expected an error for an unconditional delete")
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		ID     string `db:"id"`
		Name   string `db:"name"`
		Skip   string `db:"-"`
		hidden string
	}

	builder, err := InsertModel("teams", row{ID: "t1", Name: "Sharks", hidden: "x"}, "id")
	if err != nil {
		t.Fatalf("InsertModel: %v", err)
	}
	sql, args, err := builder.ToSQL()
	if err != nil {
		t.Fatalf("ToSQL: %v", err)
	}
	if sql != "INSERT INTO teams (name) VALUES ($1)" {
		t.Fatalf("sql = %q", sql)
	}
	if !reflect.DeepEqual(args, []any{"Sharks"}) {
		t.Fatalf("args = %v", args)
	}
}

func TestInsertModelSlice(t *testing.T) {
	type row struct {
		ID   string `db:"id"`
		Name string `db:"name"`
	}

	builder, err := InsertModel("teams", []row{{ID: "t1", Name: "Sharks"}, {ID: "t2", Name: "Kraken"}})
	if err != nil {
		t.Fatalf("InsertModel: %v", err)
	}
	sql, args, err := builder.ToSQL()
	if err != nil {
		t.Fatalf("ToSQL: %v", err)
	}
	if sql != "INSERT INTO teams (id, name) VALUES ($1, $2), ($3, $4)" {
		t.Fatalf("sql = %q", sql)
	}
	if !reflect.DeepEqual(args, []any{"t1", "Sharks", "t2", "Kraken"}) {
		t.Fatalf("args = %v", args)
	}
}
