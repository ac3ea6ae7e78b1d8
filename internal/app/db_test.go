package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNormalizeDBURL(t *testing.T) {
	t.Run("adds disable flag", func(t *testing.T) {
		out := normalizeDBURL("postgres://u:p@localhost:5432/chelstats?sslmode=disable", true)
		if !strings.Contains(out, "disable_prepared_binary_result=yes") {
			t.Fatalf("flag not added: %q", out)
		}
		if !strings.Contains(out, "sslmode=disable") {
			t.Fatalf("existing query params lost: %q", out)
		}
	})

	t.Run("keeps explicit value", func(t *testing.T) {
		in := "postgres://u:p@localhost:5432/chelstats?disable_prepared_binary_result=no"
		out := normalizeDBURL(in, true)
		if !strings.Contains(out, "disable_prepared_binary_result=no") {
			t.Fatalf("explicit value overwritten: %q", out)
		}
	})

	t.Run("disabled is a no-op", func(t *testing.T) {
		in := "postgres://u:p@localhost:5432/chelstats"
		if out := normalizeDBURL(in, false); out != in {
			t.Fatalf("url changed: %q", out)
		}
	})
}

func TestDBNameFromURL(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"url form", "postgres://u:p@localhost:5432/chelstats?sslmode=disable", "chelstats"},
		{"keyword form", "host=localhost dbname=chelstats user=u", "chelstats"},
		{"quoted keyword", `host=localhost dbname="chelstats"`, "chelstats"},
		{"missing", "postgres://u:p@localhost:5432/", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := dbNameFromURL(tc.in); got != tc.want {
				t.Fatalf("dbNameFromURL(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestFormatDBQueryForTrace(t *testing.T) {
	in := "SELECT id,\n\t  name\nFROM teams   WHERE id = $1"
	want := "SELECT id, name FROM teams WHERE id = $1"
	if got := formatDBQueryForTrace(in); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	long := strings.Repeat("a", maxTracedQueryLength+10)
	got := formatDBQueryForTrace(long)
	if len(got) != maxTracedQueryLength+3 || !strings.HasSuffix(got, "...") {
		t.Fatalf("long query not truncated: len=%d", len(got))
	}
}

func TestLatestMigrationVersion(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		"001_create_teams.up.sql",
		"001_create_teams.down.sql",
		"002_create_matches.up.sql",
		"002_create_matches.down.sql",
		"010_add_raw_payloads.up.sql",
	}
	for _, name := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	latest, err := latestMigrationVersion(dir)
	if err != nil {
		t.Fatalf("latestMigrationVersion: %v", err)
	}
	if latest != 10 {
		t.Fatalf("latest = %d, want 10", latest)
	}
}
