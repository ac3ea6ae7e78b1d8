package postgres

import (
	"database/sql"
	"testing"
	"time"
)

func TestNullableString(t *testing.T) {
	if nullableString("") != nil {
		t.Fatal("empty string should map to nil")
	}
	if got := nullableString("ea-123"); got == nil || *got != "ea-123" {
		t.Fatalf("got %v", got)
	}
}

func TestNullStringToString(t *testing.T) {
	if got := nullStringToString(sql.NullString{}); got != "" {
		t.Fatalf("got %q", got)
	}
	if got := nullStringToString(sql.NullString{String: "x", Valid: true}); got != "x" {
		t.Fatalf("got %q", got)
	}
}

func TestNullInt64ToIntPtr(t *testing.T) {
	if nullInt64ToIntPtr(sql.NullInt64{}) != nil {
		t.Fatal("invalid should map to nil")
	}
	if got := nullInt64ToIntPtr(sql.NullInt64{Int64: 4, Valid: true}); got == nil || *got != 4 {
		t.Fatalf("got %v", got)
	}
}

func TestNullTimeToTimePtr(t *testing.T) {
	if nullTimeToTimePtr(sql.NullTime{}) != nil {
		t.Fatal("invalid should map to nil")
	}
	at := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)
	if got := nullTimeToTimePtr(sql.NullTime{Time: at, Valid: true}); got == nil || !got.Equal(at) {
		t.Fatalf("got %v", got)
	}
}
