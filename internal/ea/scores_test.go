package ea

import (
	"testing"

	sonic "github.com/bytedance/sonic"
)

func TestExtractScores_Manual(t *testing.T) {
	t.Parallel()

	blob := `{
		"homeScore": 3,
		"awayScore": 2,
		"periodScores": [{"home":1,"away":1},{"home":1,"away":0},{"home":1,"away":1}],
		"clubs": {"100": {"details": {"goals": 9}}}
	}`
	var payload MatchPayload
	if err := sonic.Unmarshal([]byte(blob), &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}

	got := ExtractScores(&payload, true, "100", "200")
	if got.Home != 3 || got.Away != 2 {
		t.Fatalf("scores = %d-%d, want 3-2", got.Home, got.Away)
	}
	if len(got.Periods) != 3 {
		t.Fatalf("periods = %d, want 3", len(got.Periods))
	}
	if got.Periods[1].Home != 1 || got.Periods[1].Away != 0 {
		t.Fatalf("period 2 = %d-%d, want 1-0", got.Periods[1].Home, got.Periods[1].Away)
	}
	// Manual mode never consults the clubs map, so the club's 9 goals must
	// not leak into the score.
	if len(got.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", got.Warnings)
	}
}

func TestExtractScores_AutomaticFromClubDetails(t *testing.T) {
	t.Parallel()

	blob := `{"clubs": {"100": {"details": {"goals": 4}}, "200": {"goals": 1}}}`
	var payload MatchPayload
	if err := sonic.Unmarshal([]byte(blob), &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}

	got := ExtractScores(&payload, false, "100", "200")
	if got.Home != 4 {
		t.Fatalf("home score = %d, want 4", got.Home)
	}
	if got.Away != 1 {
		t.Fatalf("away score = %d, want club-level fallback 1", got.Away)
	}
	if len(got.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", got.Warnings)
	}
}

func TestExtractScores_MissingClubDegradesToZero(t *testing.T) {
	t.Parallel()

	blob := `{"clubs": {"100": {"details": {"goals": 2}}}}`
	var payload MatchPayload
	if err := sonic.Unmarshal([]byte(blob), &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}

	got := ExtractScores(&payload, false, "100", "404")
	if got.Home != 2 || got.Away != 0 {
		t.Fatalf("scores = %d-%d, want 2-0", got.Home, got.Away)
	}
	if len(got.Warnings) != 1 {
		t.Fatalf("expected one warning for the missing away club, got %v", got.Warnings)
	}
}
