package ea

import (
	"math"
	"testing"

	"github.com/chelstats/chelstats/internal/domain/playerstats"
)

func TestAggregateTeam_SumsPlayerLines(t *testing.T) {
	t.Parallel()

	lines := []playerstats.StatLine{
		{Hits: 3, PIM: 2, Blocks: 1, Takeaways: 4, Giveaways: 5, FaceoffsWon: 6, FaceoffsTaken: 10, ShotAttempts: 7, PassCompleted: 20, PassAttempts: 25, PowerPlayGoals: 1},
		{Hits: 2, PIM: 0, Blocks: 2, Takeaways: 1, Giveaways: 3, FaceoffsWon: 4, FaceoffsTaken: 6, ShotAttempts: 5, PassCompleted: 10, PassAttempts: 15, PowerPlayGoals: 0},
	}

	out := AggregateTeam("m1", "t1", nil, lines)

	if out.Hits != 5 || out.PIM != 2 || out.Blocks != 3 {
		t.Fatalf("unexpected sums: hits=%d pim=%d blocks=%d", out.Hits, out.PIM, out.Blocks)
	}
	if out.Takeaways != 5 || out.Giveaways != 8 {
		t.Fatalf("unexpected sums: takeaways=%d giveaways=%d", out.Takeaways, out.Giveaways)
	}
	if out.FaceoffsWon != 10 || out.FaceoffsTaken != 16 {
		t.Fatalf("unexpected faceoff sums: won=%d taken=%d", out.FaceoffsWon, out.FaceoffsTaken)
	}
	if out.ShotAttempts != 12 || out.PowerPlayGoals != 1 {
		t.Fatalf("unexpected sums: attempts=%d ppg=%d", out.ShotAttempts, out.PowerPlayGoals)
	}
	if out.FaceoffPct != 62.5 {
		t.Fatalf("faceoff pct = %v, want 62.5", out.FaceoffPct)
	}
}

func TestAggregateTeam_ClubFieldsCopied(t *testing.T) {
	t.Parallel()

	club := &Club{
		Details:        &ClubDetails{Goals: FlexInt(4)},
		Goals:          FlexInt(3),
		Shots:          FlexInt(20),
		PowerPlayGoals: FlexInt(2),
		PowerPlayOpps:  FlexInt(5),
		PassCompleted:  FlexInt(80),
		PassAttempts:   FlexInt(100),
		TimeOnAttack:   FlexInt(412),
	}
	lines := []playerstats.StatLine{{ShotAttempts: 40}}

	out := AggregateTeam("m1", "t1", club, lines)

	if out.Goals != 4 {
		t.Fatalf("goals = %d, want details value 4", out.Goals)
	}
	if out.Shots != 20 || out.OffensiveZoneTime != 412 {
		t.Fatalf("shots=%d toa=%d", out.Shots, out.OffensiveZoneTime)
	}
	if out.PowerPlayPct != 40 {
		t.Fatalf("pp pct = %v, want 40", out.PowerPlayPct)
	}
	if out.PassingPct != 80 {
		t.Fatalf("passing pct = %v, want 80", out.PassingPct)
	}
	if out.ShotPct != 50 {
		t.Fatalf("shot pct = %v, want 50", out.ShotPct)
	}
}

func TestAggregateTeam_ZeroGoalDetails(t *testing.T) {
	t.Parallel()

	club := &Club{
		Details: &ClubDetails{Goals: FlexInt(0)},
		Goals:   FlexInt(3),
	}

	out := AggregateTeam("m1", "t1", club, nil)

	// A shutout side keeps details.goals=0 even when the top-level goals
	// field disagrees, matching how the match score is extracted.
	if out.Goals != 0 {
		t.Fatalf("goals = %d, want 0 from details", out.Goals)
	}
}

func TestAggregateTeam_ZeroDenominators(t *testing.T) {
	t.Parallel()

	out := AggregateTeam("m1", "t1", &Club{}, nil)

	for name, got := range map[string]float64{
		"pp_pct":      out.PowerPlayPct,
		"faceoff_pct": out.FaceoffPct,
		"passing_pct": out.PassingPct,
		"shot_pct":    out.ShotPct,
	} {
		if got != 0 || math.IsNaN(got) || math.IsInf(got, 0) {
			t.Errorf("%s = %v, want 0", name, got)
		}
	}
}

func TestAggregateTeam_MissingClubStillAggregates(t *testing.T) {
	t.Parallel()

	lines := []playerstats.StatLine{{Hits: 7, FaceoffsWon: 2, FaceoffsTaken: 4}}
	out := AggregateTeam("m1", "t1", nil, lines)

	if out.Hits != 7 {
		t.Fatalf("hits = %d, want 7", out.Hits)
	}
	if out.Goals != 0 || out.Shots != 0 {
		t.Fatalf("expected zero sourced fields, got goals=%d shots=%d", out.Goals, out.Shots)
	}
	if out.FaceoffPct != 50 {
		t.Fatalf("faceoff pct = %v, want 50", out.FaceoffPct)
	}
}
