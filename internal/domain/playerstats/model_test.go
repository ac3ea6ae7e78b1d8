package playerstats

import "testing"

func TestCategoryFor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		pos  Position
		want string
	}{
		{PositionGoalie, CategoryGoalie},
		{PositionLeftDefense, CategoryDefense},
		{PositionRightDefense, CategoryDefense},
		{PositionDefense, CategoryDefense},
		{PositionCenter, CategoryOffense},
		{PositionLeftWing, CategoryOffense},
		{PositionRightWing, CategoryOffense},
		{PositionSkater, CategoryOffense},
	}
	for _, tc := range cases {
		if got := CategoryFor(tc.pos); got != tc.want {
			t.Errorf("CategoryFor(%s) = %s, want %s", tc.pos, got, tc.want)
		}
	}
}

func TestIsGoalie(t *testing.T) {
	t.Parallel()

	if !(StatLine{Position: PositionGoalie}).IsGoalie() {
		t.Fatal("expected G line to be goalie")
	}
	if (StatLine{Position: PositionCenter}).IsGoalie() {
		t.Fatal("expected C line not to be goalie")
	}
}
