package board

import "testing"

func TestHalf(t *testing.T) {
	tests := []struct {
		size int
		want int
	}{
		{1, 0},
		{2, 1},
		{3, 2},
		{5, 2},
		{7, 4},
		{8, 4},
		{375, 188},
		{750, 375},
	}

	for _, tt := range tests {
		if got := half(tt.size); got != tt.want {
			t.Errorf("half(%d) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestChildCornersAndQuadrantOf(t *testing.T) {
	origin := P(10, 20)
	corners := childCorners(origin, 8)

	want := [4]Point{
		UpperRight: P(14, 20),
		UpperLeft:  P(10, 20),
		LowerLeft:  P(10, 24),
		LowerRight: P(14, 24),
	}
	if corners != want {
		t.Fatalf("childCorners = %v, want %v", corners, want)
	}

	// Every child's own corner classifies back into that child.
	for i, c := range corners {
		if q := quadrantOf(c, origin, 8); q != Quadrant(i) {
			t.Errorf("quadrantOf(%v) = %v, want %v", c, q, Quadrant(i))
		}
	}

	tests := []struct {
		pt   Point
		want Quadrant
	}{
		{P(13, 23), UpperLeft},
		{P(17, 20), UpperRight},
		{P(10, 27), LowerLeft},
		{P(17, 27), LowerRight},
	}
	for _, tt := range tests {
		if q := quadrantOf(tt.pt, origin, 8); q != tt.want {
			t.Errorf("quadrantOf(%v) = %v, want %v", tt.pt, q, tt.want)
		}
	}
}

func TestContains(t *testing.T) {
	if !contains(P(0, 0), 4, P(3, 3)) {
		t.Error("expected (3, 3) inside 4x4 at origin")
	}
	if contains(P(0, 0), 4, P(4, 0)) {
		t.Error("right edge should be exclusive")
	}
	if contains(P(0, 0), 4, P(0, -1)) {
		t.Error("negative y should be outside")
	}
}
