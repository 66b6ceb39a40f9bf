package palette

import "testing"

func TestAtReturnsPlayableColours(t *testing.T) {
	seen := make(map[Colour]bool)
	for i := 0; i < Size; i++ {
		c := At(i)
		if seen[c] {
			t.Errorf("At(%d) = %v, duplicate colour", i, c)
		}
		seen[c] = true
		if Index(c) != i {
			t.Errorf("Index(At(%d)) = %d", i, Index(c))
		}
	}
	if Index(Highlight) != -1 || Index(Frame) != -1 {
		t.Error("highlight and frame colours should not be playable")
	}
}

func TestAtPanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("At(4) should panic")
		}
	}()
	At(Size)
}

func TestName(t *testing.T) {
	tests := []struct {
		colour   Colour
		expected string
	}{
		{RealRed, "red"},
		{PacificPoint, "blue"},
		{DaffodilDelight, "yellow"},
		{OldOlive, "green"},
		{Black, "black"},
		{RGB(200, 40, 60), "red"}, // close to RealRed
		{RGB(5, 5, 5), "black"},   // close to Black
		{RGB(250, 250, 250), "white"},
	}

	for _, tc := range tests {
		if got := Name(tc.colour); got != tc.expected {
			t.Errorf("Name(%v) = %q, expected %q", tc.colour.Hex(), got, tc.expected)
		}
	}
}

func TestParse(t *testing.T) {
	c, ok := Parse("blue")
	if !ok || c != PacificPoint {
		t.Errorf("Parse(blue) = %v, %v", c, ok)
	}
	if _, ok := Parse("mauve"); ok {
		t.Error("Parse(mauve) should fail")
	}
}

func TestHex(t *testing.T) {
	if got := RealRed.Hex(); got != "#c72c3a" {
		t.Errorf("RealRed.Hex() = %q", got)
	}
	if got := Black.Hex(); got != "#000000" {
		t.Errorf("Black.Hex() = %q", got)
	}
}

func TestColoursIsACopy(t *testing.T) {
	cs := Colours()
	cs[0] = Black
	if At(0) == Black {
		t.Error("Colours() should not expose the palette array")
	}
}
