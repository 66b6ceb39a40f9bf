package goal_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/blocky/internal/games/blocky/board"
	"github.com/vovakirdan/blocky/internal/games/blocky/goal"
	"github.com/vovakirdan/blocky/internal/games/blocky/palette"
)

var (
	red    = palette.RealRed
	blue   = palette.PacificPoint
	yellow = palette.DaffodilDelight
	green  = palette.OldOlive
)

func quad(ur, ul, ll, lr palette.Colour) *board.Block {
	root := board.NewInternal(0, [4]*board.Block{
		board.NewLeaf(1, ur),
		board.NewLeaf(1, ul),
		board.NewLeaf(1, ll),
		board.NewLeaf(1, lr),
	})
	root.SetMaxDepth(1)
	root.Relayout(board.P(0, 0), 2)
	return root
}

// gridOf builds a grid from rows of letters (Y, B, R, G), row-major for
// readability, transposed into [col][row].
func gridOf(rows ...string) board.Grid {
	side := len(rows)
	grid := make(board.Grid, side)
	for col := range grid {
		grid[col] = make([]palette.Colour, side)
		for row := range rows {
			switch rows[row][col] {
			case 'Y':
				grid[col][row] = yellow
			case 'B':
				grid[col][row] = blue
			case 'R':
				grid[col][row] = red
			case 'G':
				grid[col][row] = green
			}
		}
	}
	return grid
}

func TestEndToEndQuad(t *testing.T) {
	root := quad(red, red, blue, blue)

	tests := []struct {
		goal goal.Goal
		want int
	}{
		{goal.NewBlob(red), 2},
		{goal.NewBlob(blue), 2},
		{goal.NewBlob(yellow), 0},
		{goal.NewPerimeter(red), 4},
		{goal.NewPerimeter(blue), 4},
		{goal.NewPerimeter(green), 0},
	}

	for _, tt := range tests {
		t.Run(tt.goal.Description(), func(t *testing.T) {
			if got := tt.goal.Score(root); got != tt.want {
				t.Errorf("score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLargestBlob(t *testing.T) {
	tests := []struct {
		name   string
		grid   board.Grid
		colour palette.Colour
		want   int
	}{
		{
			name:   "single cell",
			grid:   gridOf("R"),
			colour: red,
			want:   1,
		},
		{
			name:   "diagonal cells are separate",
			grid:   gridOf("RB", "BR"),
			colour: red,
			want:   1,
		},
		{
			name:   "snake through the board",
			grid:   gridOf("RRRR", "BBBR", "RRRR", "RBBB"),
			colour: red,
			want:   10,
		},
		{
			name:   "largest of several",
			grid:   gridOf("RRBB", "RBBY", "YYYY", "GGGR"),
			colour: yellow,
			want:   5,
		},
		{
			name:   "absent colour",
			grid:   gridOf("RRBB", "RBBY", "YYYY", "GGGR"),
			colour: palette.White,
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := goal.LargestBlob(tt.grid, tt.colour); got != tt.want {
				t.Errorf("LargestBlob = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBlobMonotonic(t *testing.T) {
	// The upper-left quadrant is painted red one leaf at a time; the rest of
	// the board stays fixed.
	build := func(ul [4]palette.Colour) *board.Block {
		inner := board.NewInternal(1, [4]*board.Block{
			board.NewLeaf(2, ul[0]), board.NewLeaf(2, ul[1]),
			board.NewLeaf(2, ul[2]), board.NewLeaf(2, ul[3]),
		})
		root := board.NewInternal(0, [4]*board.Block{
			board.NewLeaf(1, blue), inner, board.NewLeaf(1, yellow), board.NewLeaf(1, green),
		})
		root.SetMaxDepth(2)
		root.Relayout(board.P(0, 0), 4)
		return root
	}

	colours := [4]palette.Colour{blue, yellow, green, blue}
	paintOrder := []board.Quadrant{board.LowerRight, board.UpperRight, board.UpperLeft, board.LowerLeft}

	g := goal.NewBlob(red)
	prev := g.Score(build(colours))
	for i, q := range paintOrder {
		colours[q] = red
		score := g.Score(build(colours))
		if score < prev {
			t.Fatalf("step %d: score dropped from %d to %d", i, prev, score)
		}
		prev = score
	}
	if prev != 4 {
		t.Errorf("final score = %d, want 4", prev)
	}
}

func TestPerimeterCornersCountTwice(t *testing.T) {
	all := quad(red, red, red, red)
	if got := goal.NewPerimeter(red).Score(all); got != 8 {
		t.Errorf("2x2 all red: score = %d, want 8", got)
	}

	grid := gridOf("RBBB", "BBBB", "BBBB", "BBBB")
	if got := goal.PerimeterCount(grid, red); got != 2 {
		t.Errorf("4x4 single corner: score = %d, want 2", got)
	}

	grid = gridOf("BRBB", "BBBB", "BBBB", "BBBB")
	if got := goal.PerimeterCount(grid, red); got != 1 {
		t.Errorf("4x4 single edge cell: score = %d, want 1", got)
	}

	grid = gridOf("BBBB", "BRRB", "BRRB", "BBBB")
	if got := goal.PerimeterCount(grid, red); got != 0 {
		t.Errorf("4x4 interior only: score = %d, want 0", got)
	}
}

func TestDescriptions(t *testing.T) {
	if got := goal.NewBlob(red).Description(); got != "Create the largest blob of red" {
		t.Errorf("blob description = %q", got)
	}
	if got := goal.NewPerimeter(blue).Description(); got != "Surround the perimeter with blue" {
		t.Errorf("perimeter description = %q", got)
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want goal.Kind
	}{
		{"blob", goal.KindBlob},
		{"Perimeter", goal.KindPerimeter},
		{" blob ", goal.KindBlob},
	}
	for _, tt := range tests {
		got, err := goal.ParseKind(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}

	if _, err := goal.ParseKind("corners"); !errors.Is(err, goal.ErrUnknownKind) {
		t.Errorf("ParseKind(corners) err = %v, want ErrUnknownKind", err)
	}
}

func TestNewAndRandom(t *testing.T) {
	g := goal.New(goal.KindPerimeter, green)
	if g.Kind() != goal.KindPerimeter || g.Colour() != green {
		t.Errorf("New = %v %v", g.Kind(), g.Colour())
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		g := goal.Random(rng)
		if palette.Index(g.Colour()) < 0 {
			t.Fatalf("random goal colour %v not playable", g.Colour())
		}
		if g.Kind() != goal.KindBlob && g.Kind() != goal.KindPerimeter {
			t.Fatalf("random goal kind %v", g.Kind())
		}
	}
}
