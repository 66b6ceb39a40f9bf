package board

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/blocky/internal/games/blocky/palette"
)

var (
	red    = palette.RealRed
	blue   = palette.PacificPoint
	yellow = palette.DaffodilDelight
	green  = palette.OldOlive
)

// scriptedRand replays fixed draws.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *scriptedRand) Intn(n int) int {
	i := r.ints[0]
	r.ints = r.ints[1:]
	return i % n
}

// quad builds a depth-1 board from leaf colours in quadrant order and lays
// it out at (0,0) with the given size.
func quad(size int, ur, ul, ll, lr palette.Colour) *Block {
	root := NewInternal(0, [4]*Block{
		NewLeaf(1, ur),
		NewLeaf(1, ul),
		NewLeaf(1, ll),
		NewLeaf(1, lr),
	})
	root.SetMaxDepth(1)
	root.Relayout(P(0, 0), size)
	return root
}

func generated(t *testing.T, seed int64, maxDepth, unit int) *Block {
	t.Helper()
	root := Generate(rand.New(rand.NewSource(seed)), 0, maxDepth)
	root.Relayout(P(0, 0), (1<<maxDepth)*unit)
	return root
}

// order records the child order of every internal block in the tree.
func order(root *Block) map[*Block][4]*Block {
	out := make(map[*Block][4]*Block)
	root.Walk(func(b *Block) {
		if b.children != nil {
			out[b] = *b.children
		}
	})
	return out
}

func sameOrder(a, b map[*Block][4]*Block) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}
