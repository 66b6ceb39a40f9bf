package board

import (
	"fmt"
	"math"

	"github.com/vovakirdan/blocky/internal/games/blocky/palette"
)

// Rand is the source of randomness used for generation.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// subdivideChance is the probability that a block at level subdivides.
func subdivideChance(level int) float64 {
	return math.Exp(-0.25 * float64(level))
}

// Generate builds a random block at level, subdivided no deeper than maxDepth.
// Every attribute except Position and Size is set; call Relayout afterwards.
// Panics if level is negative or greater than maxDepth.
func Generate(rng Rand, level, maxDepth int) *Block {
	if level < 0 || level > maxDepth {
		panic(fmt.Sprintf("board: cannot generate level %d with max depth %d", level, maxDepth))
	}

	b := &Block{Level: level, MaxDepth: maxDepth}

	// No draw is made at max depth: those blocks can never subdivide.
	if level < maxDepth && rng.Float64() < subdivideChance(level) {
		b.adopt(generateChildren(rng, level+1, maxDepth))
		return b
	}

	b.colour = palette.At(rng.Intn(palette.Size))
	return b
}

func generateChildren(rng Rand, level, maxDepth int) [4]*Block {
	var children [4]*Block
	for i := range children {
		children[i] = Generate(rng, level, maxDepth)
	}
	return children
}
