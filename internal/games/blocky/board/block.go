// Package board implements the Blocky board: a quadtree of square blocks in
// which every undivided block carries one palette colour.
//
// A Block is either a leaf with a colour or an internal node with exactly
// four children stored in Quadrant order (UR, UL, LL, LR). Geometry
// (Position, Size) is derived data: structural operations reorder or replace
// children and then recompute geometry top-down with Relayout.
package board

import (
	"github.com/vovakirdan/blocky/internal/games/blocky/palette"
)

// Block is one square region of the board.
type Block struct {
	Position    Point // Top-left corner in board coordinates
	Size        int   // Side length in board units
	Level       int   // Depth from the root (root = 0)
	MaxDepth    int   // Deepest level allowed anywhere in the tree
	Highlighted bool  // Selected by the player; affects rendering only

	colour   palette.Colour // Meaningful only when children == nil
	children *[4]*Block     // nil for a leaf
	parent   *Block         // Non-owning back reference
}

// NewLeaf creates an unhighlighted, parentless leaf at the given level.
// Position, Size and MaxDepth are left zero for the caller to fill in.
func NewLeaf(level int, colour palette.Colour) *Block {
	return &Block{
		Level:  level,
		colour: colour,
	}
}

// NewInternal creates a parentless block subdivided into the given children,
// in Quadrant order. The children are attached as-is; call SetMaxDepth and
// Relayout to restore the geometry invariants.
func NewInternal(level int, children [4]*Block) *Block {
	b := &Block{Level: level}
	b.adopt(children)
	return b
}

// adopt installs children and points them back at b.
func (b *Block) adopt(children [4]*Block) {
	for _, c := range children {
		c.parent = b
	}
	b.colour = palette.Colour{}
	b.children = &children
}

// IsLeaf reports whether the block is undivided.
func (b *Block) IsLeaf() bool {
	return b.children == nil
}

// Colour returns the block's colour. ok is false for subdivided blocks.
func (b *Block) Colour() (c palette.Colour, ok bool) {
	if b.children != nil {
		return palette.Colour{}, false
	}
	return b.colour, true
}

// Children returns the four children in Quadrant order, or nil for a leaf.
// The returned slice is a copy; reordering it does not affect the block.
func (b *Block) Children() []*Block {
	if b.children == nil {
		return nil
	}
	out := make([]*Block, 4)
	copy(out, b.children[:])
	return out
}

// Child returns the child in quadrant q, or nil for a leaf.
func (b *Block) Child(q Quadrant) *Block {
	if b.children == nil {
		return nil
	}
	return b.children[q]
}

// Parent returns the enclosing block, or nil for a root.
func (b *Block) Parent() *Block {
	return b.parent
}

// Root follows parent links up to the top of the tree.
func (b *Block) Root() *Block {
	r := b
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// SetMaxDepth sets MaxDepth on b and every descendant.
// Used when assembling a board by hand with NewLeaf/NewInternal.
func (b *Block) SetMaxDepth(depth int) {
	b.Walk(func(n *Block) {
		n.MaxDepth = depth
	})
}

// Walk calls fn for b and every descendant, parents before children.
func (b *Block) Walk(fn func(*Block)) {
	fn(b)
	if b.children == nil {
		return
	}
	for _, c := range b.children {
		c.Walk(fn)
	}
}

// Leaves returns all undivided blocks under b in depth-first Quadrant order.
func (b *Block) Leaves() []*Block {
	var out []*Block
	b.Walk(func(n *Block) {
		if n.IsLeaf() {
			out = append(out, n)
		}
	})
	return out
}

// ClearHighlight unsets Highlighted on b and every descendant.
func (b *Block) ClearHighlight() {
	b.Walk(func(n *Block) {
		n.Highlighted = false
	})
}
