package board

// Axis selects the kind of swap performed on a block's children.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

func (a Axis) String() string {
	if a == AxisVertical {
		return "vertical"
	}
	return "horizontal"
}

// Direction selects the sense of a rotation.
type Direction int

const (
	Clockwise Direction = iota
	CounterClockwise
)

func (d Direction) String() string {
	if d == CounterClockwise {
		return "counter-clockwise"
	}
	return "clockwise"
}

// CanSmash reports whether Smash would succeed: the root and blocks at max
// depth cannot be smashed.
func (b *Block) CanSmash() bool {
	return b.Level > 0 && b.Level < b.MaxDepth
}

// Smash discards the block's contents and replaces them with four freshly
// generated children, then relayouts the block in place.
// Returns false and leaves the block untouched if it cannot be smashed.
func (b *Block) Smash(rng Rand) bool {
	if !b.CanSmash() {
		return false
	}

	if b.children != nil {
		for _, c := range b.children {
			c.parent = nil
		}
	}
	b.adopt(generateChildren(rng, b.Level+1, b.MaxDepth))
	b.relayoutInPlace()
	return true
}

// Swap reorders the block's direct children and relayouts it.
// The children list is reversed; a horizontal swap then also exchanges the
// first two entries with the last two. Leaves are unchanged.
func (b *Block) Swap(axis Axis) {
	if b.children == nil {
		return
	}

	c := b.children
	c[0], c[1], c[2], c[3] = c[3], c[2], c[1], c[0]
	if axis == AxisHorizontal {
		c[0], c[1], c[2], c[3] = c[2], c[3], c[0], c[1]
	}
	b.relayoutInPlace()
}

// Rotate turns the block's whole subtree a quarter turn: every internal
// block under b (b included) has its children rotated, then geometry is
// recomputed once. Leaves are unchanged.
func (b *Block) Rotate(dir Direction) {
	if b.children == nil {
		return
	}
	b.rotateChildren(dir)
	b.relayoutInPlace()
}

func (b *Block) rotateChildren(dir Direction) {
	if b.children == nil {
		return
	}

	c := b.children
	switch dir {
	case Clockwise:
		c[0], c[1], c[2], c[3] = c[1], c[2], c[3], c[0]
	case CounterClockwise:
		c[0], c[1], c[2], c[3] = c[3], c[0], c[1], c[2]
	}

	for _, child := range c {
		child.rotateChildren(dir)
	}
}
