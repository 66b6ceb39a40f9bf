package board

// Relayout sets the block's geometry and recomputes it for the whole subtree.
// Each child gets half the parent's size, at its quadrant's corner.
func (b *Block) Relayout(topLeft Point, size int) {
	b.Position = topLeft
	b.Size = size

	if b.children == nil {
		return
	}

	corners := childCorners(topLeft, size)
	childSize := half(size)
	for i, c := range b.children {
		c.Relayout(corners[i], childSize)
	}
}

// relayoutInPlace re-runs Relayout from the block's current geometry.
func (b *Block) relayoutInPlace() {
	b.Relayout(b.Position, b.Size)
}
