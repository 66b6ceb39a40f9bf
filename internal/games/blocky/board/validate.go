package board

import "fmt"

// Validate checks the structural invariants of a tree rooted at root:
// levels and max depth are consistent, parent links match, and every
// child sits at its quadrant with half its parent's size. Only the root
// must have a positive size; odd sizes can round deep blocks down to zero.
func Validate(root *Block) error {
	if root.parent != nil {
		return fmt.Errorf("%w: root at %v has a parent", ErrInvalidShape, root.Position)
	}
	if root.Size <= 0 {
		return fmt.Errorf("%w: root at %v has size %d", ErrInvalidShape, root.Position, root.Size)
	}
	return validate(root)
}

func validate(b *Block) error {
	if b.Level < 0 || b.Level > b.MaxDepth {
		return fmt.Errorf("%w: block at %v has level %d outside [0, %d]",
			ErrInvalidShape, b.Position, b.Level, b.MaxDepth)
	}
	if b.children == nil {
		return nil
	}
	if b.Level == b.MaxDepth {
		return fmt.Errorf("%w: block at %v is subdivided at max depth %d",
			ErrInvalidShape, b.Position, b.MaxDepth)
	}

	corners := childCorners(b.Position, b.Size)
	for i, c := range b.children {
		q := Quadrant(i)
		switch {
		case c == nil:
			return fmt.Errorf("%w: block at %v missing %v child", ErrInvalidShape, b.Position, q)
		case c.parent != b:
			return fmt.Errorf("%w: %v child of %v has wrong parent", ErrInvalidShape, q, b.Position)
		case c.Level != b.Level+1:
			return fmt.Errorf("%w: %v child of %v has level %d, want %d",
				ErrInvalidShape, q, b.Position, c.Level, b.Level+1)
		case c.MaxDepth != b.MaxDepth:
			return fmt.Errorf("%w: %v child of %v has max depth %d, want %d",
				ErrInvalidShape, q, b.Position, c.MaxDepth, b.MaxDepth)
		case c.Position != corners[i] || c.Size != half(b.Size):
			return fmt.Errorf("%w: %v child of %v at %v+%d, want %v+%d",
				ErrInvalidShape, q, b.Position, c.Position, c.Size, corners[i], half(b.Size))
		}
		if err := validate(c); err != nil {
			return err
		}
	}
	return nil
}
