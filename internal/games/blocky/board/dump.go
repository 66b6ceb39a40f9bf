package board

import (
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/blocky/internal/games/blocky/palette"
)

// Attributes formats the block's own attributes on one line.
func (b *Block) Attributes(verbose bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "pos=%v, size=%d, level=%d", b.Position, b.Size, b.Level)
	if verbose {
		fmt.Fprintf(&sb, ", highlighted=%t, max_depth=%d", b.Highlighted, b.MaxDepth)
	}
	return sb.String()
}

// Dump writes the subtree to w, one block per line. b starts unindented
// and each level below it adds a tab. Leaves also print their colour name.
func (b *Block) Dump(w io.Writer, verbose bool) error {
	return b.dump(w, verbose, 0)
}

func (b *Block) dump(w io.Writer, verbose bool, depth int) error {
	indent := strings.Repeat("\t", depth)

	if b.children == nil {
		_, err := fmt.Fprintf(w, "%s%s, colour=%s\n", indent, b.Attributes(verbose), palette.Name(b.colour))
		return err
	}

	if _, err := fmt.Fprintf(w, "%s%s\n", indent, b.Attributes(verbose)); err != nil {
		return err
	}
	for _, c := range b.children {
		if err := c.dump(w, verbose, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// String returns the non-verbose dump of the subtree.
func (b *Block) String() string {
	var sb strings.Builder
	_ = b.Dump(&sb, false)
	return sb.String()
}
