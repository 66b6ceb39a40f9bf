// Package goal scores a Blocky board against a player's target.
package goal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/blocky/internal/games/blocky/board"
	"github.com/vovakirdan/blocky/internal/games/blocky/palette"
)

// ErrUnknownKind is returned by ParseKind for unrecognised goal names.
var ErrUnknownKind = errors.New("goal: unknown kind")

// Kind identifies a scoring strategy.
type Kind int

const (
	KindBlob Kind = iota
	KindPerimeter
)

var kindNames = map[Kind]string{
	KindBlob:      "blob",
	KindPerimeter: "perimeter",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Kinds returns every goal kind.
func Kinds() []Kind {
	return []Kind{KindBlob, KindPerimeter}
}

// ParseKind converts a name such as "blob" or "perimeter" to a Kind.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Goal scores a board for one target colour. Scores are never negative.
type Goal interface {
	Score(b *board.Block) int
	Description() string
	Colour() palette.Colour
	Kind() Kind
}

// New returns the goal of the given kind targeting colour.
func New(kind Kind, colour palette.Colour) Goal {
	switch kind {
	case KindPerimeter:
		return PerimeterGoal{colour: colour}
	default:
		return BlobGoal{colour: colour}
	}
}

// Random picks a kind and a playable colour.
func Random(rng board.Rand) Goal {
	kinds := Kinds()
	kind := kinds[rng.Intn(len(kinds))]
	return New(kind, palette.At(rng.Intn(palette.Size)))
}
