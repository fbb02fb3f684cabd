package world

import (
	"fmt"

	"gameobjects-sim/internal/common"
)

// Tree is static scenery. It has a height and never moves.
type Tree struct {
	Object
	height float64
}

// NewTree creates a new tree at the given coordinates.
func NewTree(x, y, height float64) *Tree {
	return &Tree{
		Object: newObject(KindTree, x, y),
		height: height,
	}
}

func (t *Tree) Kind() Kind {
	return KindTree
}

func (t *Tree) Height() float64 {
	return t.height
}

func (t *Tree) SetHeight(height float64) {
	t.height = height
}

func (t *Tree) String() string {
	return fmt.Sprintf("Arvore{altura=%s, x=%s, y=%s}", common.FormatFloat(t.height), common.FormatFloat(t.X()), common.FormatFloat(t.Y()))
}
