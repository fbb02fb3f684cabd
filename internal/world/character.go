package world

import (
	"fmt"

	"gameobjects-sim/internal/common"
)

// Character is a named entity that walks along the x axis.
type Character struct {
	Object
	name string
}

// NewCharacter creates a new character at the given coordinates.
func NewCharacter(x, y float64, name string) *Character {
	return &Character{
		Object: newObject(KindCharacter, x, y),
		name:   name,
	}
}

func (c *Character) Kind() Kind {
	return KindCharacter
}

func (c *Character) Name() string {
	return c.name
}

func (c *Character) SetName(name string) {
	c.name = name
}

// Move adds dx to the x coordinate. dy is ignored, characters only walk along x.
func (c *Character) Move(dx, dy float64) {
	c.SetX(c.X() + dx)
}

func (c *Character) String() string {
	return fmt.Sprintf("Personagem{nome='%s'x=%s, y=%s}", c.name, common.FormatFloat(c.X()), common.FormatFloat(c.Y()))
}
