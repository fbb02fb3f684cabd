package world

import (
	"fmt"

	"gameobjects-sim/internal/common"
)

// Vehicle is a colored entity that jumps straight to its destination.
type Vehicle struct {
	Object
	color string
}

// NewVehicle creates a new vehicle at the given coordinates.
func NewVehicle(x, y float64, color string) *Vehicle {
	return &Vehicle{
		Object: newObject(KindVehicle, x, y),
		color:  color,
	}
}

func (v *Vehicle) Kind() Kind {
	return KindVehicle
}

func (v *Vehicle) Color() string {
	return v.color
}

func (v *Vehicle) SetColor(color string) {
	v.color = color
}

// Move places the vehicle at (x, y), discarding the previous position.
func (v *Vehicle) Move(x, y float64) {
	v.SetX(x)
	v.SetY(y)
}

func (v *Vehicle) String() string {
	return fmt.Sprintf("Veiculo{x=%sy=%scor%s'}", common.FormatFloat(v.X()), common.FormatFloat(v.Y()), v.color)
}
