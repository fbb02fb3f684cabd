package world

import (
	"fmt"

	"github.com/google/uuid"

	"gameobjects-sim/internal/common"
)

// Entity defines the interface for any object placed in a scene.
type Entity interface {
	// ID returns the unique identifier of the entity.
	ID() string
	// Kind returns the concrete kind of the entity.
	Kind() Kind
	X() float64
	SetX(x float64)
	Y() float64
	SetY(y float64)
	// Position returns the current coordinates as a point.
	Position() common.Point
	String() string
}

// Movable is implemented by entities that can change position.
// The meaning of a and b is defined by each implementer.
type Movable interface {
	Entity
	Move(a, b float64)
}

// Object is a positioned entity. The other entity kinds embed it.
type Object struct {
	id string
	x  float64
	y  float64
}

// NewObject creates a new object at the given coordinates.
func NewObject(x, y float64) *Object {
	o := newObject(KindObject, x, y)
	return &o
}

func newObject(kind Kind, x, y float64) Object {
	return Object{
		id: fmt.Sprintf("%s-%s", kind, uuid.NewString()[:8]),
		x:  x,
		y:  y,
	}
}

func (o *Object) ID() string {
	return o.id
}

func (o *Object) Kind() Kind {
	return KindObject
}

func (o *Object) X() float64 {
	return o.x
}

func (o *Object) SetX(x float64) {
	o.x = x
}

func (o *Object) Y() float64 {
	return o.y
}

func (o *Object) SetY(y float64) {
	o.y = y
}

func (o *Object) Position() common.Point {
	return common.Point{X: o.x, Y: o.y}
}

func (o *Object) String() string {
	return fmt.Sprintf("Objeto{x=%s, y=%s}", common.FormatFloat(o.x), common.FormatFloat(o.y))
}
