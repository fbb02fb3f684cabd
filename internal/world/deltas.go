package world

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// DeltaSource supplies the values passed to Movable.Move.
type DeltaSource interface {
	Next() float64
}

// UniformDeltas draws values uniformly from [0, scale).
type UniformDeltas struct {
	dist distuv.Uniform
}

// NewUniformDeltas creates a delta source over [0, scale).
// Equal non-zero seeds produce equal sequences. A zero seed picks a random one.
func NewUniformDeltas(scale float64, seed uint64) *UniformDeltas {
	s1, s2 := seed, seed
	if seed == 0 {
		s1, s2 = rand.Uint64(), rand.Uint64()
	}
	return &UniformDeltas{
		dist: distuv.Uniform{
			Min: 0,
			Max: scale,
			Src: rand.NewPCG(s1, s2),
		},
	}
}

// Next returns the next value from the source.
func (d *UniformDeltas) Next() float64 {
	return d.dist.Rand()
}

// Scale returns the exclusive upper bound of the drawn values.
func (d *UniformDeltas) Scale() float64 {
	return d.dist.Max
}
