// Package census computes summary statistics over entity positions.
package census

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"gameobjects-sim/internal/common"
)

// Summary describes where the entities of a scene are.
type Summary struct {
	Count        int
	Centroid     common.Point
	Min          common.Point // Lower-left corner of the bounding box
	Max          common.Point // Upper-right corner of the bounding box
	MeanDistance float64      // Mean distance to the centroid
}

// Summarize returns the summary of points. The zero Summary is returned for no points.
func Summarize(points []common.Point) Summary {
	if len(points) == 0 {
		return Summary{}
	}
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}

	centroid := common.Point{X: stat.Mean(xs, nil), Y: stat.Mean(ys, nil)}
	dists := make([]float64, len(points))
	for i, p := range points {
		dists[i] = p.Distance(centroid)
	}

	return Summary{
		Count:        len(points),
		Centroid:     centroid,
		Min:          common.Point{X: floats.Min(xs), Y: floats.Min(ys)},
		Max:          common.Point{X: floats.Max(xs), Y: floats.Max(ys)},
		MeanDistance: stat.Mean(dists, nil),
	}
}
