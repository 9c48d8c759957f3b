// Package numeric evaluates the closed-form curves the figures are built
// from: sample grids, normal densities, weighted mixtures, and index-reversed
// (mirror) profiles. Every function is pure; curves are plain []float64
// slices aligned with their grid.
package numeric

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Linspace returns n evenly spaced samples over [lo, hi], endpoints included.
// n must be at least 2.
func Linspace(lo, hi float64, n int) []float64 {
	return floats.Span(make([]float64, n), lo, hi)
}

// GaussAt evaluates the normal density with mean mu and standard deviation
// sigma at a single point.
func GaussAt(x, mu, sigma float64) float64 {
	return distuv.Normal{Mu: mu, Sigma: sigma}.Prob(x)
}

// Gauss evaluates the normal density elementwise over the grid.
func Gauss(grid []float64, mu, sigma float64) []float64 {
	n := distuv.Normal{Mu: mu, Sigma: sigma}
	out := make([]float64, len(grid))
	for i, x := range grid {
		out[i] = n.Prob(x)
	}
	return out
}

// Component is one weighted normal in a mixture.
type Component struct {
	Weight float64
	Mu     float64
	Sigma  float64
}

// Mixture evaluates a weighted sum of normal densities over the grid.
// The result is a normalized density iff the weights sum to 1.
func Mixture(grid []float64, comps ...Component) []float64 {
	out := make([]float64, len(grid))
	for _, c := range comps {
		floats.AddScaled(out, c.Weight, Gauss(grid, c.Mu, c.Sigma))
	}
	return out
}

// Reversed returns an index-reversed copy of vals. The input is not modified.
func Reversed(vals []float64) []float64 {
	out := make([]float64, len(vals))
	copy(out, vals)
	floats.Reverse(out)
	return out
}

// Constant returns a curve holding v at every grid point.
func Constant(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// Max returns the largest value in vals.
func Max(vals []float64) float64 {
	return floats.Max(vals)
}

// NearestIndex returns the index of the grid point closest to x.
// The grid must be non-empty.
func NearestIndex(grid []float64, x float64) int {
	best := 0
	bestDist := math.Abs(grid[0] - x)
	for i, g := range grid[1:] {
		if d := math.Abs(g - x); d < bestDist {
			best, bestDist = i+1, d
		}
	}
	return best
}
