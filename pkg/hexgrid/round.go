package hexgrid

import (
	"fmt"
	"math"
)

// Rounder snaps points to the grid's staggered lattice: rows are
// Offset.Minor apart, and odd rows are shifted half a major pitch.
//
// It rounds each axis independently with a parity correction on the major
// axis. Near a hexagon boundary this can pick a center that is farther away
// in Euclidean terms than a true nearest-neighbour search would.
type Rounder struct {
	origin Pair
	offset Pair
}

// NewRounder returns a Rounder for the given lattice origin and pitch.
func NewRounder(origin, offset Pair) (Rounder, error) {
	if !(offset.Major > 0) || !(offset.Minor > 0) || !finite(offset.Major) || !finite(offset.Minor) {
		return Rounder{}, fmt.Errorf("%w: offset must be positive, got (%v, %v)",
			ErrDegenerateInput, offset.Major, offset.Minor)
	}
	return Rounder{origin: origin, offset: offset}, nil
}

// Origin returns the lattice origin.
func (r Rounder) Origin() Pair { return r.origin }

// Offset returns the lattice pitch.
func (r Rounder) Offset() Pair { return r.offset }

// Round returns the lattice point nearest to p. Points outside the
// generated grid are snapped to the infinite lattice.
func (r Rounder) Round(p Pair) Pair {
	row := math.Round((p.Minor - r.origin.Minor) / r.offset.Minor)
	odd := int(row)%2 != 0

	major := (p.Major - r.origin.Major) / r.offset.Major

	// Odd rows sit half a pitch off: push away from zero, snap, pull back.
	if odd {
		major = awayFromZero(major)
	}
	major = math.Round(major)
	if odd {
		major = towardZero(major)
	}

	return Pair{
		Major: major*r.offset.Major + r.origin.Major,
		Minor: row*r.offset.Minor + r.origin.Minor,
	}
}

// Point returns the lattice point at column col of row row.
func (r Rounder) Point(col, row int) Pair {
	major := float64(col)
	if row%2 != 0 {
		major += 0.5
	}
	return Pair{
		Major: major*r.offset.Major + r.origin.Major,
		Minor: float64(row)*r.offset.Minor + r.origin.Minor,
	}
}

func awayFromZero(v float64) float64 {
	if v > 0 {
		return v + 0.5
	}
	return v - 0.5
}

func towardZero(v float64) float64 {
	if v > 0 {
		return v - 0.5
	}
	return v + 0.5
}

// Rounder returns the rounder bound to the grid's origin and offset.
func (g *Grid) Rounder() Rounder {
	// Generate guarantees a positive offset.
	return Rounder{origin: g.Origin, offset: g.Offset}
}

// Round snaps p to the grid's lattice.
func (g *Grid) Round(p Pair) Pair {
	return g.Rounder().Round(p)
}

// LatticePoint returns the lattice point at column col of row row. These
// points are the fixed points of Round.
func (g *Grid) LatticePoint(col, row int) Pair {
	return g.Rounder().Point(col, row)
}
