// Package hexgrid generates the gridline coordinates of a regular hexagonal
// tiling and snaps points onto its staggered-row lattice.
//
// The major axis is the direction along which adjacent hexagons share an
// edge; the minor axis is the one along which they share only a vertex.
// A Grid is computed once by Generate and is read-only afterwards: to get a
// different grid, generate a new one.
package hexgrid

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
)

// sin60 is sin(60°) = √3/2.
const sin60 = 0.8660254037844386

// MaxDivisions is the largest major-axis hexagon count Generate accepts. A
// mesh over n divisions holds about 2.3n² vertices.
const MaxDivisions = 1 << 10

var (
	// ErrInvalidArgument is returned by Generate for a non-positive size,
	// a division count outside [1, MaxDivisions], or non-finite coordinates.
	ErrInvalidArgument = errors.New("hexgrid: invalid argument")

	// ErrDegenerateInput is returned by NewRounder when an offset
	// component is zero, negative, or not finite.
	ErrDegenerateInput = errors.New("hexgrid: degenerate input")
)

// Pair is a (major, minor) coordinate pair.
type Pair struct {
	Major float64
	Minor float64
}

// Params describes the grid to generate.
type Params struct {
	Origin    Pair    // logical anchor supplied by the caller
	Size      float64 // extent of the major axis
	Divisions int     // hexagons along the major axis (n)
	Centered  bool    // center the lattice on Origin instead of anchoring a corner there
}

// Validate reports whether p can be generated.
func (p Params) Validate() error {
	if p.Divisions < 1 {
		return fmt.Errorf("%w: divisions must be >= 1, got %d", ErrInvalidArgument, p.Divisions)
	}
	if p.Divisions > MaxDivisions {
		return fmt.Errorf("%w: divisions must be <= %d, got %d", ErrInvalidArgument, MaxDivisions, p.Divisions)
	}
	if math.IsNaN(p.Size) || math.IsInf(p.Size, 0) || p.Size <= 0 {
		return fmt.Errorf("%w: size must be a finite value > 0, got %v", ErrInvalidArgument, p.Size)
	}
	if !finite(p.Origin.Major) || !finite(p.Origin.Minor) {
		return fmt.Errorf("%w: origin must be finite, got (%v, %v)", ErrInvalidArgument, p.Origin.Major, p.Origin.Minor)
	}
	return nil
}

// Grid holds the two axis sequences and the spacing constants shared with
// the rounder.
type Grid struct {
	Params Params

	// Major and Minor are the gridline positions, strictly increasing.
	Major []float64
	Minor []float64

	// Origin is the caller-supplied origin, before any centering.
	Origin Pair
	// Anchor is the lower corner the axes start from. It equals Origin in
	// corner mode.
	Anchor Pair
	// Offset is the center-to-center hexagon pitch along each axis:
	// Major = 2 × apothem, Minor = 1.5 × circumradius.
	Offset Pair
	// Circumradius is the hexagon's corner radius.
	Circumradius float64
}

// Generate computes the axis sequences for p.
func Generate(p Params) (*Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	n := p.Divisions
	majStep := p.Size / float64(2*n)
	r := majStep / sin60
	minStep := r / 2

	g := &Grid{
		Params: p,
		Origin: p.Origin,
		Anchor: p.Origin,
		Offset: Pair{
			Major: p.Size / float64(n),
			Minor: 1.5 * r,
		},
		Circumradius: r,
	}

	if p.Centered {
		g.Anchor.Major -= p.Size / 2
		g.Anchor.Minor -= r * float64(2+3*(n/2)) / 2
	}

	// Three graduations for the first hexagon, two more for each further one.
	g.Major = make([]float64, 0, 2*n+1)
	for i := 0; i <= 2*n; i++ {
		g.Major = append(g.Major, g.Anchor.Major+majStep*float64(i))
	}

	m := hexagonsAcross(n, p.Centered)
	raw := 3*m + 2
	g.Minor = make([]float64, 0, 2*m+2)
	for i := 0; i < raw; i++ {
		// Every third graduation lands on a hexagon center, not a vertex.
		if (i+1)%3 == 0 {
			continue
		}
		g.Minor = append(g.Minor, g.Anchor.Minor+minStep*float64(i))
	}

	Logger().Debug("hexgrid: generated",
		slog.Int("divisions", n),
		slog.Bool("centered", p.Centered),
		slog.Int("major", len(g.Major)),
		slog.Int("minor", len(g.Minor)),
		slog.Float64("circumradius", r))

	return g, nil
}

// hexagonsAcross returns how many hexagons the minor axis spans.
func hexagonsAcross(n int, centered bool) int {
	switch {
	case centered:
		// Odd counts give a symmetric super-hexagon, even counts a parallelogram.
		return n | 1
	case n == 1:
		// The single hexagon spills past the square along the minor edge.
		return 1
	default:
		return int(float64(n) / sin60)
	}
}

// Hexagons returns the number of hexagons along the minor axis.
func (g *Grid) Hexagons() int {
	return hexagonsAcross(g.Params.Divisions, g.Params.Centered)
}

// Apothem returns the hexagon's edge-midpoint radius.
func (g *Grid) Apothem() float64 {
	return g.Offset.Major / 2
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
