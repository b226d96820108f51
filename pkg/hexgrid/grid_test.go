package hexgrid

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/floats"
)

const tol = 1e-9

var approx = cmpopts.EquateApprox(0, tol)

func mustGenerate(t *testing.T, p Params) *Grid {
	t.Helper()
	g, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate(%+v): %v", p, err)
	}
	return g
}

// ── Axis lengths ──

func TestMajorAxisLength(t *testing.T) {
	for n := 1; n <= 25; n++ {
		for _, centered := range []bool{true, false} {
			g := mustGenerate(t, Params{Size: 2, Divisions: n, Centered: centered})
			if len(g.Major) != 2*n+1 {
				t.Errorf("n=%d centered=%v: len(Major) = %d, want %d", n, centered, len(g.Major), 2*n+1)
			}
		}
	}
}

func TestMinorAxisLengthCentered(t *testing.T) {
	for n := 1; n <= 25; n++ {
		g := mustGenerate(t, Params{Size: 2, Divisions: n, Centered: true})
		m := n | 1
		raw := 3*m + 2
		want := raw - m // one phantom per hexagon
		if len(g.Minor) != want {
			t.Errorf("n=%d: len(Minor) = %d, want %d", n, len(g.Minor), want)
		}
		if g.Hexagons() != m {
			t.Errorf("n=%d: Hexagons() = %d, want %d", n, g.Hexagons(), m)
		}
	}
}

func TestMinorAxisLengthCorner(t *testing.T) {
	tests := []struct {
		n        int
		hexagons int
	}{
		{1, 1},
		{2, 2},  // 2/sin60 = 2.309
		{3, 3},  // 3.464
		{4, 4},  // 4.618
		{7, 8},  // 8.083
		{9, 10}, // 10.392
		{13, 15},
	}
	for _, tc := range tests {
		g := mustGenerate(t, Params{Size: 2, Divisions: tc.n})
		if g.Hexagons() != tc.hexagons {
			t.Errorf("n=%d: Hexagons() = %d, want %d", tc.n, g.Hexagons(), tc.hexagons)
		}
		if want := 2*tc.hexagons + 2; len(g.Minor) != want {
			t.Errorf("n=%d: len(Minor) = %d, want %d", tc.n, len(g.Minor), want)
		}
	}
}

// ── Values ──

func TestCornerSingleHexagon(t *testing.T) {
	g := mustGenerate(t, Params{Size: 2, Divisions: 1})

	if diff := cmp.Diff([]float64{0, 1, 2}, g.Major, approx); diff != "" {
		t.Errorf("Major mismatch (-want +got):\n%s", diff)
	}

	r := 1 / sin60
	// Raw graduations 0,1,3,4 of r/2; index 2 is the hexagon center.
	wantMinor := []float64{0, r / 2, 3 * r / 2, 2 * r}
	if diff := cmp.Diff(wantMinor, g.Minor, approx); diff != "" {
		t.Errorf("Minor mismatch (-want +got):\n%s", diff)
	}
	if g.Anchor != g.Origin {
		t.Errorf("corner mode Anchor = %v, want Origin %v", g.Anchor, g.Origin)
	}
}

func TestCenteredDemoGrid(t *testing.T) {
	g := mustGenerate(t, Params{Size: 2, Divisions: 9, Centered: true})

	if len(g.Major) != 19 {
		t.Fatalf("len(Major) = %d, want 19", len(g.Major))
	}
	if math.Abs(g.Major[0]+1) > tol || math.Abs(g.Major[18]-1) > tol {
		t.Errorf("Major spans [%v, %v], want [-1, 1]", g.Major[0], g.Major[18])
	}
	if len(g.Minor) != 20 {
		t.Errorf("len(Minor) = %d, want 20", len(g.Minor))
	}
}

func TestMajorAxisEvenlySpaced(t *testing.T) {
	for _, tc := range []Params{
		{Size: 2, Divisions: 9, Centered: true},
		{Origin: Pair{Major: 4, Minor: -2}, Size: 0.5, Divisions: 3},
		{Origin: Pair{Major: -7}, Size: 10, Divisions: 16, Centered: true},
	} {
		g := mustGenerate(t, tc)
		want := floats.Span(make([]float64, 2*tc.Divisions+1), g.Anchor.Major, g.Anchor.Major+tc.Size)
		if !floats.EqualApprox(g.Major, want, tol) {
			t.Errorf("%+v: Major = %v, want %v", tc, g.Major, want)
		}
		if span := floats.Max(g.Major) - floats.Min(g.Major); math.Abs(span-tc.Size) > tol {
			t.Errorf("%+v: Major spans %v, want %v", tc, span, tc.Size)
		}
	}
}

func TestCenteredSymmetry(t *testing.T) {
	origins := []Pair{{0, 0}, {3.5, -1.25}, {-10, 42}}
	for _, o := range origins {
		for n := 1; n <= 12; n++ {
			g := mustGenerate(t, Params{Origin: o, Size: 2.5, Divisions: n, Centered: true})
			for i := range g.Major {
				sum := g.Major[i] + g.Major[len(g.Major)-1-i]
				if math.Abs(sum-2*o.Major) > 1e-5 {
					t.Errorf("origin=%v n=%d: Major[%d]+Major[%d] = %v, want %v",
						o, n, i, len(g.Major)-1-i, sum, 2*o.Major)
				}
			}
			for i := range g.Minor {
				sum := g.Minor[i] + g.Minor[len(g.Minor)-1-i]
				if math.Abs(sum-2*o.Minor) > 1e-5 {
					t.Errorf("origin=%v n=%d: Minor[%d]+Minor[%d] = %v, want %v",
						o, n, i, len(g.Minor)-1-i, sum, 2*o.Minor)
				}
			}
		}
	}
}

func TestAxesStrictlyIncreasing(t *testing.T) {
	for n := 1; n <= 15; n++ {
		for _, centered := range []bool{true, false} {
			g := mustGenerate(t, Params{Origin: Pair{-1, -1}, Size: 2, Divisions: n, Centered: centered})
			for _, axis := range [][]float64{g.Major, g.Minor} {
				for i := 1; i < len(axis); i++ {
					if axis[i] <= axis[i-1] {
						t.Fatalf("n=%d centered=%v: axis not increasing at %d: %v <= %v",
							n, centered, i, axis[i], axis[i-1])
					}
				}
			}
		}
	}
}

func TestMinorSkipsHexagonCenters(t *testing.T) {
	g := mustGenerate(t, Params{Size: 3, Divisions: 4, Centered: true})
	step := g.Circumradius / 2
	for i, v := range g.Minor {
		raw := int(math.Round((v - g.Anchor.Minor) / step))
		if (raw+1)%3 == 0 {
			t.Errorf("Minor[%d] = %v is phantom graduation %d", i, v, raw)
		}
	}
}

func TestOffsets(t *testing.T) {
	g := mustGenerate(t, Params{Size: 2, Divisions: 4})
	r := (2.0 / 8) / sin60
	if math.Abs(g.Circumradius-r) > tol {
		t.Errorf("Circumradius = %v, want %v", g.Circumradius, r)
	}
	if math.Abs(g.Offset.Major-0.5) > tol {
		t.Errorf("Offset.Major = %v, want 0.5", g.Offset.Major)
	}
	if math.Abs(g.Offset.Minor-1.5*r) > tol {
		t.Errorf("Offset.Minor = %v, want %v", g.Offset.Minor, 1.5*r)
	}
	if math.Abs(g.Apothem()-0.25) > tol {
		t.Errorf("Apothem = %v, want 0.25", g.Apothem())
	}
}

func TestCenteredAnchor(t *testing.T) {
	g := mustGenerate(t, Params{Origin: Pair{1, 2}, Size: 2, Divisions: 5, Centered: true})
	r := g.Circumradius
	want := Pair{Major: 0, Minor: 2 - r*(2+3*2)/2}
	if diff := cmp.Diff(want, g.Anchor, approx); diff != "" {
		t.Errorf("Anchor mismatch (-want +got):\n%s", diff)
	}
	if g.Origin != (Pair{1, 2}) {
		t.Errorf("Origin = %v, want caller origin (1,2)", g.Origin)
	}
}

// ── Validation ──

func TestGenerateRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		p    Params
	}{
		{"zero divisions", Params{Size: 2, Divisions: 0}},
		{"negative divisions", Params{Size: 2, Divisions: -3}},
		{"zero size", Params{Size: 0, Divisions: 4}},
		{"negative size", Params{Size: -1, Divisions: 4}},
		{"NaN size", Params{Size: math.NaN(), Divisions: 4}},
		{"Inf size", Params{Size: math.Inf(1), Divisions: 4}},
		{"NaN origin", Params{Origin: Pair{math.NaN(), 0}, Size: 2, Divisions: 4}},
		{"Inf origin", Params{Origin: Pair{0, math.Inf(-1)}, Size: 2, Divisions: 4}},
		{"too many divisions", Params{Size: 2, Divisions: MaxDivisions + 1, Centered: true}},
		{"MaxInt divisions", Params{Size: 2, Divisions: math.MaxInt, Centered: true}},
		{"half MaxInt corner", Params{Size: 2, Divisions: math.MaxInt/2 + 1}},
	}
	for _, tc := range tests {
		g, err := Generate(tc.p)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%s: err = %v, want ErrInvalidArgument", tc.name, err)
		}
		if g != nil {
			t.Errorf("%s: got grid %+v, want nil", tc.name, g)
		}
	}
}

func TestGenerateMaxDivisions(t *testing.T) {
	g, err := Generate(Params{Size: 2, Divisions: MaxDivisions})
	if err != nil {
		t.Fatalf("Generate(n=%d): %v", MaxDivisions, err)
	}
	if len(g.Major) != 2*MaxDivisions+1 {
		t.Errorf("len(Major) = %d, want %d", len(g.Major), 2*MaxDivisions+1)
	}
}
