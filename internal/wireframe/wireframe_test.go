package wireframe

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/plot/vg"

	"github.com/wesen/hexlattice/pkg/cellbuf"
	"github.com/wesen/hexlattice/pkg/drawutil"
	"github.com/wesen/hexlattice/pkg/hexgrid"
	"github.com/wesen/hexlattice/pkg/hexmesh"
)

func demoMesh(t *testing.T) *hexmesh.Mesh {
	t.Helper()
	g, err := hexgrid.Generate(hexgrid.Params{Size: 2, Divisions: 9, Centered: true})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	m, err := hexmesh.FromGrid(g, hexmesh.OrientationMinorX)
	if err != nil {
		t.Fatalf("FromGrid: %v", err)
	}
	return m
}

// ── Bounds ──

func TestBoundsSingleHexagon(t *testing.T) {
	g, err := hexgrid.Generate(hexgrid.Params{Size: 2, Divisions: 1})
	if err != nil {
		t.Fatal(err)
	}
	m, _ := hexmesh.FromGrid(g, hexmesh.OrientationMinorX)

	r := 1 / math.Sin(math.Pi/3)
	want := drawutil.Rect{MinX: 0, MinY: 0, MaxX: 2 * r, MaxY: 2}
	if diff := cmp.Diff(want, Bounds(m), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("Bounds mismatch (-want +got):\n%s", diff)
	}
}

func TestBoundsEmpty(t *testing.T) {
	if got := Bounds(&hexmesh.Mesh{}); got != (drawutil.Rect{}) {
		t.Errorf("empty mesh bounds = %+v, want zero", got)
	}
	if got := Bounds(nil); got != (drawutil.Rect{}) {
		t.Errorf("nil mesh bounds = %+v, want zero", got)
	}
}

func TestFitViewportKeepsMeshOnScreen(t *testing.T) {
	m := demoMesh(t)
	vp := FitViewport(m, 80, 30)
	for i, v := range m.Vertices {
		c := vp.Project(v.X, v.Y)
		if c.X < 0 || c.X >= vp.W || c.Y < 0 || c.Y >= vp.H {
			t.Fatalf("vertex %d (%v) projects off-screen at %v", i, v, c)
		}
	}
}

// ── Draw ──

func TestDrawDemoGrid(t *testing.T) {
	m := demoMesh(t)
	buf := cellbuf.New(80, 30, StyleBackground)
	Draw(buf, FitViewport(m, 80, 30), m, Options{})

	if buf.Count(StyleStrip) == 0 {
		t.Error("no strip cells drawn")
	}
	if buf.Count(StyleCross) == 0 {
		t.Error("no cross cells drawn")
	}
	if n := buf.Count(StyleVertex); n != 0 {
		t.Errorf("vertices hidden but %d vertex cells drawn", n)
	}
}

func TestDrawVertices(t *testing.T) {
	m := demoMesh(t)
	buf := cellbuf.New(120, 50, StyleBackground)
	vp := FitViewport(m, 120, 50)
	Draw(buf, vp, m, Options{Vertices: true})

	v := m.Vertices[0]
	c := vp.Project(v.X, v.Y)
	got, ok := buf.Get(c.X, c.Y)
	if !ok || got.Ch != VertexGlyph || got.Style != StyleVertex {
		t.Errorf("first vertex cell = %q/%d, want %q/StyleVertex", got.Ch, got.Style, VertexGlyph)
	}
}

func TestFrame(t *testing.T) {
	tests := []struct {
		name string
		p    hexgrid.Params
		o    hexmesh.Orientation
		want drawutil.Rect
	}{
		{
			name: "centered",
			p:    hexgrid.Params{Size: 2, Divisions: 9, Centered: true},
			o:    hexmesh.OrientationMinorX,
			want: drawutil.Rect{MinX: -1, MinY: -1, MaxX: 1, MaxY: 1},
		},
		{
			name: "corner minor-x",
			p:    hexgrid.Params{Origin: hexgrid.Pair{Major: 1, Minor: -3}, Size: 2, Divisions: 4},
			o:    hexmesh.OrientationMinorX,
			want: drawutil.Rect{MinX: -3, MinY: 1, MaxX: -1, MaxY: 3},
		},
		{
			name: "corner major-x",
			p:    hexgrid.Params{Origin: hexgrid.Pair{Major: 1, Minor: -3}, Size: 2, Divisions: 4},
			o:    hexmesh.OrientationMajorX,
			want: drawutil.Rect{MinX: 1, MinY: -3, MaxX: 3, MaxY: -1},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := hexgrid.Generate(tc.p)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, Frame(g, tc.o), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
				t.Errorf("Frame mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDrawFrame(t *testing.T) {
	g, err := hexgrid.Generate(hexgrid.Params{Size: 2, Divisions: 9, Centered: true})
	if err != nil {
		t.Fatal(err)
	}
	m, _ := hexmesh.FromGrid(g, hexmesh.OrientationMinorX)
	frame := Frame(g, m.Orientation)
	vp := FitViewport(m, 80, 30)

	buf := cellbuf.New(80, 30, StyleBackground)
	Draw(buf, vp, m, Options{})
	if n := buf.Count(StyleFrame); n != 0 {
		t.Errorf("frame off but %d frame cells drawn", n)
	}

	buf = cellbuf.New(80, 30, StyleBackground)
	Draw(buf, vp, m, Options{Frame: &frame})
	if buf.Count(StyleFrame) == 0 {
		t.Fatal("no frame cells drawn")
	}
	if buf.Count(StyleStrip) == 0 {
		t.Error("frame hid the wireframe")
	}
}

func TestDrawEmptyMesh(t *testing.T) {
	buf := cellbuf.New(10, 5, StyleBackground)
	Draw(buf, drawutil.Viewport{Scale: 1, W: 10, H: 5}, &hexmesh.Mesh{}, Options{Vertices: true})
	Draw(buf, drawutil.Viewport{Scale: 1, W: 10, H: 5}, nil, Options{})
	if n := buf.Count(StyleBackground); n != 50 {
		t.Errorf("empty mesh touched %d cells", 50-n)
	}
}

// ── Plot ──

func TestPlotEmptyMesh(t *testing.T) {
	if _, err := Plot(&hexmesh.Mesh{}, PlotOptions{}); !errors.Is(err, ErrEmptyMesh) {
		t.Fatalf("Plot(empty) error = %v, want ErrEmptyMesh", err)
	}
}

func TestPlotSquareAxes(t *testing.T) {
	p, err := Plot(demoMesh(t), PlotOptions{Title: "n=9"})
	if err != nil {
		t.Fatalf("Plot: %v", err)
	}
	dx := p.X.Max - p.X.Min
	dy := p.Y.Max - p.Y.Min
	if math.Abs(dx-dy) > 1e-9 {
		t.Errorf("axis spans differ: x=%v y=%v", dx, dy)
	}
	if p.Title.Text != "n=9" {
		t.Errorf("title = %q", p.Title.Text)
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.png")
	if err := Save(demoMesh(t), path, 4*vg.Inch, PlotOptions{Vertices: true}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if fi.Size() == 0 {
		t.Error("saved file is empty")
	}
}

func TestSaveSVGWithFrame(t *testing.T) {
	g, err := hexgrid.Generate(hexgrid.Params{Size: 2, Divisions: 3})
	if err != nil {
		t.Fatal(err)
	}
	m, _ := hexmesh.FromGrid(g, hexmesh.OrientationMajorX)
	frame := Frame(g, m.Orientation)

	path := filepath.Join(t.TempDir(), "grid.svg")
	if err := Save(m, path, 3*vg.Inch, PlotOptions{Frame: &frame}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(data) == 0 {
		t.Error("saved file is empty")
	}
}

func TestSaveRejectsUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.bmp")
	err := Save(demoMesh(t), path, 4*vg.Inch, PlotOptions{})
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("Save(.bmp) error = %v, want ErrFormat", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("rejected format still wrote a file")
	}
}
