// hexrender prints a hexagonal grid wireframe to the terminal once, with
// the axis and mesh sizes, and optionally exports it as an image or a raw
// vertex buffer.
//
// Run: go run ./cmd/hexrender/ -n 5 -frame -out grid.png -vbo grid.f32
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"charm.land/lipgloss/v2"
	"gonum.org/v1/plot/vg"

	"github.com/wesen/hexlattice/internal/config"
	"github.com/wesen/hexlattice/internal/wireframe"
	"github.com/wesen/hexlattice/pkg/cellbuf"
	"github.com/wesen/hexlattice/pkg/drawutil"
	"github.com/wesen/hexlattice/pkg/hexgrid"
	"github.com/wesen/hexlattice/pkg/hexmesh"
)

// Style keys come from wireframe; the colors are local to this binary.
var styles = map[cellbuf.StyleKey]lipgloss.Style{
	wireframe.StyleBackground: lipgloss.NewStyle().Foreground(lipgloss.Color("#333333")),
	wireframe.StyleStrip:      lipgloss.NewStyle().Foreground(lipgloss.Color("#00d4a0")),
	wireframe.StyleCross:      lipgloss.NewStyle().Foreground(lipgloss.Color("#0e7a5a")),
	wireframe.StyleVertex:     lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00")),
	wireframe.StyleFrame:      lipgloss.NewStyle().Foreground(lipgloss.Color("#555555")),
}

var labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00")).Bold(true)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	cols := flag.Int("cols", 80, "output width in cells")
	rows := flag.Int("rows", 32, "output height in cells")
	out := flag.String("out", "", "also save the wireframe to this .png, .svg or .pdf file")
	vbo := flag.String("vbo", "", "also write the vertices to this file as little-endian float32 x,y,z")
	plain := flag.Bool("plain", false, "print without colors")
	debug := flag.Bool("debug", false, "log debug output to stderr")
	flag.Parse()

	if *debug {
		hexgrid.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(flags, *cols, *rows, *out, *vbo, *plain); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(flags *config.Flags, w, h int, out, vbo string, plain bool) error {
	cfg, err := flags.Resolve(flag.CommandLine)
	if err != nil {
		return err
	}

	g, err := hexgrid.Generate(cfg.Params())
	if err != nil {
		return fmt.Errorf("generate grid: %w", err)
	}
	m, err := hexmesh.FromGrid(g, cfg.GetOrientation())
	if err != nil {
		return fmt.Errorf("build mesh: %w", err)
	}

	var frame *drawutil.Rect
	if cfg.GetShowFrame() {
		f := wireframe.Frame(g, m.Orientation)
		frame = &f
	}

	buf := cellbuf.New(w, h, wireframe.StyleBackground)
	wireframe.Draw(buf, wireframe.FitViewport(m, w, h), m, wireframe.Options{Vertices: cfg.GetShowVertices(), Frame: frame})
	if plain {
		fmt.Println(buf.String())
	} else {
		fmt.Println(buf.Render(styles))
	}

	plan := m.Plan()
	summary := fmt.Sprintf("n=%d size=%g hexagons=%d major=%d minor=%d vertices=%d strips=%d crosses=%d",
		g.Params.Divisions, g.Params.Size, g.Hexagons(), len(g.Major), len(g.Minor),
		len(m.Vertices), len(plan.Strips), len(plan.Crosses))
	if plain {
		fmt.Println(summary)
	} else {
		fmt.Println(labelStyle.Render(summary))
	}

	if out != "" {
		title := fmt.Sprintf("hex grid n=%d", g.Params.Divisions)
		opts := wireframe.PlotOptions{Title: title, Vertices: cfg.GetShowVertices(), Frame: frame}
		if err := wireframe.Save(m, out, 6*vg.Inch, opts); err != nil {
			return err
		}
		fmt.Printf("saved %s\n", out)
	}

	if vbo != "" {
		if err := writeVertices(m, vbo); err != nil {
			return err
		}
		fmt.Printf("wrote %d vertices to %s\n", len(m.Vertices), vbo)
	}
	return nil
}

func writeVertices(m *hexmesh.Mesh, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create vertex file: %w", err)
	}
	w := bufio.NewWriter(f)
	if err := m.WriteVertices(w); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flush vertex file: %w", err)
	}
	return f.Close()
}
