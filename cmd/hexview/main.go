// hexview is an interactive terminal viewer for hexagonal grids: move the
// mouse to snap to hexagon centers, click to pin, and edit the grid with
// keys or a parameter script.
//
// Run: go run ./cmd/hexview/ -n 9 -config grid.json
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/wesen/hexlattice/internal/config"
	"github.com/wesen/hexlattice/internal/hexui"
	"github.com/wesen/hexlattice/pkg/hexgrid"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	logPath := flag.String("log", "", "write debug logs to this file")
	flag.Parse()

	cfg, err := flags.Resolve(flag.CommandLine)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// The TUI owns the terminal, so logs only go to a file.
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		hexgrid.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	p := tea.NewProgram(hexui.NewModel(cfg))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
