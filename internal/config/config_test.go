package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wesen/hexlattice/pkg/hexgrid"
	"github.com/wesen/hexlattice/pkg/hexmesh"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	want := hexgrid.Params{Size: 2, Divisions: 9, Centered: true}
	if diff := cmp.Diff(want, cfg.Params()); diff != "" {
		t.Errorf("Params mismatch (-want +got):\n%s", diff)
	}
	if cfg.GetOrientation() != hexmesh.OrientationMinorX {
		t.Errorf("GetOrientation() = %v, want minor-x", cfg.GetOrientation())
	}
	if cfg.GetShowVertices() {
		t.Error("GetShowVertices() = true, want false")
	}
}

func TestEmptyConfigFallsBack(t *testing.T) {
	cfg := &Config{}
	if diff := cmp.Diff(Defaults().Params(), cfg.Params()); diff != "" {
		t.Errorf("empty config Params differ from defaults (-want +got):\n%s", diff)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "grid.json", `{
  "origin_major": 1.5,
  "size": 4,
  "divisions": 3,
  "centered": false,
  "orientation": "major-x",
  "show_vertices": true,
  "show_frame": true
}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := hexgrid.Params{
		Origin:    hexgrid.Pair{Major: 1.5},
		Size:      4,
		Divisions: 3,
	}
	if diff := cmp.Diff(want, cfg.Params()); diff != "" {
		t.Errorf("Params mismatch (-want +got):\n%s", diff)
	}
	if cfg.GetOrientation() != hexmesh.OrientationMajorX {
		t.Errorf("GetOrientation() = %v, want major-x", cfg.GetOrientation())
	}
	if !cfg.GetShowVertices() {
		t.Error("GetShowVertices() = false, want true")
	}
	if !cfg.GetShowFrame() {
		t.Error("GetShowFrame() = false, want true")
	}
}

func TestLoadPartial(t *testing.T) {
	cfg, err := Load(writeConfig(t, "partial.json", `{"divisions": 4}`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := hexgrid.Params{Size: DefaultSize, Divisions: 4, Centered: DefaultCentered}
	if diff := cmp.Diff(want, cfg.Params()); diff != "" {
		t.Errorf("Params mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRejectsExtension(t *testing.T) {
	_, err := Load(writeConfig(t, "grid.yaml", `divisions: 3`))
	if err == nil || !strings.Contains(err.Error(), ".json") {
		t.Fatalf("Load(.yaml) error = %v, want extension error", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestLoadBadJSON(t *testing.T) {
	if _, err := Load(writeConfig(t, "bad.json", `{"divisions": "three"}`)); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadTooLarge(t *testing.T) {
	body := `{"size": 2` + strings.Repeat(" ", 1024*1024) + `}`
	_, err := Load(writeConfig(t, "big.json", body))
	if err == nil || !strings.Contains(err.Error(), "too large") {
		t.Fatalf("Load(big) error = %v, want size error", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero divisions", `{"divisions": 0}`},
		{"too many divisions", `{"divisions": 2000000000}`},
		{"negative size", `{"size": -2}`},
		{"zero size", `{"size": 0}`},
		{"unknown orientation", `{"orientation": "diagonal"}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, "c.json", tc.body))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestSetParams(t *testing.T) {
	p := hexgrid.Params{Origin: hexgrid.Pair{Major: -1, Minor: 2}, Size: 3, Divisions: 5}
	cfg := &Config{}
	cfg.SetParams(p)
	if diff := cmp.Diff(p, cfg.Params()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
