// Package config loads hex grid settings from JSON. Every field is
// optional: omitted fields fall back to the defaults returned by the Get*
// methods, so partial files are safe.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/wesen/hexlattice/pkg/hexgrid"
	"github.com/wesen/hexlattice/pkg/hexmesh"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Defaults reproduce the demo grid: a centered 9-division grid spanning
// [-1, 1] on the major axis.
const (
	DefaultSize        = 2.0
	DefaultDivisions   = 9
	DefaultCentered    = true
	DefaultOrientation = "minor-x"
)

// Config is the root configuration.
type Config struct {
	// Grid params
	OriginMajor *float64 `json:"origin_major,omitempty"`
	OriginMinor *float64 `json:"origin_minor,omitempty"`
	Size        *float64 `json:"size,omitempty"`
	Divisions   *int     `json:"divisions,omitempty"`
	Centered    *bool    `json:"centered,omitempty"`

	// Mesh / display params
	Orientation  *string `json:"orientation,omitempty"` // "minor-x" or "major-x"
	ShowVertices *bool   `json:"show_vertices,omitempty"`
	ShowFrame    *bool   `json:"show_frame,omitempty"`
}

func ptrFloat64(v float64) *float64 { return &v }
func ptrBool(v bool) *bool          { return &v }
func ptrString(v string) *string    { return &v }
func ptrInt(v int) *int             { return &v }

// Defaults returns a Config with every field set.
func Defaults() *Config {
	return &Config{
		OriginMajor:  ptrFloat64(0),
		OriginMinor:  ptrFloat64(0),
		Size:         ptrFloat64(DefaultSize),
		Divisions:    ptrInt(DefaultDivisions),
		Centered:     ptrBool(DefaultCentered),
		Orientation:  ptrString(DefaultOrientation),
		ShowVertices: ptrBool(false),
		ShowFrame:    ptrBool(false),
	}
}

// Load reads a Config from a JSON file. The file must have a .json
// extension and be at most 1MB.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the fields that are set.
func (c *Config) Validate() error {
	if c.Divisions != nil && *c.Divisions < 1 {
		return fmt.Errorf("%w: divisions must be at least 1, got %d", ErrInvalidConfig, *c.Divisions)
	}
	if c.Divisions != nil && *c.Divisions > hexgrid.MaxDivisions {
		return fmt.Errorf("%w: divisions must be at most %d, got %d", ErrInvalidConfig, hexgrid.MaxDivisions, *c.Divisions)
	}
	if c.Size != nil && !(*c.Size > 0 && !math.IsInf(*c.Size, 0)) {
		return fmt.Errorf("%w: size must be positive and finite, got %v", ErrInvalidConfig, *c.Size)
	}
	if c.OriginMajor != nil && (math.IsNaN(*c.OriginMajor) || math.IsInf(*c.OriginMajor, 0)) {
		return fmt.Errorf("%w: origin_major must be finite", ErrInvalidConfig)
	}
	if c.OriginMinor != nil && (math.IsNaN(*c.OriginMinor) || math.IsInf(*c.OriginMinor, 0)) {
		return fmt.Errorf("%w: origin_minor must be finite", ErrInvalidConfig)
	}
	if c.Orientation != nil {
		if _, ok := hexmesh.ParseOrientation(*c.Orientation); !ok {
			return fmt.Errorf("%w: unknown orientation %q", ErrInvalidConfig, *c.Orientation)
		}
	}
	return nil
}

// GetSize returns the size value or the default.
func (c *Config) GetSize() float64 {
	if c.Size == nil {
		return DefaultSize
	}
	return *c.Size
}

// GetDivisions returns the divisions value or the default.
func (c *Config) GetDivisions() int {
	if c.Divisions == nil {
		return DefaultDivisions
	}
	return *c.Divisions
}

// GetCentered returns the centered value or the default.
func (c *Config) GetCentered() bool {
	if c.Centered == nil {
		return DefaultCentered
	}
	return *c.Centered
}

// GetOrigin returns the origin, defaulting each axis to 0.
func (c *Config) GetOrigin() hexgrid.Pair {
	var p hexgrid.Pair
	if c.OriginMajor != nil {
		p.Major = *c.OriginMajor
	}
	if c.OriginMinor != nil {
		p.Minor = *c.OriginMinor
	}
	return p
}

// GetOrientation returns the parsed orientation, or the default when unset
// or unknown.
func (c *Config) GetOrientation() hexmesh.Orientation {
	if c.Orientation == nil {
		return hexmesh.OrientationMinorX
	}
	o, _ := hexmesh.ParseOrientation(*c.Orientation)
	return o
}

// GetShowVertices returns the show_vertices value or the default.
func (c *Config) GetShowVertices() bool {
	return c.ShowVertices != nil && *c.ShowVertices
}

// GetShowFrame returns the show_frame value or the default.
func (c *Config) GetShowFrame() bool {
	return c.ShowFrame != nil && *c.ShowFrame
}

// Params returns the grid parameters described by c.
func (c *Config) Params() hexgrid.Params {
	return hexgrid.Params{
		Origin:    c.GetOrigin(),
		Size:      c.GetSize(),
		Divisions: c.GetDivisions(),
		Centered:  c.GetCentered(),
	}
}

// SetParams stores p into c.
func (c *Config) SetParams(p hexgrid.Params) {
	c.OriginMajor = ptrFloat64(p.Origin.Major)
	c.OriginMinor = ptrFloat64(p.Origin.Minor)
	c.Size = ptrFloat64(p.Size)
	c.Divisions = ptrInt(p.Divisions)
	c.Centered = ptrBool(p.Centered)
}
