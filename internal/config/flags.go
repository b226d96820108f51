package config

import (
	"flag"
	"fmt"
)

// Flags are the command-line overrides shared by the binaries. Only flags
// given on the command line override the config file.
type Flags struct {
	Path string

	divisions   int
	size        float64
	centered    bool
	originMajor float64
	originMinor float64
	orientation string
	vertices    bool
	frame       bool
}

// RegisterFlags defines the grid flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Path, "config", "", "path to a JSON config file")
	fs.IntVar(&f.divisions, "n", DefaultDivisions, "major-axis hexagon count")
	fs.Float64Var(&f.size, "size", DefaultSize, "grid extent along the major axis")
	fs.BoolVar(&f.centered, "centered", DefaultCentered, "center the grid on its origin")
	fs.Float64Var(&f.originMajor, "origin-major", 0, "origin along the major axis")
	fs.Float64Var(&f.originMinor, "origin-minor", 0, "origin along the minor axis")
	fs.StringVar(&f.orientation, "orientation", DefaultOrientation, `mesh orientation: "minor-x" or "major-x"`)
	fs.BoolVar(&f.vertices, "vertices", false, "mark mesh vertices")
	fs.BoolVar(&f.frame, "frame", false, "outline the size×size reference square")
	return f
}

// Resolve builds the effective Config: defaults, then the file named by
// -config, then every flag set explicitly on fs. Call after fs.Parse.
func (f *Flags) Resolve(fs *flag.FlagSet) (*Config, error) {
	cfg := Defaults()
	if f.Path != "" {
		file, err := Load(f.Path)
		if err != nil {
			return nil, err
		}
		cfg.Merge(file)
	}

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "n":
			cfg.Divisions = ptrInt(f.divisions)
		case "size":
			cfg.Size = ptrFloat64(f.size)
		case "centered":
			cfg.Centered = ptrBool(f.centered)
		case "origin-major":
			cfg.OriginMajor = ptrFloat64(f.originMajor)
		case "origin-minor":
			cfg.OriginMinor = ptrFloat64(f.originMinor)
		case "orientation":
			cfg.Orientation = ptrString(f.orientation)
		case "vertices":
			cfg.ShowVertices = ptrBool(f.vertices)
		case "frame":
			cfg.ShowFrame = ptrBool(f.frame)
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}

// Merge copies every field set in o into c.
func (c *Config) Merge(o *Config) {
	if o.OriginMajor != nil {
		c.OriginMajor = o.OriginMajor
	}
	if o.OriginMinor != nil {
		c.OriginMinor = o.OriginMinor
	}
	if o.Size != nil {
		c.Size = o.Size
	}
	if o.Divisions != nil {
		c.Divisions = o.Divisions
	}
	if o.Centered != nil {
		c.Centered = o.Centered
	}
	if o.Orientation != nil {
		c.Orientation = o.Orientation
	}
	if o.ShowVertices != nil {
		c.ShowVertices = o.ShowVertices
	}
	if o.ShowFrame != nil {
		c.ShowFrame = o.ShowFrame
	}
}
