package config

import "flag"

// Flags holds the command-line overrides shared by every lathe command.
type Flags struct {
	fs *flag.FlagSet

	config       *string
	debug        *bool
	mode         *string
	density      *int
	subdivisions *int
	wrap         *bool
}

// RegisterFlags adds the global flags to fs. Parse fs before calling Load.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		fs:           fs,
		config:       fs.String("config", "", "Path to config file"),
		debug:        fs.Bool("debug", false, "Enable debug logging"),
		mode:         fs.String("mode", "", "Curve mode: catmull-rom or linear"),
		density:      fs.Int("density", 0, "Samples per curve segment"),
		subdivisions: fs.Int("subdivisions", 0, "Angular subdivisions of the revolved mesh"),
		wrap:         fs.Bool("wrap", false, "Close the curve back to its first point"),
	}
}

// ConfigPath returns the explicit config path if provided via -config.
func (f *Flags) ConfigPath() string {
	if f == nil {
		return ""
	}
	return *f.config
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f == nil {
		return
	}
	if *f.debug {
		cfg.Logging.Level = "debug"
	}
	if *f.mode != "" {
		cfg.Curve.Mode = *f.mode
	}
	if *f.density > 0 {
		cfg.Curve.Density = *f.density
	}
	if *f.subdivisions > 0 {
		cfg.Mesh.Subdivisions = *f.subdivisions
	}
	// -wrap=false must be able to override a config file that enables it.
	f.fs.Visit(func(fl *flag.Flag) {
		if fl.Name == "wrap" {
			cfg.Curve.Wrap = *f.wrap
		}
	})
}
