// Package config handles lathe configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/lathe/pkg/curve"
	"github.com/Faultbox/lathe/pkg/formats"
	"github.com/Faultbox/lathe/pkg/revolve"
)

// Config holds all lathe settings.
type Config struct {
	Curve   CurveConfig   `yaml:"curve"`
	Mesh    MeshConfig    `yaml:"mesh"`
	Paths   PathsConfig   `yaml:"paths"`
	Preview PreviewConfig `yaml:"preview"`
	Logging LoggingConfig `yaml:"logging"`
}

// CurveConfig holds profile editing settings.
type CurveConfig struct {
	Mode    string  `yaml:"mode"`    // "catmull-rom" or "linear"
	Density int     `yaml:"density"` // samples per segment
	Wrap    bool    `yaml:"wrap"`
	AxisX   float32 `yaml:"axis_x"` // vertical revolution axis position
	AxisY   float32 `yaml:"axis_y"` // horizontal base line position
}

// MeshConfig holds revolution settings.
type MeshConfig struct {
	Subdivisions int `yaml:"subdivisions"`
}

// PathsConfig holds file locations.
type PathsConfig struct {
	ControlPointsDir string `yaml:"control_points_dir"`
	HandoffFile      string `yaml:"handoff_file"`
	ExportDir        string `yaml:"export_dir"`
}

// PreviewConfig holds preview image settings.
type PreviewConfig struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	LineWidth float32 `yaml:"line_width"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Curve: CurveConfig{
			Mode:    curve.CatmullRom.String(),
			Density: curve.DefaultDensity,
			Wrap:    false,
		},
		Mesh: MeshConfig{
			Subdivisions: revolve.DefaultSubdivisions,
		},
		Paths: PathsConfig{
			ControlPointsDir: ".",
			HandoffFile:      formats.DefaultHandoffFile,
			ExportDir:        ".",
		},
		Preview: PreviewConfig{
			Width:     800,
			Height:    800,
			LineWidth: 2,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate clamps numeric settings into their usable range and checks the
// curve mode.
func (c *Config) Validate() error {
	if _, err := curve.ParseMode(c.Curve.Mode); err != nil {
		return fmt.Errorf("curve.mode: %w", err)
	}
	if c.Curve.Density < 1 {
		c.Curve.Density = 1
	}
	if c.Mesh.Subdivisions < 1 {
		c.Mesh.Subdivisions = 1
	}
	if c.Preview.Width < 16 {
		c.Preview.Width = 16
	}
	if c.Preview.Height < 16 {
		c.Preview.Height = 16
	}
	if c.Preview.LineWidth <= 0 {
		c.Preview.LineWidth = 1
	}
	if c.Paths.HandoffFile == "" {
		c.Paths.HandoffFile = formats.DefaultHandoffFile
	}
	return nil
}

// Params returns the curve evaluation parameters. Call Validate first.
func (c *Config) Params() curve.Params {
	mode, err := curve.ParseMode(c.Curve.Mode)
	if err != nil {
		mode = curve.CatmullRom
	}
	return curve.Params{
		Mode:    mode,
		Density: c.Curve.Density,
		Wrap:    c.Curve.Wrap,
	}
}
