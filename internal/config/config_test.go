package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/lathe/pkg/curve"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Curve.Mode != "catmull-rom" {
		t.Errorf("expected mode catmull-rom, got %s", cfg.Curve.Mode)
	}
	if cfg.Curve.Density != 10 {
		t.Errorf("expected density 10, got %d", cfg.Curve.Density)
	}
	if cfg.Curve.Wrap {
		t.Error("expected wrap to be false by default")
	}
	if cfg.Mesh.Subdivisions != 16 {
		t.Errorf("expected subdivisions 16, got %d", cfg.Mesh.Subdivisions)
	}
	if cfg.Paths.HandoffFile != "curvePoints.txt" {
		t.Errorf("expected handoff file curvePoints.txt, got %s", cfg.Paths.HandoffFile)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
	if got := cfg.Params(); got != curve.DefaultParams() {
		t.Errorf("Params() = %+v, want %+v", got, curve.DefaultParams())
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "lathe.yaml")

	yamlContent := `
curve:
  mode: linear
  density: 4
  wrap: true
  axis_x: 1.5
  axis_y: -2

mesh:
  subdivisions: 32

paths:
  handoff_file: "out/curve.txt"
  export_dir: "meshes"

preview:
  width: 640
  height: 480
  line_width: 3

logging:
  level: "debug"
  log_file: "lathe.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Curve.Mode != "linear" {
		t.Errorf("expected mode linear, got %s", cfg.Curve.Mode)
	}
	if cfg.Curve.Density != 4 {
		t.Errorf("expected density 4, got %d", cfg.Curve.Density)
	}
	if !cfg.Curve.Wrap {
		t.Error("expected wrap to be true")
	}
	if cfg.Curve.AxisX != 1.5 || cfg.Curve.AxisY != -2 {
		t.Errorf("expected axis (1.5, -2), got (%v, %v)", cfg.Curve.AxisX, cfg.Curve.AxisY)
	}
	if cfg.Mesh.Subdivisions != 32 {
		t.Errorf("expected subdivisions 32, got %d", cfg.Mesh.Subdivisions)
	}
	if cfg.Paths.HandoffFile != "out/curve.txt" {
		t.Errorf("expected handoff file out/curve.txt, got %s", cfg.Paths.HandoffFile)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Paths.ControlPointsDir != "." {
		t.Errorf("expected control points dir '.', got %s", cfg.Paths.ControlPointsDir)
	}
	if cfg.Preview.Width != 640 || cfg.Preview.Height != 480 {
		t.Errorf("expected preview 640x480, got %dx%d", cfg.Preview.Width, cfg.Preview.Height)
	}
	if cfg.Logging.LogFile != "lathe.log" {
		t.Errorf("expected log file lathe.log, got %s", cfg.Logging.LogFile)
	}

	params := cfg.Params()
	if params.Mode != curve.Linear || params.Density != 4 || !params.Wrap {
		t.Errorf("unexpected params %+v", params)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
curve:
  density: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/lathe.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		check   func(*testing.T, *Config)
		wantErr bool
	}{
		{
			name:   "density clamped",
			mutate: func(c *Config) { c.Curve.Density = -3 },
			check: func(t *testing.T, c *Config) {
				if c.Curve.Density != 1 {
					t.Errorf("expected density 1, got %d", c.Curve.Density)
				}
			},
		},
		{
			name:   "subdivisions clamped",
			mutate: func(c *Config) { c.Mesh.Subdivisions = 0 },
			check: func(t *testing.T, c *Config) {
				if c.Mesh.Subdivisions != 1 {
					t.Errorf("expected subdivisions 1, got %d", c.Mesh.Subdivisions)
				}
			},
		},
		{
			name:   "empty handoff file restored",
			mutate: func(c *Config) { c.Paths.HandoffFile = "" },
			check: func(t *testing.T, c *Config) {
				if c.Paths.HandoffFile != "curvePoints.txt" {
					t.Errorf("expected curvePoints.txt, got %s", c.Paths.HandoffFile)
				}
			},
		},
		{
			name:    "unknown mode",
			mutate:  func(c *Config) { c.Curve.Mode = "bezier" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, FileName)
	if err := os.WriteFile(configPath, []byte("mesh:\n  subdivisions: 8\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find lathe.yaml in current directory")
	}
}

func newFlags(t *testing.T, args ...string) *Flags {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parsing %v: %v", args, err)
	}
	return f
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		verify func(*testing.T, *Config)
	}{
		{
			name: "debug flag",
			args: []string{"-debug"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
		},
		{
			name: "mode and density",
			args: []string{"-mode", "linear", "-density", "3"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Curve.Mode != "linear" {
					t.Errorf("expected mode linear, got %s", cfg.Curve.Mode)
				}
				if cfg.Curve.Density != 3 {
					t.Errorf("expected density 3, got %d", cfg.Curve.Density)
				}
			},
		},
		{
			name: "subdivisions",
			args: []string{"-subdivisions", "64"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Mesh.Subdivisions != 64 {
					t.Errorf("expected subdivisions 64, got %d", cfg.Mesh.Subdivisions)
				}
			},
		},
		{
			name: "wrap",
			args: []string{"-wrap"},
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Curve.Wrap {
					t.Error("expected wrap to be true")
				}
			},
		},
		{
			name: "no flags keep defaults",
			args: nil,
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Curve.Density != 10 || cfg.Mesh.Subdivisions != 16 || cfg.Curve.Wrap {
					t.Errorf("defaults changed: %+v %+v", cfg.Curve, cfg.Mesh)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			newFlags(t, tt.args...).apply(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "lathe.yaml")

	yamlContent := `
curve:
  density: 6
  wrap: true
mesh:
  subdivisions: 12
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(newFlags(t, "-config", configPath, "-subdivisions", "24", "-wrap=false"))
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Flags beat the file.
	if cfg.Mesh.Subdivisions != 24 {
		t.Errorf("expected subdivisions 24 from flag, got %d", cfg.Mesh.Subdivisions)
	}
	if cfg.Curve.Wrap {
		t.Error("expected -wrap=false to override the file")
	}
	// The file beats defaults.
	if cfg.Curve.Density != 6 {
		t.Errorf("expected density 6 from file, got %d", cfg.Curve.Density)
	}
}

func TestLoadInvalidMode(t *testing.T) {
	if _, err := Load(newFlags(t, "-config", filepath.Join(t.TempDir(), "missing.yaml"))); err == nil {
		t.Error("expected error for missing explicit config file")
	}

	cfgPath := filepath.Join(t.TempDir(), "lathe.yaml")
	if err := os.WriteFile(cfgPath, []byte("curve:\n  mode: spline\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	if _, err := Load(newFlags(t, "-config", cfgPath)); err == nil {
		t.Error("expected error for unknown curve mode")
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "lathe.yaml")

	cfg := Default()
	cfg.Curve.Mode = "linear"
	cfg.Mesh.Subdivisions = 9
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	if loaded.Curve.Mode != "linear" || loaded.Mesh.Subdivisions != 9 {
		t.Errorf("round trip lost values: %+v %+v", loaded.Curve, loaded.Mesh)
	}
}

func TestSave(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("APPDATA", t.TempDir())

	cfg := Default()
	cfg.Curve.Density = 21
	path, err := cfg.Save()
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if path != filepath.Join(ConfigDir(), FileName) {
		t.Errorf("Save wrote %s, want %s", path, filepath.Join(ConfigDir(), FileName))
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	if loaded.Curve.Density != 21 {
		t.Errorf("expected density 21, got %d", loaded.Curve.Density)
	}
}

func TestMarshal(t *testing.T) {
	data, err := Default().Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	for _, want := range []string{"curve:", "mode: catmull-rom", "subdivisions: 16", "handoff_file: curvePoints.txt"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("YAML missing %q:\n%s", want, data)
		}
	}
}
