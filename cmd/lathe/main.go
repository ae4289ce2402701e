// lathe turns a sketched 2D profile into a surface of revolution.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/lathe/internal/config"
	"github.com/Faultbox/lathe/internal/export"
	"github.com/Faultbox/lathe/internal/logger"
	"github.com/Faultbox/lathe/internal/preview"
	"github.com/Faultbox/lathe/internal/session"
	"github.com/Faultbox/lathe/pkg/curve"
	"github.com/Faultbox/lathe/pkg/formats"
	"github.com/Faultbox/lathe/pkg/math"
	"github.com/Faultbox/lathe/pkg/revolve"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "curve":
		cmdCurve(args)
	case "revolve":
		cmdRevolve(args)
	case "preview":
		cmdPreview(args)
	case "info":
		cmdInfo(args)
	case "config":
		cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`lathe - profile curves to surfaces of revolution

Usage:
  lathe <command> [options]

Commands:
  curve   -in <points.txt> [-out curvePoints.txt]   Evaluate control points, write the curve handoff
  revolve [-in curvePoints.txt] -out <mesh>          Revolve a handoff into a mesh (.obj, .stl, .json)
  preview -in <points.txt> -out <image.png> [-dxf f] Render the curve, its mirror and control points
  info    [-in curvePoints.txt]                      Show handoff and mesh statistics
  config  [-save] [-out lathe.yaml]                  Print the effective config, optionally save it

Global options:
  -config <file>     Config file (default ./lathe.yaml or the user config dir)
  -debug             Enable debug logging
  -mode <name>       catmull-rom or linear
  -density <n>       Samples per curve segment
  -subdivisions <n>  Angular subdivisions of the mesh
  -wrap              Close the curve

Examples:
  lathe curve -in vase.txt -density 16
  lathe revolve -out vase.stl -subdivisions 48
  lathe preview -in vase.txt -out vase.png -dxf vase.dxf
  lathe config -density 16 -save`)
}

// setup parses args with the global flags, loads config and starts logging.
func setup(name string, args []string, fs *flag.FlagSet) *config.Config {
	flags := config.RegisterFlags(fs)
	fs.Parse(args)

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("config loaded", zap.String("command", name), zap.Any("curve", cfg.Curve), zap.Int("subdivisions", cfg.Mesh.Subdivisions))
	return cfg
}

func fail(err error) {
	logger.Error("command failed", zap.Error(err))
	logger.Sync()
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func newSession(cfg *config.Config) *session.Session {
	return session.New(cfg.Params(), math.Vec2{X: cfg.Curve.AxisX, Y: cfg.Curve.AxisY})
}

// inputPath resolves a bare control point file name against the configured
// directory.
func inputPath(cfg *config.Config, path string) string {
	if filepath.IsAbs(path) || filepath.Dir(path) != "." {
		return path
	}
	return filepath.Join(cfg.Paths.ControlPointsDir, path)
}

// exportPath resolves a bare output file name against the export directory.
func exportPath(cfg *config.Config, path string) string {
	if filepath.IsAbs(path) || filepath.Dir(path) != "." {
		return path
	}
	return filepath.Join(cfg.Paths.ExportDir, path)
}

func cmdCurve(args []string) {
	fs := flag.NewFlagSet("curve", flag.ExitOnError)
	in := fs.String("in", "", "Control point file")
	out := fs.String("out", "", "Curve handoff file (default from config)")
	cfg := setup("curve", args, fs)
	defer logger.Sync()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "Usage: lathe curve -in <points.txt> [-out curvePoints.txt]")
		os.Exit(1)
	}
	if *out == "" {
		*out = cfg.Paths.HandoffFile
	}

	s := newSession(cfg)
	if err := s.LoadControlPoints(inputPath(cfg, *in)); err != nil {
		fail(err)
	}
	if err := s.WriteHandoff(*out); err != nil {
		fail(err)
	}

	p := s.Params()
	fmt.Printf("Mode:           %v\n", p.Mode)
	fmt.Printf("Density:        %d\n", p.Density)
	fmt.Printf("Wrap:           %v\n", p.Wrap)
	fmt.Printf("Control points: %d\n", s.PointCount())
	fmt.Printf("Samples:        %d\n", len(s.Sampled()))
	fmt.Printf("Arc length:     %.4f\n", curve.ArcLength(s.Sampled()))
	if !s.CanRevolve() {
		fmt.Printf("Warning: %v needs at least %d control points; %s has no profile\n",
			p.Mode, curve.MinPoints(p.Mode), *out)
	}
}

func cmdRevolve(args []string) {
	fs := flag.NewFlagSet("revolve", flag.ExitOnError)
	in := fs.String("in", "", "Curve handoff file (default from config)")
	out := fs.String("out", "", "Output mesh (.obj, .stl, .json)")
	name := fs.String("name", "", "Mesh name (default from output file)")
	cfg := setup("revolve", args, fs)
	defer logger.Sync()

	if *out == "" {
		fmt.Fprintln(os.Stderr, "Usage: lathe revolve [-in curvePoints.txt] -out <mesh.obj|mesh.stl|mesh.json>")
		os.Exit(1)
	}
	if *in == "" {
		*in = cfg.Paths.HandoffFile
	}

	h, err := formats.ReadCurveHandoffFile(*in)
	if err != nil {
		fail(err)
	}
	mesh, err := revolve.BuildFromHandoff(h, cfg.Mesh.Subdivisions)
	if err != nil {
		fail(err)
	}

	path := exportPath(cfg, *out)
	if *name == "" {
		*name = export.MeshName(path)
	}
	if err := export.Save(path, mesh, *name); err != nil {
		fail(err)
	}
	logger.Info("mesh exported",
		zap.String("path", path),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("triangles", mesh.TriangleCount()),
	)
	fmt.Printf("Wrote %s: %d vertices, %d triangles\n", path, mesh.VertexCount(), mesh.TriangleCount())
}

func cmdPreview(args []string) {
	fs := flag.NewFlagSet("preview", flag.ExitOnError)
	in := fs.String("in", "", "Control point file")
	out := fs.String("out", "", "Output PNG")
	dxfOut := fs.String("dxf", "", "Also write the profile as DXF")
	cfg := setup("preview", args, fs)
	defer logger.Sync()

	if *in == "" || *out == "" {
		fmt.Fprintln(os.Stderr, "Usage: lathe preview -in <points.txt> -out <image.png> [-dxf profile.dxf]")
		os.Exit(1)
	}

	s := newSession(cfg)
	if err := s.LoadControlPoints(inputPath(cfg, *in)); err != nil {
		fail(err)
	}

	opt := preview.DefaultOptions()
	opt.Width = cfg.Preview.Width
	opt.Height = cfg.Preview.Height
	opt.LineWidth = cfg.Preview.LineWidth

	scene := preview.Scene{
		Curve:         s.Sampled(),
		Mirror:        s.Mirror(),
		ControlPoints: s.Points(),
		Axis:          s.Axis(),
	}
	path := exportPath(cfg, *out)
	if err := preview.SavePNG(path, scene, opt); err != nil {
		fail(err)
	}
	logger.Info("preview written", zap.String("path", path), zap.Int("samples", len(scene.Curve)))
	fmt.Printf("Wrote %s\n", path)

	if *dxfOut != "" {
		ox, _ := s.Offsets()
		profile := s.Profile()
		mirror := curve.Offset(s.Mirror(), ox, 0)
		dxfPath := exportPath(cfg, *dxfOut)
		if err := export.SaveProfileDXF(dxfPath, profile, mirror); err != nil {
			fail(err)
		}
		fmt.Printf("Wrote %s\n", dxfPath)
	}
}

func cmdInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	in := fs.String("in", "", "Curve handoff file (default from config)")
	cfg := setup("info", args, fs)
	defer logger.Sync()

	if *in == "" {
		*in = cfg.Paths.HandoffFile
	}

	h, err := formats.ReadCurveHandoffFile(*in)
	if err != nil {
		fail(err)
	}

	fmt.Printf("Handoff:        %s\n", *in)
	fmt.Printf("Mode:           %v\n", h.Mode)
	fmt.Printf("Control points: %d\n", h.ControlPoints)
	fmt.Printf("Profile points: %d\n", len(h.Profile))
	fmt.Printf("Arc length:     %.4f\n", curve.ArcLength(h.Profile))
	if !h.Revolvable() {
		fmt.Println("Revolvable:     no")
		return
	}

	mesh, err := revolve.BuildFromHandoff(h, cfg.Mesh.Subdivisions)
	if err != nil {
		fail(err)
	}
	size := mesh.Bounds.Size()
	fmt.Println("Revolvable:     yes")
	fmt.Println()
	fmt.Printf("Subdivisions:   %d\n", mesh.Subdivisions)
	fmt.Printf("Vertices:       %d\n", mesh.VertexCount())
	fmt.Printf("Triangles:      %d\n", mesh.TriangleCount())
	fmt.Printf("Bounds:         %v - %v\n", mesh.Bounds.Min, mesh.Bounds.Max)
	fmt.Printf("Size:           %.4f x %.4f x %.4f\n", size[0], size[1], size[2])
	if err := mesh.Validate(); err != nil {
		fmt.Printf("Validation:     %v\n", err)
		return
	}
	fmt.Println("Validation:     ok")
}

func cmdConfig(args []string) {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	save := fs.Bool("save", false, "Save to the user config directory")
	out := fs.String("out", "", "Save to this file instead")
	cfg := setup("config", args, fs)
	defer logger.Sync()

	data, err := cfg.Marshal()
	if err != nil {
		fail(err)
	}
	fmt.Print(string(data))

	switch {
	case *out != "":
		if err := cfg.SaveTo(*out); err != nil {
			fail(err)
		}
		logger.Info("config saved", zap.String("path", *out))
		fmt.Printf("Wrote %s\n", *out)
	case *save:
		path, err := cfg.Save()
		if err != nil {
			fail(err)
		}
		logger.Info("config saved", zap.String("path", path))
		fmt.Printf("Wrote %s\n", path)
	}
}
