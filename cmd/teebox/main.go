package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/banshee-data/teebox/internal/config"
	"github.com/banshee-data/teebox/internal/fsutil"
	"github.com/banshee-data/teebox/internal/monitoring"
	"github.com/banshee-data/teebox/internal/render"
	"github.com/banshee-data/teebox/internal/security"
	"github.com/banshee-data/teebox/internal/teebox"
	"github.com/banshee-data/teebox/internal/timeutil"
	"github.com/banshee-data/teebox/internal/units"
	"github.com/banshee-data/teebox/internal/version"
)

var (
	configPath   = flag.String("config", "", "Path to a surface JSON config file (optional)")
	width        = flag.Float64("width", config.DefaultWidth, "Tee box width in feet (left to right)")
	depth        = flag.Float64("depth", config.DefaultDepth, "Tee box depth in feet (front to back)")
	gridSize     = flag.Float64("grid", config.DefaultGridSize, "Grid spacing in feet")
	baseFt       = flag.Float64("base-ft", 0, "Base elevation, feet part")
	baseIn       = flag.Float64("base-in", 0, "Base elevation, inches part")
	slopePercent = flag.Float64("slope", config.DefaultSlopePercent, "Slope in percent grade (signed)")
	direction    = flag.String("direction", config.DefaultSlopeDirection, "Slope direction, e.g. frontToBack or \"Front-Left to Back-Right\"")
	clampEdges   = flag.Bool("clamp", false, "Clamp samples to the surface and place the last row/column on the far edge")
	diagonal     = flag.String("diagonal", config.DefaultDiagonalModel, "Diagonal model: euclidean or average")
	displayUnits = flag.String("units", config.DefaultDisplayUnits, "Display units: "+units.GetValidUnitsString())
	format       = flag.String("format", "table", "Output format: table, csv, json or html")
	heatmapOut   = flag.String("heatmap", "", "Write a PNG heatmap to this path (a trailing / picks a file name)")
	surfaceOut   = flag.String("surface", "", "Write an HTML 3D surface chart to this path (a trailing / picks a file name)")
	verbose      = flag.Bool("v", false, "Verbose logging")
	showVersion  = flag.Bool("version", false, "Print version and exit")
)

// validFormats lists the -format values.
var validFormats = []string{"table", "csv", "json", "html"}

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}
	monitoring.SetVerbose(*verbose)

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg, err := loadConfig(*configPath, flagOverrides(set))
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	opts := outputOptions{
		Format:      *format,
		HeatmapPath: *heatmapOut,
		SurfacePath: *surfaceOut,
	}
	if err := run(os.Stdout, fsutil.OSFileSystem{}, cfg, opts); err != nil {
		log.Fatalf("teebox: %v", err)
	}
}

// flagOverrides collects the flags the user set explicitly so they win over
// the config file.
func flagOverrides(set map[string]bool) *config.SurfaceFile {
	o := config.EmptySurfaceFile()
	if set["width"] {
		o.Width = width
	}
	if set["depth"] {
		o.Depth = depth
	}
	if set["grid"] {
		o.GridSize = gridSize
	}
	if set["base-ft"] {
		o.BaseElevationFt = baseFt
	}
	if set["base-in"] {
		o.BaseElevationIn = baseIn
	}
	if set["slope"] {
		o.SlopePercent = slopePercent
	}
	if set["direction"] {
		o.SlopeDirection = direction
	}
	if set["clamp"] {
		o.ClampEdges = clampEdges
	}
	if set["diagonal"] {
		o.DiagonalModel = diagonal
	}
	if set["units"] {
		o.DisplayUnits = displayUnits
	}
	return o
}

// loadConfig starts from the built-in defaults, applies the config file if
// one is given, then the command-line overrides.
func loadConfig(path string, overrides *config.SurfaceFile) (*config.SurfaceFile, error) {
	cfg := config.DefaultSurfaceFile()
	if path != "" {
		fileCfg, err := config.LoadSurfaceConfig(path)
		if err != nil {
			return nil, err
		}
		cfg.Overlay(fileCfg)
		monitoring.Debugf("loaded surface config from %s", path)
	}
	cfg.Overlay(overrides)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

type outputOptions struct {
	Format      string
	HeatmapPath string
	SurfacePath string
}

func isValidFormat(f string) bool {
	for _, v := range validFormats {
		if f == v {
			return true
		}
	}
	return false
}

// artifactPath expands a directory path (trailing separator) into a file
// named after the slope direction, then checks the result is writable.
func artifactPath(path, ext string, dir teebox.SlopeDirection) (string, error) {
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		path = filepath.Join(path, security.ArtifactFilename(dir.Label(), ext))
	}
	if err := security.ValidateArtifactPath(path, ext); err != nil {
		return "", err
	}
	return path, nil
}

// run performs one generate request and writes every requested output.
func run(stdout io.Writer, fsys fsutil.FileSystem, cfg *config.SurfaceFile, opts outputOptions) error {
	if !isValidFormat(opts.Format) {
		return fmt.Errorf("unknown format %q (want one of %v)", opts.Format, validFormats)
	}

	surface, err := cfg.ToSurface()
	if err != nil {
		return err
	}

	heatmapPath, surfacePath := opts.HeatmapPath, opts.SurfacePath
	if heatmapPath != "" {
		if heatmapPath, err = artifactPath(heatmapPath, ".png", surface.Direction); err != nil {
			return err
		}
	}
	if surfacePath != "" {
		if surfacePath, err = artifactPath(surfacePath, ".html", surface.Direction); err != nil {
			return err
		}
	}
	clock := timeutil.RealClock{}
	start := clock.Now()
	report, err := teebox.Generate(surface, cfg.GetGridSize(), cfg.GridOptions())
	if err != nil {
		return err
	}
	monitoring.Debugf("generated %dx%d grid in %v, elevation %.3f..%.3f ft",
		report.Summary.Rows, report.Summary.Cols, clock.Since(start),
		report.Summary.Min, report.Summary.Max)

	displayUnits := cfg.GetDisplayUnits()
	switch opts.Format {
	case "csv":
		err = render.WriteCSV(stdout, report)
	case "json":
		err = render.WriteJSON(stdout, report, displayUnits)
	case "html":
		err = render.WriteHTML(stdout, report, displayUnits)
	default:
		if err = render.WriteTable(stdout, report, displayUnits); err == nil {
			fmt.Fprintln(stdout)
			err = render.WriteSummary(stdout, report, displayUnits)
		}
	}
	if err != nil {
		return fmt.Errorf("failed to write %s output: %w", opts.Format, err)
	}

	if heatmapPath != "" {
		if err := writeArtifact(fsys, heatmapPath, "heatmap", func(w io.Writer) error {
			return render.WriteHeatmapPNG(w, report)
		}); err != nil {
			return err
		}
	}
	if surfacePath != "" {
		if err := writeArtifact(fsys, surfacePath, "surface chart", func(w io.Writer) error {
			return render.WriteSurfaceChart(w, report)
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeArtifact(fsys fsutil.FileSystem, path, kind string, write func(io.Writer) error) error {
	if fsys.Exists(path) {
		monitoring.Debugf("replacing existing %s at %s", kind, path)
	}
	if err := fsutil.WriteArtifact(fsys, path, write); err != nil {
		return err
	}
	monitoring.Logf("wrote %s to %s", kind, path)
	return nil
}
