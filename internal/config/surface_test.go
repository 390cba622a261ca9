package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/banshee-data/teebox/internal/teebox"
	"github.com/banshee-data/teebox/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

func TestDefaultSurfaceFile(t *testing.T) {
	cfg := DefaultSurfaceFile()

	if cfg.Width == nil || *cfg.Width != 30 {
		t.Errorf("Expected Width 30, got %v", cfg.Width)
	}
	if cfg.Depth == nil || *cfg.Depth != 100 {
		t.Errorf("Expected Depth 100, got %v", cfg.Depth)
	}
	if cfg.GridSize == nil || *cfg.GridSize != 10 {
		t.Errorf("Expected GridSize 10, got %v", cfg.GridSize)
	}
	if cfg.SlopeDirection == nil || *cfg.SlopeDirection != "frontToBack" {
		t.Errorf("Expected SlopeDirection frontToBack, got %v", cfg.SlopeDirection)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestMustLoadDefaultConfigMatchesDefaults(t *testing.T) {
	loaded := MustLoadDefaultConfig()
	if diff := cmp.Diff(DefaultSurfaceFile(), loaded); diff != "" {
		t.Errorf("defaults file drifted from DefaultSurfaceFile (-want +got):\n%s", diff)
	}
}

func TestLoadSurfaceConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "tee.json")

	testJSON := `{
  "width": 40,
  "depth": 120,
  "grid_size": 5,
  "base_elevation_ft": 101,
  "base_elevation_in": 6,
  "slope_percent": -1.5,
  "slope_direction": "Back-Right to Front-Left",
  "clamp_edges": true,
  "display_units": "ft"
}`
	if err := os.WriteFile(configPath, []byte(testJSON), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadSurfaceConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	surface, err := cfg.ToSurface()
	if err != nil {
		t.Fatalf("ToSurface failed: %v", err)
	}
	want := teebox.SurfaceConfig{
		Width:         40,
		Depth:         120,
		BaseElevation: 101.5,
		SlopePercent:  -1.5,
		Direction:     teebox.BackRightToFrontLeft,
		Diagonal:      teebox.DiagonalEuclidean,
	}
	if diff := cmp.Diff(want, surface); diff != "" {
		t.Errorf("surface mismatch (-want +got):\n%s", diff)
	}
	if cfg.GetGridSize() != 5 {
		t.Errorf("GetGridSize() = %f, want 5", cfg.GetGridSize())
	}
	if !cfg.GridOptions().ClampToEdges {
		t.Error("expected ClampToEdges from clamp_edges")
	}
	if cfg.GetDisplayUnits() != "ft" {
		t.Errorf("GetDisplayUnits() = %s, want ft", cfg.GetDisplayUnits())
	}
}

func TestLoadSurfaceConfigPartial(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "partial.json")
	if err := os.WriteFile(configPath, []byte(`{"slope_percent": 2}`), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadSurfaceConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.GetWidth() != DefaultWidth || cfg.GetDepth() != DefaultDepth {
		t.Errorf("expected default dimensions, got %f x %f", cfg.GetWidth(), cfg.GetDepth())
	}
	if cfg.GetSlopePercent() != 2 {
		t.Errorf("GetSlopePercent() = %f, want 2", cfg.GetSlopePercent())
	}
	if cfg.GetBaseElevation() != 0 {
		t.Errorf("GetBaseElevation() = %f, want 0", cfg.GetBaseElevation())
	}
}

func TestLoadSurfaceConfigMissing(t *testing.T) {
	_, err := LoadSurfaceConfig("/nonexistent/path/to/config.json")
	if err == nil {
		t.Error("Expected error when loading missing file, got nil")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped os.ErrNotExist, got %v", err)
	}
}

func TestLoadSurfaceConfigWrongExtension(t *testing.T) {
	_, err := LoadSurfaceConfig("surface.yaml")
	if err == nil {
		t.Error("Expected error for non-json extension, got nil")
	}
}

func TestLoadSurfaceConfigInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid_config.json")

	invalidJSON := `{
  "width": "wide"
`
	if err := os.WriteFile(configPath, []byte(invalidJSON), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	_, err := LoadSurfaceConfig(configPath)
	if err == nil {
		t.Error("Expected error when loading invalid JSON, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *SurfaceFile
		wantErr bool
	}{
		{"valid config", DefaultSurfaceFile(), false},
		{"empty config is valid", &SurfaceFile{}, false},
		{"zero width", &SurfaceFile{Width: ptrFloat64(0)}, true},
		{"negative depth", &SurfaceFile{Depth: ptrFloat64(-3)}, true},
		{"zero grid size", &SurfaceFile{GridSize: ptrFloat64(0)}, true},
		{"unknown direction", &SurfaceFile{SlopeDirection: ptrString("uphill")}, true},
		{"label direction", &SurfaceFile{SlopeDirection: ptrString("Left to Right")}, false},
		{"unknown diagonal model", &SurfaceFile{DiagonalModel: ptrString("manhattan")}, true},
		{"unknown units", &SurfaceFile{DisplayUnits: ptrString("m")}, true},
		{"infinite width", &SurfaceFile{Width: ptrFloat64(math.Inf(1))}, true},
		{"NaN grid size", &SurfaceFile{GridSize: ptrFloat64(math.NaN())}, true},
		{"NaN slope", &SurfaceFile{SlopePercent: ptrFloat64(math.NaN())}, true},
		{"infinite slope", &SurfaceFile{SlopePercent: ptrFloat64(math.Inf(1))}, true},
		{"negative infinite base feet", &SurfaceFile{BaseElevationFt: ptrFloat64(math.Inf(-1))}, true},
		{"NaN base inches", &SurfaceFile{BaseElevationIn: ptrFloat64(math.NaN())}, true},
		{"negative slope and base", &SurfaceFile{SlopePercent: ptrFloat64(-4), BaseElevationFt: ptrFloat64(-2)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestOverlay(t *testing.T) {
	cfg := DefaultSurfaceFile()
	cfg.Overlay(&SurfaceFile{
		Width:          ptrFloat64(45),
		SlopeDirection: ptrString("leftToRight"),
		ClampEdges:     ptrBool(true),
	})

	if cfg.GetWidth() != 45 {
		t.Errorf("GetWidth() = %f, want 45", cfg.GetWidth())
	}
	if cfg.GetDepth() != DefaultDepth {
		t.Errorf("GetDepth() = %f, want %f", cfg.GetDepth(), DefaultDepth)
	}
	dir, err := cfg.GetSlopeDirection()
	if err != nil || dir != teebox.LeftToRight {
		t.Errorf("GetSlopeDirection() = %v, %v; want leftToRight", dir, err)
	}
	if !cfg.GetClampEdges() {
		t.Error("expected clamp_edges overlay to apply")
	}

	cfg.Overlay(nil)
	if cfg.GetWidth() != 45 {
		t.Error("nil overlay should be a no-op")
	}
}

func TestGetBaseElevation(t *testing.T) {
	tests := []struct {
		name string
		ft   *float64
		in   *float64
		want float64
	}{
		{"unset", nil, nil, 0},
		{"feet only", ptrFloat64(10), nil, 10},
		{"inches only", nil, ptrFloat64(6), 0.5},
		{"feet and inches", ptrFloat64(-2), ptrFloat64(3), -1.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &SurfaceFile{BaseElevationFt: tt.ft, BaseElevationIn: tt.in}
			if got := cfg.GetBaseElevation(); got != tt.want {
				t.Errorf("GetBaseElevation() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestToSurfaceRejectsOverflowingElevation(t *testing.T) {
	cfg := DefaultSurfaceFile()
	cfg.BaseElevationFt = ptrFloat64(1e308)
	cfg.SlopePercent = ptrFloat64(1e308)

	// each value is finite, so the file itself validates
	testutil.AssertNoError(t, cfg.Validate())

	_, err := cfg.ToSurface()
	testutil.AssertErrorIs(t, err, teebox.ErrInvalidElevation)
}

func TestToSurfaceBaseElevation(t *testing.T) {
	cfg := DefaultSurfaceFile()
	cfg.BaseElevationFt = ptrFloat64(-3)
	cfg.BaseElevationIn = ptrFloat64(4)

	s, err := cfg.ToSurface()
	testutil.AssertNoError(t, err)
	testutil.AssertFloatNear(t, s.BaseElevation, -3+4.0/12, 1e-12)
}
