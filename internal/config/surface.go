// Package config loads tee box surface settings from JSON files.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/banshee-data/teebox/internal/teebox"
	"github.com/banshee-data/teebox/internal/units"
)

// DefaultConfigPath is the path to the canonical surface defaults file.
const DefaultConfigPath = "config/teebox.defaults.json"

// Fallback values used when a field is absent from the file.
const (
	DefaultWidth           = 30.0
	DefaultDepth           = 100.0
	DefaultGridSize        = 10.0
	DefaultSlopePercent    = 1.0
	DefaultSlopeDirection  = "frontToBack"
	DefaultDiagonalModel   = "euclidean"
	DefaultDisplayUnits    = units.FeetInches
	maxConfigFileSizeBytes = 1 * 1024 * 1024
)

// SurfaceFile is the on-disk surface configuration. Every field is optional;
// the Get* methods fall back to the package defaults.
type SurfaceFile struct {
	// Dimensions in feet
	Width    *float64 `json:"width,omitempty"`
	Depth    *float64 `json:"depth,omitempty"`
	GridSize *float64 `json:"grid_size,omitempty"`

	// Base elevation is entered as feet plus inches
	BaseElevationFt *float64 `json:"base_elevation_ft,omitempty"`
	BaseElevationIn *float64 `json:"base_elevation_in,omitempty"`

	SlopePercent   *float64 `json:"slope_percent,omitempty"`
	SlopeDirection *string  `json:"slope_direction,omitempty"` // "frontToBack" or "Front to Back"

	// Sampling and presentation
	ClampEdges    *bool   `json:"clamp_edges,omitempty"`
	DiagonalModel *string `json:"diagonal_model,omitempty"` // "euclidean" or "average"
	DisplayUnits  *string `json:"display_units,omitempty"`  // "ft-in", "ft" or "in"
}

// Helper functions to create pointers
func ptrFloat64(v float64) *float64 { return &v }
func ptrBool(v bool) *bool          { return &v }
func ptrString(v string) *string    { return &v }

// EmptySurfaceFile returns a SurfaceFile with all fields set to nil.
func EmptySurfaceFile() *SurfaceFile {
	return &SurfaceFile{}
}

// DefaultSurfaceFile returns a SurfaceFile with every field populated from
// the package defaults.
func DefaultSurfaceFile() *SurfaceFile {
	return &SurfaceFile{
		Width:           ptrFloat64(DefaultWidth),
		Depth:           ptrFloat64(DefaultDepth),
		GridSize:        ptrFloat64(DefaultGridSize),
		BaseElevationFt: ptrFloat64(0),
		BaseElevationIn: ptrFloat64(0),
		SlopePercent:    ptrFloat64(DefaultSlopePercent),
		SlopeDirection:  ptrString(DefaultSlopeDirection),
		ClampEdges:      ptrBool(false),
		DiagonalModel:   ptrString(DefaultDiagonalModel),
		DisplayUnits:    ptrString(DefaultDisplayUnits),
	}
}

// LoadSurfaceConfig loads a SurfaceFile from a JSON file.
// The file must have a .json extension and be under 1MB.
// Fields omitted from the file keep their defaults, so partial configs are safe.
func LoadSurfaceConfig(path string) (*SurfaceFile, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxConfigFileSizeBytes {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxConfigFileSizeBytes)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptySurfaceFile()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// MustLoadDefaultConfig loads DefaultConfigPath, searching the current
// directory and its parents. Panics if the file cannot be loaded; intended
// for test setup.
func MustLoadDefaultConfig() *SurfaceFile {
	candidates := []string{
		DefaultConfigPath,
		"../" + DefaultConfigPath,
		"../../" + DefaultConfigPath, // from internal/config/
		"../../../" + DefaultConfigPath,
	}
	for _, path := range candidates {
		if cfg, err := LoadSurfaceConfig(path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultConfigPath + " - run tests from repository root")
}

// Validate checks the values that are set. Unset fields are always valid.
func (c *SurfaceFile) Validate() error {
	if c.Width != nil && !isPositiveFinite(*c.Width) {
		return fmt.Errorf("width must be positive, got %f", *c.Width)
	}
	if c.Depth != nil && !isPositiveFinite(*c.Depth) {
		return fmt.Errorf("depth must be positive, got %f", *c.Depth)
	}
	if c.GridSize != nil && !isPositiveFinite(*c.GridSize) {
		return fmt.Errorf("grid_size must be positive, got %f", *c.GridSize)
	}
	for _, f := range []struct {
		name string
		v    *float64
	}{
		{"base_elevation_ft", c.BaseElevationFt},
		{"base_elevation_in", c.BaseElevationIn},
		{"slope_percent", c.SlopePercent},
	} {
		if f.v != nil && (math.IsNaN(*f.v) || math.IsInf(*f.v, 0)) {
			return fmt.Errorf("%s must be a finite number, got %f", f.name, *f.v)
		}
	}
	if c.SlopeDirection != nil {
		if _, err := teebox.ParseDirection(*c.SlopeDirection); err != nil {
			return fmt.Errorf("slope_direction: %w", err)
		}
	}
	if c.DiagonalModel != nil {
		if _, err := teebox.ParseDiagonalModel(*c.DiagonalModel); err != nil {
			return fmt.Errorf("diagonal_model: %w", err)
		}
	}
	if c.DisplayUnits != nil && !units.IsValid(*c.DisplayUnits) {
		return fmt.Errorf("display_units must be one of %s, got %q", units.GetValidUnitsString(), *c.DisplayUnits)
	}
	return nil
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// Overlay copies every field that is set in o onto c.
// Command-line overrides are applied this way.
func (c *SurfaceFile) Overlay(o *SurfaceFile) {
	if o == nil {
		return
	}
	if o.Width != nil {
		c.Width = o.Width
	}
	if o.Depth != nil {
		c.Depth = o.Depth
	}
	if o.GridSize != nil {
		c.GridSize = o.GridSize
	}
	if o.BaseElevationFt != nil {
		c.BaseElevationFt = o.BaseElevationFt
	}
	if o.BaseElevationIn != nil {
		c.BaseElevationIn = o.BaseElevationIn
	}
	if o.SlopePercent != nil {
		c.SlopePercent = o.SlopePercent
	}
	if o.SlopeDirection != nil {
		c.SlopeDirection = o.SlopeDirection
	}
	if o.ClampEdges != nil {
		c.ClampEdges = o.ClampEdges
	}
	if o.DiagonalModel != nil {
		c.DiagonalModel = o.DiagonalModel
	}
	if o.DisplayUnits != nil {
		c.DisplayUnits = o.DisplayUnits
	}
}

// GetWidth returns the width value or the default.
func (c *SurfaceFile) GetWidth() float64 {
	if c.Width == nil {
		return DefaultWidth
	}
	return *c.Width
}

// GetDepth returns the depth value or the default.
func (c *SurfaceFile) GetDepth() float64 {
	if c.Depth == nil {
		return DefaultDepth
	}
	return *c.Depth
}

// GetGridSize returns the grid_size value or the default.
func (c *SurfaceFile) GetGridSize() float64 {
	if c.GridSize == nil {
		return DefaultGridSize
	}
	return *c.GridSize
}

// GetBaseElevation combines base_elevation_ft and base_elevation_in into
// decimal feet.
func (c *SurfaceFile) GetBaseElevation() float64 {
	var ft, in float64
	if c.BaseElevationFt != nil {
		ft = *c.BaseElevationFt
	}
	if c.BaseElevationIn != nil {
		in = *c.BaseElevationIn
	}
	return units.FeetInchesToDecimal(ft, in)
}

// GetSlopePercent returns the slope_percent value or the default.
func (c *SurfaceFile) GetSlopePercent() float64 {
	if c.SlopePercent == nil {
		return DefaultSlopePercent
	}
	return *c.SlopePercent
}

// GetSlopeDirection parses slope_direction, defaulting to front to back.
func (c *SurfaceFile) GetSlopeDirection() (teebox.SlopeDirection, error) {
	if c.SlopeDirection == nil || *c.SlopeDirection == "" {
		return teebox.FrontToBack, nil
	}
	return teebox.ParseDirection(*c.SlopeDirection)
}

// GetDiagonalModel parses diagonal_model, defaulting to euclidean.
func (c *SurfaceFile) GetDiagonalModel() (teebox.DiagonalModel, error) {
	if c.DiagonalModel == nil {
		return teebox.DiagonalEuclidean, nil
	}
	return teebox.ParseDiagonalModel(*c.DiagonalModel)
}

// GetClampEdges returns the clamp_edges value or the default.
func (c *SurfaceFile) GetClampEdges() bool {
	if c.ClampEdges == nil {
		return false
	}
	return *c.ClampEdges
}

// GetDisplayUnits returns the display_units value or the default.
func (c *SurfaceFile) GetDisplayUnits() string {
	if c.DisplayUnits == nil || *c.DisplayUnits == "" {
		return DefaultDisplayUnits
	}
	return *c.DisplayUnits
}

// GridOptions returns the sampling options for the grid.
func (c *SurfaceFile) GridOptions() teebox.GridOptions {
	return teebox.GridOptions{ClampToEdges: c.GetClampEdges()}
}

// ToSurface builds a validated teebox.SurfaceConfig.
func (c *SurfaceFile) ToSurface() (teebox.SurfaceConfig, error) {
	dir, err := c.GetSlopeDirection()
	if err != nil {
		return teebox.SurfaceConfig{}, err
	}
	model, err := c.GetDiagonalModel()
	if err != nil {
		return teebox.SurfaceConfig{}, err
	}
	s := teebox.SurfaceConfig{
		Width:         c.GetWidth(),
		Depth:         c.GetDepth(),
		BaseElevation: c.GetBaseElevation(),
		SlopePercent:  c.GetSlopePercent(),
		Direction:     dir,
		Diagonal:      model,
	}
	if err := s.Validate(); err != nil {
		return teebox.SurfaceConfig{}, err
	}
	return s, nil
}
