package teebox

import (
	"fmt"
	"math"
)

// Point2D is a position on the tee box in feet. X runs left to right and
// Y runs front to back. Points are not bounds-checked.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DiagonalModel selects how progress along a diagonal slope is measured.
type DiagonalModel int

const (
	// DiagonalEuclidean measures straight-line distance from the start
	// corner as a fraction of the diagonal length.
	DiagonalEuclidean DiagonalModel = iota
	// DiagonalAxisAverage averages the two axis fractions. It reproduces the
	// earlier calculator and is kept for side-by-side comparison only.
	DiagonalAxisAverage
)

// String returns the identifier used in config files and flags.
func (m DiagonalModel) String() string {
	switch m {
	case DiagonalEuclidean:
		return "euclidean"
	case DiagonalAxisAverage:
		return "average"
	default:
		return fmt.Sprintf("DiagonalModel(%d)", int(m))
	}
}

// ParseDiagonalModel parses "euclidean" or "average". An empty string
// selects DiagonalEuclidean.
func ParseDiagonalModel(s string) (DiagonalModel, error) {
	switch s {
	case "", "euclidean":
		return DiagonalEuclidean, nil
	case "average":
		return DiagonalAxisAverage, nil
	default:
		return 0, fmt.Errorf("unknown diagonal model %q (want euclidean or average)", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m DiagonalModel) MarshalText() ([]byte, error) {
	if m != DiagonalEuclidean && m != DiagonalAxisAverage {
		return nil, fmt.Errorf("unknown diagonal model %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *DiagonalModel) UnmarshalText(text []byte) error {
	parsed, err := ParseDiagonalModel(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// SurfaceConfig fully determines the elevation field of a tee box.
// All lengths are in feet; SlopePercent is rise/run x 100.
type SurfaceConfig struct {
	Width         float64        `json:"width"`
	Depth         float64        `json:"depth"`
	BaseElevation float64        `json:"base_elevation"`
	SlopePercent  float64        `json:"slope_percent"`
	Direction     SlopeDirection `json:"slope_direction"`
	Diagonal      DiagonalModel  `json:"diagonal_model"`
}

// Validate checks the dimensions and enumerations. It is called by every
// exported computation before any work is done.
func (c SurfaceConfig) Validate() error {
	if !isPositiveFinite(c.Width) {
		return fmt.Errorf("%w: width must be positive, got %g", ErrInvalidDimension, c.Width)
	}
	if !isPositiveFinite(c.Depth) {
		return fmt.Errorf("%w: depth must be positive, got %g", ErrInvalidDimension, c.Depth)
	}
	if !isPositiveFinite(c.DiagonalLength()) {
		return fmt.Errorf("%w: diagonal length must be positive, got %g", ErrInvalidDimension, c.DiagonalLength())
	}
	if !c.Direction.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidDirection, int(c.Direction))
	}
	if c.Diagonal != DiagonalEuclidean && c.Diagonal != DiagonalAxisAverage {
		return fmt.Errorf("unknown diagonal model %d", int(c.Diagonal))
	}
	if !isFinite(c.BaseElevation) {
		return fmt.Errorf("%w: base elevation must be finite, got %g", ErrInvalidElevation, c.BaseElevation)
	}
	if !isFinite(c.SlopePercent) {
		return fmt.Errorf("%w: slope percent must be finite, got %g", ErrInvalidElevation, c.SlopePercent)
	}
	return c.checkElevationRange()
}

// checkElevationRange rejects surfaces whose corner elevations, or the
// spread between them, overflow. A planar field takes its extremes at the
// corners, so every sampled cell and delta is then finite as well.
func (c SurfaceConfig) checkElevationRange() error {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range []Point2D{{0, 0}, {c.Width, 0}, {0, c.Depth}, {c.Width, c.Depth}} {
		v := c.elevationAt(p)
		if !isFinite(v) {
			return fmt.Errorf("%w: elevation at (%g, %g) overflows", ErrInvalidElevation, p.X, p.Y)
		}
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	if !isFinite(hi - lo) {
		return fmt.Errorf("%w: elevation range %g..%g overflows", ErrInvalidElevation, lo, hi)
	}
	return nil
}

// DiagonalLength is the corner-to-corner distance of the surface.
func (c SurfaceConfig) DiagonalLength() float64 {
	return math.Hypot(c.Width, c.Depth)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
