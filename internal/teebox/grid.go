package teebox

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// MaxGridCells caps rows*cols so a tiny grid size cannot exhaust memory.
const MaxGridCells = 1 << 22

// ElevationGrid holds sampled elevations in feet. Row index steps front to
// back, column index steps left to right. Grids are rebuilt on every
// request and never patched in place.
type ElevationGrid [][]float64

// Rows returns the number of front-to-back rows.
func (g ElevationGrid) Rows() int { return len(g) }

// Cols returns the number of left-to-right columns.
func (g ElevationGrid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Values returns the elevations flattened in row-major order.
func (g ElevationGrid) Values() []float64 {
	out := make([]float64, 0, g.Rows()*g.Cols())
	for _, row := range g {
		out = append(out, row...)
	}
	return out
}

// Min returns the lowest elevation, or 0 for an empty grid.
func (g ElevationGrid) Min() float64 {
	v := g.Values()
	if len(v) == 0 {
		return 0
	}
	return floats.Min(v)
}

// Max returns the highest elevation, or 0 for an empty grid.
func (g ElevationGrid) Max() float64 {
	v := g.Values()
	if len(v) == 0 {
		return 0
	}
	return floats.Max(v)
}

// GridOptions tunes how sample points are placed.
type GridOptions struct {
	// ClampToEdges keeps every sample inside [0, span] and places the last
	// row and column on the far edge. The default samples at col*gridSize
	// and row*gridSize, which never reaches the right or back edge.
	ClampToEdges bool `json:"clamp_edges"`
}

// GridDims returns the number of rows and columns sampled for gridSize:
// rows = ceil(depth/gridSize), cols = ceil(width/gridSize).
func GridDims(c SurfaceConfig, gridSize float64) (rows, cols int, err error) {
	if err := c.Validate(); err != nil {
		return 0, 0, err
	}
	if !isPositiveFinite(gridSize) {
		return 0, 0, fmt.Errorf("%w: grid size must be positive, got %g", ErrInvalidGridSize, gridSize)
	}

	fr := math.Ceil(c.Depth / gridSize)
	fc := math.Ceil(c.Width / gridSize)
	if fr < 1 || fc < 1 {
		return 0, 0, fmt.Errorf("%w: grid size %g yields an empty grid", ErrInvalidGridSize, gridSize)
	}
	if fr*fc > MaxGridCells {
		return 0, 0, fmt.Errorf("%w: grid size %g yields %.0f cells (max %d)", ErrInvalidGridSize, gridSize, fr*fc, MaxGridCells)
	}
	return int(fr), int(fc), nil
}

// SampleAxes returns the x coordinate of every column and the y coordinate
// of every row.
func SampleAxes(c SurfaceConfig, gridSize float64, opts GridOptions) (xs, ys []float64, err error) {
	rows, cols, err := GridDims(c, gridSize)
	if err != nil {
		return nil, nil, err
	}
	xs = sampleAxis(cols, gridSize, c.Width, opts.ClampToEdges)
	ys = sampleAxis(rows, gridSize, c.Depth, opts.ClampToEdges)
	return xs, ys, nil
}

func sampleAxis(n int, gridSize, span float64, clamp bool) []float64 {
	axis := make([]float64, n)
	for i := range axis {
		axis[i] = float64(i) * gridSize
		if clamp && axis[i] > span {
			axis[i] = span
		}
	}
	if clamp && n > 1 {
		axis[n-1] = span
	}
	return axis
}

// GenerateGrid samples the surface every gridSize feet starting at the
// front-left corner. Sample points are not clamped to the surface.
func GenerateGrid(c SurfaceConfig, gridSize float64) (ElevationGrid, error) {
	return GenerateGridWithOptions(c, gridSize, GridOptions{})
}

// GenerateGridWithOptions is GenerateGrid with explicit sampling options.
// Each cell is evaluated independently from the read-only config.
func GenerateGridWithOptions(c SurfaceConfig, gridSize float64, opts GridOptions) (ElevationGrid, error) {
	xs, ys, err := SampleAxes(c, gridSize, opts)
	if err != nil {
		return nil, err
	}

	grid := make(ElevationGrid, len(ys))
	for row, y := range ys {
		rowData := make([]float64, len(xs))
		for col, x := range xs {
			rowData[col] = c.elevationAt(Point2D{X: x, Y: y})
		}
		grid[row] = rowData
	}
	return grid, nil
}
