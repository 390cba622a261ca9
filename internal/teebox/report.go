package teebox

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Summary describes the spread of a sampled grid.
type Summary struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Mean float64 `json:"mean"`
	Rows int     `json:"rows"`
	Cols int     `json:"cols"`
}

// Summarize computes the grid summary. An empty grid yields a zero Summary.
func Summarize(g ElevationGrid) Summary {
	values := g.Values()
	if len(values) == 0 {
		return Summary{}
	}
	return Summary{
		Min:  g.Min(),
		Max:  g.Max(),
		Mean: stat.Mean(values, nil),
		Rows: g.Rows(),
		Cols: g.Cols(),
	}
}

// Report is the result of one generate request.
type Report struct {
	Config   SurfaceConfig `json:"config"`
	GridSize float64       `json:"grid_size"`
	Options  GridOptions   `json:"options"`
	Grid     ElevationGrid `json:"grid"`
	Deltas   DeltaSet      `json:"deltas"`
	Summary  Summary       `json:"summary"`
}

// Generate builds the grid and deltas for c. Inputs are validated up front
// and no partial report is returned on error.
func Generate(c SurfaceConfig, gridSize float64, opts GridOptions) (*Report, error) {
	grid, err := GenerateGridWithOptions(c, gridSize, opts)
	if err != nil {
		return nil, err
	}
	deltas, err := ComputeDeltas(c)
	if err != nil {
		return nil, err
	}
	summary := Summarize(grid)
	if !isFinite(summary.Mean) {
		return nil, fmt.Errorf("%w: mean elevation overflows", ErrInvalidElevation)
	}
	return &Report{
		Config:   c,
		GridSize: gridSize,
		Options:  opts,
		Grid:     grid,
		Deltas:   deltas,
		Summary:  summary,
	}, nil
}
