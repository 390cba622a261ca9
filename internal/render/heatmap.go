package render

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/teebox/internal/teebox"
)

// HeatmapSize is the rendered PNG size.
var HeatmapSize = struct{ Width, Height vg.Length }{6 * vg.Inch, 8 * vg.Inch}

// gridXYZ adapts the sampled grid to plotter.GridXYZ. Columns map to x
// (left to right) and rows to y (front to back).
type gridXYZ struct {
	z  *mat.Dense
	xs []float64
	ys []float64
}

func newGridXYZ(r *teebox.Report) (*gridXYZ, error) {
	if r.Grid.Rows() == 0 || r.Grid.Cols() == 0 {
		return nil, fmt.Errorf("empty elevation grid")
	}
	xs, ys, err := teebox.SampleAxes(r.Config, r.GridSize, r.Options)
	if err != nil {
		return nil, err
	}
	return &gridXYZ{
		z:  mat.NewDense(r.Grid.Rows(), r.Grid.Cols(), r.Grid.Values()),
		xs: xs,
		ys: ys,
	}, nil
}

func (g *gridXYZ) Dims() (c, r int) {
	r, c = g.z.Dims()
	return c, r
}

func (g *gridXYZ) Z(c, r int) float64 { return g.z.At(r, c) }
func (g *gridXYZ) X(c int) float64    { return g.xs[c] }
func (g *gridXYZ) Y(r int) float64    { return g.ys[r] }

// checkRange rejects reports whose elevation range cannot be mapped onto a
// colour scale.
func checkRange(r *teebox.Report) error {
	lo, hi := r.Summary.Min, r.Summary.Max
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return fmt.Errorf("%w: elevation range %g..%g is not finite", teebox.ErrInvalidElevation, lo, hi)
	}
	return nil
}

// WriteHeatmapPNG renders the grid as a PNG heatmap with the front edge at
// the bottom of the image.
func WriteHeatmapPNG(w io.Writer, r *teebox.Report) error {
	if err := checkRange(r); err != nil {
		return err
	}
	g, err := newGridXYZ(r)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Tee box elevation, %s %.1f%%", r.Config.Direction.Label(), r.Config.SlopePercent)
	p.X.Label.Text = "x (ft, left to right)"
	p.Y.Label.Text = "y (ft, front to back)"

	hm := plotter.NewHeatMap(g, palette.Heat(12, 1))
	hm.Min, hm.Max = r.Summary.Min, r.Summary.Max
	if hm.Max == hm.Min {
		// flat surface: widen the range so every cell maps to one colour
		hm.Max = hm.Min + 1
	}
	p.Add(hm)

	wt, err := p.WriterTo(HeatmapSize.Width, HeatmapSize.Height, "png")
	if err != nil {
		return fmt.Errorf("failed to render heatmap: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write heatmap: %w", err)
	}
	return nil
}
