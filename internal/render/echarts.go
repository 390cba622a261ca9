package render

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/teebox/internal/teebox"
)

func visualMap(r *teebox.Report) opts.VisualMap {
	lo, hi := r.Summary.Min, r.Summary.Max
	if hi == lo {
		hi = lo + 1
	}
	return opts.VisualMap{
		Show:       opts.Bool(true),
		Calculable: opts.Bool(true),
		Min:        float32(lo),
		Max:        float32(hi),
		InRange:    &opts.VisualMapInRange{Color: viridis},
	}
}

// newSurfaceChart builds the 3D surface: x left to right, y front to back,
// z elevation.
func newSurfaceChart(r *teebox.Report, xs, ys []float64) *charts.Surface3D {
	data := make([]opts.Chart3DData, 0, r.Grid.Rows()*r.Grid.Cols())
	for row, rowData := range r.Grid {
		for col, v := range rowData {
			data = append(data, opts.Chart3DData{Value: []interface{}{xs[col], ys[row], v}})
		}
	}

	surface := charts.NewSurface3D()
	surface.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Tee Box Surface", Width: "900px", Height: "700px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Tee Box Surface",
			Subtitle: fmt.Sprintf("%g x %g ft, %s %.1f%%", r.Config.Width, r.Config.Depth, r.Config.Direction.Label(), r.Config.SlopePercent),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithVisualMapOpts(visualMap(r)),
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: "x (ft)"}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: "y (ft)"}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: "elevation (ft)"}),
	)
	surface.AddSeries("elevation", data)
	return surface
}

// newHeatMapChart builds the flat view of the same grid, one cell per sample.
func newHeatMapChart(r *teebox.Report, xs, ys []float64) *charts.HeatMap {
	xLabels := make([]string, len(xs))
	for i, x := range xs {
		xLabels[i] = feetValue(x)
	}
	yLabels := make([]string, len(ys))
	for i, y := range ys {
		yLabels[i] = feetValue(y)
	}

	items := make([]opts.HeatMapData, 0, r.Grid.Rows()*r.Grid.Cols())
	for row, rowData := range r.Grid {
		for col, v := range rowData {
			items = append(items, opts.HeatMapData{Value: []interface{}{col, row, v}})
		}
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "700px"}),
		charts.WithTitleOpts(opts.Title{Title: "Elevation Grid"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: xLabels, Name: "x (ft)"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: yLabels, Name: "y (ft)"}),
		charts.WithVisualMapOpts(visualMap(r)),
	)
	hm.SetXAxis(xLabels).AddSeries("elevation", items)
	return hm
}

// WriteSurfaceChart renders an HTML page with the 3D surface and a flat
// heatmap of the grid.
func WriteSurfaceChart(w io.Writer, r *teebox.Report) error {
	if err := checkRange(r); err != nil {
		return err
	}
	xs, ys, err := teebox.SampleAxes(r.Config, r.GridSize, r.Options)
	if err != nil {
		return err
	}

	page := components.NewPage()
	page.PageTitle = "Tee Box Surface"
	page.AddCharts(newSurfaceChart(r, xs, ys), newHeatMapChart(r, xs, ys))
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render error: %w", err)
	}
	return nil
}
