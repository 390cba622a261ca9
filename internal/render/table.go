package render

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/banshee-data/teebox/internal/teebox"
	"github.com/banshee-data/teebox/internal/units"
)

// feetValue formats a sample position in feet. Positions are i*gridSize, so
// they are rounded to a micro-foot to drop float noise like 0.30000000000000004.
func feetValue(x float64) string {
	if math.Abs(x) < 1e9 {
		x = math.Round(x*1e6) / 1e6
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// WriteTable writes the grid as an aligned text table. Rows run front
// (first) to back, columns left to right; headers give the sample position
// in feet.
func WriteTable(w io.Writer, r *teebox.Report, displayUnits string) error {
	xs, ys, err := teebox.SampleAxes(r.Config, r.GridSize, r.Options)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	header := make([]string, 0, len(xs)+1)
	header = append(header, "y\\x")
	for _, x := range xs {
		header = append(header, feetValue(x)+" ft")
	}
	fmt.Fprintln(tw, strings.Join(header, "\t")+"\t")

	for row, rowData := range r.Grid {
		cells := make([]string, 0, len(rowData)+1)
		cells = append(cells, feetValue(ys[row])+" ft")
		for _, v := range rowData {
			cells = append(cells, units.FormatElevation(v, displayUnits))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t")
	}
	return tw.Flush()
}

// WriteSummary writes the deltas, elevation range and slope description.
func WriteSummary(w io.Writer, r *teebox.Report, displayUnits string) error {
	c := r.Config
	lines := []string{
		fmt.Sprintf("Surface: %g ft wide x %g ft deep, base %s", c.Width, c.Depth, units.FormatElevation(c.BaseElevation, displayUnits)),
		fmt.Sprintf("Slope: %s, %s", c.Direction.Label(), units.SlopeDescription(c.SlopePercent)),
		fmt.Sprintf("Grid: %d rows x %d cols at %g ft", r.Summary.Rows, r.Summary.Cols, r.GridSize),
		fmt.Sprintf("Elevation range: %s to %s", units.FormatElevation(r.Summary.Min, displayUnits), units.FormatElevation(r.Summary.Max, displayUnits)),
		fmt.Sprintf("Delta across width: %s", units.FormatElevation(r.Deltas.AcrossWidth, displayUnits)),
		fmt.Sprintf("Delta across depth: %s", units.FormatElevation(r.Deltas.AcrossDepth, displayUnits)),
	}
	if c.Direction.IsDiagonal() {
		lines = append(lines, fmt.Sprintf("Delta along diagonal: %s", units.FormatElevation(r.Deltas.Diagonal, displayUnits)))
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
