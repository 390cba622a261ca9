package render

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/banshee-data/teebox/internal/teebox"
)

var csvHeader = []string{"row", "col", "x_ft", "y_ft", "elevation_ft"}

// WriteCSV writes one line per grid cell with its sample position.
func WriteCSV(w io.Writer, r *teebox.Report) error {
	xs, ys, err := teebox.SampleAxes(r.Config, r.GridSize, r.Options)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for row, rowData := range r.Grid {
		for col, v := range rowData {
			rec := []string{
				strconv.Itoa(row),
				strconv.Itoa(col),
				feetValue(xs[col]),
				feetValue(ys[row]),
				strconv.FormatFloat(v, 'f', 4, 64),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
