package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/banshee-data/teebox/internal/teebox"
	"github.com/banshee-data/teebox/internal/units"
)

//go:embed templates/grid.html.tmpl
var templateFS embed.FS

var gridTemplate = template.Must(template.New("grid.html.tmpl").ParseFS(templateFS, "templates/grid.html.tmpl"))

type htmlCell struct {
	Text  string
	Color template.CSS
}

type htmlRow struct {
	Label string
	Cells []htmlCell
}

type htmlPage struct {
	Title     string
	Direction string
	Slope     string
	XLabels   []string
	Rows      []htmlRow
	Deltas    FormattedDeltas
}

// WriteHTML writes a standalone page with the grid drawn as shaded cells,
// darker for higher elevations.
func WriteHTML(w io.Writer, r *teebox.Report, displayUnits string) error {
	xs, ys, err := teebox.SampleAxes(r.Config, r.GridSize, r.Options)
	if err != nil {
		return err
	}

	page := htmlPage{
		Title:     fmt.Sprintf("Tee Box Elevation Grid (%g x %g ft)", r.Config.Width, r.Config.Depth),
		Direction: r.Config.Direction.Label(),
		Slope:     units.SlopeDescription(r.Config.SlopePercent),
		Deltas:    FormatDeltas(r, displayUnits),
	}
	for _, x := range xs {
		page.XLabels = append(page.XLabels, feetValue(x)+" ft")
	}
	for row, rowData := range r.Grid {
		hr := htmlRow{Label: feetValue(ys[row]) + " ft"}
		for _, v := range rowData {
			hr.Cells = append(hr.Cells, htmlCell{
				Text:  units.FormatElevation(v, displayUnits),
				Color: template.CSS(CSSColor(v, r.Summary.Min, r.Summary.Max)),
			})
		}
		page.Rows = append(page.Rows, hr)
	}
	return gridTemplate.Execute(w, page)
}
