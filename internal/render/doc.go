// Package render turns a teebox.Report into the artifacts people read on
// site: a text table, CSV, JSON, a shaded HTML grid, a PNG heatmap and an
// interactive 3D surface chart.
//
// Renderers hold no domain logic; every number comes from the report.
package render
