package render

import (
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/banshee-data/teebox/internal/teebox"
	"github.com/banshee-data/teebox/internal/timeutil"
	"github.com/banshee-data/teebox/internal/units"
	"github.com/banshee-data/teebox/internal/version"
)

// JSONReport is the exported form of a teebox.Report. ReportID and
// GeneratedAt change per export; everything else is a function of the inputs.
type JSONReport struct {
	ReportID         string          `json:"report_id"`
	GeneratedAt      time.Time       `json:"generated_at"`
	Version          string          `json:"version"`
	DirectionLabel   string          `json:"direction_label"`
	SlopeDescription string          `json:"slope_description"`
	DisplayUnits     string          `json:"display_units"`
	Formatted        FormattedDeltas `json:"formatted_deltas"`
	*teebox.Report
}

// FormattedDeltas are the deltas rendered in the display units.
type FormattedDeltas struct {
	AcrossWidth string `json:"across_width"`
	AcrossDepth string `json:"across_depth"`
	Diagonal    string `json:"diagonal,omitempty"`
}

// FormatDeltas renders the deltas of r. Diagonal is left empty for
// orthogonal slopes.
func FormatDeltas(r *teebox.Report, displayUnits string) FormattedDeltas {
	f := FormattedDeltas{
		AcrossWidth: units.FormatElevation(r.Deltas.AcrossWidth, displayUnits),
		AcrossDepth: units.FormatElevation(r.Deltas.AcrossDepth, displayUnits),
	}
	if r.Config.Direction.IsDiagonal() {
		f.Diagonal = units.FormatElevation(r.Deltas.Diagonal, displayUnits)
	}
	return f
}

// NewJSONReport wraps r for export, stamped with the system clock.
func NewJSONReport(r *teebox.Report, displayUnits string) *JSONReport {
	return newJSONReport(r, displayUnits, timeutil.RealClock{})
}

func newJSONReport(r *teebox.Report, displayUnits string, clock timeutil.Clock) *JSONReport {
	return &JSONReport{
		ReportID:         uuid.NewString(),
		GeneratedAt:      clock.Now(),
		Version:          version.Version,
		DirectionLabel:   r.Config.Direction.Label(),
		SlopeDescription: units.SlopeDescription(r.Config.SlopePercent),
		DisplayUnits:     displayUnits,
		Formatted:        FormatDeltas(r, displayUnits),
		Report:           r,
	}
}

// WriteJSON writes r as indented JSON.
func WriteJSON(w io.Writer, r *teebox.Report, displayUnits string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewJSONReport(r, displayUnits))
}
