package units

import "fmt"

// FeetPer100Feet is the rise over 100 ft for a slope percentage.
func FeetPer100Feet(slopePercent float64) float64 {
	return slopePercent
}

// InchesPer10Feet is the rise in inches over 10 ft for a slope percentage.
func InchesPer10Feet(slopePercent float64) float64 {
	return slopePercent * 1.2
}

// SlopeDescription explains a grade in the terms used on site, e.g.
// "2.0% equals 2.0 Ft per 100 Ft / 2.4 In per 10 Ft".
func SlopeDescription(slopePercent float64) string {
	return fmt.Sprintf("%.1f%% equals %.1f Ft per 100 Ft / %.1f In per 10 Ft",
		slopePercent, FeetPer100Feet(slopePercent), InchesPer10Feet(slopePercent))
}
