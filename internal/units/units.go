// Package units provides shared constants and conversions for the length
// units used when displaying elevations.
package units

import "fmt"

// Unit constants
const (
	FeetInches = "ft-in"
	Feet       = "ft"
	Inches     = "in"
)

// InchesPerFoot is the feet to inches conversion factor.
const InchesPerFoot = 12.0

// ValidUnits contains all valid display unit values
var ValidUnits = []string{FeetInches, Feet, Inches}

// IsValid checks if the given unit is in the list of valid units
func IsValid(unit string) bool {
	for _, validUnit := range ValidUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// GetValidUnitsString returns a comma-separated string of valid units for error messages
func GetValidUnitsString() string {
	return "ft-in, ft, in"
}

// FormatElevation renders an elevation in decimal feet in the target units.
// Unknown units fall back to feet and inches.
func FormatElevation(decimalFeet float64, targetUnits string) string {
	switch targetUnits {
	case Feet:
		return fmt.Sprintf("%.2f ft", decimalFeet)
	case Inches:
		return fmt.Sprintf("%.1f in", decimalFeet*InchesPerFoot)
	default:
		return FormatFeetInches(decimalFeet)
	}
}
