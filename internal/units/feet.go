package units

import (
	"fmt"
	"math"
)

// FeetInchesToDecimal combines a feet and inches pair into decimal feet.
func FeetInchesToDecimal(feet, inches float64) float64 {
	return feet + (inches / InchesPerFoot)
}

// ToFeetInches splits decimal feet into whole feet and remaining inches.
// Feet is the floor of the value, so inches is never negative:
// -0.5 ft is -1 ft 6.0 in.
func ToFeetInches(decimalFeet float64) (feet int, inches float64) {
	whole := math.Floor(decimalFeet)
	return int(whole), (decimalFeet - whole) * InchesPerFoot
}

// FormatFeetInches renders decimal feet as 12'6.0". Inches are rounded to a
// tenth and a rounded-up 12.0 carries into feet, so 0.9999 ft reads 1'0.0".
// NaN and infinities are printed as plain numbers.
func FormatFeetInches(decimalFeet float64) string {
	if math.IsNaN(decimalFeet) || math.IsInf(decimalFeet, 0) {
		return fmt.Sprintf("%g ft", decimalFeet)
	}
	feet, inches := ToFeetInches(decimalFeet)
	inches = math.Round(inches*10) / 10
	if inches >= InchesPerFoot {
		feet++
		inches -= InchesPerFoot
	}
	return fmt.Sprintf("%d'%.1f\"", feet, inches)
}
