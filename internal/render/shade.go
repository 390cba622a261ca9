package render

import (
	"fmt"
	"image/color"
)

// shadeBase is the cell tint; alpha carries the elevation.
var shadeBase = color.NRGBA{R: 0, G: 123, B: 255}

// viridis is the visual-map gradient shared by the echarts views.
var viridis = []string{"#440154", "#482777", "#3e4989", "#31688e", "#26828e", "#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"}

// ShadeAlpha maps an elevation onto an opacity in [0.2, 0.8]. A flat grid
// (min == max) uses 0.3.
func ShadeAlpha(elevation, minElevation, maxElevation float64) float64 {
	if maxElevation == minElevation {
		return 0.3
	}
	normalized := (elevation - minElevation) / (maxElevation - minElevation)
	return 0.2 + normalized*0.6
}

// ShadeColor returns the cell tint for an elevation.
func ShadeColor(elevation, minElevation, maxElevation float64) color.NRGBA {
	c := shadeBase
	c.A = uint8(ShadeAlpha(elevation, minElevation, maxElevation)*255 + 0.5)
	return c
}

// CSSColor formats the cell tint as a CSS rgba() value.
func CSSColor(elevation, minElevation, maxElevation float64) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %.2f)", shadeBase.R, shadeBase.G, shadeBase.B,
		ShadeAlpha(elevation, minElevation, maxElevation))
}
