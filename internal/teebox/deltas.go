package teebox

import "math"

// DeltaSet holds absolute elevation differences in feet across the surface.
// Diagonal is zero unless the slope direction is diagonal.
type DeltaSet struct {
	AcrossWidth float64 `json:"across_width"`
	AcrossDepth float64 `json:"across_depth"`
	Diagonal    float64 `json:"diagonal"`
}

// ComputeDeltas measures the surface at its edge midpoints and, for
// diagonal slopes, at the start and end corners.
func ComputeDeltas(c SurfaceConfig) (DeltaSet, error) {
	if err := c.Validate(); err != nil {
		return DeltaSet{}, err
	}

	left := c.elevationAt(Point2D{X: 0, Y: c.Depth / 2})
	right := c.elevationAt(Point2D{X: c.Width, Y: c.Depth / 2})
	front := c.elevationAt(Point2D{X: c.Width / 2, Y: 0})
	back := c.elevationAt(Point2D{X: c.Width / 2, Y: c.Depth})

	d := DeltaSet{
		AcrossWidth: math.Abs(right - left),
		AcrossDepth: math.Abs(back - front),
	}
	if start, end, ok := c.Direction.Corners(c.Width, c.Depth); ok {
		d.Diagonal = math.Abs(c.elevationAt(end) - c.elevationAt(start))
	}
	return d, nil
}
