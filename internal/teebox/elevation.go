package teebox

import "math"

// ElevationAt returns the elevation in feet at p for the given surface.
//
// Orthogonal directions rise linearly from BaseElevation at the "from" edge
// to BaseElevation + slope*span at the "to" edge. Diagonal directions rise
// by slope*diagonalLength scaled by the progress from the start corner, as
// selected by c.Diagonal.
func ElevationAt(p Point2D, c SurfaceConfig) (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	return c.elevationAt(p), nil
}

// elevationAt assumes c has been validated.
func (c SurfaceConfig) elevationAt(p Point2D) float64 {
	slope := c.SlopePercent / 100.0

	switch c.Direction {
	case FrontToBack:
		return c.BaseElevation + (p.Y/c.Depth)*slope*c.Depth
	case BackToFront:
		return c.BaseElevation + ((c.Depth-p.Y)/c.Depth)*slope*c.Depth
	case LeftToRight:
		return c.BaseElevation + (p.X/c.Width)*slope*c.Width
	case RightToLeft:
		return c.BaseElevation + ((c.Width-p.X)/c.Width)*slope*c.Width
	}

	start, end, ok := c.Direction.Corners(c.Width, c.Depth)
	if !ok {
		return c.BaseElevation
	}
	diagonal := c.DiagonalLength()
	return c.BaseElevation + c.diagonalProgress(p, start, end, diagonal)*slope*diagonal
}

// diagonalProgress is 0 at start and 1 at end.
func (c SurfaceConfig) diagonalProgress(p, start, end Point2D, diagonal float64) float64 {
	if c.Diagonal == DiagonalAxisAverage {
		fx := (p.X - start.X) / (end.X - start.X)
		fy := (p.Y - start.Y) / (end.Y - start.Y)
		return (fx + fy) / 2.0
	}
	dx := p.X - start.X
	dy := p.Y - start.Y
	return math.Hypot(dx, dy) / diagonal
}
