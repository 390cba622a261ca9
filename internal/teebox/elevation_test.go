package teebox

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultSurface(dir SlopeDirection) SurfaceConfig {
	return SurfaceConfig{
		Width:         30,
		Depth:         100,
		BaseElevation: 0,
		SlopePercent:  2,
		Direction:     dir,
	}
}

func mustElevation(t *testing.T, p Point2D, c SurfaceConfig) float64 {
	t.Helper()
	v, err := ElevationAt(p, c)
	require.NoError(t, err)
	return v
}

func TestElevationAt_FrontToBackBoundaries(t *testing.T) {
	t.Parallel()

	c := SurfaceConfig{Width: 30, Depth: 100, BaseElevation: 12.5, SlopePercent: 1.5, Direction: FrontToBack}
	for _, x := range []float64{0, 7.5, 15, 30} {
		assert.Equal(t, c.BaseElevation, mustElevation(t, Point2D{X: x, Y: 0}, c), "front edge at x=%v", x)
		assert.Equal(t, c.BaseElevation+c.SlopePercent/100*c.Depth, mustElevation(t, Point2D{X: x, Y: c.Depth}, c), "back edge at x=%v", x)
	}
}

func TestElevationAt_OrthogonalRise(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		dir      SlopeDirection
		low      Point2D
		high     Point2D
		wantRise float64
	}{
		{"front to back", FrontToBack, Point2D{X: 10, Y: 0}, Point2D{X: 10, Y: 100}, 2.0},
		{"back to front", BackToFront, Point2D{X: 10, Y: 100}, Point2D{X: 10, Y: 0}, 2.0},
		{"left to right", LeftToRight, Point2D{X: 0, Y: 50}, Point2D{X: 30, Y: 50}, 0.6},
		{"right to left", RightToLeft, Point2D{X: 30, Y: 50}, Point2D{X: 0, Y: 50}, 0.6},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := defaultSurface(tt.dir)
			low := mustElevation(t, tt.low, c)
			high := mustElevation(t, tt.high, c)
			assert.InDelta(t, 0.0, low, 1e-12)
			assert.InDelta(t, tt.wantRise, high-low, 1e-12)
		})
	}
}

func TestElevationAt_BackToFrontMirrorsFrontToBack(t *testing.T) {
	t.Parallel()

	ftb := SurfaceConfig{Width: 30, Depth: 100, BaseElevation: -2.25, SlopePercent: 3.3, Direction: FrontToBack}
	btf := ftb
	btf.Direction = BackToFront

	for y := 0.0; y <= ftb.Depth; y += 6.25 {
		assert.Equal(t,
			mustElevation(t, Point2D{X: 4, Y: ftb.Depth - y}, ftb),
			mustElevation(t, Point2D{X: 4, Y: y}, btf),
			"y=%v", y)
	}
}

func TestElevationAt_DiagonalEndpoints(t *testing.T) {
	t.Parallel()

	c := defaultSurface(FrontLeftToBackRight)
	assert.Equal(t, 0.0, mustElevation(t, Point2D{X: 0, Y: 0}, c))

	end := mustElevation(t, Point2D{X: 30, Y: 100}, c)
	assert.InDelta(t, 2.0*math.Sqrt(30*30+100*100)/100, end, 1e-12)
	assert.InDelta(t, 2.088, end, 1e-3)
}

func TestElevationAt_DiagonalCorners(t *testing.T) {
	t.Parallel()

	diagonals := []SlopeDirection{FrontLeftToBackRight, FrontRightToBackLeft, BackLeftToFrontRight, BackRightToFrontLeft}
	for _, dir := range diagonals {
		dir := dir
		t.Run(dir.String(), func(t *testing.T) {
			t.Parallel()
			c := SurfaceConfig{Width: 40, Depth: 90, BaseElevation: 3, SlopePercent: -1.25, Direction: dir}
			start, end, ok := dir.Corners(c.Width, c.Depth)
			require.True(t, ok)

			assert.InDelta(t, c.BaseElevation, mustElevation(t, start, c), 1e-12)
			want := c.BaseElevation + c.SlopePercent/100*c.DiagonalLength()
			assert.InDelta(t, want, mustElevation(t, end, c), 1e-12)
		})
	}
}

func TestElevationAt_DiagonalUsesDistanceFromStartCorner(t *testing.T) {
	t.Parallel()

	c := defaultSurface(FrontLeftToBackRight)
	got := mustElevation(t, Point2D{X: 30, Y: 0}, c)
	// 30 ft from the start corner along the front edge
	assert.InDelta(t, 30.0/c.DiagonalLength()*0.02*c.DiagonalLength(), got, 1e-12)

	c.Direction = BackRightToFrontLeft
	got = mustElevation(t, Point2D{X: 0, Y: 100}, c)
	assert.InDelta(t, 0.02*30, got, 1e-12)
}

func TestElevationAt_AxisAverageModel(t *testing.T) {
	t.Parallel()

	c := defaultSurface(FrontRightToBackLeft)
	c.Diagonal = DiagonalAxisAverage

	// (width-x)/width = 1, y/depth = 0
	got := mustElevation(t, Point2D{X: 0, Y: 0}, c)
	assert.InDelta(t, 0.5*0.02*c.DiagonalLength(), got, 1e-12)

	end := mustElevation(t, Point2D{X: 0, Y: 100}, c)
	assert.InDelta(t, 0.02*c.DiagonalLength(), end, 1e-12)

	euclid := c
	euclid.Diagonal = DiagonalEuclidean
	assert.NotEqual(t, got, mustElevation(t, Point2D{X: 0, Y: 0}, euclid))
}

func TestElevationAt_ZeroSlopeIsFlat(t *testing.T) {
	t.Parallel()

	for _, dir := range AllDirections() {
		c := SurfaceConfig{Width: 25, Depth: 60, BaseElevation: -4.75, SlopePercent: 0, Direction: dir}
		for _, p := range []Point2D{{0, 0}, {25, 60}, {12, 31}, {40, 80}} {
			assert.Equal(t, -4.75, mustElevation(t, p, c), "%s at %+v", dir, p)
		}
	}
}

func TestElevationAt_BeyondEdgesIsNotRejected(t *testing.T) {
	t.Parallel()

	c := defaultSurface(FrontToBack)
	got := mustElevation(t, Point2D{X: -5, Y: 110}, c)
	assert.InDelta(t, 2.2, got, 1e-12)
}

func TestElevationAt_InvalidDimensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  SurfaceConfig
	}{
		{"zero width", SurfaceConfig{Width: 0, Depth: 100, Direction: LeftToRight}},
		{"zero depth", SurfaceConfig{Width: 30, Depth: 0, Direction: FrontToBack}},
		{"negative width", SurfaceConfig{Width: -1, Depth: 100, Direction: FrontLeftToBackRight}},
		{"NaN depth", SurfaceConfig{Width: 30, Depth: math.NaN()}},
		{"infinite width", SurfaceConfig{Width: math.Inf(1), Depth: 100}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ElevationAt(Point2D{}, tt.cfg)
			assert.ErrorIs(t, err, ErrInvalidDimension)
		})
	}
}

func TestElevationAt_InvalidDirection(t *testing.T) {
	t.Parallel()

	c := defaultSurface(SlopeDirection(42))
	_, err := ElevationAt(Point2D{}, c)
	assert.ErrorIs(t, err, ErrInvalidDirection)
}

func TestElevationAt_NonFiniteElevationInputs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  SurfaceConfig
	}{
		{"NaN slope", SurfaceConfig{Width: 30, Depth: 100, SlopePercent: math.NaN()}},
		{"+Inf slope", SurfaceConfig{Width: 30, Depth: 100, SlopePercent: math.Inf(1)}},
		{"-Inf slope", SurfaceConfig{Width: 30, Depth: 100, SlopePercent: math.Inf(-1), Direction: BackRightToFrontLeft}},
		{"NaN base", SurfaceConfig{Width: 30, Depth: 100, BaseElevation: math.NaN()}},
		{"-Inf base", SurfaceConfig{Width: 30, Depth: 100, BaseElevation: math.Inf(-1)}},
		{"corner overflows", SurfaceConfig{Width: 30, Depth: 200, BaseElevation: 1e308, SlopePercent: 1e308}},
		{"diagonal overflows", SurfaceConfig{Width: 1e300, Depth: 1e300, SlopePercent: 1e12, Direction: FrontLeftToBackRight}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ElevationAt(Point2D{}, tt.cfg)
			assert.ErrorIs(t, err, ErrInvalidElevation)
		})
	}
}

func TestDiagonalLength_LargeFiniteDimensions(t *testing.T) {
	t.Parallel()

	c := SurfaceConfig{Width: 1e200, Depth: 1e200, SlopePercent: 0, Direction: FrontLeftToBackRight}
	require.NoError(t, c.Validate())
	assert.InDelta(t, math.Sqrt2, c.DiagonalLength()/1e200, 1e-12)

	d, err := ComputeDeltas(c)
	require.NoError(t, err)
	assert.Equal(t, DeltaSet{}, d)
}
