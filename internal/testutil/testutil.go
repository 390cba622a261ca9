// Package testutil provides shared test utilities and fixtures.
package testutil

import (
	"errors"
	"math"
	"testing"

	"github.com/banshee-data/teebox/internal/teebox"
)

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// AssertErrorIs fails the test unless errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("error = %v, want %v", err, target)
	}
}

// AssertFloatNear fails the test if got and want differ by more than tol.
func AssertFloatNear(t *testing.T, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("got %v, want %v (tol %v)", got, want, tol)
	}
}

// SampleSurface returns the 30 x 100 ft tee box with a 2% front-to-back
// slope used across the test suites.
func SampleSurface() teebox.SurfaceConfig {
	return teebox.SurfaceConfig{
		Width:         30,
		Depth:         100,
		BaseElevation: 0,
		SlopePercent:  2,
		Direction:     teebox.FrontToBack,
	}
}

// SampleReport generates the report for SampleSurface at a 10 ft grid.
func SampleReport(t *testing.T) *teebox.Report {
	t.Helper()
	r, err := teebox.Generate(SampleSurface(), 10, teebox.GridOptions{})
	AssertNoError(t, err)
	return r
}
