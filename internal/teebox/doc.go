// Package teebox computes planar elevation grids for a rectangular tee box.
//
// Responsibilities: the elevation model for the eight slope directions,
// grid sampling over the surface, and the width/depth/diagonal deltas used
// as grading references.
// Key types: SurfaceConfig, SlopeDirection, ElevationGrid, DeltaSet, Report.
//
// Everything here is a pure function of its inputs. Callers own the
// configuration lifecycle; the package keeps no state between calls.
// No rendering or I/O is allowed in this package.
package teebox
