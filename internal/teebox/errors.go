package teebox

import "errors"

// ErrInvalidDimension is returned when width, depth or the diagonal length
// is not strictly positive.
var ErrInvalidDimension = errors.New("invalid dimension")

// ErrInvalidGridSize is returned when the grid spacing is not strictly positive.
var ErrInvalidGridSize = errors.New("invalid grid size")

// ErrInvalidDirection is returned for a slope direction outside the eight
// supported values.
var ErrInvalidDirection = errors.New("invalid slope direction")

// ErrInvalidElevation is returned when the base elevation or slope is not a
// finite number, or when the resulting elevations overflow float64.
var ErrInvalidElevation = errors.New("invalid elevation")
