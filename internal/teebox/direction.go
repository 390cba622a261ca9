package teebox

import (
	"fmt"
	"strings"
)

// SlopeDirection is the orientation of the slope across the tee box.
// "Front" is y=0, "back" is y=depth, "left" is x=0 and "right" is x=width.
type SlopeDirection int

// Slope directions
const (
	FrontToBack SlopeDirection = iota
	BackToFront
	LeftToRight
	RightToLeft
	FrontLeftToBackRight
	FrontRightToBackLeft
	BackLeftToFrontRight
	BackRightToFrontLeft
)

var directionNames = [...]string{
	FrontToBack:          "frontToBack",
	BackToFront:          "backToFront",
	LeftToRight:          "leftToRight",
	RightToLeft:          "rightToLeft",
	FrontLeftToBackRight: "frontLeftToBackRight",
	FrontRightToBackLeft: "frontRightToBackLeft",
	BackLeftToFrontRight: "backLeftToFrontRight",
	BackRightToFrontLeft: "backRightToFrontLeft",
}

var directionLabels = [...]string{
	FrontToBack:          "Front to Back",
	BackToFront:          "Back to Front",
	LeftToRight:          "Left to Right",
	RightToLeft:          "Right to Left",
	FrontLeftToBackRight: "Front-Left to Back-Right",
	FrontRightToBackLeft: "Front-Right to Back-Left",
	BackLeftToFrontRight: "Back-Left to Front-Right",
	BackRightToFrontLeft: "Back-Right to Front-Left",
}

// AllDirections returns the eight directions in declaration order.
func AllDirections() []SlopeDirection {
	return []SlopeDirection{
		FrontToBack, BackToFront, LeftToRight, RightToLeft,
		FrontLeftToBackRight, FrontRightToBackLeft, BackLeftToFrontRight, BackRightToFrontLeft,
	}
}

// IsValid reports whether d is one of the eight supported directions.
func (d SlopeDirection) IsValid() bool {
	return d >= FrontToBack && d <= BackRightToFrontLeft
}

// IsDiagonal reports whether the slope runs corner to corner.
func (d SlopeDirection) IsDiagonal() bool {
	return d >= FrontLeftToBackRight && d <= BackRightToFrontLeft
}

// String returns the camelCase identifier used in config files and flags.
func (d SlopeDirection) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("SlopeDirection(%d)", int(d))
	}
	return directionNames[d]
}

// Label returns the human-readable name shown next to the direction selector.
func (d SlopeDirection) Label() string {
	if !d.IsValid() {
		return "Unknown"
	}
	return directionLabels[d]
}

// Corners returns the start and end corners of a diagonal slope for a
// width x depth surface. ok is false for orthogonal directions.
func (d SlopeDirection) Corners(width, depth float64) (start, end Point2D, ok bool) {
	switch d {
	case FrontLeftToBackRight:
		return Point2D{0, 0}, Point2D{width, depth}, true
	case FrontRightToBackLeft:
		return Point2D{width, 0}, Point2D{0, depth}, true
	case BackLeftToFrontRight:
		return Point2D{0, depth}, Point2D{width, 0}, true
	case BackRightToFrontLeft:
		return Point2D{width, depth}, Point2D{0, 0}, true
	default:
		return Point2D{}, Point2D{}, false
	}
}

// ParseDirection accepts either the camelCase identifier ("frontToBack") or
// the label ("Front to Back"). Matching ignores case.
func ParseDirection(s string) (SlopeDirection, error) {
	s = strings.TrimSpace(s)
	for _, d := range AllDirections() {
		if strings.EqualFold(s, directionNames[d]) || strings.EqualFold(s, directionLabels[d]) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// MarshalText implements encoding.TextMarshaler.
func (d SlopeDirection) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
	}
	return []byte(directionNames[d]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *SlopeDirection) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
