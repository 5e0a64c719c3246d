package polys

import "math"

const (
	// Tolerance is the absolute tolerance used for comparing
	// lengths and angles that are equal in exact arithmetic.
	Tolerance = 1e-9

	// RightAngle is the interior angle of a rectangle in radians.
	RightAngle = math.Pi / 2
)

// Degrees converts an angle in radians to degrees.
func Degrees(radians float64) float64 { return radians / math.Pi * 180. }

// Radians converts an angle in degrees to radians.
func Radians(degrees float64) float64 { return degrees * math.Pi / 180. }

// DegreesSlice converts a slice of angles in radians to degrees in place
// and returns it.
func DegreesSlice(radians []float64) []float64 {
	for i := range radians {
		radians[i] = Degrees(radians[i])
	}
	return radians
}

func isInf(f float64) bool { return math.IsInf(f, 0) }
