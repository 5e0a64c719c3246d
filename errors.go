package polys

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Construction errors. Constructors wrap these with context so
// callers should match them with errors.Is.
var (
	// ErrInvalidDimension is returned when a length, width, height or
	// radius is not a positive finite number.
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrInvalidGeometry is returned when dimensions are individually valid
	// but cannot describe the shape, such as three sides that violate the
	// triangle inequality or a polygon with fewer than 3 sides.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrInvalidAngle is returned when an included angle is not in (0, pi).
	ErrInvalidAngle = errors.New("invalid angle")
)

// ErrMsg returns err prefixed with the name of the calling function.
// The result matches err with errors.Is.
func ErrMsg(err error) error {
	pc, _, _, ok := runtime.Caller(1)
	if !ok {
		return fmt.Errorf("?: %w", err)
	}
	name := runtime.FuncForPC(pc).Name()
	// Keep package.Function, drop the import path.
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	return fmt.Errorf("%s: %w", name, err)
}

// CheckDimension returns an ErrInvalidDimension error naming
// the dimension if v is not a positive finite number.
func CheckDimension(name string, v float64) error {
	if !(v > 0) || isInf(v) {
		return fmt.Errorf("%w: %s=%g must be positive and finite", ErrInvalidDimension, name, v)
	}
	return nil
}
