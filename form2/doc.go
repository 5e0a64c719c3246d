// Package form2 provides the validated 2d shapes of polys: Rectangle,
// Circle, Triangle and Regular, and Poly, a value that holds any one of them.
//
// Constructors return an error wrapping one of polys.ErrInvalidDimension,
// polys.ErrInvalidGeometry or polys.ErrInvalidAngle when their arguments
// cannot describe the shape. A shape value is only valid if it was returned
// by a constructor without error. Shapes are immutable.
//
// Package must2 provides the same constructors without an error return.
package form2
