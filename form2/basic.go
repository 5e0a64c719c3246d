package form2

import (
	"math"

	"github.com/soypat/polys"
	"github.com/soypat/polys/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Rectangle is an axis-aligned rectangle.
type Rectangle struct {
	width  float64
	height float64
}

var _ polys.Shape = Rectangle{}

// NewRectangle returns a rectangle of the given width and height.
func NewRectangle(width, height float64) (Rectangle, error) {
	if err := polys.CheckDimension("width", width); err != nil {
		return Rectangle{}, polys.ErrMsg(err)
	}
	if err := polys.CheckDimension("height", height); err != nil {
		return Rectangle{}, polys.ErrMsg(err)
	}
	return Rectangle{width: width, height: height}, nil
}

// Square returns a rectangle with width and height equal to side.
func Square(side float64) (Rectangle, error) {
	if err := polys.CheckDimension("side", side); err != nil {
		return Rectangle{}, polys.ErrMsg(err)
	}
	return Rectangle{width: side, height: side}, nil
}

// Width returns the rectangle's width.
func (r Rectangle) Width() float64 { return r.width }

// Height returns the rectangle's height.
func (r Rectangle) Height() float64 { return r.height }

// Diagonal returns the distance between opposite corners.
func (r Rectangle) Diagonal() float64 { return math.Hypot(r.width, r.height) }

// Area returns width*height.
func (r Rectangle) Area() (float64, bool) {
	return r.width * r.height, true
}

// Perimeter returns 2*(width+height).
func (r Rectangle) Perimeter() (float64, bool) {
	return 2 * (r.width + r.height), true
}

// InteriorAngles returns four right angles.
func (r Rectangle) InteriorAngles() ([]float64, bool) {
	return []float64{polys.RightAngle, polys.RightAngle, polys.RightAngle, polys.RightAngle}, true
}

// Split cuts the rectangle along its diagonal and returns one of the two
// resulting right triangles. The legs are side1=width and side2=height and
// side3 is the diagonal.
func (r Rectangle) Split() (Triangle, error) {
	return SAS(r.width, r.height, polys.RightAngle)
}

// Vertices returns the corners counter-clockwise starting at the origin.
func (r Rectangle) Vertices() d2.Set {
	return d2.Set{
		{X: 0, Y: 0},
		{X: r.width, Y: 0},
		{X: r.width, Y: r.height},
		{X: 0, Y: r.height},
	}
}

// Bounds returns the bounding box of the rectangle's vertices.
func (r Rectangle) Bounds() r2.Box {
	return r.Vertices().Bounds()
}

// Circle is a circle defined by its radius.
type Circle struct {
	radius float64
}

var _ polys.Shape = Circle{}

// NewCircle returns a circle of the given radius.
func NewCircle(radius float64) (Circle, error) {
	if err := polys.CheckDimension("radius", radius); err != nil {
		return Circle{}, polys.ErrMsg(err)
	}
	return Circle{radius: radius}, nil
}

// Radius returns the circle's radius.
func (c Circle) Radius() float64 { return c.radius }

// Diameter returns twice the radius.
func (c Circle) Diameter() float64 { return 2 * c.radius }

// Area returns pi*r^2.
func (c Circle) Area() (float64, bool) {
	return math.Pi * c.radius * c.radius, true
}

// Perimeter returns the circumference 2*pi*r.
func (c Circle) Perimeter() (float64, bool) {
	return 2 * math.Pi * c.radius, true
}

// InteriorAngles returns an empty slice. A circle has no vertices.
func (c Circle) InteriorAngles() ([]float64, bool) {
	return []float64{}, true
}

// Bounds returns the bounding box of the circle centered at the origin.
func (c Circle) Bounds() r2.Box {
	r := c.radius
	return r2.Box{Min: r2.Vec{X: -r, Y: -r}, Max: r2.Vec{X: r, Y: r}}
}
