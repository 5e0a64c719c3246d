// Package polys provides measurable 2d shapes: rectangles, circles,
// triangles and regular polygons.
//
// Shapes are built through the validating constructors of package form2
// and queried through the Shape interface. All angles are radians.
package polys

// Shape is the interface to a 2d shape with measurable geometry.
//
// Every query reports ok=false when its formula is undefined for the
// shape's geometry. A constructed shape never fails Area or Perimeter;
// only triangle angles may be undefined due to floating point cancellation.
type Shape interface {
	// Area returns the area of the shape in squared units.
	Area() (area float64, ok bool)

	// Perimeter returns the length of the shape's boundary.
	Perimeter() (perimeter float64, ok bool)

	// InteriorAngles returns one angle per vertex in radians.
	// A shape with no vertices returns an empty, non-nil slice and ok=true.
	InteriorAngles() (angles []float64, ok bool)
}

// Measurements holds the results of querying a Shape.
// A measurement that was undefined is reported through its ok field.
type Measurements struct {
	Area        float64
	AreaOK      bool
	Perimeter   float64
	PerimeterOK bool
	Angles      []float64
	AnglesOK    bool
}

// Measure queries all of s's measurements.
func Measure(s Shape) Measurements {
	var m Measurements
	m.Area, m.AreaOK = s.Area()
	m.Perimeter, m.PerimeterOK = s.Perimeter()
	m.Angles, m.AnglesOK = s.InteriorAngles()
	return m
}

// Defined reports whether every measurement of m is defined.
func (m Measurements) Defined() bool {
	return m.AreaOK && m.PerimeterOK && m.AnglesOK
}
