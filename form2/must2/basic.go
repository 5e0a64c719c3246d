// Package must2 provides constructors for the shapes of package form2
// that panic instead of returning an error. Use them for dimensions known
// to be valid, such as literals.
package must2

import "github.com/soypat/polys/form2"

// Rectangle returns a rectangle of the given width and height.
func Rectangle(width, height float64) form2.Rectangle {
	r, err := form2.NewRectangle(width, height)
	if err != nil {
		panic(err)
	}
	return r
}

// Square returns a rectangle with width and height equal to side.
func Square(side float64) form2.Rectangle {
	r, err := form2.Square(side)
	if err != nil {
		panic(err)
	}
	return r
}

// Circle returns a circle of the given radius.
func Circle(radius float64) form2.Circle {
	c, err := form2.NewCircle(radius)
	if err != nil {
		panic(err)
	}
	return c
}

// Triangle returns a triangle with sides s1, s2 and s3.
func Triangle(s1, s2, s3 float64) form2.Triangle {
	t, err := form2.NewTriangle(s1, s2, s3)
	if err != nil {
		panic(err)
	}
	return t
}

// SAS returns the triangle with sides a and b and the angle in radians between them.
func SAS(a, b, angle float64) form2.Triangle {
	t, err := form2.SAS(a, b, angle)
	if err != nil {
		panic(err)
	}
	return t
}
