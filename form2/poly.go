package form2

import (
	"fmt"

	"github.com/soypat/polys"
)

// Kind identifies the shape held by a Poly.
type Kind uint8

const (
	KindNone      Kind = iota // Zero Poly, holds no shape.
	KindRectangle             // Holds a Rectangle.
	KindCircle                // Holds a Circle.
	KindTriangle              // Holds a Triangle.
	KindRegular               // Holds a Regular.
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindRectangle:
		return "rectangle"
	case KindCircle:
		return "circle"
	case KindTriangle:
		return "triangle"
	case KindRegular:
		return "regular"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Poly holds exactly one of the shapes of this package. It allows
// heterogeneous collections of shapes with no interface boxing.
// The zero Poly holds no shape and reports every measurement as undefined.
type Poly struct {
	kind Kind
	rect Rectangle
	circ Circle
	tri  Triangle
	reg  Regular
}

var _ polys.Shape = Poly{}

// FromRectangle returns a Poly holding r.
func FromRectangle(r Rectangle) Poly { return Poly{kind: KindRectangle, rect: r} }

// FromCircle returns a Poly holding c.
func FromCircle(c Circle) Poly { return Poly{kind: KindCircle, circ: c} }

// FromTriangle returns a Poly holding t.
func FromTriangle(t Triangle) Poly { return Poly{kind: KindTriangle, tri: t} }

// FromRegular returns a Poly holding r.
func FromRegular(r Regular) Poly { return Poly{kind: KindRegular, reg: r} }

// Kind returns the kind of shape held by p.
func (p Poly) Kind() Kind { return p.kind }

// Rectangle returns the held rectangle. ok is false if p holds another kind.
func (p Poly) Rectangle() (r Rectangle, ok bool) { return p.rect, p.kind == KindRectangle }

// Circle returns the held circle. ok is false if p holds another kind.
func (p Poly) Circle() (c Circle, ok bool) { return p.circ, p.kind == KindCircle }

// Triangle returns the held triangle. ok is false if p holds another kind.
func (p Poly) Triangle() (t Triangle, ok bool) { return p.tri, p.kind == KindTriangle }

// Regular returns the held regular polygon. ok is false if p holds another kind.
func (p Poly) Regular() (r Regular, ok bool) { return p.reg, p.kind == KindRegular }

// Area returns the area of the held shape.
func (p Poly) Area() (float64, bool) {
	switch p.kind {
	case KindRectangle:
		return p.rect.Area()
	case KindCircle:
		return p.circ.Area()
	case KindTriangle:
		return p.tri.Area()
	case KindRegular:
		return p.reg.Area()
	}
	return 0, false
}

// Perimeter returns the perimeter of the held shape.
func (p Poly) Perimeter() (float64, bool) {
	switch p.kind {
	case KindRectangle:
		return p.rect.Perimeter()
	case KindCircle:
		return p.circ.Perimeter()
	case KindTriangle:
		return p.tri.Perimeter()
	case KindRegular:
		return p.reg.Perimeter()
	}
	return 0, false
}

// InteriorAngles returns the interior angles of the held shape.
func (p Poly) InteriorAngles() ([]float64, bool) {
	switch p.kind {
	case KindRectangle:
		return p.rect.InteriorAngles()
	case KindCircle:
		return p.circ.InteriorAngles()
	case KindTriangle:
		return p.tri.InteriorAngles()
	case KindRegular:
		return p.reg.InteriorAngles()
	}
	return nil, false
}

// String describes the held shape and its dimensions.
func (p Poly) String() string {
	switch p.kind {
	case KindRectangle:
		return fmt.Sprintf("rectangle(%g x %g)", p.rect.width, p.rect.height)
	case KindCircle:
		return fmt.Sprintf("circle(r=%g)", p.circ.radius)
	case KindTriangle:
		return fmt.Sprintf("triangle(%g, %g, %g)", p.tri.sides[0], p.tri.sides[1], p.tri.sides[2])
	case KindRegular:
		return fmt.Sprintf("regular(%d x %g)", p.reg.sides, p.reg.length)
	}
	return p.kind.String()
}
