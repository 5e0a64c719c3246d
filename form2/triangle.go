package form2

import (
	"fmt"
	"math"

	"github.com/soypat/polys"
	"github.com/soypat/polys/internal/d2"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

// Triangle is a triangle defined by the lengths of its three sides.
type Triangle struct {
	sides [3]float64
}

var _ polys.Shape = Triangle{}

// NewTriangle returns a triangle with sides s1, s2 and s3.
// The longest side must be strictly shorter than the sum of the other two.
func NewTriangle(s1, s2, s3 float64) (Triangle, error) {
	sides := [3]float64{s1, s2, s3}
	for i, s := range sides {
		if err := polys.CheckDimension(fmt.Sprintf("side%d", i+1), s); err != nil {
			return Triangle{}, polys.ErrMsg(err)
		}
	}
	i := floats.MaxIdx(sides[:])
	longest := sides[i]
	rest := sides[(i+1)%3] + sides[(i+2)%3]
	if longest >= rest {
		err := fmt.Errorf("%w: longest side %g not shorter than sum of others %g", polys.ErrInvalidGeometry, longest, rest)
		return Triangle{}, polys.ErrMsg(err)
	}
	return Triangle{sides: sides}, nil
}

// SAS returns the triangle with sides a and b and the angle between them
// (side-angle-side). The angle is in radians and must be in (0, pi).
// The returned triangle has side1=a, side2=b and side3 opposite the angle.
func SAS(a, b, angle float64) (Triangle, error) {
	if !(angle > 0) || angle >= math.Pi {
		err := fmt.Errorf("%w: included angle %g not in (0, pi)", polys.ErrInvalidAngle, angle)
		return Triangle{}, polys.ErrMsg(err)
	}
	if err := polys.CheckDimension("side1", a); err != nil {
		return Triangle{}, polys.ErrMsg(err)
	}
	if err := polys.CheckDimension("side2", b); err != nil {
		return Triangle{}, polys.ErrMsg(err)
	}
	// Law of cosines as c^2 = (a-b)^2 + 4ab*sin^2(angle/2),
	// with the legs scaled so the longest is in [0.5, 1).
	_, exp := math.Frexp(math.Max(a, b))
	as, bs := math.Ldexp(a, -exp), math.Ldexp(b, -exp)
	sin := math.Sin(angle / 2)
	c := math.Ldexp(math.Sqrt((as-bs)*(as-bs)+4*as*bs*sin*sin), exp)
	if !(c > 0) || math.IsInf(c, 0) {
		err := fmt.Errorf("%w: third side %g of SAS(%g, %g, %g) is not representable", polys.ErrInvalidGeometry, c, a, b, angle)
		return Triangle{}, polys.ErrMsg(err)
	}
	return NewTriangle(a, b, c)
}

// Side1 returns the triangle's first side.
func (t Triangle) Side1() float64 { return t.sides[0] }

// Side2 returns the triangle's second side.
func (t Triangle) Side2() float64 { return t.sides[1] }

// Side3 returns the triangle's third side.
func (t Triangle) Side3() float64 { return t.sides[2] }

// Sides returns the three sides in construction order.
func (t Triangle) Sides() [3]float64 { return t.sides }

// scaled returns the sides multiplied by 2^-exp so the longest is in [0.5, 1).
// Scaling by a power of two is exact, so formulas give the same result
// on the scaled sides without intermediate overflow.
func (t Triangle) scaled() (a, b, c float64, exp int) {
	_, exp = math.Frexp(floats.Max(t.sides[:]))
	return math.Ldexp(t.sides[0], -exp), math.Ldexp(t.sides[1], -exp), math.Ldexp(t.sides[2], -exp), exp
}

// Area returns the area of the triangle using Heron's formula.
func (t Triangle) Area() (float64, bool) {
	a, b, c, exp := t.scaled()
	p := (a + b + c) / 2
	return math.Ldexp(math.Sqrt(p*(p-a)*(p-b)*(p-c)), 2*exp), true
}

// Perimeter returns the sum of the sides.
func (t Triangle) Perimeter() (float64, bool) {
	return floats.Sum(t.sides[:]), true
}

// InteriorAngles returns the angles opposite side1, side2 and side3, in that
// order. It returns ok=false if floating point error leaves any angle
// undefined or zero, which may happen for near-degenerate triangles.
func (t Triangle) InteriorAngles() ([]float64, bool) {
	s1, s2, s3, _ := t.scaled()
	sides := [3]float64{s1, s2, s3}
	angles := make([]float64, 3)
	for i := range sides {
		a := sides[i]
		b := sides[(i+1)%3]
		c := sides[(i+2)%3]
		angle := math.Acos((b*b + c*c - a*a) / (2 * b * c))
		if math.IsNaN(angle) || math.IsInf(angle, 0) || angle == 0 {
			return nil, false
		}
		angles[i] = angle
	}
	return angles, true
}

// TriangleKind classifies a triangle by how many of its sides are equal.
type TriangleKind uint8

const (
	Scalene     TriangleKind = iota // No two sides equal.
	Isosceles                       // Exactly two sides equal.
	Equilateral                     // All three sides equal.
)

// String returns the lowercase name of the kind.
func (k TriangleKind) String() string {
	switch k {
	case Scalene:
		return "scalene"
	case Isosceles:
		return "isosceles"
	case Equilateral:
		return "equilateral"
	}
	return fmt.Sprintf("TriangleKind(%d)", uint8(k))
}

// Kind classifies t. Sides are compared within tol.
func (t Triangle) Kind(tol float64) TriangleKind {
	a, b, c := t.sides[0], t.sides[1], t.sides[2]
	ab := scalar.EqualWithinAbs(a, b, tol)
	bc := scalar.EqualWithinAbs(b, c, tol)
	ac := scalar.EqualWithinAbs(a, c, tol)
	switch {
	case ab && bc:
		return Equilateral
	case ab || bc || ac:
		return Isosceles
	}
	return Scalene
}

// IsRight reports whether one of t's angles is a right angle within tol radians.
func (t Triangle) IsRight(tol float64) bool {
	angles, ok := t.InteriorAngles()
	if !ok {
		return false
	}
	for _, a := range angles {
		if scalar.EqualWithinAbs(a, polys.RightAngle, tol) {
			return true
		}
	}
	return false
}

// Vertices returns the triangle's vertices counter-clockwise. The vertex
// opposite side3 is last, side3 lies on the x axis starting at the origin
// and the first vertex is opposite side1.
func (t Triangle) Vertices() d2.Set {
	a, b, c, exp := t.scaled()
	x := (b*b + c*c - a*a) / (2 * c)
	y := math.Sqrt(math.Max(b*b-x*x, 0))
	return d2.Set{
		{X: 0, Y: 0},
		{X: t.sides[2], Y: 0},
		{X: math.Ldexp(x, exp), Y: math.Ldexp(y, exp)},
	}
}

// Bounds returns the bounding box of the triangle's vertices.
func (t Triangle) Bounds() r2.Box {
	return t.Vertices().Bounds()
}
