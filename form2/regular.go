package form2

import (
	"fmt"
	"math"

	"github.com/soypat/polys"
	"github.com/soypat/polys/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Regular is a regular polygon: all sides of equal length
// and all interior angles equal.
type Regular struct {
	length float64
	sides  int
}

var _ polys.Shape = Regular{}

// NewRegular returns a regular polygon with the given number of sides
// each of the given length. sides must be at least 3.
func NewRegular(length float64, sides int) (Regular, error) {
	if err := polys.CheckDimension("length", length); err != nil {
		return Regular{}, polys.ErrMsg(err)
	}
	if sides < 3 {
		err := fmt.Errorf("%w: regular polygon with %d sides, need at least 3", polys.ErrInvalidGeometry, sides)
		return Regular{}, polys.ErrMsg(err)
	}
	return Regular{length: length, sides: sides}, nil
}

// Trigon returns an equilateral triangle as a regular polygon.
func Trigon(length float64) (Regular, error) { return NewRegular(length, 3) }

// Tetragon returns a square as a regular polygon.
func Tetragon(length float64) (Regular, error) { return NewRegular(length, 4) }

// Pentagon returns a regular 5-sided polygon.
func Pentagon(length float64) (Regular, error) { return NewRegular(length, 5) }

// Hexagon returns a regular 6-sided polygon.
func Hexagon(length float64) (Regular, error) { return NewRegular(length, 6) }

// Heptagon returns a regular 7-sided polygon.
func Heptagon(length float64) (Regular, error) { return NewRegular(length, 7) }

// Octagon returns a regular 8-sided polygon.
func Octagon(length float64) (Regular, error) { return NewRegular(length, 8) }

// Nonagon returns a regular 9-sided polygon.
func Nonagon(length float64) (Regular, error) { return NewRegular(length, 9) }

// Length returns the length of each side.
func (r Regular) Length() float64 { return r.length }

// Sides returns the number of sides.
func (r Regular) Sides() int { return r.sides }

// Apothem returns the distance from the center to the midpoint of a side.
func (r Regular) Apothem() float64 {
	return r.length / (2 * math.Tan(math.Pi/float64(r.sides)))
}

// Circumradius returns the distance from the center to a vertex.
func (r Regular) Circumradius() float64 {
	return r.length / (2 * math.Sin(math.Pi/float64(r.sides)))
}

// Perimeter returns length*sides.
func (r Regular) Perimeter() (float64, bool) {
	return r.length * float64(r.sides), true
}

// Area returns perimeter*apothem/2.
func (r Regular) Area() (float64, bool) {
	p, _ := r.Perimeter()
	return p * r.Apothem() / 2, true
}

// InteriorAngles returns sides copies of the interior angle pi*(sides-2)/sides.
func (r Regular) InteriorAngles() ([]float64, bool) {
	n := float64(r.sides)
	angle := math.Pi * (n - 2) / n
	angles := make([]float64, r.sides)
	for i := range angles {
		angles[i] = angle
	}
	return angles, true
}

// Vertices returns the vertices of the polygon counter-clockwise on its
// circumcircle centered at the origin, starting on the positive x axis.
func (r Regular) Vertices() d2.Set {
	radius := r.Circumradius()
	step := 2 * math.Pi / float64(r.sides)
	v := make(d2.Set, r.sides)
	for i := range v {
		v[i] = d2.PolarToXY(radius, float64(i)*step)
	}
	return v
}

// Bounds returns the bounding box of the polygon's vertices.
func (r Regular) Bounds() r2.Box {
	return r.Vertices().Bounds()
}
