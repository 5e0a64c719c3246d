package must2

import "github.com/soypat/polys/form2"

// Regular returns a regular polygon with the given number of sides of the given length.
func Regular(length float64, sides int) form2.Regular {
	return regular(form2.NewRegular(length, sides))
}

// Trigon returns an equilateral triangle as a regular polygon.
func Trigon(length float64) form2.Regular { return regular(form2.Trigon(length)) }

// Tetragon returns a square as a regular polygon.
func Tetragon(length float64) form2.Regular { return regular(form2.Tetragon(length)) }

// Pentagon returns a regular 5-sided polygon.
func Pentagon(length float64) form2.Regular { return regular(form2.Pentagon(length)) }

// Hexagon returns a regular 6-sided polygon.
func Hexagon(length float64) form2.Regular { return regular(form2.Hexagon(length)) }

// Heptagon returns a regular 7-sided polygon.
func Heptagon(length float64) form2.Regular { return regular(form2.Heptagon(length)) }

// Octagon returns a regular 8-sided polygon.
func Octagon(length float64) form2.Regular { return regular(form2.Octagon(length)) }

// Nonagon returns a regular 9-sided polygon.
func Nonagon(length float64) form2.Regular { return regular(form2.Nonagon(length)) }

func regular(r form2.Regular, err error) form2.Regular {
	if err != nil {
		panic(err)
	}
	return r
}
