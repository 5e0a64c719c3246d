package form2_test

import (
	"errors"
	"fmt"

	"github.com/soypat/polys"
	"github.com/soypat/polys/form2"
	"github.com/soypat/polys/form2/must2"
)

func ExampleNewTriangle() {
	tri, err := form2.NewTriangle(24, 30, 18)
	if err != nil {
		panic(err)
	}
	area, _ := tri.Area()
	peri, _ := tri.Perimeter()
	fmt.Println(area, peri)

	_, err = form2.NewTriangle(10, 30, 5)
	fmt.Println(errors.Is(err, polys.ErrInvalidGeometry))
	// Output:
	// 216 72
	// true
}

func ExampleRectangle_Split() {
	rect, err := form2.NewRectangle(3, 4)
	if err != nil {
		panic(err)
	}
	tri, err := rect.Split()
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.6g\n", tri.Side3())
	// Output:
	// 5
}

func ExamplePentagon() {
	pent, err := form2.Pentagon(12)
	if err != nil {
		panic(err)
	}
	angles, _ := pent.InteriorAngles()
	fmt.Printf("%d angles of %.6g degrees\n", len(angles), polys.Degrees(angles[0]))
	// Output:
	// 5 angles of 108 degrees
}

func ExamplePoly() {
	shapes := []form2.Poly{
		form2.FromCircle(must2.Circle(1)),
		form2.FromTriangle(must2.Triangle(3, 4, 5)),
	}
	for _, s := range shapes {
		area, _ := s.Area()
		fmt.Printf("%s area=%.4f\n", s, area)
	}
	// Output:
	// circle(r=1) area=3.1416
	// triangle(3, 4, 5) area=6.0000
}
