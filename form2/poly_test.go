package form2_test

import (
	"testing"

	"github.com/soypat/polys"
	"github.com/soypat/polys/form2"
	"github.com/soypat/polys/form2/must2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolyDispatch(t *testing.T) {
	shapes := []polys.Shape{
		must2.Rectangle(3, 4),
		must2.Circle(2),
		must2.Triangle(24, 30, 18),
		must2.Pentagon(3),
	}
	ps := []form2.Poly{
		form2.FromRectangle(must2.Rectangle(3, 4)),
		form2.FromCircle(must2.Circle(2)),
		form2.FromTriangle(must2.Triangle(24, 30, 18)),
		form2.FromRegular(must2.Pentagon(3)),
	}
	kinds := []form2.Kind{form2.KindRectangle, form2.KindCircle, form2.KindTriangle, form2.KindRegular}
	for i, p := range ps {
		assert.Equal(t, kinds[i], p.Kind())

		wantArea, wantAreaOK := shapes[i].Area()
		gotArea, gotAreaOK := p.Area()
		assert.Equal(t, wantArea, gotArea, p.String())
		assert.Equal(t, wantAreaOK, gotAreaOK)

		wantPeri, _ := shapes[i].Perimeter()
		gotPeri, ok := p.Perimeter()
		assert.True(t, ok)
		assert.Equal(t, wantPeri, gotPeri, p.String())

		wantAngles, _ := shapes[i].InteriorAngles()
		gotAngles, ok := p.InteriorAngles()
		assert.True(t, ok)
		assert.Equal(t, wantAngles, gotAngles, p.String())
	}
}

func TestPolyAccessors(t *testing.T) {
	p := form2.FromTriangle(must2.Triangle(3, 4, 5))
	tri, ok := p.Triangle()
	require.True(t, ok)
	assert.Equal(t, 5.0, tri.Side3())

	_, ok = p.Rectangle()
	assert.False(t, ok)
	_, ok = p.Circle()
	assert.False(t, ok)
	_, ok = p.Regular()
	assert.False(t, ok)

	r, ok := form2.FromRectangle(must2.Square(2)).Rectangle()
	require.True(t, ok)
	assert.Equal(t, 2.0, r.Width())
	c, ok := form2.FromCircle(must2.Circle(1.5)).Circle()
	require.True(t, ok)
	assert.Equal(t, 1.5, c.Radius())
	reg, ok := form2.FromRegular(must2.Octagon(1)).Regular()
	require.True(t, ok)
	assert.Equal(t, 8, reg.Sides())
}

func TestPolyZero(t *testing.T) {
	var p form2.Poly
	assert.Equal(t, form2.KindNone, p.Kind())
	_, ok := p.Area()
	assert.False(t, ok)
	_, ok = p.Perimeter()
	assert.False(t, ok)
	angles, ok := p.InteriorAngles()
	assert.False(t, ok)
	assert.Nil(t, angles)
	assert.Equal(t, "none", p.String())
}

func TestPolyString(t *testing.T) {
	assert.Equal(t, "rectangle(3 x 4)", form2.FromRectangle(must2.Rectangle(3, 4)).String())
	assert.Equal(t, "circle(r=2)", form2.FromCircle(must2.Circle(2)).String())
	assert.Equal(t, "triangle(3, 4, 5)", form2.FromTriangle(must2.Triangle(3, 4, 5)).String())
	assert.Equal(t, "regular(6 x 1)", form2.FromRegular(must2.Hexagon(1)).String())
	assert.Equal(t, "Kind(9)", form2.Kind(9).String())
}
