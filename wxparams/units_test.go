package wxparams

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/unit"
)

func Test_Units(t *testing.T) {
	assert.InDelta(t, 19.438613, MPSToKT(10), 1.0e-6)
	assert.InDelta(t, 5.1444, KTToMPS(10), 1.0e-12)
	assert.InDelta(t, 3280.839895, MToFT(1000), 1.0e-6)
	assert.InDelta(t, 304.8, FTToM(1000), 1.0e-9)
	assert.InDelta(t, 37.777778, DegFToDegC(100), 1.0e-6)
	assert.Equal(t, 212.0, DegCToDegF(100))
	assert.Equal(t, -40.0, DegCToDegF(-40))
}

func Test_Units_RoundTrip(t *testing.T) {
	for _, x := range []float64{-1.0e6, -273.15, -40, -1, 0, 0.3, 1, 17.25, 99.9, 1.0e6} {
		assert.True(t, scalar.EqualWithinAbsOrRel(x, KTToMPS(MPSToKT(x)), 1.0e-12, 1.0e-12), "%g", x)
		assert.True(t, scalar.EqualWithinAbsOrRel(x, FTToM(MToFT(x)), 1.0e-12, 1.0e-12), "%g", x)
		assert.True(t, scalar.EqualWithinAbsOrRel(x, DegFToDegC(DegCToDegF(x)), 1.0e-12, 1.0e-12), "%g", x)
	}
}

func Test_Units_Typed(t *testing.T) {
	assert.InDelta(t, 10.0, Knots(VelocityFromKnots(10)), 1.0e-12)
	assert.InDelta(t, 5.1444, float64(VelocityFromKnots(10)), 1.0e-12)
	assert.InDelta(t, 1000.0, Feet(LengthFromFeet(1000)), 1.0e-9)
	assert.InDelta(t, 0.3048, float64(LengthFromFeet(1)), 1.0e-12)

	assert.Equal(t, 273.15*unit.Kelvin, Kelvin(0))
	assert.InDelta(t, 25.0, Celsius(Kelvin(25)), 1.0e-12)
}
