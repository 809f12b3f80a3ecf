package element

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tos07/go-ray-optics/pkg/geom"
)

func TestGlass_RefractiveIndexBK7(t *testing.T) {
	// Published BK7 values
	assert.InDelta(t, 1.5195, BK7.RefractiveIndex(532), 5e-4)
	assert.InDelta(t, 1.5168, BK7.RefractiveIndex(587.6), 5e-4)

	// Normal dispersion: shorter wavelengths see a higher index
	assert.Greater(t, BK7.RefractiveIndex(430), BK7.RefractiveIndex(650))
}

// prismDeviation traces a ray through the prism and returns the total
// deviation angle in degrees, requiring the ray to be transmitted
func prismDeviation(t *testing.T, prism *Prism, wavelength float64) float64 {
	t.Helper()

	// Entry low on the face, rising at 48.6 degrees: close to minimum
	// deviation for BK7, safely below total internal reflection at the exit
	ray := geom.NewRay(geom.NewVec2(-2, -3), geom.UnitFromAngle(48.6)).WithWavelength(wavelength)
	hit, ok := prism.Intersect(ray)
	require.True(t, ok)
	out := prism.Interact(ray, hit)
	require.Len(t, out, 1, "expected transmission at %gnm", wavelength)

	return geom.Degrees(ray.Dir.Angle() - out[0].Dir.Angle())
}

func TestPrism_DeviationAndDispersion(t *testing.T) {
	prism, err := NewPrism(10, BK7, geom.NewVec2(0, 0), 0)
	require.NoError(t, err)

	dev := prismDeviation(t, prism, 532)

	// Minimum deviation for an equilateral prism: D = 2*asin(n*sin(30)) - 60
	n := BK7.RefractiveIndex(532)
	minDev := geom.Degrees(2*math.Asin(n/2)) - 60
	assert.Greater(t, dev, minDev-0.5)
	assert.Less(t, dev, minDev+3, "near-minimum-deviation geometry")

	// Blue deviates more than red
	assert.Greater(t, prismDeviation(t, prism, 430), prismDeviation(t, prism, 650))
}

func TestPrism_TotalInternalReflectionAbsorbs(t *testing.T) {
	prism, err := NewPrism(10, BK7, geom.NewVec2(0, 0), 0)
	require.NoError(t, err)

	// At normal incidence the internal ray meets the exit face at 60 degrees,
	// far beyond BK7's critical angle
	ray := geom.NewRay(geom.NewVec2(-5, 0), geom.NewVec2(1, 0))
	hit, ok := prism.Intersect(ray)
	require.True(t, ok)
	assert.Empty(t, prism.Interact(ray, hit), "total internal reflection absorbs the ray")
}

func TestPrism_Outline(t *testing.T) {
	prism, err := NewPrism(10, BK7, geom.NewVec2(0, 0), 0)
	require.NoError(t, err)

	outline := prism.Outline()
	require.Len(t, outline, 3)

	// Equilateral: every side has the face length
	for _, seg := range outline {
		assert.InDelta(t, 10.0, seg.B.Subtract(seg.A).Length(), 1e-9)
	}
}
