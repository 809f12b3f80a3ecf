package element

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tos07/go-ray-optics/pkg/geom"
)

func TestDiffractionGrating_NormalIncidence600LinesPerMM(t *testing.T) {
	// 600 lines/mm is a pitch of 1000/600 micrometers. At 500nm in first
	// order, sin(theta_out) = m*lambda/d = 0.3.
	grating, err := NewDiffractionGrating(1000.0/600.0, 1, 20, geom.NewVec2(10, 0), 0)
	require.NoError(t, err)

	ray := geom.NewRay(geom.NewVec2(0, 0), geom.NewVec2(1, 0)).WithWavelength(500)
	out := traceOne(t, grating, ray)

	expected := math.Asin(0.3)
	assert.InDelta(t, expected, math.Abs(math.Asin(out.Dir.Y)), 1e-9)
	assert.Less(t, out.Dir.Y, 0.0, "positive order deflects toward negative heights")
	assert.Equal(t, 500.0, out.Wavelength, "wavelength is preserved")
}

func TestDiffractionGrating_EvanescentOrderAbsorbed(t *testing.T) {
	// m*lambda/d = 500/400 > 1: no propagating first order
	grating, err := NewDiffractionGrating(0.4, 1, 20, geom.NewVec2(10, 0), 0)
	require.NoError(t, err)

	ray := geom.NewRay(geom.NewVec2(0, 0), geom.NewVec2(1, 0)).WithWavelength(500)
	hit, ok := grating.Intersect(ray)
	require.True(t, ok)
	assert.Empty(t, grating.Interact(ray, hit), "evanescent order must absorb the ray")
}

func TestDiffractionGrating_DiffractionAngleFor(t *testing.T) {
	grating, err := NewDiffractionGrating(1.0, 1, 15, geom.NewVec2(10, 0), -30)
	require.NoError(t, err)

	// Reference value from the 1.0um pitch grating at 532nm and 30 degrees
	// incidence: asin(sin(30deg) - 0.532) - 30
	angle, ok := grating.DiffractionAngleFor(532, -30)
	require.True(t, ok)
	assert.InDelta(t, -31.8337, angle, 1e-3)

	_, ok = grating.DiffractionAngleFor(4000, 0)
	assert.False(t, ok, "4um light has no propagating first order on a 1um pitch")
}

func TestDiffractionGrating_ZerothOrderUndeviated(t *testing.T) {
	grating, err := NewDiffractionGrating(1.0, 0, 20, geom.NewVec2(10, 0), 0)
	require.NoError(t, err)

	ray := geom.NewRay(geom.NewVec2(0, 2), geom.NewVec2(2, 1)).WithWavelength(650)
	out := traceOne(t, grating, ray)

	assert.InDelta(t, 0, out.Dir.Subtract(ray.Dir).Length(), 1e-12,
		"zeroth order passes straight through")
}

func TestDiffractionGrating_WavelengthsDisperse(t *testing.T) {
	grating, err := NewDiffractionGrating(1.6, -1, 20, geom.NewVec2(10, 0), 0)
	require.NoError(t, err)

	angles := make(map[float64]float64)
	for _, wl := range []float64{430, 532, 650} {
		ray := geom.NewRay(geom.NewVec2(0, 0), geom.NewVec2(1, 0)).WithWavelength(wl)
		out := traceOne(t, grating, ray)
		angles[wl] = math.Asin(out.Dir.Y)
	}

	// Negative order deflects upward, more steeply for longer wavelengths
	assert.Greater(t, angles[532], angles[430])
	assert.Greater(t, angles[650], angles[532])
}

func TestDiffractionGrating_ConstructionErrors(t *testing.T) {
	_, err := NewDiffractionGrating(0, 1, 20, geom.NewVec2(0, 0), 0)
	assert.Error(t, err, "zero pitch must be rejected")

	_, err = NewDiffractionGrating(-1.6, 1, 20, geom.NewVec2(0, 0), 0)
	assert.Error(t, err, "negative pitch must be rejected")
}
