package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tos07/go-ray-optics/pkg/analysis"
	"github.com/tos07/go-ray-optics/pkg/geom"
)

func TestNew_UnknownScene(t *testing.T) {
	_, err := New("no-such-bench")
	assert.Error(t, err)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"collimator", "imaging", "prism", "spectrometer"}, Names())
}

func TestAllScenes_TraceAndDetect(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := New(name)
			require.NoError(t, err)
			require.NotEmpty(t, s.Rays)
			require.NotNil(t, s.Sensor)

			trace := s.Path.Trace(s.Rays)
			image := analysis.SensorImage(trace, s.Sensor)
			assert.Greater(t, image.Efficiency, 0.0,
				"every bench must land rays on its sensor")
		})
	}
}

func TestImagingScene_UnitMagnification(t *testing.T) {
	s, err := NewImagingScene()
	require.NoError(t, err)

	trace := s.Path.Trace(s.Rays)
	image := analysis.SensorImage(trace, s.Sensor)

	// Only the three central fan angles clear the lens aperture
	assert.InDelta(t, 1.0/3.0, image.Efficiency, 1e-12)

	require.Len(t, image.Spots, 1)
	spot := image.Spots[0]
	assert.Equal(t, 9, spot.Count)

	// The 10-unit object images 1:1 onto the sensor
	assert.InDelta(t, -5.0, spot.Min, 1e-9)
	assert.InDelta(t, 5.0, spot.Max, 1e-9)
	assert.InDelta(t, 0.0, spot.Mean, 1e-9)
}

func TestSpectrometerScene_ResolvesLines(t *testing.T) {
	s, err := NewSpectrometerScene()
	require.NoError(t, err)

	trace := s.Path.Trace(s.Rays)
	image := analysis.SensorImage(trace, s.Sensor)

	assert.Equal(t, 1.0, image.Efficiency)
	require.Len(t, image.Spots, 3)

	// Spots come back sorted by wavelength; longer wavelengths diffract
	// further from the grating normal, landing lower on the sensor
	for i, spot := range image.Spots {
		assert.Equal(t, spectrometerWavelengths[i], spot.Wavelength)
		assert.Equal(t, 7, spot.Count)
		assert.InDelta(t, 0.0, spot.RMS, 1e-6,
			"collimated lines focus to points at %gnm", spot.Wavelength)
	}
	assert.Greater(t, image.Spots[0].Mean, image.Spots[1].Mean)
	assert.Greater(t, image.Spots[1].Mean, image.Spots[2].Mean)
	assert.InDelta(t, 0.0, image.Spots[1].Mean, 1e-6, "center line lands on axis")
}

func TestPrismScene_SpectrumOrdering(t *testing.T) {
	s, err := NewPrismScene()
	require.NoError(t, err)

	trace := s.Path.Trace(s.Rays)
	image := analysis.SensorImage(trace, s.Sensor)

	assert.Equal(t, 1.0, image.Efficiency)
	require.Len(t, image.Spots, len(prismWavelengths))

	// Blue deviates most, so sensor height grows with wavelength
	for i := 1; i < len(image.Spots); i++ {
		assert.Greater(t, image.Spots[i].Mean, image.Spots[i-1].Mean,
			"%gnm must land above %gnm",
			image.Spots[i].Wavelength, image.Spots[i-1].Wavelength)
	}
}

func TestCollimatorScene_ParallelOutput(t *testing.T) {
	s, err := NewCollimatorScene()
	require.NoError(t, err)

	trace := s.Path.Trace(s.Rays)
	assert.Zero(t, trace.Absorbed())

	for _, traced := range trace.Rays {
		require.NotNil(t, traced.Final)
		assert.InDelta(t, 0.0, traced.Final.Dir.Subtract(geom.NewVec2(-1, 0)).Length(), 1e-9,
			"collimated beam travels straight back down the axis")
	}
}
