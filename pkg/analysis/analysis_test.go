package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tos07/go-ray-optics/pkg/element"
	"github.com/tos07/go-ray-optics/pkg/geom"
	"github.com/tos07/go-ray-optics/pkg/path"
)

func TestSensorImage_PointSourceAtUnitMagnification(t *testing.T) {
	// Object at 2f images 1:1 onto a sensor at 2f behind the lens, so an
	// on-axis point source lands tightly around sensor center
	lens, err := element.NewLens(100, 200, geom.NewVec2(200, 0), 0)
	require.NoError(t, err)
	sensor, err := element.NewSensor(20, geom.NewVec2(400, 0), 0)
	require.NoError(t, err)

	p := path.NewOpticalPath()
	p.Append(lens, sensor)

	trace := p.Trace(path.Fan(geom.NewVec2(0, 0), -10, 10, 21, 532))
	image := SensorImage(trace, sensor)

	require.Len(t, image.Spots, 1)
	spot := image.Spots[0]
	assert.Equal(t, 532.0, spot.Wavelength)
	assert.Equal(t, 21, spot.Count)
	assert.InDelta(t, 0.0, spot.Mean, 1e-9, "image of an axial point is on axis")
	assert.InDelta(t, 0.0, spot.RMS, 1e-9, "ideal lens images a point to a point")
	assert.Equal(t, 1.0, image.Efficiency)
}

func TestSensorImage_EfficiencyCountsAbsorbedRays(t *testing.T) {
	stop, err := element.NewAperture(2, geom.NewVec2(50, 0), 0)
	require.NoError(t, err)
	sensor, err := element.NewSensor(50, geom.NewVec2(100, 0), 0)
	require.NoError(t, err)

	p := path.NewOpticalPath()
	p.Append(stop, sensor)

	// Half-degree rays pass the stop, ten-degree rays are blocked
	trace := p.Trace(path.FanAngles(geom.NewVec2(0, 0), []float64{-10, -0.5, 0.5, 10}, 532))
	image := SensorImage(trace, sensor)

	assert.InDelta(t, 0.5, image.Efficiency, 1e-12)
	require.Len(t, image.Spots, 1)
	assert.Equal(t, 2, image.Spots[0].Count)
}

func TestCrossings_FanFocusesAtImagePoint(t *testing.T) {
	lens, err := element.NewLens(100, 200, geom.NewVec2(200, 0), 0)
	require.NoError(t, err)

	p := path.NewOpticalPath()
	p.Append(lens)

	trace := p.Trace(path.FanAngles(geom.NewVec2(0, 0), []float64{-5, 0, 5}, 532))
	crossings := Crossings(trace)

	// Three surviving rays cross pairwise at the single image point
	require.Len(t, crossings, 3)
	for _, point := range crossings {
		assert.InDelta(t, 400.0, point.X, 1e-6)
		assert.InDelta(t, 0.0, point.Y, 1e-6)
	}
}

func TestCrossings_CollimatedRaysNeverCross(t *testing.T) {
	p := path.NewOpticalPath()
	trace := p.Trace([]geom.Ray{
		geom.NewRay(geom.NewVec2(0, 0), geom.NewVec2(1, 0)),
		geom.NewRay(geom.NewVec2(0, 5), geom.NewVec2(1, 0)),
	})

	assert.Empty(t, Crossings(trace))
}

func TestParaxialSystem_SingleLens(t *testing.T) {
	lens, err := element.NewLens(50, 20, geom.NewVec2(0, 0), 0)
	require.NoError(t, err)

	system := NewParaxialSystem().Through(lens)
	f, ok := system.EffectiveFocalLength()
	require.True(t, ok)
	assert.InDelta(t, 50.0, f, 1e-12)
}

func TestParaxialSystem_LensesInContact(t *testing.T) {
	l1, err := element.NewLens(100, 20, geom.NewVec2(0, 0), 0)
	require.NoError(t, err)
	l2, err := element.NewLens(50, 20, geom.NewVec2(0, 0), 0)
	require.NoError(t, err)

	system := NewParaxialSystem().Through(l1).Through(l2)
	f, ok := system.EffectiveFocalLength()
	require.True(t, ok)

	// 1/f = 1/f1 + 1/f2
	assert.InDelta(t, 100.0/3.0, f, 1e-9)
}

func TestParaxialSystem_TelescopeIsAfocal(t *testing.T) {
	objective, err := element.NewLens(200, 40, geom.NewVec2(0, 0), 0)
	require.NoError(t, err)
	eyepiece, err := element.NewLens(25, 10, geom.NewVec2(225, 0), 0)
	require.NoError(t, err)

	system := NewParaxialSystem().
		Through(objective).
		Propagate(225).
		Through(eyepiece)

	_, ok := system.EffectiveFocalLength()
	assert.False(t, ok, "a telescope with shared focal planes is afocal")

	// Angular magnification -f1/f2 shows up as the beam compression A = -f2/f1
	assert.InDelta(t, -25.0/200.0, system.Magnification(), 1e-9)
}
