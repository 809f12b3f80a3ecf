package scene

import (
	"github.com/tos07/go-ray-optics/pkg/element"
	"github.com/tos07/go-ray-optics/pkg/geom"
	"github.com/tos07/go-ray-optics/pkg/path"
)

// NewCollimatorScene builds an off-axis-free collimator: a point source at
// the focus of a parabolic mirror, reflected into a parallel beam that runs
// back onto a sensor.
func NewCollimatorScene() (*Scene, error) {
	const focalLength = 30.0

	// Facing the beam, vertex behind the focus
	mirror, err := element.NewParabolicMirror(focalLength, 40, geom.NewVec2(2*focalLength, 0), 180)
	if err != nil {
		return nil, err
	}
	sensor, err := element.NewSensor(40, geom.NewVec2(0, 0), 180)
	if err != nil {
		return nil, err
	}

	p := path.NewOpticalPath()
	p.Append(mirror, sensor)

	return &Scene{
		Name:        "collimator",
		Description: "point source at a parabolic mirror focus, collimated onto a sensor",
		Path:        p,
		Rays:        path.Fan(mirror.Focus(), -15, 15, 9, 532),
		Sensor:      sensor,
	}, nil
}
