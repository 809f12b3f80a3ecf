package scene

import (
	"github.com/tos07/go-ray-optics/pkg/element"
	"github.com/tos07/go-ray-optics/pkg/geom"
	"github.com/tos07/go-ray-optics/pkg/path"
)

// NewImagingScene builds a unit-magnification imaging bench: an extended
// object at twice the focal length of a single thin lens, imaged inverted
// 1:1 onto a sensor another two focal lengths behind it. Fan rays outside
// the lens aperture show the vignetting.
func NewImagingScene() (*Scene, error) {
	const focalLength = 100.0

	object := path.NewObject(10, geom.NewVec2(0, 0), 0, 9, 532)

	lens, err := element.NewLens(focalLength, 120, geom.NewVec2(2*focalLength, 0), 0)
	if err != nil {
		return nil, err
	}
	sensor, err := element.NewSensor(30, geom.NewVec2(4*focalLength, 0), 0)
	if err != nil {
		return nil, err
	}

	p := path.NewOpticalPath()
	p.Append(lens, sensor)

	return &Scene{
		Name:        "imaging",
		Description: "1:1 imaging of an extended object through a single thin lens",
		Path:        p,
		Rays:        object.Rays(),
		Sensor:      sensor,
	}, nil
}
