package scene

import (
	"math"

	"github.com/tos07/go-ray-optics/pkg/element"
	"github.com/tos07/go-ray-optics/pkg/geom"
	"github.com/tos07/go-ray-optics/pkg/path"
)

// spectrometerWavelengths are the source lines resolved on the sensor
var spectrometerWavelengths = []float64{430, 532, 650}

// NewSpectrometerScene builds a grating spectrometer: a point source
// collimated by a lens, dispersed by a transmission grating and refocused
// onto a sensor by a camera lens on the first-order axis. Each source
// wavelength lands as a separate spot.
func NewSpectrometerScene() (*Scene, error) {
	const (
		collimatorFocal = 50.0
		cameraFocal     = 50.0
		pitch           = 1.6 // micrometers
		order           = 1
	)

	collimator, err := element.NewLens(collimatorFocal, 40, geom.NewVec2(collimatorFocal, 0), 0)
	if err != nil {
		return nil, err
	}
	grating, err := element.NewDiffractionGrating(pitch, order, 40, geom.NewVec2(80, 0), 0)
	if err != nil {
		return nil, err
	}

	// The camera arm follows the first-order direction of the center
	// wavelength, sin(theta) = m*lambda/d at normal incidence
	axis := -geom.Degrees(math.Asin(float64(order) * 532.0 / (pitch * 1000)))
	cameraFrame := path.Place(grating.Frame(), 40, axis)
	camera, err := element.NewLens(cameraFocal, 40, cameraFrame.Origin, axis)
	if err != nil {
		return nil, err
	}
	sensorFrame := path.Place(cameraFrame, cameraFocal, axis)
	sensor, err := element.NewSensor(30, sensorFrame.Origin, axis)
	if err != nil {
		return nil, err
	}

	p := path.NewOpticalPath()
	p.Append(collimator, grating, camera, sensor)

	var rays []geom.Ray
	for _, wavelength := range spectrometerWavelengths {
		rays = append(rays, path.Fan(geom.NewVec2(0, 0), -10, 10, 7, wavelength)...)
	}

	return &Scene{
		Name:        "spectrometer",
		Description: "point source dispersed by a transmission grating onto a sensor",
		Path:        p,
		Rays:        rays,
		Sensor:      sensor,
	}, nil
}
