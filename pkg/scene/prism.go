package scene

import (
	"github.com/tos07/go-ray-optics/pkg/element"
	"github.com/tos07/go-ray-optics/pkg/geom"
	"github.com/tos07/go-ray-optics/pkg/path"
)

// prismWavelengths span the visible range to make the dispersion fan visible
var prismWavelengths = []float64{430, 480, 532, 589, 650}

// NewPrismScene builds a dispersion bench: a white beam entering a BK7 prism
// near minimum deviation, spread into its spectrum on a tilted sensor.
func NewPrismScene() (*Scene, error) {
	// 48.6 degrees onto the entry face is close to minimum deviation for
	// BK7; the 532nm line then leaves at about 9.7 degrees
	const (
		entryAngle = 48.6
		exitAngle  = 9.7
	)

	prism, err := element.NewPrism(30, element.BK7, geom.NewVec2(60, 0), 0)
	if err != nil {
		return nil, err
	}

	// The exit beam emerges around the exit face center; aim the sensor
	// down the 532nm direction from there
	exitCenter := geom.NewVec2(73, 7.5)
	sensorFrame := path.Place(geom.NewFrame(exitCenter, exitAngle), 100, exitAngle)
	sensor, err := element.NewSensor(40, sensorFrame.Origin, exitAngle)
	if err != nil {
		return nil, err
	}

	p := path.NewOpticalPath()
	p.Append(prism, sensor)

	origin := geom.NewVec2(20, -45)
	dir := geom.UnitFromAngle(entryAngle)
	rays := make([]geom.Ray, len(prismWavelengths))
	for i, wavelength := range prismWavelengths {
		rays[i] = geom.NewRay(origin, dir).WithWavelength(wavelength)
	}

	return &Scene{
		Name:        "prism",
		Description: "white beam dispersed by a BK7 prism near minimum deviation",
		Path:        p,
		Rays:        rays,
		Sensor:      sensor,
	}, nil
}
