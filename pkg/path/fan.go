package path

import "github.com/tos07/go-ray-optics/pkg/geom"

// Fan creates a bundle of n rays sharing an origin, spread across the open
// angle interval (minAngle, maxAngle) in degrees. The endpoints themselves
// are excluded, so a symmetric interval never produces rays exactly along
// its edges.
func Fan(origin geom.Vec2, minAngle, maxAngle float64, n int, wavelength float64) []geom.Ray {
	rays := make([]geom.Ray, n)
	da := (maxAngle - minAngle) / float64(n+1)
	for i := range rays {
		angle := minAngle + da*float64(i+1)
		rays[i] = geom.NewRay(origin, geom.UnitFromAngle(angle)).WithWavelength(wavelength)
	}
	return rays
}

// FanAngles creates one ray per given angle in degrees, all sharing the
// origin and wavelength
func FanAngles(origin geom.Vec2, angles []float64, wavelength float64) []geom.Ray {
	rays := make([]geom.Ray, len(angles))
	for i, angle := range angles {
		rays[i] = geom.NewRay(origin, geom.UnitFromAngle(angle)).WithWavelength(wavelength)
	}
	return rays
}
