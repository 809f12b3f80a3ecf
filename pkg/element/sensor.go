package element

import (
	"gonum.org/v1/gonum/mat"

	"github.com/tos07/go-ray-optics/pkg/geom"
)

// Sensor is a detector plane, usually the last element of a bench. Rays
// within the clear aperture pass through unchanged so their heights on the
// sensor can be read off the trace; rays outside are absorbed. Image
// statistics at the sensor live in the analysis package.
type Sensor struct {
	mount
}

// NewSensor creates a sensor with the given active height at the given
// position, rotated by theta degrees
func NewSensor(diameter float64, origin geom.Vec2, theta float64, opts ...Option) (*Sensor, error) {
	m, err := newMount(diameter, origin, theta, opts...)
	if err != nil {
		return nil, err
	}
	return &Sensor{mount: m}, nil
}

// Name identifies the element kind
func (s *Sensor) Name() string { return "sensor" }

// Intersect finds the nearest forward intersection with the sensor plane
func (s *Sensor) Intersect(ray geom.Ray) (*geom.CurveHit, bool) {
	return s.planeIntersect(ray)
}

// Interact passes the ray through the active area and absorbs it outside
func (s *Sensor) Interact(ray geom.Ray, hit *geom.CurveHit) []geom.Ray {
	if !hit.Inside {
		return nil
	}
	return passThrough(ray, hit)
}

// Outline returns the sensor face with its blocker flanges
func (s *Sensor) Outline() []geom.Segment {
	return s.chordOutline()
}

// Paraxial returns the identity: the sensor only records
func (s *Sensor) Paraxial() *mat.Dense {
	return identityParaxial()
}
