package element

import (
	"gonum.org/v1/gonum/mat"

	"github.com/tos07/go-ray-optics/pkg/geom"
)

// Aperture is a hard stop: rays within the clear aperture pass through
// unchanged, rays striking the blocker are absorbed. The clear boundary is
// inclusive, so a ray exactly at the half-height passes.
type Aperture struct {
	mount
}

// NewAperture creates an aperture stop with the given clear diameter at the
// given position, rotated by theta degrees
func NewAperture(diameter float64, origin geom.Vec2, theta float64, opts ...Option) (*Aperture, error) {
	m, err := newMount(diameter, origin, theta, opts...)
	if err != nil {
		return nil, err
	}
	return &Aperture{mount: m}, nil
}

// Name identifies the element kind
func (a *Aperture) Name() string { return "aperture" }

// Intersect finds the nearest forward intersection with the aperture plane
func (a *Aperture) Intersect(ray geom.Ray) (*geom.CurveHit, bool) {
	return a.planeIntersect(ray)
}

// Interact passes the ray through within the clear aperture and absorbs it on
// the blocker
func (a *Aperture) Interact(ray geom.Ray, hit *geom.CurveHit) []geom.Ray {
	if !hit.Inside {
		return nil
	}
	return passThrough(ray, hit)
}

// Outline returns the two opaque flange segments of the stop
func (a *Aperture) Outline() []geom.Segment {
	return a.blockerOutline(0)
}

// Paraxial returns the identity: a clear aperture does not deviate rays
func (a *Aperture) Paraxial() *mat.Dense {
	return identityParaxial()
}
