package element

import (
	"gonum.org/v1/gonum/mat"

	"github.com/tos07/go-ray-optics/pkg/geom"
)

// Mirror is a flat mirror: rays within the clear aperture reflect about the
// constant surface normal, rays outside are absorbed by the blocker.
type Mirror struct {
	mount
}

// NewMirror creates a flat mirror with the given clear diameter at the given
// position, rotated by theta degrees
func NewMirror(diameter float64, origin geom.Vec2, theta float64, opts ...Option) (*Mirror, error) {
	m, err := newMount(diameter, origin, theta, opts...)
	if err != nil {
		return nil, err
	}
	return &Mirror{mount: m}, nil
}

// Name identifies the element kind
func (m *Mirror) Name() string { return "mirror" }

// Intersect finds the nearest forward intersection with the mirror plane
func (m *Mirror) Intersect(ray geom.Ray) (*geom.CurveHit, bool) {
	return m.planeIntersect(ray)
}

// Interact reflects the ray about the mirror plane's normal
func (m *Mirror) Interact(ray geom.Ray, hit *geom.CurveHit) []geom.Ray {
	if !hit.Inside {
		return nil
	}
	out := ray.PropagateTo(hit.Point).WithDir(ray.Reflect(hit.Normal))
	return []geom.Ray{out}
}

// Outline returns the mirror face with its blocker flanges, drawn on the back
// side of the reflecting surface
func (m *Mirror) Outline() []geom.Segment {
	return m.chordOutline()
}

// Paraxial returns the flat-mirror ray-transfer matrix: height preserved,
// slope negated by the fold
func (m *Mirror) Paraxial() *mat.Dense {
	return mat.NewDense(2, 2, []float64{
		1, 0,
		0, -1,
	})
}
