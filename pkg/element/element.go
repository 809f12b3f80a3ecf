// Package element implements the optical elements of a 2D bench: lenses,
// mirrors, parabolic mirrors, apertures, diffraction gratings, prisms and
// sensors. Elements are immutable after construction; interaction laws
// consume a ray plus its intersection and produce new rays.
package element

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/tos07/go-ray-optics/pkg/geom"
)

// Element is an optical element placed on the bench. Intersect finds the
// nearest forward intersection of a ray with the element's surface in the
// global frame; Interact applies the element's physical law at that point and
// returns the outgoing rays. An empty result means the ray was absorbed.
type Element interface {
	// Name identifies the element kind for diagnostics and labels
	Name() string

	// Frame returns the element's local coordinate frame on the bench
	Frame() geom.Frame

	// Aperture returns the clear aperture (full height) of the element
	Aperture() float64

	// Intersect finds the nearest forward ray-surface intersection
	Intersect(ray geom.Ray) (*geom.CurveHit, bool)

	// Interact applies the element's interaction law at the hit point,
	// returning zero or more outgoing rays
	Interact(ray geom.Ray, hit *geom.CurveHit) []geom.Ray

	// Outline returns the element's drawable geometry in the global frame
	Outline() []geom.Segment

	// Paraxial returns the element's 2x2 ABCD ray-transfer matrix, acting on
	// (height, slope) vectors in the element's local frame
	Paraxial() *mat.Dense
}

// mount carries the placement and aperture geometry shared by every element:
// the local frame, the clear aperture, the opaque blocker around it, and the
// facing orientation. The outline and the interaction law both derive their
// orientation from the same frame, so they cannot disagree.
type mount struct {
	frame    geom.Frame
	aperture float64 // clear aperture, full height
	blocker  float64 // blocker outer diameter, may be +Inf
	flipped  bool
}

// Option configures optional element parameters at construction
type Option func(*mount)

// WithBlocker sets the outer diameter of the opaque blocker surrounding the
// clear aperture. It must exceed the clear aperture.
func WithBlocker(diameter float64) Option {
	return func(m *mount) { m.blocker = diameter }
}

// Flipped reverses the element's outline orientation
func Flipped() Option {
	return func(m *mount) { m.flipped = true }
}

func newMount(aperture float64, origin geom.Vec2, theta float64, opts ...Option) (mount, error) {
	m := mount{
		frame:    geom.NewFrame(origin, theta),
		aperture: aperture,
		blocker:  math.Inf(1),
	}
	for _, opt := range opts {
		opt(&m)
	}

	if aperture <= 0 {
		return mount{}, fmt.Errorf("element aperture must be positive, got %g", aperture)
	}
	if m.blocker <= aperture {
		return mount{}, fmt.Errorf("blocker diameter %g must exceed the clear aperture %g", m.blocker, aperture)
	}
	return m, nil
}

// Frame returns the element's local coordinate frame
func (m mount) Frame() geom.Frame {
	return m.frame
}

// Aperture returns the clear aperture (full height) of the element
func (m mount) Aperture() float64 {
	return m.aperture
}

// hitToGlobal maps a curve hit from the element's local frame to the bench frame
func (m mount) hitToGlobal(hit *geom.CurveHit) *geom.CurveHit {
	return &geom.CurveHit{
		Point:  m.frame.ToGlobal(hit.Point),
		T:      hit.T,
		Normal: m.frame.DirToGlobal(hit.Normal),
		Inside: hit.Inside,
	}
}

// planeIntersect intersects a global-frame ray with the element plane,
// returning the hit in the global frame
func (m mount) planeIntersect(ray geom.Ray) (*geom.CurveHit, bool) {
	local := m.frame.RayToLocal(ray)
	hit, ok := geom.Plane{HalfHeight: m.aperture / 2}.Hit(local)
	if !ok {
		return nil, false
	}
	return m.hitToGlobal(hit), true
}

// edges returns the clear-aperture endpoints in the global frame, ordered
// bottom to top, reversed when the element is flipped
func (m mount) edges() (geom.Vec2, geom.Vec2) {
	lo := m.frame.ToGlobal(geom.NewVec2(0, -m.aperture/2))
	hi := m.frame.ToGlobal(geom.NewVec2(0, m.aperture/2))
	if m.flipped {
		return hi, lo
	}
	return lo, hi
}

// blockerOutline returns the two opaque flange segments outside the clear
// aperture, at the given local depth x. An infinite blocker is drawn at twice
// the clear aperture.
func (m mount) blockerOutline(x float64) []geom.Segment {
	outer := m.blocker
	if math.IsInf(outer, 1) {
		outer = 2 * m.aperture
	}
	segments := []geom.Segment{
		{A: geom.NewVec2(x, m.aperture/2), B: geom.NewVec2(x, outer/2)},
		{A: geom.NewVec2(x, -m.aperture/2), B: geom.NewVec2(x, -outer/2)},
	}
	if m.flipped {
		segments[0], segments[1] = segments[1], segments[0]
	}
	for i := range segments {
		segments[i].A = m.frame.ToGlobal(segments[i].A)
		segments[i].B = m.frame.ToGlobal(segments[i].B)
	}
	return segments
}

// chordOutline returns the clear-aperture chord plus the blocker flanges
func (m mount) chordOutline() []geom.Segment {
	a, b := m.edges()
	return append([]geom.Segment{{A: a, B: b}}, m.blockerOutline(0)...)
}

// identityParaxial is the ABCD matrix of an element that leaves height and
// slope unchanged
func identityParaxial() *mat.Dense {
	return mat.NewDense(2, 2, []float64{
		1, 0,
		0, 1,
	})
}

// passThrough returns the single outgoing ray of a transparent interaction:
// the incoming ray moved to the hit point
func passThrough(ray geom.Ray, hit *geom.CurveHit) []geom.Ray {
	return []geom.Ray{ray.PropagateTo(hit.Point)}
}
