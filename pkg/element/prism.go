package element

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/tos07/go-ray-optics/pkg/geom"
)

// Glass selects a dispersion model for refractive elements
type Glass int

const (
	// BK7 is the common borosilicate crown glass
	BK7 Glass = iota
)

// sellmeier holds the B and C coefficients of the Sellmeier dispersion
// equation, with wavelengths in micrometers
var sellmeier = map[Glass][2][3]float64{
	BK7: {
		{1.03961212, 0.231792344, 1.01046945},
		{0.00600069867, 0.0200179144, 103.560653},
	},
}

// RefractiveIndex returns the glass's refractive index at the given
// wavelength in nanometers
func (g Glass) RefractiveIndex(wavelength float64) float64 {
	w2 := wavelength * 1e-3 * wavelength * 1e-3
	b, c := sellmeier[g][0], sellmeier[g][1]

	sum := 1.0
	for i := 0; i < 3; i++ {
		sum += b[i] * w2 / (w2 - c[i])
	}
	return math.Sqrt(sum)
}

// Prism is an equilateral dispersing prism. The entry face lies in the
// element plane; the exit face is rotated 60 degrees about the shared upper
// edge, with the apex pointing forward. Rays refract by Snell's law at both
// faces using the glass's Sellmeier index, so the deviation disperses with
// wavelength. Total internal reflection at the exit face absorbs the ray.
type Prism struct {
	mount
	glass     Glass
	exitFrame geom.Frame
}

// NewPrism creates an equilateral prism with the given face height at the
// given position, rotated by theta degrees
func NewPrism(diameter float64, glass Glass, origin geom.Vec2, theta float64, opts ...Option) (*Prism, error) {
	m, err := newMount(diameter, origin, theta, opts...)
	if err != nil {
		return nil, err
	}

	// The exit face's center sits at the midpoint of the upper-forward face
	exitOrigin := m.frame.ToGlobal(geom.NewVec2(math.Sqrt(3), 1).Multiply(diameter / 4))
	return &Prism{
		mount:     m,
		glass:     glass,
		exitFrame: geom.NewFrame(exitOrigin, theta+60),
	}, nil
}

// Name identifies the element kind
func (p *Prism) Name() string { return "prism" }

// Glass returns the prism's glass type
func (p *Prism) Glass() Glass { return p.glass }

// Intersect finds the nearest forward intersection with the entry face
func (p *Prism) Intersect(ray geom.Ray) (*geom.CurveHit, bool) {
	return p.planeIntersect(ray)
}

// Interact refracts the ray into the glass at the entry face, propagates it
// to the exit face and refracts it back out. Rays missing the exit face or
// undergoing total internal reflection are absorbed.
func (p *Prism) Interact(ray geom.Ray, hit *geom.CurveHit) []geom.Ray {
	if !hit.Inside {
		return nil
	}

	n := p.glass.RefractiveIndex(ray.Wavelength)

	inner, ok := ray.Refract(hit.Normal, 1.0, n)
	if !ok {
		return nil
	}
	insideRay := ray.PropagateTo(hit.Point).WithDir(inner)

	exitLocal := p.exitFrame.RayToLocal(insideRay)
	exitHit, ok := geom.Plane{HalfHeight: p.aperture / 2}.Hit(exitLocal)
	if !ok || !exitHit.Inside {
		return nil
	}
	exitPoint := p.exitFrame.ToGlobal(exitHit.Point)
	exitNormal := p.exitFrame.DirToGlobal(exitHit.Normal)

	out, ok := insideRay.Refract(exitNormal, n, 1.0)
	if !ok {
		return nil // total internal reflection
	}
	return []geom.Ray{insideRay.PropagateTo(exitPoint).WithDir(out)}
}

// Outline returns the prism triangle in the global frame
func (p *Prism) Outline() []geom.Segment {
	top := p.frame.ToGlobal(geom.NewVec2(0, p.aperture/2))
	bottom := p.frame.ToGlobal(geom.NewVec2(0, -p.aperture/2))
	apex := p.frame.ToGlobal(geom.NewVec2(math.Sqrt(3)*p.aperture/2, 0))
	return []geom.Segment{
		{A: top, B: bottom},
		{A: bottom, B: apex},
		{A: apex, B: top},
	}
}

// Paraxial returns the identity: the prism's deviation depends on wavelength,
// not height
func (p *Prism) Paraxial() *mat.Dense {
	return identityParaxial()
}
