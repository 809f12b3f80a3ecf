package element

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/tos07/go-ray-optics/pkg/geom"
)

// DiffractionGrating is a transmission grating with a groove pitch in
// micrometers, diffracting into a single configured order. The sign
// convention follows the grating equation
//
//	sin(theta_out) = sin(theta_in) - m*lambda/d
//
// with angles measured from the grating normal, so a positive order deflects
// rays toward negative heights. Orders with |sin(theta_out)| > 1 are
// evanescent and the ray is absorbed.
type DiffractionGrating struct {
	mount
	pitch float64 // groove spacing in micrometers
	order int
}

// NewDiffractionGrating creates a grating with the given groove pitch in
// micrometers, diffraction order and clear diameter at the given position,
// rotated by theta degrees
func NewDiffractionGrating(pitch float64, order int, diameter float64, origin geom.Vec2, theta float64, opts ...Option) (*DiffractionGrating, error) {
	if pitch <= 0 {
		return nil, fmt.Errorf("grating pitch must be positive, got %g", pitch)
	}
	m, err := newMount(diameter, origin, theta, opts...)
	if err != nil {
		return nil, err
	}
	return &DiffractionGrating{mount: m, pitch: pitch, order: order}, nil
}

// Name identifies the element kind
func (g *DiffractionGrating) Name() string { return "diffraction grating" }

// Pitch returns the groove spacing in micrometers
func (g *DiffractionGrating) Pitch() float64 { return g.pitch }

// Order returns the configured diffraction order
func (g *DiffractionGrating) Order() int { return g.order }

// Intersect finds the nearest forward intersection with the grating plane
func (g *DiffractionGrating) Intersect(ray geom.Ray) (*geom.CurveHit, bool) {
	return g.planeIntersect(ray)
}

// Interact diffracts the ray into the configured order, absorbing evanescent
// solutions
func (g *DiffractionGrating) Interact(ray geom.Ray, hit *geom.CurveHit) []geom.Ray {
	if !hit.Inside {
		return nil
	}

	local := g.frame.RayToLocal(ray)
	sinOut := g.sinOut(local.Dir.Y, ray.Wavelength)
	if math.Abs(sinOut) > 1 {
		return nil // evanescent order
	}

	cosOut := math.Copysign(math.Sqrt(1-sinOut*sinOut), local.Dir.X)
	outDir := g.frame.DirToGlobal(geom.NewVec2(cosOut, sinOut))
	return []geom.Ray{ray.PropagateTo(hit.Point).WithDir(outDir)}
}

// sinOut applies the grating equation to the incident sine for the given
// wavelength in nanometers
func (g *DiffractionGrating) sinOut(sinIn, wavelength float64) float64 {
	return sinIn - float64(g.order)*wavelength/(g.pitch*1000)
}

// DiffractionAngleFor returns the diffracted bench angle in degrees for the
// given wavelength in nanometers and incidence angle in degrees, or false for
// an evanescent order
func (g *DiffractionGrating) DiffractionAngleFor(wavelength, thetaIn float64) (float64, bool) {
	sinOut := g.sinOut(math.Sin(geom.Radians(-thetaIn)), wavelength)
	if math.Abs(sinOut) > 1 {
		return 0, false
	}
	return geom.Degrees(math.Asin(sinOut)) + thetaIn, true
}

// Outline returns the grating face with its blocker flanges
func (g *DiffractionGrating) Outline() []geom.Segment {
	return g.chordOutline()
}

// Paraxial returns the identity: the grating's deviation depends on
// wavelength, not height, so it carries no ray-transfer action
func (g *DiffractionGrating) Paraxial() *mat.Dense {
	return identityParaxial()
}
