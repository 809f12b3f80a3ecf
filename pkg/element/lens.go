package element

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/tos07/go-ray-optics/pkg/geom"
)

// Lens is an ideal thin lens: refraction happens in a single plane,
// characterized solely by the focal length. Positive focal lengths converge,
// negative ones diverge. The outgoing direction comes from the exact focal
// construction on ray slopes rather than the paraxial small-angle
// approximation, so wide fans stay correct.
type Lens struct {
	mount
	focalLength float64
}

// NewLens creates a thin lens with the given focal length and clear diameter
// at the given position, rotated by theta degrees
func NewLens(focalLength, diameter float64, origin geom.Vec2, theta float64, opts ...Option) (*Lens, error) {
	if focalLength == 0 {
		return nil, fmt.Errorf("lens focal length must be non-zero")
	}
	m, err := newMount(diameter, origin, theta, opts...)
	if err != nil {
		return nil, err
	}
	return &Lens{mount: m, focalLength: focalLength}, nil
}

// Name identifies the element kind
func (l *Lens) Name() string { return "lens" }

// FocalLength returns the lens's focal length
func (l *Lens) FocalLength() float64 {
	return l.focalLength
}

// Intersect finds the nearest forward intersection with the lens plane
func (l *Lens) Intersect(ray geom.Ray) (*geom.CurveHit, bool) {
	return l.planeIntersect(ray)
}

// Interact refracts the ray at the lens plane. In the local frame a ray of
// slope a striking at height h leaves with slope a - h/f: the chord through
// the lens center fixes the image point on the rear focal plane, and all rays
// from the same direction meet there. A ray through the front focal point
// therefore emerges exactly parallel to the axis, with no special casing.
func (l *Lens) Interact(ray geom.Ray, hit *geom.CurveHit) []geom.Ray {
	if !hit.Inside {
		return nil
	}

	local := l.frame.RayToLocal(ray)
	point := l.frame.ToLocal(hit.Point)

	// Slope is invariant under the travel sense; the focal plane flips with it
	forward := math.Copysign(1, local.Dir.X)
	slope := local.Dir.Y / local.Dir.X
	outSlope := slope - point.Y/(l.focalLength*forward)

	outDir := l.frame.DirToGlobal(geom.NewVec2(forward, outSlope*forward))
	return []geom.Ray{ray.PropagateTo(hit.Point).WithDir(outDir)}
}

// Outline returns the lens chord, its blocker flanges and the two drawn
// surface arcs
func (l *Lens) Outline() []geom.Segment {
	segments := l.chordOutline()

	// Shallow drawing arcs, matched to the clear aperture. The radius is
	// chosen so the sagitta at the clear edge equals the drawn depth.
	const arcRatio = 0.02
	radius := (0.5*arcRatio + 0.125/arcRatio) * l.aperture
	depth := arcRatio * l.aperture
	arc := geom.Arc{Radius: radius, HalfHeight: l.aperture / 2}
	for _, side := range []float64{1, -1} {
		points := arc.Points(16)
		for i := range points {
			points[i].X = side * (depth - points[i].X)
			points[i] = l.frame.ToGlobal(points[i])
		}
		for i := 0; i+1 < len(points); i++ {
			segments = append(segments, geom.Segment{A: points[i], B: points[i+1]})
		}
	}
	return segments
}

// Paraxial returns the thin-lens ray-transfer matrix
func (l *Lens) Paraxial() *mat.Dense {
	return mat.NewDense(2, 2, []float64{
		1, 0,
		-1 / l.focalLength, 1,
	})
}
