package element

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/tos07/go-ray-optics/pkg/geom"
)

// ParabolicMirror is a mirror with a true parabolic surface: the vertex sits
// on the element origin, the axis along the local forward direction, and the
// focus at the focal length. Rays reflect about the local surface normal at
// the intersection point, so a bundle parallel to the axis converges exactly
// onto the focal point at any height within the aperture.
type ParabolicMirror struct {
	mount
	surface geom.Parabola
}

// NewParabolicMirror creates a parabolic mirror with the given focal length
// and clear diameter at the given position, rotated by theta degrees
func NewParabolicMirror(focalLength, diameter float64, origin geom.Vec2, theta float64, opts ...Option) (*ParabolicMirror, error) {
	if focalLength == 0 {
		return nil, fmt.Errorf("parabolic mirror focal length must be non-zero")
	}
	m, err := newMount(diameter, origin, theta, opts...)
	if err != nil {
		return nil, err
	}
	return &ParabolicMirror{
		mount:   m,
		surface: geom.Parabola{FocalLength: focalLength, HalfHeight: diameter / 2},
	}, nil
}

// Name identifies the element kind
func (p *ParabolicMirror) Name() string { return "parabolic mirror" }

// FocalLength returns the mirror's focal length
func (p *ParabolicMirror) FocalLength() float64 {
	return p.surface.FocalLength
}

// Focus returns the mirror's focal point in the global frame
func (p *ParabolicMirror) Focus() geom.Vec2 {
	return p.frame.ToGlobal(geom.NewVec2(p.surface.FocalLength, 0))
}

// Intersect finds the nearest forward intersection with the parabolic
// surface, or with the rim blocker beyond the clear aperture
func (p *ParabolicMirror) Intersect(ray geom.Ray) (*geom.CurveHit, bool) {
	local := p.frame.RayToLocal(ray)
	hit, ok := p.surface.Hit(local)
	if !ok {
		return nil, false
	}
	return p.hitToGlobal(hit), true
}

// Interact reflects the ray about the local surface normal at the hit point
func (p *ParabolicMirror) Interact(ray geom.Ray, hit *geom.CurveHit) []geom.Ray {
	if !hit.Inside {
		return nil
	}
	out := ray.PropagateTo(hit.Point).WithDir(ray.Reflect(hit.Normal))
	return []geom.Ray{out}
}

// Outline returns the sampled parabola curve with the blocker flanges at the
// rim depth
func (p *ParabolicMirror) Outline() []geom.Segment {
	points := p.surface.Points(32)
	segments := make([]geom.Segment, 0, len(points)+1)
	for i := range points {
		points[i] = p.frame.ToGlobal(points[i])
	}
	for i := 0; i+1 < len(points); i++ {
		segments = append(segments, geom.Segment{A: points[i], B: points[i+1]})
	}
	return append(segments, p.blockerOutline(p.surface.RimDepth())...)
}

// Paraxial returns the focusing-mirror ray-transfer matrix: a thin lens of
// the same focal length combined with the fold
func (p *ParabolicMirror) Paraxial() *mat.Dense {
	return mat.NewDense(2, 2, []float64{
		1, 0,
		-1 / p.surface.FocalLength, -1,
	})
}
