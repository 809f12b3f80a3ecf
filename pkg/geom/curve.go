package geom

import "math"

// hitEpsilon rejects intersections at or behind the ray origin, so a ray
// restarted on a surface never re-hits the surface it just left
const hitEpsilon = 1e-9

// Segment is a straight line segment between two points, used for element
// outlines and traced ray paths
type Segment struct {
	A, B Vec2
}

// CurveHit contains information about a ray-curve intersection. All
// coordinates are in the frame the curve is defined in.
type CurveHit struct {
	Point  Vec2    // point of intersection
	T      float64 // parameter t along the ray
	Normal Vec2    // unit surface normal, oriented toward the incoming ray
	Inside bool    // whether the point lies within the curve's clear half-height
}

// Curve is a surface in an element's local frame that can be hit by rays
type Curve interface {
	Hit(ray Ray) (*CurveHit, bool)
}

// orientNormal flips the outward normal toward the incoming ray's half-space,
// so the angle of incidence is always acute
func orientNormal(ray Ray, outward Vec2) Vec2 {
	if ray.Dir.Dot(outward) < 0 {
		return outward
	}
	return outward.Negate()
}

// Plane is the flat element surface: the local y axis at x = 0, with a clear
// half-height. Hits beyond the half-height are still reported, flagged as
// outside, so the element can decide between blocking and passing.
type Plane struct {
	HalfHeight float64
}

// Hit tests if a ray intersects the element plane
func (p Plane) Hit(ray Ray) (*CurveHit, bool) {
	// Ray parallel to the plane never intersects it
	if math.Abs(ray.Dir.X) < 1e-12 {
		return nil, false
	}

	t := -ray.Origin.X / ray.Dir.X
	if t <= hitEpsilon {
		return nil, false
	}

	point := ray.At(t)
	return &CurveHit{
		Point:  point,
		T:      t,
		Normal: orientNormal(ray, Vec2{X: -1, Y: 0}),
		Inside: math.Abs(point.Y) <= p.HalfHeight,
	}, true
}

// Parabola is the surface x = y^2 / (4f) in the local frame: vertex at the
// origin, axis along local x, focus at (f, 0). Rays striking beyond the clear
// half-height hit the rim plane at the parabola's depth instead, flagged as
// outside.
type Parabola struct {
	FocalLength float64
	HalfHeight  float64
}

// RimDepth returns the local x coordinate of the parabola at its clear edge
func (p Parabola) RimDepth() float64 {
	return p.HalfHeight * p.HalfHeight / (4 * p.FocalLength)
}

// PointAt returns the surface point at the given local height
func (p Parabola) PointAt(y float64) Vec2 {
	return Vec2{X: y * y / (4 * p.FocalLength), Y: y}
}

// NormalAt returns the unit outward normal at the given local height,
// pointing toward negative x at the vertex
func (p Parabola) NormalAt(y float64) Vec2 {
	// Gradient of F(x, y) = x - y^2/(4f)
	return Vec2{X: -1, Y: y / (2 * p.FocalLength)}.Normalize()
}

// Hit tests if a ray intersects the parabolic surface, returning the nearest
// forward intersection
func (p Parabola) Hit(ray Ray) (*CurveHit, bool) {
	o, d := ray.Origin, ray.Dir
	f4 := 4 * p.FocalLength

	// Substitute the parametric line into y^2 = 4f*x:
	// (oy + t*dy)^2 = 4f*(ox + t*dx)
	a := d.Y * d.Y
	b := 2*o.Y*d.Y - f4*d.X
	c := o.Y*o.Y - f4*o.X

	var t float64
	if math.Abs(a) < 1e-12 {
		// Ray parallel to the parabola's axis: the quadratic degenerates
		if math.Abs(b) < 1e-12 {
			return nil, false
		}
		t = -c / b
		if t <= hitEpsilon {
			return nil, false
		}
	} else {
		discriminant := b*b - 4*a*c
		if discriminant < 0 {
			return nil, false
		}
		sqrtD := math.Sqrt(discriminant)

		// Nearest forward root first
		t = (-b - sqrtD) / (2 * a)
		if t <= hitEpsilon {
			t = (-b + sqrtD) / (2 * a)
			if t <= hitEpsilon {
				return nil, false
			}
		}
	}

	point := ray.At(t)
	if math.Abs(point.Y) > p.HalfHeight {
		// The surface ends at the clear edge; beyond it the ray meets the
		// rim plane, where the element's blocker sits
		rim := Plane{HalfHeight: p.HalfHeight}
		hit, ok := rim.Hit(Ray{Origin: o.Subtract(Vec2{X: p.RimDepth()}), Dir: d})
		if !ok {
			return nil, false
		}
		hit.Point = hit.Point.Add(Vec2{X: p.RimDepth()})
		hit.Inside = false
		return hit, true
	}

	return &CurveHit{
		Point:  point,
		T:      t,
		Normal: orientNormal(ray, p.NormalAt(point.Y)),
		Inside: true,
	}, true
}

// Points samples the parabola outline at n points across its clear height
func (p Parabola) Points(n int) []Vec2 {
	points := make([]Vec2, n)
	for i := range points {
		y := -p.HalfHeight + 2*p.HalfHeight*float64(i)/float64(n-1)
		points[i] = p.PointAt(y)
	}
	return points
}

// Arc is a circular surface of the given radius with its vertex at the local
// origin, opening toward positive x: the circle center sits at (R, 0). A
// negative radius opens toward negative x.
type Arc struct {
	Radius     float64
	HalfHeight float64
}

// Hit tests if a ray intersects the circular surface, returning the nearest
// forward intersection on the vertex side of the circle
func (a Arc) Hit(ray Ray) (*CurveHit, bool) {
	center := Vec2{X: a.Radius, Y: 0}
	oc := ray.Origin.Subtract(center)

	// Quadratic equation coefficients: t^2 + 2*halfB*t + c = 0
	halfB := oc.Dot(ray.Dir)
	c := oc.Dot(oc) - a.Radius*a.Radius

	discriminant := halfB*halfB - c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Examine both roots in order, keeping the nearest forward hit that lies
	// on the arc itself rather than the far side of the circle
	for _, t := range [2]float64{-halfB - sqrtD, -halfB + sqrtD} {
		if t <= hitEpsilon {
			continue
		}
		point := ray.At(t)
		if math.Abs(point.Y) > a.HalfHeight {
			continue
		}
		// The arc only spans the vertex side of the circle
		if a.Radius > 0 && point.X > a.Radius {
			continue
		}
		if a.Radius < 0 && point.X < a.Radius {
			continue
		}
		outward := point.Subtract(center).Multiply(1 / math.Abs(a.Radius))
		return &CurveHit{
			Point:  point,
			T:      t,
			Normal: orientNormal(ray, outward),
			Inside: true,
		}, true
	}
	return nil, false
}

// Points samples the arc outline at n points across its clear height
func (a Arc) Points(n int) []Vec2 {
	points := make([]Vec2, n)
	for i := range points {
		y := -a.HalfHeight + 2*a.HalfHeight*float64(i)/float64(n-1)
		x := a.Radius - math.Copysign(math.Sqrt(a.Radius*a.Radius-y*y), a.Radius)
		points[i] = Vec2{X: x, Y: y}
	}
	return points
}
