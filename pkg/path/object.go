package path

import "github.com/tos07/go-ray-optics/pkg/geom"

// defaultFanPositions are the relative heights an object emits ray fans
// from: its bottom, center and top
var defaultFanPositions = []float64{0, 0.5, 1}

// defaultFanHalfAngle is the half-angle in degrees of each emitted fan
const defaultFanHalfAngle = 75.0

// Object is an extended object subject to imaging. It emits one ray fan per
// configured relative height, all at the object's wavelength, and is
// immutable once created.
type Object struct {
	height float64
	frame  geom.Frame
	rays   []geom.Ray
}

// NewObject creates an object of the given height at the given position,
// rotated by theta degrees, emitting nRays per fan
func NewObject(height float64, origin geom.Vec2, theta float64, nRays int, wavelength float64) *Object {
	frame := geom.NewFrame(origin, theta)

	obj := &Object{height: height, frame: frame}
	for _, fan := range defaultFanPositions {
		y := fan*height - height/2
		local := Fan(geom.NewVec2(0, y), -defaultFanHalfAngle, defaultFanHalfAngle, nRays, wavelength)
		for _, ray := range local {
			obj.rays = append(obj.rays, frame.RayToGlobal(ray))
		}
	}
	return obj
}

// Height returns the object's height
func (o *Object) Height() float64 {
	return o.height
}

// Frame returns the object's frame on the bench
func (o *Object) Frame() geom.Frame {
	return o.frame
}

// Rays returns a copy of the object's emitted rays
func (o *Object) Rays() []geom.Ray {
	rays := make([]geom.Ray, len(o.rays))
	copy(rays, o.rays)
	return rays
}

// Outline returns the object arrow for rendering, drawn from bottom to top
func (o *Object) Outline() []geom.Segment {
	bottom := o.frame.ToGlobal(geom.NewVec2(0, -o.height/2))
	top := o.frame.ToGlobal(geom.NewVec2(0, o.height/2))

	// Arrowhead at the top
	headL := o.frame.ToGlobal(geom.NewVec2(-o.height/8, o.height*3/8))
	headR := o.frame.ToGlobal(geom.NewVec2(o.height/8, o.height*3/8))
	return []geom.Segment{
		{A: bottom, B: top},
		{A: headL, B: top},
		{A: headR, B: top},
	}
}
