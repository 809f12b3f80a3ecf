package geom

// Frame is the local coordinate frame of an element on the optical bench.
// The convention is fixed once for every element: local +x points forward
// along the optical axis, local +y points up, and Theta rotates the frame
// counter-clockwise in the global bench frame. Every interaction law and
// every outline derives its orientation from this one convention.
type Frame struct {
	Origin Vec2
	Theta  float64 // rotation in degrees, counter-clockwise
}

// NewFrame creates a frame at the given origin rotated by theta degrees
func NewFrame(origin Vec2, theta float64) Frame {
	return Frame{Origin: origin, Theta: theta}
}

// ToLocal transforms a point from the global bench frame into this frame
func (f Frame) ToLocal(p Vec2) Vec2 {
	return p.Subtract(f.Origin).Rotate(-Radians(f.Theta))
}

// ToGlobal transforms a point from this frame into the global bench frame
func (f Frame) ToGlobal(p Vec2) Vec2 {
	return p.Rotate(Radians(f.Theta)).Add(f.Origin)
}

// DirToLocal rotates a direction from the global frame into this frame
func (f Frame) DirToLocal(d Vec2) Vec2 {
	return d.Rotate(-Radians(f.Theta))
}

// DirToGlobal rotates a direction from this frame into the global frame
func (f Frame) DirToGlobal(d Vec2) Vec2 {
	return d.Rotate(Radians(f.Theta))
}

// RayToLocal transforms a ray into this frame
func (f Frame) RayToLocal(r Ray) Ray {
	r.Origin = f.ToLocal(r.Origin)
	r.Dir = f.DirToLocal(r.Dir)
	return r
}

// RayToGlobal transforms a ray out of this frame
func (f Frame) RayToGlobal(r Ray) Ray {
	r.Origin = f.ToGlobal(r.Origin)
	r.Dir = f.DirToGlobal(r.Dir)
	return r
}

// Forward returns the frame's forward axis in global coordinates
func (f Frame) Forward() Vec2 {
	return f.DirToGlobal(Vec2{X: 1, Y: 0})
}
