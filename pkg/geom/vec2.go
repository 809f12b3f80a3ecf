package geom

import "math"

// Vec2 represents a 2D vector or point on the optical bench
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a new Vec2
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Subtract returns the difference of two vectors
func (v Vec2) Subtract(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Multiply returns the vector scaled by a scalar
func (v Vec2) Multiply(scalar float64) Vec2 {
	return Vec2{v.X * scalar, v.Y * scalar}
}

// Length returns the magnitude of the vector
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Dot returns the dot product of two vectors
func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the scalar 2D cross product (z-component of the 3D cross)
func (v Vec2) Cross(other Vec2) float64 {
	return v.X*other.Y - v.Y*other.X
}

// Normalize returns a unit vector in the same direction
func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	if length == 0 {
		return Vec2{0, 0}
	}
	return Vec2{v.X / length, v.Y / length}
}

// Negate returns the vector pointing in the opposite direction
func (v Vec2) Negate() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Rotate returns the vector rotated counter-clockwise by theta radians
func (v Vec2) Rotate(theta float64) Vec2 {
	sin, cos := math.Sincos(theta)
	return Vec2{
		X: cos*v.X - sin*v.Y,
		Y: sin*v.X + cos*v.Y,
	}
}

// Angle returns the angle of the vector in radians, measured
// counter-clockwise from the positive x axis
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Radians converts an angle in degrees to radians
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

// Degrees converts an angle in radians to degrees
func Degrees(radians float64) float64 {
	return radians * 180.0 / math.Pi
}

// UnitFromAngle returns the unit vector at the given angle in degrees,
// measured counter-clockwise from the positive x axis
func UnitFromAngle(degrees float64) Vec2 {
	sin, cos := math.Sincos(Radians(degrees))
	return Vec2{X: cos, Y: sin}
}
