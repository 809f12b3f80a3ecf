package geom

import "math"

// DefaultWavelength is the reference wavelength in nanometers used when a ray
// is launched without an explicit one (green, near the middle of the visible
// spectrum)
const DefaultWavelength = 532.0

// Ray represents a directed half-line with an origin, a unit direction, a
// wavelength in nanometers and an intensity. Rays are immutable values:
// propagation and element interactions always produce new rays.
type Ray struct {
	Origin     Vec2
	Dir        Vec2    // always unit length
	Wavelength float64 // nanometers
	Intensity  float64
}

// NewRay creates a new ray at the default wavelength with unit intensity.
// The direction is normalized; it must not be the zero vector.
func NewRay(origin, direction Vec2) Ray {
	return Ray{
		Origin:     origin,
		Dir:        direction.Normalize(),
		Wavelength: DefaultWavelength,
		Intensity:  1.0,
	}
}

// WithWavelength returns a copy of the ray at the given wavelength in nanometers
func (r Ray) WithWavelength(nm float64) Ray {
	r.Wavelength = nm
	return r
}

// WithIntensity returns a copy of the ray with the given intensity
func (r Ray) WithIntensity(intensity float64) Ray {
	r.Intensity = intensity
	return r
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec2 {
	return r.Origin.Add(r.Dir.Multiply(t))
}

// PropagateTo returns a new ray with its origin moved to the given point,
// keeping direction, wavelength and intensity
func (r Ray) PropagateTo(point Vec2) Ray {
	r.Origin = point
	return r
}

// WithDir returns a copy of the ray traveling in the given direction,
// normalized
func (r Ray) WithDir(direction Vec2) Ray {
	r.Dir = direction.Normalize()
	return r
}

// AngleWith returns the signed angle of incidence in radians between the ray
// direction and the given unit normal, in the range (-pi/2, pi/2]. The normal
// is expected to point toward the ray's half-space, so normal incidence
// resolves to exactly zero.
func (r Ray) AngleWith(normal Vec2) float64 {
	// Measure against the normal pointing with the ray so the angle is acute
	n := normal
	if r.Dir.Dot(n) < 0 {
		n = n.Negate()
	}
	sin := r.Dir.Cross(n)
	cos := r.Dir.Dot(n)
	angle := math.Atan2(sin, cos)
	if angle <= -math.Pi/2 {
		angle += math.Pi
	}
	return angle
}

// Reflect returns the ray direction reflected about the given unit normal
func (r Ray) Reflect(normal Vec2) Vec2 {
	return r.Dir.Subtract(normal.Multiply(2 * r.Dir.Dot(normal)))
}

// Refract returns the ray direction refracted at a surface with the given
// unit normal, going from refractive index n1 into n2 (Snell's law). The
// second return value is false on total internal reflection, where no
// transmitted direction exists.
func (r Ray) Refract(normal Vec2, n1, n2 float64) (Vec2, bool) {
	// Orient the normal against the incoming direction
	n := normal
	cosIn := -r.Dir.Dot(n)
	if cosIn < 0 {
		n = n.Negate()
		cosIn = -cosIn
	}

	eta := n1 / n2
	sinOutSq := eta * eta * (1 - cosIn*cosIn)
	if sinOutSq > 1 {
		return Vec2{}, false // total internal reflection
	}

	cosOut := math.Sqrt(1 - sinOutSq)
	out := r.Dir.Multiply(eta).Add(n.Multiply(eta*cosIn - cosOut))
	return out.Normalize(), true
}
