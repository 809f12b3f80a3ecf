// Package path propagates rays and ray fans through an ordered sequence of
// optical elements, producing the full multi-segment path of every ray for
// rendering and analysis.
package path

import (
	"github.com/tos07/go-ray-optics/pkg/element"
	"github.com/tos07/go-ray-optics/pkg/geom"
)

// RayState is the terminal state of a traced ray
type RayState int

const (
	// StateTerminated means the ray passed the whole element sequence
	StateTerminated RayState = iota
	// StateAbsorbed means an element absorbed the ray (blocker, evanescent
	// order, total internal reflection)
	StateAbsorbed
)

// String returns a readable name for the state
func (s RayState) String() string {
	switch s {
	case StateTerminated:
		return "terminated"
	case StateAbsorbed:
		return "absorbed"
	}
	return "unknown"
}

// Segment records one ray-element interaction: the incoming ray, the
// intersection point and the outgoing rays (empty when absorbed)
type Segment struct {
	In      geom.Ray
	Point   geom.Vec2
	Out     []geom.Ray
	Element element.Element
}

// TracedRay is the complete path of a single launched ray. Elements the ray
// never interacted with (missed entirely, or behind an absorption) have no
// segment. Final is the ray leaving the last interaction, nil when absorbed.
type TracedRay struct {
	Launch   geom.Ray
	Segments []Segment
	Final    *geom.Ray
	State    RayState
}

// Trace aggregates the traced paths of a ray bundle, in launch order
type Trace struct {
	Rays     []TracedRay
	Elements []element.Element
}

// PlotSegment is a drawable piece of a ray path for the rendering adapter
type PlotSegment struct {
	A, B       geom.Vec2
	Wavelength float64
	Intensity  float64
}

// OpticalPath is an ordered sequence of elements on the bench, processed
// strictly in configuration order like a physical bench layout. Elements are
// immutable during tracing.
type OpticalPath struct {
	elements []element.Element
}

// NewOpticalPath creates an empty optical path
func NewOpticalPath() *OpticalPath {
	return &OpticalPath{}
}

// Append adds elements to the end of the path
func (p *OpticalPath) Append(els ...element.Element) {
	p.elements = append(p.elements, els...)
}

// Elements returns the elements of the path in order
func (p *OpticalPath) Elements() []element.Element {
	return p.elements
}

// Last returns the final element of the path, or nil when empty
func (p *OpticalPath) Last() element.Element {
	if len(p.elements) == 0 {
		return nil
	}
	return p.elements[len(p.elements)-1]
}

// Place computes the frame of the next element group on the bench: distance
// away from the reference frame's origin along the new axis direction theta
// (degrees). Callers construct elements relative to the returned frame.
func Place(after geom.Frame, distance, theta float64) geom.Frame {
	origin := after.Origin.Add(geom.UnitFromAngle(theta).Multiply(distance))
	return geom.NewFrame(origin, theta)
}

// Trace propagates each ray independently through the element sequence,
// collecting one segment per interaction. Absorption terminates a single
// ray's path without affecting the rest of the bundle.
func (p *OpticalPath) Trace(rays []geom.Ray) *Trace {
	trace := &Trace{
		Rays:     make([]TracedRay, len(rays)),
		Elements: p.elements,
	}
	for i, ray := range rays {
		trace.Rays[i] = p.traceRay(ray)
	}
	return trace
}

// traceRay propagates one ray through the element sequence in order
func (p *OpticalPath) traceRay(ray geom.Ray) TracedRay {
	traced := TracedRay{Launch: ray}

	current := ray
	for _, el := range p.elements {
		hit, ok := el.Intersect(current)
		if !ok {
			// The ray misses this element entirely and continues unchanged
			continue
		}

		out := el.Interact(current, hit)
		traced.Segments = append(traced.Segments, Segment{
			In:      current,
			Point:   hit.Point,
			Out:     out,
			Element: el,
		})

		if len(out) == 0 {
			traced.State = StateAbsorbed
			return traced
		}
		// Elements today emit at most one ray; follow it
		current = out[0]
	}

	traced.State = StateTerminated
	traced.Final = &current
	return traced
}

// Segments flattens the trace into drawable segments, extending every
// surviving ray by extend past its last interaction
func (t *Trace) Segments(extend float64) []PlotSegment {
	var segments []PlotSegment
	for _, traced := range t.Rays {
		prev := traced.Launch.Origin
		for _, seg := range traced.Segments {
			segments = append(segments, PlotSegment{
				A:          prev,
				B:          seg.Point,
				Wavelength: seg.In.Wavelength,
				Intensity:  seg.In.Intensity,
			})
			prev = seg.Point
		}
		if traced.Final != nil && extend > 0 {
			segments = append(segments, PlotSegment{
				A:          traced.Final.Origin,
				B:          traced.Final.At(extend),
				Wavelength: traced.Final.Wavelength,
				Intensity:  traced.Final.Intensity,
			})
		}
	}
	return segments
}

// Absorbed returns how many rays of the trace ended absorbed
func (t *Trace) Absorbed() int {
	count := 0
	for _, traced := range t.Rays {
		if traced.State == StateAbsorbed {
			count++
		}
	}
	return count
}
