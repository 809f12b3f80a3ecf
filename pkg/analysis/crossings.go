package analysis

import (
	"math"

	"github.com/tos07/go-ray-optics/pkg/geom"
	"github.com/tos07/go-ray-optics/pkg/path"
)

// Crossings returns the pairwise forward intersections of the surviving rays
// after the last element. Clusters of crossings mark a focus.
func Crossings(trace *path.Trace) []geom.Vec2 {
	var finals []geom.Ray
	for _, traced := range trace.Rays {
		if traced.Final != nil {
			finals = append(finals, *traced.Final)
		}
	}

	var crossings []geom.Vec2
	for i := 0; i < len(finals); i++ {
		for j := i + 1; j < len(finals); j++ {
			if point, ok := forwardIntersection(finals[i], finals[j]); ok {
				crossings = append(crossings, point)
			}
		}
	}
	return crossings
}

// forwardIntersection intersects two rays, requiring the crossing to lie
// ahead of both origins
func forwardIntersection(a, b geom.Ray) (geom.Vec2, bool) {
	denom := a.Dir.Cross(b.Dir)
	if math.Abs(denom) < 1e-12 {
		return geom.Vec2{}, false // parallel rays never cross
	}

	diff := b.Origin.Subtract(a.Origin)
	ta := diff.Cross(b.Dir) / denom
	tb := diff.Cross(a.Dir) / denom
	if ta <= 0 || tb <= 0 {
		return geom.Vec2{}, false
	}
	return a.At(ta), true
}
