// Package analysis evaluates traced ray bundles: spot statistics on a
// sensor, ray crossings for focus finding, and paraxial system matrices.
package analysis

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/tos07/go-ray-optics/pkg/element"
	"github.com/tos07/go-ray-optics/pkg/path"
)

// Spot summarizes where rays of one wavelength land on a sensor, in the
// sensor's local heights
type Spot struct {
	Wavelength float64
	Count      int
	Mean       float64 // centroid height
	RMS        float64 // RMS radius about the centroid
	Min, Max   float64
}

// Size returns the full extent of the spot
func (s Spot) Size() float64 {
	return s.Max - s.Min
}

// Image is the ray distribution on a sensor: one spot per wavelength plus
// the fraction of launched rays that arrived
type Image struct {
	Spots      []Spot
	Efficiency float64
}

// SensorImage collects the heights of all surviving rays on the sensor plane
// and reduces them to per-wavelength spot statistics. Rays absorbed earlier
// in the path count against the efficiency.
func SensorImage(trace *path.Trace, sensor *element.Sensor) Image {
	heights := make(map[float64][]float64)
	arrived := 0
	for _, traced := range trace.Rays {
		if traced.State != path.StateTerminated || traced.Final == nil {
			continue
		}
		arrived++
		h := sensor.Frame().ToLocal(traced.Final.Origin).Y
		heights[traced.Final.Wavelength] = append(heights[traced.Final.Wavelength], h)
	}

	image := Image{}
	if len(trace.Rays) > 0 {
		image.Efficiency = float64(arrived) / float64(len(trace.Rays))
	}
	for wavelength, hs := range heights {
		sort.Float64s(hs)
		rms := 0.0
		if len(hs) > 1 {
			rms = stat.StdDev(hs, nil)
		}
		image.Spots = append(image.Spots, Spot{
			Wavelength: wavelength,
			Count:      len(hs),
			Mean:       stat.Mean(hs, nil),
			RMS:        rms,
			Min:        hs[0],
			Max:        hs[len(hs)-1],
		})
	}
	sort.Slice(image.Spots, func(i, j int) bool {
		return image.Spots[i].Wavelength < image.Spots[j].Wavelength
	})
	return image
}
