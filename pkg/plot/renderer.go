// Package plot renders traced ray paths and element outlines to images. It
// is a pure consumer of the core's geometry: it never mutates elements or
// rays.
package plot

import (
	"image"
	"image/png"
	"io"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/tos07/go-ray-optics/pkg/geom"
	"github.com/tos07/go-ray-optics/pkg/path"
)

// DefaultGamma is the gamma compression applied to wavelength colors
const DefaultGamma = 0.8

// Renderer draws a traced bench into a raster image. The world window is
// fitted automatically around the rays and elements.
type Renderer struct {
	Width, Height int
	Margin        float64 // pixel margin around the fitted world window
	LineWidth     float64
	Extend        float64 // how far surviving rays are drawn past their last element
	Labels        bool    // draw element names next to their origins
	Gamma         float64
}

// NewRenderer creates a renderer with sensible defaults for the given canvas
func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		Width:     width,
		Height:    height,
		Margin:    24,
		LineWidth: 1.5,
		Extend:    20,
		Labels:    true,
		Gamma:     DefaultGamma,
	}
}

// Render draws the trace and its elements
func (r *Renderer) Render(trace *path.Trace) image.Image {
	dc := gg.NewContext(r.Width, r.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	segments := trace.Segments(r.Extend)
	toPixel := r.fitWindow(trace, segments)

	// Element outlines first, so rays draw over them
	dc.SetLineWidth(r.LineWidth)
	for _, el := range trace.Elements {
		dc.SetRGB(0.15, 0.15, 0.15)
		for _, seg := range el.Outline() {
			a, b := toPixel(seg.A), toPixel(seg.B)
			dc.DrawLine(a.X, a.Y, b.X, b.Y)
			dc.Stroke()
		}

		// Origin marker
		o := toPixel(el.Frame().Origin)
		dc.DrawLine(o.X-3, o.Y-3, o.X+3, o.Y+3)
		dc.DrawLine(o.X-3, o.Y+3, o.X+3, o.Y-3)
		dc.Stroke()
	}

	if r.Labels {
		dc.SetFontFace(basicfont.Face7x13)
		dc.SetRGB(0.3, 0.3, 0.3)
		for _, el := range trace.Elements {
			o := toPixel(el.Frame().Origin)
			dc.DrawStringAnchored(el.Name(), o.X, o.Y+14, 0.5, 0.5)
		}
	}

	for _, seg := range segments {
		red, green, blue := WavelengthToRGB(seg.Wavelength, r.Gamma)
		dc.SetRGBA(red, green, blue, clampIntensity(seg.Intensity))
		a, b := toPixel(seg.A), toPixel(seg.B)
		dc.DrawLine(a.X, a.Y, b.X, b.Y)
		dc.Stroke()
	}

	return dc.Image()
}

// RenderPNG renders the trace and encodes it as PNG
func (r *Renderer) RenderPNG(trace *path.Trace, w io.Writer) error {
	return png.Encode(w, r.Render(trace))
}

// clampIntensity maps a ray intensity to a stroke alpha in (0, 1]
func clampIntensity(intensity float64) float64 {
	if intensity > 1 {
		return 1
	}
	if intensity < 0.05 {
		return 0.05
	}
	return intensity
}

// fitWindow computes the world-to-pixel transform that fits all drawn
// geometry with the configured margin, preserving aspect ratio and flipping
// the y axis for raster coordinates
func (r *Renderer) fitWindow(trace *path.Trace, segments []path.PlotSegment) func(geom.Vec2) geom.Vec2 {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	grow := func(p geom.Vec2) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	for _, seg := range segments {
		grow(seg.A)
		grow(seg.B)
	}
	for _, el := range trace.Elements {
		grow(el.Frame().Origin)
		for _, seg := range el.Outline() {
			grow(seg.A)
			grow(seg.B)
		}
	}
	if math.IsInf(minX, 1) {
		minX, minY, maxX, maxY = 0, 0, 1, 1
	}

	spanX := math.Max(maxX-minX, 1e-9)
	spanY := math.Max(maxY-minY, 1e-9)
	scale := math.Min(
		(float64(r.Width)-2*r.Margin)/spanX,
		(float64(r.Height)-2*r.Margin)/spanY,
	)

	// Center the window on the canvas
	offsetX := (float64(r.Width) - scale*spanX) / 2
	offsetY := (float64(r.Height) - scale*spanY) / 2

	return func(p geom.Vec2) geom.Vec2 {
		return geom.Vec2{
			X: offsetX + (p.X-minX)*scale,
			Y: float64(r.Height) - offsetY - (p.Y-minY)*scale,
		}
	}
}
