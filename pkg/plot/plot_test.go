package plot

import (
	"bytes"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tos07/go-ray-optics/pkg/element"
	"github.com/tos07/go-ray-optics/pkg/geom"
	"github.com/tos07/go-ray-optics/pkg/path"
)

func TestWavelengthToRGB(t *testing.T) {
	tests := []struct {
		name       string
		wavelength float64
		check      func(t *testing.T, r, g, b float64)
	}{
		{
			name:       "green laser is pure green",
			wavelength: 510.0001,
			check: func(t *testing.T, r, g, b float64) {
				assert.InDelta(t, 0.0, r, 1e-3)
				assert.InDelta(t, 1.0, g, 1e-9)
			},
		},
		{
			name:       "violet mixes red and blue",
			wavelength: 410,
			check: func(t *testing.T, r, g, b float64) {
				assert.Greater(t, r, 0.0)
				assert.Equal(t, 0.0, g)
				assert.Greater(t, b, r)
			},
		},
		{
			name:       "deep red is red only",
			wavelength: 680,
			check: func(t *testing.T, r, g, b float64) {
				assert.Greater(t, r, 0.5)
				assert.Equal(t, 0.0, g)
				assert.Equal(t, 0.0, b)
			},
		},
		{
			name:       "ultraviolet is black",
			wavelength: 200,
			check: func(t *testing.T, r, g, b float64) {
				assert.Equal(t, [3]float64{0, 0, 0}, [3]float64{r, g, b})
			},
		},
		{
			name:       "infrared is black",
			wavelength: 900,
			check: func(t *testing.T, r, g, b float64) {
				assert.Equal(t, [3]float64{0, 0, 0}, [3]float64{r, g, b})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := WavelengthToRGB(tt.wavelength, DefaultGamma)
			tt.check(t, r, g, b)
		})
	}
}

func testTrace(t *testing.T) *path.Trace {
	t.Helper()
	lens, err := element.NewLens(50, 40, geom.NewVec2(60, 0), 0)
	require.NoError(t, err)

	p := path.NewOpticalPath()
	p.Append(lens)
	return p.Trace(path.Fan(geom.NewVec2(0, 0), -10, 10, 7, 650))
}

func TestRenderer_DrawsRaysAndElements(t *testing.T) {
	renderer := NewRenderer(320, 200)
	img := renderer.Render(testTrace(t))

	require.NotNil(t, img)
	assert.Equal(t, image.Rect(0, 0, 320, 200), img.Bounds())

	// The canvas must contain non-background pixels (rays and outlines)
	colored := 0
	for y := 0; y < 200; y++ {
		for x := 0; x < 320; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if r != 0xffff || g != 0xffff || b != 0xffff {
				colored++
			}
		}
	}
	assert.Greater(t, colored, 100, "expected drawn geometry on the canvas")
}

func TestRenderer_RenderPNG(t *testing.T) {
	renderer := NewRenderer(160, 120)
	renderer.Labels = false

	var buf bytes.Buffer
	require.NoError(t, renderer.RenderPNG(testTrace(t), &buf))

	img, format, err := image.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 160, img.Bounds().Dx())
}
