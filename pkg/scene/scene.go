// Package scene provides preset optical benches: assembled element
// sequences together with the rays to launch through them.
package scene

import (
	"fmt"
	"sort"

	"github.com/tos07/go-ray-optics/pkg/element"
	"github.com/tos07/go-ray-optics/pkg/geom"
	"github.com/tos07/go-ray-optics/pkg/path"
)

// Scene bundles everything needed to trace and render a bench
type Scene struct {
	Name        string
	Description string
	Path        *path.OpticalPath
	Rays        []geom.Ray
	Sensor      *element.Sensor // terminal detector, nil when the bench has none
}

// builders maps scene names to their constructors
var builders = map[string]func() (*Scene, error){
	"imaging":      NewImagingScene,
	"spectrometer": NewSpectrometerScene,
	"prism":        NewPrismScene,
	"collimator":   NewCollimatorScene,
}

// New builds the named preset scene
func New(name string) (*Scene, error) {
	builder, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
	return builder()
}

// Names returns the available scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
