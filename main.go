package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/tos07/go-ray-optics/pkg/analysis"
	"github.com/tos07/go-ray-optics/pkg/plot"
	"github.com/tos07/go-ray-optics/pkg/scene"
)

func main() {
	sceneName := flag.String("scene", "imaging", "Preset bench to trace")
	out := flag.String("out", "", "Output PNG path (default output/<scene>/trace_<timestamp>.png)")
	width := flag.Int("width", 1200, "Output image width in pixels")
	height := flag.Int("height", 675, "Output image height in pixels")
	workers := flag.Int("workers", 0, "Trace worker count (0 = all CPUs)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Ray Optics Bench Tracer")
		fmt.Println("Usage: rayoptics [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, name := range scene.Names() {
			s, err := scene.New(name)
			if err != nil {
				continue
			}
			fmt.Printf("  %-12s - %s\n", name, s.Description)
		}
		fmt.Println()
		fmt.Println("Output is saved to output/<scene>/trace_<timestamp>.png")
		return
	}

	s, err := scene.New(*sceneName)
	if err != nil {
		log.Fatalf("Building scene: %v", err)
	}
	log.WithFields(log.Fields{
		"scene":    s.Name,
		"rays":     len(s.Rays),
		"elements": len(s.Path.Elements()),
	}).Info("Tracing bench")

	start := time.Now()
	trace := s.Path.TraceParallel(s.Rays, *workers)
	log.WithFields(log.Fields{
		"duration": time.Since(start),
		"absorbed": trace.Absorbed(),
	}).Info("Trace completed")

	if s.Sensor != nil {
		image := analysis.SensorImage(trace, s.Sensor)
		log.WithField("efficiency", image.Efficiency).Info("Sensor image")
		for _, spot := range image.Spots {
			log.WithFields(log.Fields{
				"wavelength": spot.Wavelength,
				"rays":       spot.Count,
				"mean":       spot.Mean,
				"rms":        spot.RMS,
			}).Info("Spot")
		}
	}

	filename := *out
	if filename == "" {
		outputDir := filepath.Join("output", s.Name)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			log.Fatalf("Creating output directory: %v", err)
		}
		filename = filepath.Join(outputDir, fmt.Sprintf("trace_%s.png", time.Now().Format("20060102_150405")))
	}

	file, err := os.Create(filename)
	if err != nil {
		log.Fatalf("Creating output file: %v", err)
	}
	defer file.Close()

	renderer := plot.NewRenderer(*width, *height)
	if err := renderer.RenderPNG(trace, file); err != nil {
		log.Fatalf("Encoding PNG: %v", err)
	}
	log.WithField("file", filename).Info("Plot saved")
}
