package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/mkoster/go-whitted-raytracer/pkg/core"
	"github.com/mkoster/go-whitted-raytracer/pkg/renderer"
	"github.com/mkoster/go-whitted-raytracer/pkg/scene"
)

func main() {
	sceneFlag := flag.String("scene", "default", "Scene: 'default' or path to a .ray file")
	res := flag.Int("res", 512, "Image resolution (pixels per side)")
	reflections := flag.Int("reflections", 10, "Maximum mirror reflection depth")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	output := flag.String("output", "output", "Output directory")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Scene files use one primitive per line:")
		fmt.Println("  sphere,(cx cy cz),radius,(r g b),matte|glossy|refl")
		fmt.Println("  triangle,(ax ay az),(bx by bz),(cx cy cz),(r g b),matte|glossy|refl")
		fmt.Println()
		fmt.Println("Output is saved to <output>/render_<timestamp>.png")
		return
	}

	if err := run(*sceneFlag, *res, *reflections, *workers, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(sceneName string, res, reflections, workers int, outputDir string) error {
	logger := core.NewDefaultLogger()

	sc, err := createScene(sceneName)
	if err != nil {
		return err
	}
	if err := applyConfig(sc, res, reflections); err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	logger.Printf("Rendering %d primitives at %dx%d, reflection depth %d...\n",
		sc.PrimitiveCount(), sc.Config.Resolution, sc.Config.Resolution, sc.Config.ReflectionDepth)

	startTime := time.Now()
	img, stats := renderer.RenderParallel(sc, workers)
	renderTime := time.Since(startTime)

	logger.Printf("Render completed in %v\n", renderTime)
	logger.Printf("Pixels: %d (%d hit geometry), rays: %d primary, %d shadow, %d bounces\n",
		stats.TotalPixels, stats.HitPixels, stats.PrimaryRays, stats.ShadowRays, stats.ReflectionBounces)

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("saving PNG: %w", err)
	}

	logger.Printf("Render saved as %s\n", filename)
	return nil
}

// createScene resolves a scene argument to a built-in scene or a .ray
// file on disk
func createScene(name string) (*scene.Scene, error) {
	if name == "default" {
		return scene.NewDefaultScene(), nil
	}
	return scene.LoadFile(name)
}

// applyConfig overrides the scene's configuration with validated CLI
// values
func applyConfig(sc *scene.Scene, res, reflections int) error {
	if res <= 0 {
		return fmt.Errorf("resolution must be positive, got %d", res)
	}
	if reflections < 0 {
		return fmt.Errorf("reflection depth must be non-negative, got %d", reflections)
	}
	sc.Config.Resolution = res
	sc.Config.ReflectionDepth = reflections
	return nil
}
