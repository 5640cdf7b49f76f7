package renderer

import (
	"image"
	"runtime"
	"sync"

	"github.com/mkoster/go-whitted-raytracer/pkg/scene"
)

// DefaultTileSize is the side length of the square tiles the image is
// split into for parallel rendering
const DefaultTileSize = 64

// TileTask represents one tile rendering task for the worker pool
type TileTask struct {
	TaskID int
	Bounds image.Rectangle
}

// TileResult contains the statistics from rendering one tile
type TileResult struct {
	TaskID int
	Stats  RenderStats
}

// WorkerPool renders non-overlapping tiles of one image in parallel.
// Every pixel is computed independently from read-only scene data, so
// the output is bit-identical to a sequential render at any worker
// count.
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	numWorkers  int
	wg          sync.WaitGroup
}

// NewWorkerPool creates a pool with the specified number of workers.
// Zero or negative means one worker per CPU.
func NewWorkerPool(sc *scene.Scene, img *image.RGBA, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	size := sc.Config.Resolution
	maxTiles := ((size + DefaultTileSize - 1) / DefaultTileSize)
	maxTiles *= maxTiles

	wp := &WorkerPool{
		taskQueue:   make(chan TileTask, maxTiles),
		resultQueue: make(chan TileResult, maxTiles),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.wg.Add(1)
		// Each worker gets its own raytracer; the scene itself is
		// read-only and shared
		go wp.run(NewRaytracer(sc), img)
	}

	return wp
}

// run is the worker loop: render tiles until the task queue closes
func (wp *WorkerPool) run(rt *Raytracer, img *image.RGBA) {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		stats := rt.RenderBounds(task.Bounds, img)
		wp.resultQueue <- TileResult{TaskID: task.TaskID, Stats: stats}
	}
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// TileBounds splits a size x size image into DefaultTileSize tiles in
// row-major order
func TileBounds(size int) []image.Rectangle {
	var tiles []image.Rectangle
	for y := 0; y < size; y += DefaultTileSize {
		for x := 0; x < size; x += DefaultTileSize {
			tiles = append(tiles, image.Rect(
				x, y,
				min(x+DefaultTileSize, size),
				min(y+DefaultTileSize, size),
			))
		}
	}
	return tiles
}

// RenderParallel renders the scene across the pool's workers and
// returns the finished image with merged statistics
func RenderParallel(sc *scene.Scene, numWorkers int) (*image.RGBA, RenderStats) {
	size := sc.Config.Resolution
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	wp := NewWorkerPool(sc, img, numWorkers)
	tiles := TileBounds(size)

	for i, bounds := range tiles {
		wp.taskQueue <- TileTask{TaskID: i, Bounds: bounds}
	}
	close(wp.taskQueue)

	var stats RenderStats
	for range tiles {
		result := <-wp.resultQueue
		stats.Merge(result.Stats)
	}
	wp.wg.Wait()

	return img, stats
}
