package raster

import (
	"runtime"
	"sync"

	"rotorcast/internal/scene"
)

// Renderer casts one ray per pixel into a world snapshot, spreading
// scanlines across a pool of workers. A Renderer keeps per-frame
// scratch, so one instance renders one frame at a time.
type Renderer struct {
	workers int
	view    frameView
}

// NewRenderer returns a renderer with the given worker count, or one
// worker per CPU when workers is zero or negative.
func NewRenderer(workers int) *Renderer {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Renderer{workers: workers}
}

func (r *Renderer) Workers() int {
	return r.workers
}

// Frame renders the world into fb, returning only after every scanline
// has been written.
func (r *Renderer) Frame(w *scene.World, fb *FrameBuffer) {
	r.view.snapshot(w, newCamera(fb.Width, fb.Height))

	rows := make(chan int, r.workers*2)
	var wg sync.WaitGroup
	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				r.renderRow(fb, y)
			}
		}()
	}
	for y := 0; y < fb.Height; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()
}

func (r *Renderer) renderRow(fb *FrameBuffer, y int) {
	row := fb.Row(y)
	for x := range row {
		row[x] = r.view.trace(r.view.cam.point(x, y))
	}
}
