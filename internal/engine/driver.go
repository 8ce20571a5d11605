package engine

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"

	"rotorcast/internal/input"
	"rotorcast/internal/raster"
	"rotorcast/internal/scene"
)

// SourceFunc supplies the input for one tick of a headless run.
type SourceFunc func(tick uint64) input.Snapshot

// PresentFunc consumes the finished frame for one tick. The driver
// stops and returns its error, if any.
type PresentFunc func(tick uint64, fb *raster.FrameBuffer) error

// Driver owns one simulation: a world, the input accumulator feeding
// it, and the renderer drawing it into a fixed-size framebuffer.
type Driver struct {
	world *scene.World
	acc   *input.Accumulator
	rend  *raster.Renderer
	fb    *raster.FrameBuffer
	log   *zap.Logger

	ticks   uint64
	stopped atomic.Bool
}

// New builds a driver rendering world at the given resolution. A zero
// worker count picks one render worker per CPU; a nil logger disables
// logging.
func New(world *scene.World, width, height, workers int, log *zap.Logger) *Driver {
	if log == nil {
		log = zap.NewNop()
	}
	d := &Driver{
		world: world,
		acc:   input.NewAccumulator(),
		rend:  raster.NewRenderer(workers),
		fb:    raster.NewFrameBuffer(width, height),
		log:   log,
	}
	d.log.Info("driver ready",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("workers", d.rend.Workers()),
		zap.Int("cubes", world.CubeCount()),
	)
	return d
}

// Accumulator returns the input sink feeding this driver. Producers
// may write to it from any goroutine.
func (d *Driver) Accumulator() *input.Accumulator {
	return d.acc
}

// FrameBuffer returns the frame target. Its contents are stable from
// the end of one Step until the start of the next.
func (d *Driver) FrameBuffer() *raster.FrameBuffer {
	return d.fb
}

func (d *Driver) World() *scene.World {
	return d.world
}

// Ticks returns the number of completed steps.
func (d *Driver) Ticks() uint64 {
	return d.ticks
}

// Step runs one tick: it folds the accumulated input into the camera
// pose, then renders the next frame.
func (d *Driver) Step() {
	input.Integrate(d.world, d.acc.Drain())
	d.rend.Frame(d.world, d.fb)
	d.ticks++
}

// Stop makes a concurrent Run return after its current tick. Safe to
// call from any goroutine.
func (d *Driver) Stop() {
	d.stopped.Store(true)
}

// Run steps the driver until the context is canceled, Stop is called,
// or present fails. source feeds the accumulator before each tick and
// may be nil; present receives every finished frame and may be nil.
func (d *Driver) Run(ctx context.Context, source SourceFunc, present PresentFunc) error {
	d.stopped.Store(false)
	for {
		select {
		case <-ctx.Done():
			d.log.Info("driver stopping", zap.Uint64("ticks", d.ticks), zap.Error(ctx.Err()))
			return ctx.Err()
		default:
		}
		if d.stopped.Load() {
			d.log.Info("driver stopped", zap.Uint64("ticks", d.ticks))
			return nil
		}
		tick := d.ticks
		if source != nil {
			d.acc.Apply(source(tick))
		}
		d.Step()
		if present != nil {
			if err := present(tick, d.fb); err != nil {
				return err
			}
		}
	}
}
