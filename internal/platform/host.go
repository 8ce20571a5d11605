package platform

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"rotorcast/internal/engine"
	"rotorcast/internal/input"
)

// Options configures the interactive window.
type Options struct {
	Title string
	Scale int
}

// Host adapts a driver to the ebiten game loop: Update polls raw input
// into the accumulator and steps the simulation, Draw blits the
// finished framebuffer to the screen.
type Host struct {
	drv     *engine.Driver
	log     *zap.Logger
	img     *ebiten.Image
	scratch []byte
	prevX   int
	prevY   int
	started bool
}

func NewHost(drv *engine.Driver, log *zap.Logger) *Host {
	if log == nil {
		log = zap.NewNop()
	}
	fb := drv.FrameBuffer()
	return &Host{
		drv: drv,
		log: log,
		img: ebiten.NewImage(fb.Width, fb.Height),
	}
}

// Update implements ebiten.Game.
func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		h.log.Info("escape pressed", zap.Uint64("ticks", h.drv.Ticks()))
		return ebiten.Termination
	}

	acc := h.drv.Accumulator()

	// Relative mouse look from cursor deltas; the first poll only
	// seeds the previous position.
	x, y := ebiten.CursorPosition()
	if h.started {
		acc.AddPointerDelta(x-h.prevX, y-h.prevY)
	}
	h.prevX, h.prevY = x, y
	h.started = true

	acc.SetHeld(input.Forward, ebiten.IsKeyPressed(ebiten.KeyW))
	acc.SetHeld(input.Backward, ebiten.IsKeyPressed(ebiten.KeyS))
	acc.SetHeld(input.Left, ebiten.IsKeyPressed(ebiten.KeyA))
	acc.SetHeld(input.Right, ebiten.IsKeyPressed(ebiten.KeyD))

	h.drv.Step()
	return nil
}

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	h.scratch = h.drv.FrameBuffer().RGBABytes(h.scratch)
	h.img.WritePixels(h.scratch)
	screen.DrawImage(h.img, nil)
}

// Layout implements ebiten.Game. The logical resolution stays at the
// framebuffer size whatever the window size; ebiten scales the rest.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	fb := h.drv.FrameBuffer()
	return fb.Width, fb.Height
}

// Run opens the window and blocks until it is closed or Escape is
// pressed.
func Run(drv *engine.Driver, opts Options, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	fb := drv.FrameBuffer()
	ebiten.SetWindowSize(fb.Width*scale, fb.Height*scale)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetTPS(60)
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	start := time.Now()
	err := ebiten.RunGame(NewHost(drv, log))
	log.Info("session ended",
		zap.Uint64("ticks", drv.Ticks()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return err
}
