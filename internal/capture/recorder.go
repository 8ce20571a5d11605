package capture

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/cespare/xxhash/v2"
	"github.com/ftrvxmtrx/tga"
	"go.uber.org/zap"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"rotorcast/internal/engine"
	"rotorcast/internal/input"
	"rotorcast/internal/raster"
	"rotorcast/internal/scene"
)

// Options configures a recording run.
type Options struct {
	OutputDir   string
	Frames      int
	Format      string // "webp" or "tga"
	Supersample int
	Workers     int
	Dedupe      bool
	Script      Script
	Log         *zap.Logger
}

func (o *Options) normalize() error {
	if o.Frames <= 0 {
		return fmt.Errorf("capture: frame count %d must be positive", o.Frames)
	}
	switch o.Format {
	case "webp", "tga":
	default:
		return fmt.Errorf("capture: unknown format %q", o.Format)
	}
	if o.Script.Tick == nil {
		return fmt.Errorf("capture: no input script")
	}
	if o.Supersample < 1 {
		o.Supersample = 1
	}
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.Log == nil {
		o.Log = zap.NewNop()
	}
	return nil
}

// Run plays the script over the stock scene and encodes every frame
// into the output directory, then writes a manifest.json describing
// the run. Frames render sequentially to keep the input stream
// deterministic; encoding fans out over a bounded worker group. With
// dedupe on, frames whose digest repeats the previous one are recorded
// but not written.
func Run(ctx context.Context, opts Options) (*Manifest, error) {
	if err := opts.normalize(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("capture: output dir: %w", err)
	}

	rw := raster.Width * opts.Supersample
	rh := raster.Height * opts.Supersample
	drv := engine.New(scene.DemoWorld(), rw, rh, opts.Workers, opts.Log)

	man := newManifest(opts)
	var encoded atomic.Int64
	start := time.Now()

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				n := encoded.Load()
				opts.Log.Info("recording",
					zap.Int64("encoded", n),
					zap.Int("total", opts.Frames),
					zap.Float64("fps", float64(n)/time.Since(start).Seconds()),
				)
			}
		}
	}()

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(opts.Workers)

	var prev uint64
	runErr := drv.Run(egCtx,
		func(tick uint64) input.Snapshot {
			return opts.Script.Tick(int(tick))
		},
		func(tick uint64, fb *raster.FrameBuffer) error {
			i := int(tick)
			rgba := fb.RGBABytes(nil)
			digest := xxhash.Sum64(rgba)
			if opts.Dedupe && i > 0 && digest == prev {
				man.Frames[i] = FrameResult{Index: i, Digest: digestString(digest), Skipped: true}
			} else {
				name := fmt.Sprintf("frame_%04d.%s", i, opts.Format)
				man.Frames[i] = FrameResult{Index: i, File: name, Digest: digestString(digest)}
				eg.Go(func() error {
					if err := encodeFrame(filepath.Join(opts.OutputDir, name), rgba, rw, rh, opts); err != nil {
						return err
					}
					encoded.Add(1)
					return nil
				})
			}
			prev = digest
			if i+1 >= opts.Frames {
				drv.Stop()
			}
			return nil
		})

	encErr := eg.Wait()
	close(done)

	err := encErr
	if err == nil {
		err = runErr
	}

	// The manifest still records whatever finished before a failure.
	if werr := WriteManifest(filepath.Join(opts.OutputDir, "manifest.json"), man); werr != nil && err == nil {
		err = werr
	}

	opts.Log.Info("recording finished",
		zap.Int64("encoded", encoded.Load()),
		zap.Int("frames", opts.Frames),
		zap.String("dir", opts.OutputDir),
		zap.Duration("elapsed", time.Since(start)),
	)
	return man, err
}

// encodeFrame writes one frame, downsampling supersampled renders to
// the output resolution first.
func encodeFrame(path string, rgba []byte, w, h int, opts Options) error {
	img := &image.NRGBA{Pix: rgba, Stride: w * 4, Rect: image.Rect(0, 0, w, h)}
	if opts.Supersample > 1 {
		img = downsample(img, raster.Width, raster.Height)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("capture: create %s: %w", path, err)
	}
	defer f.Close()

	switch opts.Format {
	case "webp":
		if err := nativewebp.Encode(f, img, nil); err != nil {
			return fmt.Errorf("capture: webp encode %s: %w", path, err)
		}
	case "tga":
		if err := tga.Encode(f, img); err != nil {
			return fmt.Errorf("capture: tga encode %s: %w", path, err)
		}
	}
	return nil
}

// downsample shrinks a frame with CatmullRom filtering. Frames are
// fully opaque, so no premultiply pass is needed.
func downsample(img *image.NRGBA, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
