package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"rotorcast/internal/capture"
	"rotorcast/internal/config"
)

func main() {
	configFile := flag.String("config", "", "Path to config.yaml file")
	outputDir := flag.String("out", "", "Output directory (default: frames)")
	frames := flag.Int("frames", 0, "Number of frames to record (default: 120)")
	format := flag.String("format", "", "Frame format: webp or tga (default: webp)")
	script := flag.String("script", "", "Camera script: orbit, dolly or static (default: orbit)")
	speed := flag.Int("speed", 0, "Orbit speed in pointer counts per tick (default: 8)")
	supersample := flag.Int("supersample", 0, "Render scale factor before downsampling (default: 1)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	dedupe := flag.Bool("dedupe", false, "Skip frames identical to their predecessor")
	logLevel := flag.String("log", "", "Log level (default: info)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		OutputDir:   *outputDir,
		Frames:      *frames,
		Format:      *format,
		Script:      *script,
		ScriptSpeed: *speed,
		Supersample: *supersample,
		Workers:     *workers,
		Dedupe:      *dedupe,
		LogLevel:    *logLevel,
	})

	logger, err := cfg.BuildLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	scr, err := capture.ByName(cfg.Script, cfg.ScriptSpeed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	man, err := capture.Run(ctx, capture.Options{
		OutputDir:   cfg.OutputDir,
		Frames:      cfg.Frames,
		Format:      cfg.Format,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		Dedupe:      cfg.Dedupe,
		Script:      scr,
		Log:         logger,
	})
	if err != nil {
		logger.Error("recording failed", zap.Error(err))
		os.Exit(1)
	}

	written := 0
	for _, fr := range man.Frames {
		if !fr.Skipped {
			written++
		}
	}
	logger.Info("run complete",
		zap.String("run_id", man.RunID),
		zap.Int("written", written),
		zap.Int("skipped", len(man.Frames)-written),
		zap.Duration("elapsed", time.Since(start)),
	)
}
