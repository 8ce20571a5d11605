package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"rotorcast/internal/config"
	"rotorcast/internal/engine"
	"rotorcast/internal/platform"
	"rotorcast/internal/raster"
	"rotorcast/internal/scene"
)

func main() {
	configFile := flag.String("config", "", "Path to config.yaml file")
	scale := flag.Int("scale", 0, "Window scale factor (default: 1)")
	workers := flag.Int("workers", 0, "Number of render workers (default: NumCPU)")
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
		Workers:     *workers,
		WindowScale: *scale,
		LogLevel:    *logLevel,
	})

	logger, err := cfg.BuildLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	drv := engine.New(scene.DemoWorld(), raster.Width, raster.Height, cfg.Workers, logger)

	opts := platform.Options{Title: "rotorcast", Scale: cfg.WindowScale}
	if err := platform.Run(drv, opts, logger); err != nil {
		logger.Error("window closed with error", zap.Error(err))
		os.Exit(1)
	}
}
