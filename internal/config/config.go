package config

import (
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by the interactive viewer and the
// offline recorder.
type Config struct {
	// Recorder settings
	OutputDir   string `yaml:"output_dir"`
	Frames      int    `yaml:"frames"`
	Format      string `yaml:"format"`
	Supersample int    `yaml:"supersample"`
	Dedupe      bool   `yaml:"dedupe"`
	Script      string `yaml:"script"`
	ScriptSpeed int    `yaml:"script_speed"`

	// Shared settings
	Workers     int    `yaml:"workers"`
	WindowScale int    `yaml:"window_scale"`
	LogLevel    string `yaml:"log_level"`
}

// Load reads a YAML config file. Fields not set in the file keep their
// zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir   string
	Frames      int
	Format      string
	Supersample int
	Dedupe      bool
	Script      string
	ScriptSpeed int
	Workers     int
	WindowScale int
	LogLevel    string
}

// Resolve applies flag overrides, then fills remaining empty fields
// with defaults. CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(f Flags) {
	if f.OutputDir != "" {
		c.OutputDir = f.OutputDir
	}
	if f.Frames > 0 {
		c.Frames = f.Frames
	}
	if f.Format != "" {
		c.Format = f.Format
	}
	if f.Supersample > 0 {
		c.Supersample = f.Supersample
	}
	if f.Dedupe {
		c.Dedupe = true
	}
	if f.Script != "" {
		c.Script = f.Script
	}
	if f.ScriptSpeed != 0 {
		c.ScriptSpeed = f.ScriptSpeed
	}
	if f.Workers > 0 {
		c.Workers = f.Workers
	}
	if f.WindowScale > 0 {
		c.WindowScale = f.WindowScale
	}
	if f.LogLevel != "" {
		c.LogLevel = f.LogLevel
	}

	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.Frames <= 0 {
		c.Frames = 120
	}
	if c.Format == "" {
		c.Format = "webp"
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Script == "" {
		c.Script = "orbit"
	}
	// Speed keeps its sign so scripts can run in either direction.
	if c.ScriptSpeed == 0 {
		c.ScriptSpeed = 8
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.WindowScale <= 0 {
		c.WindowScale = 1
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// BuildLogger constructs the process logger at the configured level.
func (c Config) BuildLogger() (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("config: log level %q: %w", c.LogLevel, err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}
