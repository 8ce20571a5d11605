package capture

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"rotorcast/internal/raster"
)

// FrameResult records the outcome of one recorded tick. The digest is
// taken over the raw framebuffer bytes before any downsampling, so
// identical camera states always produce identical digests.
type FrameResult struct {
	Index   int    `json:"index"`
	File    string `json:"file,omitempty"`
	Digest  string `json:"digest"`
	Skipped bool   `json:"skipped,omitempty"`
}

// Manifest describes one recording run.
type Manifest struct {
	RunID       string        `json:"run_id"`
	CreatedAt   time.Time     `json:"created_at"`
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	Supersample int           `json:"supersample"`
	Format      string        `json:"format"`
	Script      string        `json:"script"`
	Frames      []FrameResult `json:"frames"`
}

func newManifest(opts Options) *Manifest {
	return &Manifest{
		RunID:       uuid.NewString(),
		CreatedAt:   time.Now().UTC(),
		Width:       raster.Width,
		Height:      raster.Height,
		Supersample: opts.Supersample,
		Format:      opts.Format,
		Script:      opts.Script.Name,
		Frames:      make([]FrameResult, opts.Frames),
	}
}

// WriteManifest writes the run description as indented JSON.
func WriteManifest(path string, m *Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func digestString(d uint64) string {
	return fmt.Sprintf("%016x", d)
}
