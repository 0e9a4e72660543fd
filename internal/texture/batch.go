package texture

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"github.com/mapforge/terratex/internal/terrain"
)

// seedStride spreads per-record seeds apart so neighbouring ids do not
// share overlapping random sequences.
const seedStride = 42

// BatchOptions configures a full generation run.
type BatchOptions struct {
	// OutputDir receives one PNG per terrain record. Created if absent.
	OutputDir string

	// Size and Strength apply to every record.
	Size     int
	Strength int

	// Style selects the noise model; empty means StyleClassic.
	Style Style
}

// BatchResult reports the files written by GenerateAll.
type BatchResult struct {
	Written []string
}

// RecordSeed derives the deterministic noise seed for a terrain record.
func RecordSeed(rec terrain.Record) int64 {
	return int64(rec.ID) * seedStride
}

// GenerateAll synthesizes one seamless texture per terrain record, in
// input order, and writes each as "{id:02d}_{name}.png" into the output
// directory. The first error aborts the batch; files already written
// remain on disk.
func GenerateAll(logger hclog.Logger, records []terrain.Record, opts BatchOptions) (BatchResult, error) {
	result := BatchResult{}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	if err := terrain.Validate(records); err != nil {
		return result, err
	}

	params := Params{
		Size:     opts.Size,
		Strength: opts.Strength,
		HasSeed:  true,
		Style:    opts.Style,
	}
	if err := params.Validate(); err != nil {
		return result, err
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return result, fmt.Errorf("failed to create output directory %s: %w", opts.OutputDir, err)
	}

	for _, rec := range records {
		params.Seed = RecordSeed(rec)

		logger.Debug("synthesizing texture",
			"id", rec.ID, "name", rec.Name, "color", rec.Hex(), "seed", params.Seed)

		img, err := Synthesize(rec.NRGBA(), params)
		if err != nil {
			return result, fmt.Errorf("record %d (%s): %w", rec.ID, rec.Name, err)
		}
		img = MakeSeamless(img)

		path := filepath.Join(opts.OutputDir, rec.Filename())
		if err := WritePNG(path, img); err != nil {
			return result, fmt.Errorf("record %d (%s): %w", rec.ID, rec.Name, err)
		}

		logger.Info("texture written", "file", rec.Filename())
		result.Written = append(result.Written, path)
	}

	return result, nil
}
