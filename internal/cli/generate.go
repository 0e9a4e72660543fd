package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mapforge/terratex/internal/terrain"
	"github.com/mapforge/terratex/internal/texture"
)

var (
	// Generate command flags
	generateOutput   string
	generateConfig   string
	generateSize     int
	generateStrength int
	generateStyle    string
)

// newGenerateCmd builds the generate command.
func newGenerateCmd() *cobra.Command {
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one seamless placeholder texture per terrain type",
		Long: `Generate placeholder terrain textures.

For every terrain record the synthesizer perturbs the record's base
colour with layered noise, blurs the result, blends the borders against
the opposite edges so the texture tiles cleanly, and writes a PNG named
{id:02d}_{name}.png into the output directory.

Output is deterministic: each record's noise seed is derived from its id,
so re-running the command reproduces the same bytes.

Examples:
  # Generate the built-in terrain set into textures/base
  terratex generate

  # Custom output directory and texture size
  terratex generate -o assets/terrain --size 256

  # Use a terrain table from a config file
  terratex generate --config terrain_config.json

  # Smoother, coherent-noise textures (changes output bytes)
  terratex generate --style perlin`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}

	defaults := texture.DefaultParams()
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "textures/base", "output directory (created if absent)")
	generateCmd.Flags().StringVarP(&generateConfig, "config", "c", "", "terrain table file (.json, .yaml); default: built-in table")
	generateCmd.Flags().IntVar(&generateSize, "size", defaults.Size, "texture size in pixels (square)")
	generateCmd.Flags().IntVar(&generateStrength, "strength", defaults.Strength, "noise amplitude added to each colour channel")
	generateCmd.Flags().StringVar(&generateStyle, "style", string(defaults.Style), "noise style (classic, perlin)")

	return generateCmd
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, args []string) error {
	records, err := loadRecords(generateConfig)
	if err != nil {
		return err
	}

	logger.Debug("starting batch",
		"records", len(records), "output", generateOutput,
		"size", generateSize, "strength", generateStrength, "style", generateStyle)

	result, err := texture.GenerateAll(logger, records, texture.BatchOptions{
		OutputDir: generateOutput,
		Size:      generateSize,
		Strength:  generateStrength,
		Style:     texture.Style(generateStyle),
	})
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	logger.Info("batch complete", "textures", len(result.Written), "dir", generateOutput)
	return nil
}

// loadRecords resolves the active terrain table: a config file when one
// is given, the built-in table otherwise.
func loadRecords(configPath string) ([]terrain.Record, error) {
	if configPath == "" {
		return terrain.Default(), nil
	}
	records, err := terrain.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("invalid terrain table: %w", err)
	}
	return records, nil
}
