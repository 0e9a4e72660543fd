package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mapforge/terratex/internal/texture"
)

var (
	// List command flags
	listConfig  string
	listFormat  string
	listPreview bool
)

// newListCmd builds the list command.
func newListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the active terrain table",
		Long: `List the terrain records that generate would process: id, name,
base colour, noise seed and output filename.

Examples:
  # Show the built-in terrain table
  terratex list

  # With colour swatches in the terminal
  terratex list --preview

  # Inspect a config file as JSON
  terratex list --config terrain_config.json --format json`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	listCmd.Flags().StringVarP(&listConfig, "config", "c", "", "terrain table file (.json, .yaml); default: built-in table")
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "text", "output format (text, json)")
	listCmd.Flags().BoolVar(&listPreview, "preview", false, "show colour swatches in terminal")

	return listCmd
}

// runList executes the list command.
func runList(cmd *cobra.Command, args []string) error {
	records, err := loadRecords(listConfig)
	if err != nil {
		return err
	}

	switch listFormat {
	case "text":
		for _, rec := range records {
			line := fmt.Sprintf("%2d  %-24s %s  seed=%-5d %s",
				rec.ID, rec.Name, rec.Hex(), texture.RecordSeed(rec), rec.Filename())
			if listPreview {
				line = colourSwatch(rec.NRGBA(), swatchWidth) + " " + line
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
	case "json":
		// Emit the table in the same shape generate accepts as input.
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(map[string]any{"terrains": records}); err != nil {
			return fmt.Errorf("failed to encode terrain table: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", listFormat)
	}

	logger.Debug("listed terrain records", "count", len(records))
	return nil
}
