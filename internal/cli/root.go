// Package cli provides the command-line interface for Terratex.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/mapforge/terratex/internal/version"
)

var (
	// Global flags
	rootVerbose bool
	rootQuiet   bool

	// Shared logger configured by the root command before any subcommand runs
	logger hclog.Logger = hclog.NewNullLogger()
)

// NewRootCmd builds the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "terratex",
		Short: "Placeholder terrain texture generator",
		Long: `Terratex generates placeholder seamless terrain textures for a
map-rendering client.

For each terrain type it synthesizes multi-octave noise over the type's
base colour, blends the edges for tileability, and writes one PNG named
{id:02d}_{name}.png. The textures are deterministic throwaway assets,
meant to be replaced with real art later.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = newLogger()
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&rootQuiet, "quiet", "q", false, "suppress non-error output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newTileCmd())

	return rootCmd
}

// newLogger builds the shared logger from the global flags.
func newLogger() hclog.Logger {
	level := hclog.Info
	switch {
	case rootQuiet:
		level = hclog.Error
	case rootVerbose:
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "terratex",
		Output: os.Stderr,
		Level:  level,
	})
}

// newVersionCmd builds the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
