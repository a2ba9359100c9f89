package cli

import (
	"fmt"

	"github.com/pyproject-dev/pyproject-setup/internal/config"
	"github.com/pyproject-dev/pyproject-setup/internal/filesystem"
	"github.com/pyproject-dev/pyproject-setup/internal/prompt"
	"github.com/spf13/cobra"
)

// version is overridden at build time via -ldflags.
var version = "dev"

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem, prompter prompt.Prompter) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pyproject-setup",
		Short: "Scaffold pyproject.toml with pre-configured linting and tooling",
		Long: `pyproject-setup scaffolds a pyproject.toml from named presets,
optionally emitting a PyPI publish workflow and a .style.yapf config.

Run 'pyproject-setup init' interactively or pass flags for automation.`,
		Version:      version,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(NewInitCommand(fs, prompter))
	rootCmd.AddCommand(NewPresetsCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	config.Load()

	fs := filesystem.NewOSFileSystem()
	prompter := prompt.NewHuhPrompter()

	rootCmd := NewRootCommand(fs, prompter)

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}
