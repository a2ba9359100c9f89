package cli

import (
	"fmt"

	"github.com/pyproject-dev/pyproject-setup/internal/preset"
	"github.com/pyproject-dev/pyproject-setup/internal/tui"
	"github.com/spf13/cobra"
)

// NewPresetsCommand creates the presets listing command
func NewPresetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, tui.TitleStyle.Render("Available presets:"))

			for _, name := range preset.Names() {
				bundle, err := preset.Resolve(name)
				if err != nil {
					return err
				}

				fmt.Fprintf(out, "  %s %s\n",
					tui.SelectedStyle.Render(bundle.Key),
					tui.DescStyle.Render(bundle.Description))

				details := fmt.Sprintf("    %d dependencies, %d dev dependencies",
					len(bundle.Dependencies), len(bundle.DevDependencies))
				if bundle.EntryPoint != "" {
					details += fmt.Sprintf(", entry point %s", bundle.EntryPoint)
				}
				fmt.Fprintln(out, tui.SubtleStyle.Render(details))
			}

			return nil
		},
	}
}
