package tui

import (
	"fmt"
	"strings"
)

// RenderBanner renders the framed tool banner shown before prompting.
func RenderBanner(tool string) string {
	return BorderStyle.Render(TitleStyle.Render(tool) + " - Project Scaffolder")
}

// RenderSuccess renders the closing summary panel.
func RenderSuccess(projectName, packagePath string, createdFiles []string) string {
	var b strings.Builder

	b.WriteString(SuccessStyle.Render("Done!"))
	b.WriteString(fmt.Sprintf(" Project %s initialized.\n\n", SelectedStyle.Render(projectName)))

	for _, file := range createdFiles {
		b.WriteString(fmt.Sprintf("%s %s\n", SuccessStyle.Render("Created"), file))
	}

	b.WriteString("\nNext steps:\n")
	b.WriteString(fmt.Sprintf("  1. Create the %s directory\n", SelectedStyle.Render(packagePath+"/")))
	b.WriteString(SubtleStyle.Render("  2. pip install -e \".[dev]\"") + "\n")
	b.WriteString("  3. Start coding!")

	return SuccessBorderStyle.Render(b.String())
}
