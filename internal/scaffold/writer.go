// Package scaffold renders the generated files and places them in the
// output directory.
package scaffold

import (
	"fmt"
	"path/filepath"

	"github.com/pyproject-dev/pyproject-setup/internal/filesystem"
	"github.com/pyproject-dev/pyproject-setup/internal/manifest"
)

// ErrOverwriteDeclined is returned when the user declines to overwrite an
// existing manifest.
var ErrOverwriteDeclined = fmt.Errorf("overwrite declined")

// StyleFileName is the style config file name within the output directory.
const StyleFileName = ".style.yapf"

// Writer places generated files into an output directory.
type Writer struct {
	fs filesystem.FileSystem
}

// NewWriter creates a new Writer
func NewWriter(fs filesystem.FileSystem) *Writer {
	return &Writer{fs: fs}
}

// ManifestPath returns where the manifest would be written for outputDir.
func (w *Writer) ManifestPath(outputDir string) string {
	return filepath.Join(outputDir, manifest.FileName)
}

// WriteManifest encodes and writes the manifest, returning the written path.
func (w *Writer) WriteManifest(doc *manifest.Document, outputDir string) (string, error) {
	data, err := manifest.Encode(doc)
	if err != nil {
		return "", err
	}

	path := w.ManifestPath(outputDir)
	if err := w.fs.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", manifest.FileName, err)
	}

	return path, nil
}

// WriteWorkflow renders and writes the publish workflow, creating the
// .github/workflows directory as needed.
func (w *Writer) WriteWorkflow(projectName, outputDir string) (string, error) {
	content, err := RenderPublishWorkflow(projectName)
	if err != nil {
		return "", err
	}

	workflowDir := filepath.Join(outputDir, ".github", "workflows")
	if err := w.fs.MkdirAll(workflowDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create workflow directory: %w", err)
	}

	path := filepath.Join(workflowDir, "publish.yml")
	if err := w.fs.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write publish workflow: %w", err)
	}

	return path, nil
}

// WriteStyleConfig writes the fixed .style.yapf file.
func (w *Writer) WriteStyleConfig(outputDir string) (string, error) {
	path := filepath.Join(outputDir, StyleFileName)
	if err := w.fs.WriteFile(path, []byte(StyleYapf), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", StyleFileName, err)
	}
	return path, nil
}
