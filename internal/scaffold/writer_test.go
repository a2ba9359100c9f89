package scaffold

import (
	"errors"
	"strings"
	"testing"

	"github.com/pyproject-dev/pyproject-setup/internal/filesystem"
	"github.com/pyproject-dev/pyproject-setup/internal/manifest"
	"github.com/pyproject-dev/pyproject-setup/internal/models"
	"github.com/pyproject-dev/pyproject-setup/internal/preset"
	"github.com/stretchr/testify/require"
)

func buildDoc(t *testing.T, name, presetKey string) *manifest.Document {
	t.Helper()
	bundle, err := preset.Resolve(presetKey)
	require.NoError(t, err)
	return manifest.Build(models.NewProjectDescriptor(name, "", presetKey), bundle)
}

func TestWriteManifest(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/out")

	writer := NewWriter(fs)
	path, err := writer.WriteManifest(buildDoc(t, "svc", "library"), "/out")
	require.NoError(t, err)
	require.Equal(t, "/out/pyproject.toml", path)

	data, err := fs.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `name = 'svc'`)
	require.Contains(t, string(data), "[build-system]")
}

func TestWriteManifest_PropagatesWriteError(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/out")
	fs.WriteErr = errors.New("permission denied")

	writer := NewWriter(fs)
	_, err := writer.WriteManifest(buildDoc(t, "svc", "library"), "/out")
	require.Error(t, err)
	require.Contains(t, err.Error(), "permission denied")
}

func TestWriteWorkflow(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/out")

	writer := NewWriter(fs)
	path, err := writer.WriteWorkflow("svc", "/out")
	require.NoError(t, err)
	require.Equal(t, "/out/.github/workflows/publish.yml", path)

	data, err := fs.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "name: Publish to PyPI")
	require.Contains(t, string(data), "https://pypi.org/p/svc")
	require.NotContains(t, string(data), "{{")
}

func TestWriteStyleConfig(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/out")

	writer := NewWriter(fs)
	path, err := writer.WriteStyleConfig("/out")
	require.NoError(t, err)
	require.Equal(t, "/out/.style.yapf", path)

	data, err := fs.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, StyleYapf, string(data))
	require.True(t, strings.HasPrefix(string(data), "[style]\n"))
}

func TestRenderPublishWorkflow_OnlyNameVaries(t *testing.T) {
	first, err := RenderPublishWorkflow("alpha")
	require.NoError(t, err)

	second, err := RenderPublishWorkflow("beta")
	require.NoError(t, err)

	require.Equal(t,
		strings.ReplaceAll(first, "alpha", "beta"),
		second)
}
