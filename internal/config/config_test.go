package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_EnvDefaults(t *testing.T) {
	t.Setenv("PYPROJECT_SETUP_AUTHOR_NAME", "Jane Doe")
	t.Setenv("PYPROJECT_SETUP_AUTHOR_EMAIL", "jane@example.com")
	t.Setenv("PYPROJECT_SETUP_PRESET", "cli-tool")

	Load()

	require.Equal(t, "Jane Doe", AuthorName())
	require.Equal(t, "jane@example.com", AuthorEmail())
	require.Equal(t, "cli-tool", DefaultPreset())
}

func TestFilePath_UnderConfigDir(t *testing.T) {
	require.True(t, strings.HasSuffix(FilePath(), "config.yaml"))
	require.True(t, strings.Contains(FilePath(), ".pyproject-setup"))
}
