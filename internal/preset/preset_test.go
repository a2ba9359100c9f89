package preset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve_AllRegisteredKeys(t *testing.T) {
	for _, name := range Names() {
		bundle, err := Resolve(name)
		require.NoError(t, err)
		require.Equal(t, name, bundle.Key)
		require.NotEmpty(t, bundle.Description)
		require.NotNil(t, bundle.Dependencies)
		require.NotEmpty(t, bundle.DevDependencies)
	}
}

func TestResolve_Deterministic(t *testing.T) {
	for _, name := range Names() {
		first, err := Resolve(name)
		require.NoError(t, err)

		second, err := Resolve(name)
		require.NoError(t, err)

		require.Equal(t, first, second)
	}
}

func TestResolve_UnknownKey(t *testing.T) {
	_, err := Resolve("nonexistent")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnknownPreset))
	require.Contains(t, err.Error(), "nonexistent")
}

func TestResolve_CLIToolHasEntryPoint(t *testing.T) {
	bundle, err := Resolve("cli-tool")
	require.NoError(t, err)
	require.Equal(t, "main:app", bundle.EntryPoint)
	require.Equal(t, []string{
		"typer>=0.20.0,<0.21.0",
		"rich>=14.2.0,<15.0.0",
	}, bundle.Dependencies)
}

func TestResolve_LibraryHasNoRuntimeDeps(t *testing.T) {
	bundle, err := Resolve("library")
	require.NoError(t, err)
	require.Empty(t, bundle.Dependencies)
	require.NotNil(t, bundle.Dependencies)
	require.Empty(t, bundle.EntryPoint)
}

func TestNames_DisplayOrder(t *testing.T) {
	require.Equal(t, []string{"fastapi-backend", "library", "cli-tool"}, Names())
}
