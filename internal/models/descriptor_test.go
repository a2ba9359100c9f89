package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewProjectDescriptor_Defaults(t *testing.T) {
	desc := NewProjectDescriptor("svc", "a service", "fastapi-backend")

	require.Equal(t, "0.1.0", desc.Version)
	require.Equal(t, ">=3.12", desc.PythonVersion)
	require.Equal(t, "src", desc.PackagePath)
	require.NoError(t, desc.Validate())
}

func TestValidate_MissingName(t *testing.T) {
	desc := NewProjectDescriptor("", "desc", "library")
	require.Error(t, desc.Validate())
}

func TestValidate_MissingPreset(t *testing.T) {
	desc := NewProjectDescriptor("svc", "desc", "")
	require.Error(t, desc.Validate())
}

func TestValidate_InvalidVersion(t *testing.T) {
	desc := NewProjectDescriptor("svc", "desc", "library")
	desc.Version = "not-a-version"

	err := desc.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "not-a-version")
}

func TestAuthorPresence(t *testing.T) {
	desc := NewProjectDescriptor("svc", "desc", "library")
	require.False(t, desc.HasAuthor())
	require.False(t, desc.HasPartialAuthor())

	desc.AuthorName = "Jane Doe"
	require.False(t, desc.HasAuthor())
	require.True(t, desc.HasPartialAuthor())

	desc.AuthorEmail = "jane@example.com"
	require.True(t, desc.HasAuthor())
	require.False(t, desc.HasPartialAuthor())
}
