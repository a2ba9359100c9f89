package models

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Defaults applied by NewProjectDescriptor when fields are left empty.
const (
	DefaultVersion       = "0.1.0"
	DefaultPythonVersion = ">=3.12"
	DefaultPackagePath   = "src"
)

// ProjectDescriptor captures the user-provided project configuration.
// It is constructed once per invocation and never mutated afterwards.
type ProjectDescriptor struct {
	// Name is the project name as it appears in the manifest
	Name string

	// Description is the one-line project description
	Description string

	// Version is the initial project version (semantic version string)
	Version string

	// PythonVersion is the requires-python constraint (e.g. ">=3.12")
	PythonVersion string

	// PackagePath is the source directory holding the package (e.g. "src")
	PackagePath string

	// Preset is the key of the preset bundle to seed dependencies from
	Preset string

	// Homepage is the optional homepage URL
	Homepage string

	// Repository is the optional repository URL
	Repository string

	// AuthorName and AuthorEmail populate the authors section; the section
	// is only emitted when both are present
	AuthorName  string
	AuthorEmail string
}

// NewProjectDescriptor creates a descriptor with defaults filled in for
// version, python constraint and package path.
func NewProjectDescriptor(name, description, preset string) *ProjectDescriptor {
	return &ProjectDescriptor{
		Name:          name,
		Description:   description,
		Version:       DefaultVersion,
		PythonVersion: DefaultPythonVersion,
		PackagePath:   DefaultPackagePath,
		Preset:        preset,
	}
}

// Validate checks the descriptor for fields that would produce a broken
// manifest. It does not check preset membership; that is the preset
// registry's job.
func (d *ProjectDescriptor) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("project name is required")
	}
	if d.Preset == "" {
		return fmt.Errorf("preset is required")
	}
	if d.PackagePath == "" {
		return fmt.Errorf("package path is required")
	}
	if _, err := semver.StrictNewVersion(d.Version); err != nil {
		return fmt.Errorf("invalid project version %q: %w", d.Version, err)
	}
	return nil
}

// HasAuthor reports whether both author fields are present.
func (d *ProjectDescriptor) HasAuthor() bool {
	return d.AuthorName != "" && d.AuthorEmail != ""
}

// HasPartialAuthor reports whether exactly one author field is present.
// Partial author info is dropped from the manifest.
func (d *ProjectDescriptor) HasPartialAuthor() bool {
	return (d.AuthorName != "") != (d.AuthorEmail != "")
}
