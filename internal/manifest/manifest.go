// Package manifest assembles the pyproject.toml document.
//
// Build is a pure function of the project descriptor and the resolved
// preset bundle: identical input yields byte-identical encoded output.
// Serialization and file placement are kept separate so callers can gate
// writes without computing anything twice.
package manifest

import (
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pyproject-dev/pyproject-setup/internal/models"
	"github.com/pyproject-dev/pyproject-setup/internal/preset"
)

// FileName is the manifest file name within the output directory.
const FileName = "pyproject.toml"

// Document is the assembled pyproject.toml structure.
type Document struct {
	Project     Project     `toml:"project"`
	BuildSystem BuildSystem `toml:"build-system"`
	Tool        Tool        `toml:"tool"`
}

// Project is the [project] metadata table.
type Project struct {
	Name                 string              `toml:"name"`
	Version              string              `toml:"version"`
	Description          string              `toml:"description"`
	RequiresPython       string              `toml:"requires-python"`
	Dependencies         []string            `toml:"dependencies"`
	Scripts              map[string]string   `toml:"scripts,omitempty"`
	OptionalDependencies map[string][]string `toml:"optional-dependencies,omitempty"`
	URLs                 map[string]string   `toml:"urls,omitempty"`
	Authors              []Author            `toml:"authors,omitempty"`
}

// Author is one entry of the [[project.authors]] array.
type Author struct {
	Name  string `toml:"name"`
	Email string `toml:"email"`
}

// BuildSystem is the static [build-system] table.
type BuildSystem struct {
	Requires     []string `toml:"requires"`
	BuildBackend string   `toml:"build-backend"`
}

// Tool groups the tool-configuration tables.
type Tool struct {
	Hatch        HatchConfig        `toml:"hatch"`
	Ruff         RuffConfig         `toml:"ruff"`
	Mypy         MypyConfig         `toml:"mypy"`
	PydanticMypy PydanticMypyConfig `toml:"pydantic-mypy"`
	Pylint       PylintConfig       `toml:"pylint"`
	Pytest       PytestConfig       `toml:"pytest"`
	Coverage     CoverageConfig     `toml:"coverage"`
	Ty           TyConfig           `toml:"ty"`
}

// HatchConfig declares the wheel build target.
type HatchConfig struct {
	Build HatchBuild `toml:"build"`
}

type HatchBuild struct {
	Targets HatchTargets `toml:"targets"`
}

type HatchTargets struct {
	Wheel HatchWheel `toml:"wheel"`
}

type HatchWheel struct {
	Packages []string `toml:"packages"`
}

// Build assembles the manifest document from the descriptor and bundle.
// It has no side effects and never fails: preset membership and descriptor
// validity are checked before calling it.
func Build(desc *models.ProjectDescriptor, bundle *preset.Bundle) *Document {
	project := Project{
		Name:           desc.Name,
		Version:        desc.Version,
		Description:    desc.Description,
		RequiresPython: desc.PythonVersion,
		Dependencies:   append([]string{}, bundle.Dependencies...),
	}

	if len(bundle.DevDependencies) > 0 {
		project.OptionalDependencies = map[string][]string{
			"dev": append([]string{}, bundle.DevDependencies...),
		}
	}

	urls := map[string]string{}
	if desc.Homepage != "" {
		urls["Homepage"] = desc.Homepage
	}
	if desc.Repository != "" {
		// Issues and Changelog locations derive from the repository URL
		// by fixed convention.
		urls["Repository"] = desc.Repository
		urls["Issues"] = fmt.Sprintf("%s/issues", desc.Repository)
		urls["Changelog"] = fmt.Sprintf("%s/blob/main/CHANGELOG.md", desc.Repository)
	}
	if len(urls) > 0 {
		project.URLs = urls
	}

	// Partial author info (name without email or vice versa) is dropped.
	if desc.HasAuthor() {
		project.Authors = []Author{
			{Name: desc.AuthorName, Email: desc.AuthorEmail},
		}
	}

	if bundle.EntryPoint != "" {
		project.Scripts = map[string]string{
			desc.Name: ScriptTarget(desc.PackagePath, bundle.EntryPoint),
		}
	}

	return &Document{
		Project: project,
		BuildSystem: BuildSystem{
			Requires:     []string{"hatchling"},
			BuildBackend: "hatchling.build",
		},
		Tool: Tool{
			Hatch: HatchConfig{
				Build: HatchBuild{
					Targets: HatchTargets{
						Wheel: HatchWheel{
							Packages: []string{desc.PackagePath},
						},
					},
				},
			},
			Ruff:         ruffConfig(desc.PackagePath),
			Mypy:         mypyConfig(desc.PackagePath),
			PydanticMypy: pydanticMypyConfig(),
			Pylint:       pylintConfig(),
			Pytest:       pytestConfig(),
			Coverage:     coverageConfig(desc.PackagePath),
			Ty:           tyConfig(desc.PackagePath),
		},
	}
}

// ScriptTarget converts a package path and entry-point suffix into a
// console-script target, e.g. ("src", "main:app") -> "src.main:app".
func ScriptTarget(packagePath, entryPoint string) string {
	return strings.ReplaceAll(packagePath, "/", ".") + "." + entryPoint
}

// Encode serializes the document to TOML bytes.
func Encode(doc *Document) ([]byte, error) {
	data, err := toml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}
	return data, nil
}
