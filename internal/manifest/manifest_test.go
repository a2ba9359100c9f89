package manifest

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/pelletier/go-toml/v2"
	"github.com/pyproject-dev/pyproject-setup/internal/models"
	"github.com/pyproject-dev/pyproject-setup/internal/preset"
	"github.com/stretchr/testify/require"
)

func mustResolve(t *testing.T, key string) *preset.Bundle {
	t.Helper()
	bundle, err := preset.Resolve(key)
	require.NoError(t, err)
	return bundle
}

func decode(t *testing.T, data []byte) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, toml.Unmarshal(data, &m))
	return m
}

func projectTable(t *testing.T, m map[string]interface{}) map[string]interface{} {
	t.Helper()
	project, ok := m["project"].(map[string]interface{})
	require.True(t, ok, "missing [project] table")
	return project
}

func TestBuild_Idempotent(t *testing.T) {
	desc := models.NewProjectDescriptor("svc", "a backend", "fastapi-backend")
	desc.Repository = "https://github.com/org/svc"
	bundle := mustResolve(t, "fastapi-backend")

	first, err := Encode(Build(desc, bundle))
	require.NoError(t, err)

	second, err := Encode(Build(desc, bundle))
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestBuild_ProjectMetadata(t *testing.T) {
	desc := models.NewProjectDescriptor("svc", "a backend", "fastapi-backend")
	bundle := mustResolve(t, "fastapi-backend")

	data, err := Encode(Build(desc, bundle))
	require.NoError(t, err)

	project := projectTable(t, decode(t, data))
	require.Equal(t, "svc", project["name"])
	require.Equal(t, "0.1.0", project["version"])
	require.Equal(t, "a backend", project["description"])
	require.Equal(t, ">=3.12", project["requires-python"])

	deps, ok := project["dependencies"].([]interface{})
	require.True(t, ok)
	require.Len(t, deps, len(bundle.Dependencies))
	require.Equal(t, "fastapi-cli>=0.0.16,<0.1.0", deps[0])

	optional, ok := project["optional-dependencies"].(map[string]interface{})
	require.True(t, ok)
	devDeps, ok := optional["dev"].([]interface{})
	require.True(t, ok)
	require.Len(t, devDeps, len(bundle.DevDependencies))
}

func TestBuild_RepositoryDerivesURLs(t *testing.T) {
	desc := models.NewProjectDescriptor("svc", "", "library")
	desc.Repository = "https://github.com/org/svc"
	bundle := mustResolve(t, "library")

	data, err := Encode(Build(desc, bundle))
	require.NoError(t, err)

	project := projectTable(t, decode(t, data))
	urls, ok := project["urls"].(map[string]interface{})
	require.True(t, ok)

	require.Len(t, urls, 3)
	require.Equal(t, "https://github.com/org/svc", urls["Repository"])
	require.Equal(t, "https://github.com/org/svc/issues", urls["Issues"])
	require.Equal(t, "https://github.com/org/svc/blob/main/CHANGELOG.md", urls["Changelog"])
	require.NotContains(t, urls, "Homepage")
}

func TestBuild_NoURLsSectionWithoutInput(t *testing.T) {
	desc := models.NewProjectDescriptor("svc", "", "library")
	bundle := mustResolve(t, "library")

	data, err := Encode(Build(desc, bundle))
	require.NoError(t, err)

	project := projectTable(t, decode(t, data))
	require.NotContains(t, project, "urls")
}

func TestBuild_PartialAuthorDropped(t *testing.T) {
	bundle := mustResolve(t, "library")

	nameOnly := models.NewProjectDescriptor("svc", "", "library")
	nameOnly.AuthorName = "Jane Doe"

	data, err := Encode(Build(nameOnly, bundle))
	require.NoError(t, err)
	require.NotContains(t, projectTable(t, decode(t, data)), "authors")

	emailOnly := models.NewProjectDescriptor("svc", "", "library")
	emailOnly.AuthorEmail = "jane@example.com"

	data, err = Encode(Build(emailOnly, bundle))
	require.NoError(t, err)
	require.NotContains(t, projectTable(t, decode(t, data)), "authors")
}

func TestBuild_FullAuthorEmitted(t *testing.T) {
	desc := models.NewProjectDescriptor("svc", "", "library")
	desc.AuthorName = "Jane Doe"
	desc.AuthorEmail = "jane@example.com"
	bundle := mustResolve(t, "library")

	data, err := Encode(Build(desc, bundle))
	require.NoError(t, err)

	project := projectTable(t, decode(t, data))
	authors, ok := project["authors"].([]interface{})
	require.True(t, ok)
	require.Len(t, authors, 1)

	author, ok := authors[0].(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, "Jane Doe", author["name"])
	require.Equal(t, "jane@example.com", author["email"])
}

func TestBuild_CLIToolScriptMapping(t *testing.T) {
	desc := models.NewProjectDescriptor("foo", "", "cli-tool")
	bundle := mustResolve(t, "cli-tool")

	data, err := Encode(Build(desc, bundle))
	require.NoError(t, err)

	project := projectTable(t, decode(t, data))
	scripts, ok := project["scripts"].(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, map[string]interface{}{"foo": "src.main:app"}, scripts)
}

func TestBuild_NestedPackagePathScriptMapping(t *testing.T) {
	require.Equal(t, "src.app.main:app", ScriptTarget("src/app", "main:app"))
}

func TestBuild_NoScriptsWithoutEntryPoint(t *testing.T) {
	desc := models.NewProjectDescriptor("svc", "", "library")
	bundle := mustResolve(t, "library")

	data, err := Encode(Build(desc, bundle))
	require.NoError(t, err)
	require.NotContains(t, projectTable(t, decode(t, data)), "scripts")
}

func TestBuild_ToolSectionsParameterizedByPackagePath(t *testing.T) {
	desc := models.NewProjectDescriptor("svc", "", "library")
	desc.PackagePath = "lib"
	bundle := mustResolve(t, "library")

	doc := Build(desc, bundle)

	require.Equal(t, []string{"lib"}, doc.Tool.Hatch.Build.Targets.Wheel.Packages)
	require.Equal(t, []string{"lib"}, doc.Tool.Ruff.Src)
	require.Contains(t, doc.Tool.Ruff.Lint.PerFileIgnores, "lib/config.py")
	require.Equal(t, []string{"lib"}, doc.Tool.Coverage.Run.Source)
	require.Equal(t, []string{"lib", "tests"}, doc.Tool.Ty.Src.Include)
	require.Equal(t, []string{"./lib"}, doc.Tool.Ty.Environment.Root)
	require.Equal(t, []string{"lib.core.logging"}, doc.Tool.Mypy.Overrides[1].Module)
}

func TestBuild_BuildSystemStatic(t *testing.T) {
	desc := models.NewProjectDescriptor("svc", "", "library")
	doc := Build(desc, mustResolve(t, "library"))

	require.Equal(t, []string{"hatchling"}, doc.BuildSystem.Requires)
	require.Equal(t, "hatchling.build", doc.BuildSystem.BuildBackend)
}

func TestEncode_Snapshots(t *testing.T) {
	for _, key := range preset.Names() {
		t.Run(key, func(t *testing.T) {
			desc := models.NewProjectDescriptor("demo", "demo project", key)
			desc.Repository = "https://github.com/org/demo"
			desc.AuthorName = "Jane Doe"
			desc.AuthorEmail = "jane@example.com"

			data, err := Encode(Build(desc, mustResolve(t, key)))
			require.NoError(t, err)

			snaps.MatchSnapshot(t, string(data))
		})
	}
}
