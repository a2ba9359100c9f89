package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/pyproject-dev/pyproject-setup/internal/config"
	"github.com/pyproject-dev/pyproject-setup/internal/filesystem"
	"github.com/pyproject-dev/pyproject-setup/internal/manifest"
	"github.com/pyproject-dev/pyproject-setup/internal/models"
	"github.com/pyproject-dev/pyproject-setup/internal/preset"
	"github.com/pyproject-dev/pyproject-setup/internal/prompt"
	"github.com/pyproject-dev/pyproject-setup/internal/scaffold"
	"github.com/pyproject-dev/pyproject-setup/internal/tui"
	"github.com/pyproject-dev/pyproject-setup/internal/tui/initflow"
	"github.com/spf13/cobra"
)

// InitCommand handles the init command
type InitCommand struct {
	fs       filesystem.FileSystem
	prompter prompt.Prompter
}

// NewInitCommand creates a new init command
func NewInitCommand(fs filesystem.FileSystem, prompter prompt.Prompter) *cobra.Command {
	cmd := &InitCommand{fs: fs, prompter: prompter}

	cobraCmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new pyproject.toml with pre-configured tooling",
		Long: `Initialize a new pyproject.toml with pre-configured tooling.

Run interactively or pass flags for automation.`,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringP("name", "n", "", "Project name")
	cobraCmd.Flags().StringP("description", "d", "", "Project description")
	cobraCmd.Flags().StringP("preset", "p", "", "Project preset (fastapi-backend, library, cli-tool)")
	cobraCmd.Flags().String("python", models.DefaultPythonVersion, "Python version requirement")
	cobraCmd.Flags().String("package-path", models.DefaultPackagePath, "Package source path")
	cobraCmd.Flags().StringP("repository", "r", "", "Repository URL")
	cobraCmd.Flags().String("homepage", "", "Homepage URL")
	cobraCmd.Flags().String("author-name", "", "Author name (authors section needs name and email)")
	cobraCmd.Flags().String("author-email", "", "Author email (authors section needs name and email)")
	cobraCmd.Flags().Bool("workflow", true, "Add PyPI publish workflow")
	cobraCmd.Flags().StringP("output", "o", ".", "Output directory")
	cobraCmd.Flags().BoolP("force", "f", false, "Overwrite existing files")
	cobraCmd.Flags().Bool("yapf", false, "Add .style.yapf config file")

	return cobraCmd
}

// Run executes the init command
func (c *InitCommand) Run(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	description, _ := cmd.Flags().GetString("description")
	presetKey, _ := cmd.Flags().GetString("preset")
	python, _ := cmd.Flags().GetString("python")
	packagePath, _ := cmd.Flags().GetString("package-path")
	repository, _ := cmd.Flags().GetString("repository")
	homepage, _ := cmd.Flags().GetString("homepage")
	authorName, _ := cmd.Flags().GetString("author-name")
	authorEmail, _ := cmd.Flags().GetString("author-email")
	workflow, _ := cmd.Flags().GetBool("workflow")
	output, _ := cmd.Flags().GetString("output")
	force, _ := cmd.Flags().GetBool("force")
	yapf, _ := cmd.Flags().GetBool("yapf")

	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprintln(out, tui.RenderBanner("pyproject-setup"))
	fmt.Fprintln(out)

	writer := scaffold.NewWriter(c.fs)

	// Overwrite gate: confirm before any write when the manifest exists.
	manifestPath := writer.ManifestPath(output)
	if c.fs.Exists(manifestPath) && !force {
		overwrite, err := c.prompter.Confirm(
			fmt.Sprintf("pyproject.toml already exists at %s. Overwrite?", output), false)
		if err != nil {
			return c.abort(cmd, err)
		}
		if !overwrite {
			fmt.Fprintln(cmd.ErrOrStderr(), tui.ErrorStyle.Render("Aborted."))
			return scaffold.ErrOverwriteDeclined
		}
	}

	flow := initflow.NewFlow(c.prompter)
	answers, err := flow.Run(initflow.Options{
		Name:          name,
		NameDefault:   c.defaultProjectName(output),
		Description:   description,
		Preset:        presetKey,
		PresetDefault: config.DefaultPreset(),
		Repository:    repository,
		RepositorySet: cmd.Flags().Changed("repository"),
		Homepage:      homepage,
		HomepageSet:   cmd.Flags().Changed("homepage"),
		Workflow:      workflow,
		WorkflowSet:   cmd.Flags().Changed("workflow"),
		Yapf:          yapf,
		YapfSet:       cmd.Flags().Changed("yapf"),
	})
	if err != nil {
		return c.abort(cmd, err)
	}

	bundle, err := preset.Resolve(answers.Preset)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), tui.ErrorStyle.Render(err.Error()))
		return err
	}

	// User config supplies author defaults when the flags are empty.
	if authorName == "" {
		authorName = config.AuthorName()
	}
	if authorEmail == "" {
		authorEmail = config.AuthorEmail()
	}

	desc := models.NewProjectDescriptor(answers.Name, answers.Description, bundle.Key)
	desc.PythonVersion = python
	desc.PackagePath = packagePath
	desc.Repository = answers.Repository
	desc.Homepage = answers.Homepage
	desc.AuthorName = authorName
	desc.AuthorEmail = authorEmail

	if err := desc.Validate(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), tui.ErrorStyle.Render(err.Error()))
		return err
	}

	if desc.HasPartialAuthor() {
		fmt.Fprintln(cmd.ErrOrStderr(), tui.WarnStyle.Render(
			"Both author name and email are needed for the authors section; omitting it."))
	}

	doc := manifest.Build(desc, bundle)

	createdFiles := make([]string, 0, 3)

	path, err := writer.WriteManifest(doc, output)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s %s\n", tui.SuccessStyle.Render("Created"), path)
	createdFiles = append(createdFiles, path)

	if answers.Workflow {
		path, err := writer.WriteWorkflow(desc.Name, output)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s %s\n", tui.SuccessStyle.Render("Created"), path)
		createdFiles = append(createdFiles, path)
	}

	if answers.Yapf {
		path, err := writer.WriteStyleConfig(output)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s %s\n", tui.SuccessStyle.Render("Created"), path)
		createdFiles = append(createdFiles, path)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, tui.RenderSuccess(desc.Name, desc.PackagePath, createdFiles))

	return nil
}

// defaultProjectName derives the interactive default from the output
// directory name, falling back to the working directory for ".".
func (c *InitCommand) defaultProjectName(output string) string {
	if output == "" || output == "." {
		if wd, err := c.fs.Getwd(); err == nil {
			return filepath.Base(wd)
		}
		return ""
	}

	abs, err := filepath.Abs(output)
	if err != nil {
		return filepath.Base(output)
	}
	return filepath.Base(abs)
}

func (c *InitCommand) abort(cmd *cobra.Command, err error) error {
	if errors.Is(err, prompt.ErrAborted) {
		fmt.Fprintln(cmd.ErrOrStderr(), tui.ErrorStyle.Render("Aborted."))
	}
	return err
}
