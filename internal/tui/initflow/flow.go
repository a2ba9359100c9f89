// Package initflow gathers the descriptor fields the init command did not
// receive via flags, one prompt per missing field.
package initflow

import (
	"strings"

	"github.com/pyproject-dev/pyproject-setup/internal/preset"
	"github.com/pyproject-dev/pyproject-setup/internal/prompt"
)

// Options carries the flag-provided values into the flow. Empty string
// fields (and *Set == false for booleans) mean "not provided, ask".
type Options struct {
	Name        string
	NameDefault string

	Description string
	Preset      string

	// PresetDefault preselects a preset in the menu (user config).
	PresetDefault string

	Repository    string
	RepositorySet bool

	Homepage    string
	HomepageSet bool

	Workflow    bool
	WorkflowSet bool

	Yapf    bool
	YapfSet bool
}

// Result is the completed set of answers.
type Result struct {
	Name        string
	Description string
	Preset      string
	Repository  string
	Homepage    string
	Workflow    bool
	Yapf        bool
}

// Flow asks for whatever Options left open.
type Flow struct {
	prompter prompt.Prompter
}

// NewFlow creates a Flow on top of a Prompter.
func NewFlow(p prompt.Prompter) *Flow {
	return &Flow{prompter: p}
}

// Run executes the prompts sequentially. Any abort propagates as
// prompt.ErrAborted.
func (f *Flow) Run(opts Options) (*Result, error) {
	result := &Result{
		Name:        opts.Name,
		Description: opts.Description,
		Preset:      opts.Preset,
		Repository:  opts.Repository,
		Homepage:    opts.Homepage,
		Workflow:    opts.Workflow,
		Yapf:        opts.Yapf,
	}

	if result.Name == "" {
		name, err := f.prompter.Input("Project name", "", opts.NameDefault)
		if err != nil {
			return nil, err
		}
		result.Name = strings.TrimSpace(name)
	}

	if result.Description == "" {
		description, err := f.prompter.Input("Description", "", "")
		if err != nil {
			return nil, err
		}
		result.Description = strings.TrimSpace(description)
	}

	if result.Preset == "" {
		selected, err := f.selectPreset(opts.PresetDefault)
		if err != nil {
			return nil, err
		}
		result.Preset = selected
	}

	if !opts.RepositorySet {
		repository, err := f.prompter.Input("Repository URL", "Optional; leave empty to skip.", "")
		if err != nil {
			return nil, err
		}
		result.Repository = strings.TrimSpace(repository)
	}

	if !opts.HomepageSet {
		homepage, err := f.prompter.Input("Homepage URL", "Optional; leave empty to skip.", "")
		if err != nil {
			return nil, err
		}
		result.Homepage = strings.TrimSpace(homepage)
	}

	if !opts.WorkflowSet {
		workflow, err := f.prompter.Confirm("Add PyPI publish workflow?", true)
		if err != nil {
			return nil, err
		}
		result.Workflow = workflow
	}

	if !opts.YapfSet {
		yapf, err := f.prompter.Confirm("Add .style.yapf config?", false)
		if err != nil {
			return nil, err
		}
		result.Yapf = yapf
	}

	return result, nil
}

func (f *Flow) selectPreset(preselected string) (string, error) {
	names := preset.Names()

	options := make([]prompt.SelectOption, 0, len(names))
	for _, name := range names {
		bundle, err := preset.Resolve(name)
		if err != nil {
			return "", err
		}
		options = append(options, prompt.SelectOption{
			Value:       bundle.Key,
			Label:       bundle.Key,
			Description: bundle.Description,
		})
	}

	// Move the preselected preset to the front so it is the menu default.
	if preselected != "" {
		for i, option := range options {
			if option.Value == preselected && i > 0 {
				options = append(options[:i], options[i+1:]...)
				options = append([]prompt.SelectOption{option}, options...)
				break
			}
		}
	}

	return f.prompter.Select("Select preset", "Seeds dependencies and tooling defaults.", options)
}
