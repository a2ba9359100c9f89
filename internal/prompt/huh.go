package prompt

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	huh "github.com/charmbracelet/huh"
	"github.com/pyproject-dev/pyproject-setup/internal/tui"
)

// HuhPrompter implements Prompter with charmbracelet/huh forms.
type HuhPrompter struct {
	theme *huh.Theme
}

// NewHuhPrompter creates a Prompter backed by themed huh forms.
func NewHuhPrompter() *HuhPrompter {
	return &HuhPrompter{theme: tui.NewHuhTheme()}
}

func (p *HuhPrompter) Input(title, description, defaultValue string) (string, error) {
	value := defaultValue

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description(description).
				Value(&value),
		),
	).
		WithTheme(p.theme).
		WithShowHelp(true)

	if err := form.Run(); err != nil {
		return "", p.mapErr(err)
	}

	return value, nil
}

func (p *HuhPrompter) Select(title, description string, options []SelectOption) (string, error) {
	selected := ""

	opts := make([]huh.Option[string], 0, len(options))
	for _, option := range options {
		label := option.Label
		if option.Description != "" {
			label = fmt.Sprintf("%s — %s", option.Label, option.Description)
		}
		opts = append(opts, huh.NewOption(label, option.Value))
	}

	keyMap := huh.NewDefaultKeyMap()
	keyMap.Select.Filter.SetEnabled(false)
	keyMap.Select.Submit.SetKeys("enter", " ")
	keyMap.Select.Submit.SetHelp("space/enter", "select")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Options(opts...).
				Value(&selected),
		).
			Title(title).
			Description(description),
	).
		WithTheme(p.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen()).
		WithKeyMap(keyMap)

	if err := form.Run(); err != nil {
		return "", p.mapErr(err)
	}

	return selected, nil
}

func (p *HuhPrompter) Confirm(title string, defaultValue bool) (bool, error) {
	confirmed := defaultValue

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	).
		WithTheme(p.theme).
		WithShowHelp(true)

	if err := form.Run(); err != nil {
		return false, p.mapErr(err)
	}

	return confirmed, nil
}

func (p *HuhPrompter) mapErr(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}
