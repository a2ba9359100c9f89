package initflow

import (
	"errors"
	"testing"

	"github.com/pyproject-dev/pyproject-setup/internal/prompt"
	"github.com/stretchr/testify/require"
)

func TestRun_PromptsForMissingFields(t *testing.T) {
	prompter := &prompt.MockPrompter{
		InputAnswers:   []string{"myproj", "my description", "https://github.com/org/myproj", ""},
		SelectAnswers:  []string{"cli-tool"},
		ConfirmAnswers: []bool{true, false},
	}

	flow := NewFlow(prompter)
	result, err := flow.Run(Options{NameDefault: "fallback"})
	require.NoError(t, err)

	require.Equal(t, "myproj", result.Name)
	require.Equal(t, "my description", result.Description)
	require.Equal(t, "cli-tool", result.Preset)
	require.Equal(t, "https://github.com/org/myproj", result.Repository)
	require.Empty(t, result.Homepage)
	require.True(t, result.Workflow)
	require.False(t, result.Yapf)
}

func TestRun_EmptyNameAnswerUsesDefault(t *testing.T) {
	prompter := &prompt.MockPrompter{
		InputAnswers:   []string{"", "", "", ""},
		SelectAnswers:  []string{"library"},
		ConfirmAnswers: []bool{true, false},
	}

	flow := NewFlow(prompter)
	result, err := flow.Run(Options{NameDefault: "dirname"})
	require.NoError(t, err)
	require.Equal(t, "dirname", result.Name)
}

func TestRun_FlagProvidedFieldsSkipPrompts(t *testing.T) {
	prompter := &prompt.MockPrompter{}

	flow := NewFlow(prompter)
	result, err := flow.Run(Options{
		Name:          "svc",
		Description:   "described",
		Preset:        "fastapi-backend",
		Repository:    "https://github.com/org/svc",
		RepositorySet: true,
		HomepageSet:   true,
		Workflow:      true,
		WorkflowSet:   true,
		Yapf:          true,
		YapfSet:       true,
	})
	require.NoError(t, err)

	require.Empty(t, prompter.Calls)
	require.Equal(t, "svc", result.Name)
	require.Equal(t, "fastapi-backend", result.Preset)
	require.True(t, result.Workflow)
	require.True(t, result.Yapf)
}

func TestRun_AbortPropagates(t *testing.T) {
	prompter := &prompt.MockPrompter{
		AbortOn: "Project name",
	}

	flow := NewFlow(prompter)
	_, err := flow.Run(Options{})
	require.True(t, errors.Is(err, prompt.ErrAborted))
}

func TestSelectPreset_PreselectedMovesFirst(t *testing.T) {
	prompter := &prompt.MockPrompter{
		SelectAnswers: []string{"library"},
	}

	flow := NewFlow(prompter)
	selected, err := flow.selectPreset("library")
	require.NoError(t, err)
	require.Equal(t, "library", selected)
}
