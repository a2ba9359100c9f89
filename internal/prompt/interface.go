package prompt

import (
	"fmt"
)

// ErrAborted is returned when the user cancels an interactive prompt.
var ErrAborted = fmt.Errorf("prompt aborted")

// SelectOption is one entry of a selection menu.
type SelectOption struct {
	Value       string
	Label       string
	Description string
}

// Prompter abstracts interactive input so command flows can be tested
// with scripted answers.
type Prompter interface {
	// Input asks for a single line of text. An empty answer yields
	// defaultValue.
	Input(title, description, defaultValue string) (string, error)

	// Select asks the user to pick one option and returns its value.
	Select(title, description string, options []SelectOption) (string, error)

	// Confirm asks a yes/no question.
	Confirm(title string, defaultValue bool) (bool, error)
}
