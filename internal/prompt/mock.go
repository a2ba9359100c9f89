package prompt

import (
	"fmt"
)

// MockPrompter replays scripted answers for testing command flows.
// Answers are consumed in call order per kind; running out of answers is
// an error so tests fail loudly on unexpected prompts.
type MockPrompter struct {
	InputAnswers   []string
	SelectAnswers  []string
	ConfirmAnswers []bool

	// AbortOn, when non-empty, makes the prompt with that title return
	// ErrAborted.
	AbortOn string

	// Calls records prompt titles in the order they were asked.
	Calls []string

	inputIdx   int
	selectIdx  int
	confirmIdx int
}

func (m *MockPrompter) Input(title, description, defaultValue string) (string, error) {
	m.Calls = append(m.Calls, title)
	if m.AbortOn == title {
		return "", ErrAborted
	}
	if m.inputIdx >= len(m.InputAnswers) {
		return "", fmt.Errorf("unexpected input prompt: %s", title)
	}
	answer := m.InputAnswers[m.inputIdx]
	m.inputIdx++
	if answer == "" {
		return defaultValue, nil
	}
	return answer, nil
}

func (m *MockPrompter) Select(title, description string, options []SelectOption) (string, error) {
	m.Calls = append(m.Calls, title)
	if m.AbortOn == title {
		return "", ErrAborted
	}
	if m.selectIdx >= len(m.SelectAnswers) {
		return "", fmt.Errorf("unexpected select prompt: %s", title)
	}
	answer := m.SelectAnswers[m.selectIdx]
	m.selectIdx++

	for _, option := range options {
		if option.Value == answer {
			return answer, nil
		}
	}
	return "", fmt.Errorf("scripted answer %q is not among options for %s", answer, title)
}

func (m *MockPrompter) Confirm(title string, defaultValue bool) (bool, error) {
	m.Calls = append(m.Calls, title)
	if m.AbortOn == title {
		return false, ErrAborted
	}
	if m.confirmIdx >= len(m.ConfirmAnswers) {
		return false, fmt.Errorf("unexpected confirm prompt: %s", title)
	}
	answer := m.ConfirmAnswers[m.confirmIdx]
	m.confirmIdx++
	return answer, nil
}
