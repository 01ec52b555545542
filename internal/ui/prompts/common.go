package prompts

import (
	"strings"

	"github.com/charmbracelet/huh"
)

// PromptDescription prompts for a free-form description text.
func PromptDescription(message string, validator func(string) error) (string, error) {
	var desc string

	input := huh.NewInput().
		Title(message).
		Value(&desc)

	if validator != nil {
		input.Validate(validator)
	}

	err := input.Run()
	return desc, err
}

// PromptAmount prompts for an amount with custom validation
func PromptAmount(message string, helpText string, validator func(string) error) (string, error) {
	var amount string

	input := huh.NewInput().
		Title(message).
		Description(helpText).
		Value(&amount)

	if validator != nil {
		input.Validate(validator)
	}

	err := input.Run()
	return amount, err
}

// PromptDate prompts for a date in YYYY-MM-DD format
func PromptDate(message string, defaultDate string, helpText string, validator func(string) error) (string, error) {
	var date string

	// Use Input for date for now (huh has no specialized date picker yet, simpler to stick to input)
	input := huh.NewInput().
		Title(message).
		Description(helpText).
		Placeholder(defaultDate). // Placeholder shows the default hint
		Value(&date)

	if validator != nil {
		input.Validate(func(s string) error {
			if s == "" {
				return nil // empty falls back to the default
			}
			return validator(s)
		})
	}

	if err := input.Run(); err != nil {
		return "", err
	}

	// If user pressed enter without typing, use the placeholder/default
	if date == "" {
		return defaultDate, nil
	}
	return date, nil
}

// PromptSelect prompts for a selection from a list of options
func PromptSelect(message string, options []string, defaultOption string) (string, error) {
	realDefault := defaultOption
	matchFound := false

	for _, o := range options {
		if o == defaultOption {
			realDefault = o
			matchFound = true
			break
		}
	}

	if !matchFound && defaultOption != "" {
		for _, o := range options {
			if strings.HasPrefix(o, defaultOption+" ") {
				realDefault = o
				break
			}
		}
	}
	selected := realDefault

	// Create options for huh
	var opts []huh.Option[string]
	for _, o := range options {
		opts = append(opts, huh.NewOption(o, o))
	}

	selectField := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Value(&selected)

	err := selectField.Run()
	return selected, err
}
