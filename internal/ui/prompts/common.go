package prompts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// PromptInput prompts for a text value with an optional default and
// validator. An empty entry falls back to the default.
func PromptInput(message string, defaultValue string, validator func(string) error) (string, error) {
	var value string

	input := huh.NewInput().
		Title(message).
		Value(&value)

	if defaultValue != "" {
		input.Placeholder(defaultValue)
	}

	if validator != nil {
		input.Validate(validator)
	}

	if err := input.Run(); err != nil {
		return "", err
	}

	if value == "" && defaultValue != "" {
		return defaultValue, nil
	}

	return value, nil
}

// PromptRequired prompts for a text value that must not be blank.
func PromptRequired(message string) (string, error) {
	var value string

	err := huh.NewInput().
		Title(message).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("this field is required")
			}
			return nil
		}).
		Value(&value).
		Run()

	return value, err
}

// PromptAmount prompts for an amount string with custom validation.
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

// PromptDate prompts for a YYYY-MM-DD date; Enter keeps the default.
func PromptDate(message string, defaultDate string) (string, error) {
	var date string

	err := huh.NewInput().
		Title(message).
		Description("Press Enter for " + defaultDate).
		Placeholder(defaultDate).
		Value(&date).
		Run()

	if err != nil {
		return "", err
	}

	if date == "" {
		return defaultDate, nil
	}
	return date, nil
}

// PromptConfirm prompts for a yes/no answer.
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	confirm := defaultValue

	err := huh.NewConfirm().
		Title(message).
		Affirmative("Yes").
		Negative("No").
		Value(&confirm).
		Run()

	return confirm, err
}

// PromptSelect prompts for one choice out of options.
func PromptSelect(message string, options []string, defaultOption string) (string, error) {
	selected := defaultOption
	if selected == "" && len(options) > 0 {
		selected = options[0]
	}

	var opts []huh.Option[string]
	for _, o := range options {
		opts = append(opts, huh.NewOption(o, o))
	}

	err := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Value(&selected).
		Run()

	return selected, err
}
