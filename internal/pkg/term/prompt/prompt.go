// Copyright the raildeploy authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package prompt provides functionality to retrieve free-form text and
// confirmation input from the user via a terminal.
package prompt

import (
	"os"

	"github.com/AlecAivazis/survey/v2"
)

// Prompt abstracts the survey.AskOne function.
type Prompt func(survey.Prompt, interface{}, ...survey.AskOpt) error

// ValidatorFunc defines the function signature for validating inputs.
type ValidatorFunc func(interface{}) error

// New returns a Prompt with default configuration.
func New() Prompt {
	return survey.AskOne
}

// Option is a functional option to configure a prompt.
type Option func(survey.Prompt)

// WithDefaultInput sets a default answer for an input prompt.
func WithDefaultInput(s string) Option {
	return func(p survey.Prompt) {
		if input, ok := p.(*survey.Input); ok {
			input.Default = s
		}
	}
}

// WithTrueDefault sets the default for a confirm prompt to true.
func WithTrueDefault() Option {
	return func(p survey.Prompt) {
		if confirm, ok := p.(*survey.Confirm); ok {
			confirm.Default = true
		}
	}
}

// Get prompts the user for free-form text input.
func (p Prompt) Get(message, help string, validator ValidatorFunc, promptOpts ...Option) (string, error) {
	input := &survey.Input{
		Message: message,
	}
	if help != "" {
		input.Help = help
	}
	for _, opt := range promptOpts {
		opt(input)
	}

	var result string
	err := p(input, &result, stdio(), validators(validator), icons())
	return result, err
}

// Confirm prompts the user with a yes/no option.
func (p Prompt) Confirm(message, help string, promptOpts ...Option) (bool, error) {
	confirm := &survey.Confirm{
		Message: message,
	}
	if help != "" {
		confirm.Help = help
	}
	for _, opt := range promptOpts {
		opt(confirm)
	}

	var result bool
	err := p(confirm, &result, stdio(), icons())
	return result, err
}

func stdio() survey.AskOpt {
	return survey.WithStdio(os.Stdin, os.Stderr, os.Stderr)
}

func icons() survey.AskOpt {
	return survey.WithIcons(func(icons *survey.IconSet) {
		// The question mark "?" icon to denote a prompt will be colored in bold.
		icons.Question.Text = ""
		icons.Question.Format = "default+b"
	})
}

func validators(validatorFunc ValidatorFunc) survey.AskOpt {
	var v survey.Validator
	if validatorFunc != nil {
		v = survey.ComposeValidators(survey.Required, survey.Validator(validatorFunc))
	} else {
		v = survey.Required
	}
	return survey.WithValidator(v)
}
