// Copyright the raildeploy authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package command runs external commands and streams their output to the terminal.
package command

import (
	"io"
	"os"
	"os/exec"
	"strings"
)

// Service runs external commands.
type Service struct{}

// New returns a Service.
func New() Service {
	return Service{}
}

// Option configures the underlying exec.Cmd before it runs.
type Option func(cmd *exec.Cmd)

// Stdin feeds input to the command's standard input.
func Stdin(input string) Option {
	return func(c *exec.Cmd) {
		c.Stdin = strings.NewReader(input)
	}
}

// Stdout redirects the command's standard output to writer.
func Stdout(writer io.Writer) Option {
	return func(c *exec.Cmd) {
		c.Stdout = writer
	}
}

// Dir sets the working directory of the command.
func Dir(dir string) Option {
	return func(c *exec.Cmd) {
		c.Dir = dir
	}
}

// Env appends environment variables, in "KEY=value" form, to the command's environment.
func Env(vars ...string) Option {
	return func(c *exec.Cmd) {
		c.Env = append(os.Environ(), vars...)
	}
}

// Run executes the named command with the given arguments.
// By default both output streams are forwarded to standard error so that
// tool output reads as diagnostic information.
func (s Service) Run(name string, args []string, options ...Option) error {
	cmd := exec.Command(name, args...)

	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr

	for _, opt := range options {
		opt(cmd)
	}

	return cmd.Run()
}
