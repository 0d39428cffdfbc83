// Copyright the raildeploy authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package cli contains the raildeploy subcommands.
package cli

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize/english"
	"github.com/getraildata/raildeploy/internal/pkg/term/log"
	"github.com/spf13/cobra"
)

// cmd is the interface every raildeploy subcommand implements.
type cmd interface {
	// Validate returns an error for any invalid optional flags.
	Validate() error
	// Ask prompts for any required flags that are not provided.
	Ask() error
	// Execute runs the command after collecting any required flags.
	Execute() error
}

// actionRecommender contains methods that display recommended actions to the user.
type actionRecommender interface {
	RecommendActions() error
}

// run executes a command and chains any recommended actions after it.
func run(cmd cmd) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Ask(); err != nil {
		return err
	}
	if err := cmd.Execute(); err != nil {
		return err
	}
	if ar, ok := cmd.(actionRecommender); ok {
		return ar.RecommendActions()
	}
	return nil
}

// runCmdE wraps one of the run error methods, PreRunE, RunE, of a cobra command so that if a user
// types an invalid command, the usage string is printed, otherwise not.
func runCmdE(f func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := f(cmd, args); err != nil {
			cmd.SilenceUsage = true
			return err
		}
		return nil
	}
}

func logRecommendedActions(actions []string) {
	if len(actions) == 0 {
		return
	}
	log.Infof("Recommended follow-up %s:\n", english.PluralWord(len(actions), "action", ""))
	for _, action := range actions {
		log.Infof("%s\n", indentListItem(action))
	}
}

func indentListItem(multiline string) string {
	var prefixedLines []string
	for i, line := range strings.Split(multiline, "\n") {
		prefix := "    "
		if i == 0 {
			prefix = "  - "
		}
		prefixedLines = append(prefixedLines, fmt.Sprintf("%s%s", prefix, line))
	}
	return strings.Join(prefixedLines, "\n")
}
