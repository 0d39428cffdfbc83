// Copyright the raildeploy authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// BuildCompletionCmd returns the command to output shell completion code for the given shell.
func BuildCompletionCmd(rootCmd *cobra.Command) *cobra.Command {
	var w io.Writer
	cmd := &cobra.Command{
		Use:   "completion [shell]",
		Short: "Output shell completion code.",
		Long: `Output shell completion code for bash, zsh or fish.
The code must be evaluated to provide interactive completion of commands.`,
		Example: `
  Install zsh completion.
  $ raildeploy completion zsh > "${fpath[1]}/_raildeploy"`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return nil
			}
			return errors.New("requires a shell argument (bash, zsh or fish)")
		},
		RunE: runCmdE(func(cmd *cobra.Command, args []string) error {
			w = os.Stdout
			shell := args[0]
			switch shell {
			case "bash":
				return rootCmd.GenBashCompletion(w)
			case "zsh":
				return rootCmd.GenZshCompletion(w)
			case "fish":
				return rootCmd.GenFishCompletion(w, true)
			default:
				return errors.New("unsupported shell, must be bash, zsh or fish")
			}
		}),
	}
	return cmd
}
