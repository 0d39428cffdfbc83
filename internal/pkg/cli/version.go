// Copyright the raildeploy authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"os"

	"github.com/getraildata/raildeploy/internal/pkg/version"
	"github.com/spf13/cobra"
)

// BuildVersionCmd builds the command to print the version of the binary.
func BuildVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number.",
		RunE: runCmdE(func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(os.Stdout, "raildeploy version: %s\n", version.Version)
			return nil
		}),
	}
}
