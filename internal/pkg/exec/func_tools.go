// Copyright the raildeploy authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package exec provides an interface to execute commands with external tools.
package exec

import (
	"fmt"
	"strings"

	"github.com/getraildata/raildeploy/internal/pkg/term/command"
	"github.com/getraildata/raildeploy/internal/pkg/version"
	"golang.org/x/mod/semver"
)

const funcToolsBinary = "func"

type runner interface {
	Run(name string, args []string, options ...command.Option) error
}

// FuncTools represents the Azure Functions Core Tools CLI.
type FuncTools struct {
	runner
}

// NewFuncTools returns a FuncTools backed by the "func" binary on the PATH.
func NewFuncTools() FuncTools {
	return FuncTools{
		runner: command.New(),
	}
}

// CheckVersion makes sure Core Tools are installed and recent enough to run
// remote builds against a v4 function host.
func (f FuncTools) CheckVersion() error {
	buf := &strings.Builder{}
	if err := f.Run(funcToolsBinary, []string{"--version"}, command.Stdout(buf)); err != nil {
		return &ErrFuncToolsNotFound{parentErr: err}
	}
	v := "v" + strings.TrimSpace(buf.String())
	if !semver.IsValid(v) {
		return fmt.Errorf("parse Core Tools version %q", strings.TrimSpace(buf.String()))
	}
	if semver.Compare(v, version.MinFuncToolsVersion) < 0 {
		return &ErrFuncToolsOutdated{Version: v}
	}
	return nil
}

// Publish uploads the function project in dir to the named function app and
// triggers a remote build. Any extraArgs are passed through to Core Tools.
func (f FuncTools) Publish(appName, dir string, extraArgs []string) error {
	args := append([]string{"azure", "functionapp", "publish", appName, "--build", "remote"}, extraArgs...)
	if err := f.Run(funcToolsBinary, args, command.Dir(dir)); err != nil {
		return fmt.Errorf("publish function project to %s: %w", appName, err)
	}
	return nil
}
