// Copyright the raildeploy authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package exec

import (
	"errors"
	osexec "os/exec"
	"testing"

	"github.com/getraildata/raildeploy/internal/pkg/term/command"
	"github.com/stretchr/testify/require"
)

// runnerDouble applies the command options to an empty exec.Cmd so tests can
// inspect what the runner was asked to do.
type runnerDouble struct {
	output string
	err    error

	gotName string
	gotArgs []string
	gotCmd  *osexec.Cmd
}

func (d *runnerDouble) Run(name string, args []string, opts ...command.Option) error {
	d.gotName = name
	d.gotArgs = args
	d.gotCmd = &osexec.Cmd{}
	for _, opt := range opts {
		opt(d.gotCmd)
	}
	if d.gotCmd.Stdout != nil && d.output != "" {
		_, _ = d.gotCmd.Stdout.Write([]byte(d.output))
	}
	return d.err
}

func TestFuncTools_CheckVersion(t *testing.T) {
	testCases := map[string]struct {
		inOutput string
		inErr    error

		wantedErrMsg string
	}{
		"accepts a v4 installation": {
			inOutput: "4.0.5955\n",
		},
		"rejects a v3 installation": {
			inOutput:     "3.0.3904\n",
			wantedErrMsg: "older than the minimum supported version",
		},
		"errors when the binary cannot run": {
			inErr:        errors.New(`exec: "func": executable file not found in $PATH`),
			wantedErrMsg: "azure functions core tools are not available",
		},
		"errors on unparseable output": {
			inOutput:     "not a version",
			wantedErrMsg: "parse Core Tools version",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			double := &runnerDouble{output: tc.inOutput, err: tc.inErr}
			f := FuncTools{runner: double}

			// WHEN
			err := f.CheckVersion()

			// THEN
			if tc.wantedErrMsg != "" {
				require.ErrorContains(t, err, tc.wantedErrMsg)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "func", double.gotName)
			require.Equal(t, []string{"--version"}, double.gotArgs)
		})
	}
}

func TestFuncTools_Publish(t *testing.T) {
	t.Run("publishes with a remote build from the project directory", func(t *testing.T) {
		double := &runnerDouble{}
		f := FuncTools{runner: double}

		err := f.Publish("getraildata", "/project", nil)

		require.NoError(t, err)
		require.Equal(t, "func", double.gotName)
		require.Equal(t, []string{"azure", "functionapp", "publish", "getraildata", "--build", "remote"}, double.gotArgs)
		require.Equal(t, "/project", double.gotCmd.Dir)
	})

	t.Run("passes extra arguments through", func(t *testing.T) {
		double := &runnerDouble{}
		f := FuncTools{runner: double}

		err := f.Publish("getraildata", "/project", []string{"--no-build", "--verbose"})

		require.NoError(t, err)
		require.Equal(t, []string{"azure", "functionapp", "publish", "getraildata", "--build", "remote", "--no-build", "--verbose"}, double.gotArgs)
	})

	t.Run("wraps errors from core tools", func(t *testing.T) {
		double := &runnerDouble{err: errors.New("exit status 1")}
		f := FuncTools{runner: double}

		err := f.Publish("getraildata", "/project", nil)

		require.EqualError(t, err, "publish function project to getraildata: exit status 1")
	})
}
