// Copyright the raildeploy authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package progress

import (
	"strings"
	"testing"
	"time"

	spin "github.com/briandowns/spinner"
	"github.com/getraildata/raildeploy/internal/pkg/term/progress/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestNewSpinner(t *testing.T) {
	t.Run("it should initialize the spin spinner", func(t *testing.T) {
		buf := new(strings.Builder)
		got := NewSpinner(buf)

		v, ok := got.spin.(*spin.Spinner)
		require.True(t, ok)

		require.Equal(t, buf, v.Writer)
		require.Equal(t, 125*time.Millisecond, v.Delay)
	})
}

func TestSpinner_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockSpinner := mocks.NewMockstartStopper(ctrl)

	s := &Spinner{
		spin: mockSpinner,
	}

	mockSpinner.EXPECT().Start()

	s.Start("start")
}

func TestSpinner_Stop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockSpinner := mocks.NewMockstartStopper(ctrl)
	s := &Spinner{
		spin: mockSpinner,
	}
	mockSpinner.EXPECT().Stop()

	// WHEN
	s.Stop("stop")
}
