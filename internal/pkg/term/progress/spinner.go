// Copyright the raildeploy authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package progress provides functionality to display spinner updates to the terminal while
// a long operation is taking place.
package progress

import (
	"fmt"
	"io"
	"time"

	spin "github.com/briandowns/spinner"
)

// Charset of frames for the spinner animation.
var charset = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 125 * time.Millisecond

type startStopper interface {
	Start()
	Stop()
}

// Spinner is an indicator that a long operation is taking place.
type Spinner struct {
	spin startStopper
}

// NewSpinner returns a Spinner that writes its updates to w.
func NewSpinner(w io.Writer) *Spinner {
	s := spin.New(charset, spinnerInterval, spin.WithHiddenCursor(true))
	s.Writer = w
	return &Spinner{
		spin: s,
	}
}

// Start starts the spinner suffixed with a label.
func (s *Spinner) Start(label string) {
	s.suffix(fmt.Sprintf(" %s", label))
	s.spin.Start()
}

// Stop stops the spinner and replaces it with a label.
func (s *Spinner) Stop(label string) {
	s.finalMSG(fmt.Sprintln(label))
	s.spin.Stop()
}

func (s *Spinner) suffix(label string) {
	if spinner, ok := s.spin.(*spin.Spinner); ok {
		spinner.Lock()
		defer spinner.Unlock()
		spinner.Suffix = label
	}
}

func (s *Spinner) finalMSG(label string) {
	if spinner, ok := s.spin.(*spin.Spinner); ok {
		spinner.Lock()
		defer spinner.Unlock()
		spinner.FinalMSG = label
	}
}
