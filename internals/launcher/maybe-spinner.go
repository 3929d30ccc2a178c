package launcher

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// MaybeSpinner is a spinner that can also just log text
type MaybeSpinner struct {
	Spin    bool
	Spinner *spinner.Spinner
	out     io.Writer
	last    string
}

// Start might start the spinner
func (m *MaybeSpinner) Start(msg string) {
	m.last = msg
	m.Spinner.Suffix = " " + msg
	if m.Spin {
		m.Spinner.Start()
		return
	}
	fmt.Fprintln(m.out, "│ "+msg)
}

// Stop will stop the spinner
func (m *MaybeSpinner) Stop() {
	if m.Spin {
		m.Spinner.Stop()
	}
}

// Update will update the spinner text. Without a spinner only changed
// texts are printed
func (m *MaybeSpinner) Update(t string) {
	if m.last == t {
		return
	}
	m.last = t
	m.Spinner.Lock()
	m.Spinner.Suffix = " " + t
	m.Spinner.Unlock()

	if !m.Spin {
		fmt.Fprintln(m.out, "│ "+t)
	}
}

// newMaybeSpinner will return a new MaybeSpinner writing to out
func newMaybeSpinner(spin bool, out io.Writer) *MaybeSpinner {
	s := &MaybeSpinner{
		Spin:    spin,
		Spinner: spinner.New(spinner.CharSets[9], 300*time.Millisecond, spinner.WithWriter(out)),
		out:     out,
	}
	s.Spinner.Prefix = "│ "
	return s
}
