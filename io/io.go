// Package optio binds the optparse tools to their standard streams and
// decides whether output may be coloured.
package optio

import (
	stdio "io"
	"os"
)

// IOManager centralizes the streams a command writes to.
type IOManager struct {
	in  stdio.Reader
	out stdio.Writer
	err stdio.Writer

	forceColor bool
	noColor    bool
}

// New returns a manager bound to process stdio.
func New() *IOManager {
	return &IOManager{in: os.Stdin, out: os.Stdout, err: os.Stderr}
}

// WithIn sets the input reader and returns the manager for chaining.
func (m *IOManager) WithIn(r stdio.Reader) *IOManager { m.in = r; return m }

// WithOut sets the standard output writer and returns the manager for chaining.
func (m *IOManager) WithOut(w stdio.Writer) *IOManager { m.out = w; return m }

// WithErr sets the standard error writer and returns the manager for chaining.
func (m *IOManager) WithErr(w stdio.Writer) *IOManager { m.err = w; return m }

// ForceColor turns colour on regardless of the environment.
func (m *IOManager) ForceColor() *IOManager { m.forceColor = true; m.noColor = false; return m }

// NoColor turns colour off regardless of the environment.
func (m *IOManager) NoColor() *IOManager { m.noColor = true; m.forceColor = false; return m }

// In returns the configured input reader.
func (m *IOManager) In() stdio.Reader { return m.in }

// Out returns the configured standard output writer.
func (m *IOManager) Out() stdio.Writer { return m.out }

// Err returns the configured standard error writer.
func (m *IOManager) Err() stdio.Writer { return m.err }

// SupportsColor reports whether ANSI colour codes should be written.
// NO_COLOR and FORCE_COLOR are honoured before terminal detection.
func (m *IOManager) SupportsColor() bool {
	if m.noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	if m.forceColor || os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if !isTerminal(m.out) {
		return false
	}
	term := os.Getenv("TERM")
	return term != "" && term != "dumb"
}

// Colorize wraps s in the given SGR code when colour is supported.
func (m *IOManager) Colorize(s, code string) string {
	if !m.SupportsColor() {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

// Bold returns s in bold when colour is supported.
func (m *IOManager) Bold(s string) string { return m.Colorize(s, "1") }

func isTerminal(w stdio.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
