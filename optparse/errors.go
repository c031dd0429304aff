package optparse

import (
	"errors"
	"fmt"
	"strings"
)

// DiagnosticType categorizes malformed input found while assigning values.
type DiagnosticType string

const (
	DiagGroupedNeedsValue    DiagnosticType = "grouped_needs_value"
	DiagUnknownGroupedOption DiagnosticType = "unknown_grouped_option"
	DiagInvalidOperator      DiagnosticType = "invalid_operator"
	DiagMalformedProperty    DiagnosticType = "malformed_property"
	DiagEmptyPropertyValue   DiagnosticType = "empty_property_value"
	DiagMissingValue         DiagnosticType = "missing_value"
	DiagUnknownOption        DiagnosticType = "unknown_option"
)

// Diagnostic is a non-fatal parse error collected on the registry.
type Diagnostic struct {
	Type       DiagnosticType `json:"type"`
	Message    string         `json:"message"`
	Option     string         `json:"option,omitempty"`     // display name of the option concerned
	Word       string         `json:"word"`                 // offending input text
	Suggestion string         `json:"suggestion,omitempty"` // closest known option name, if any
}

func (d *Diagnostic) Error() string {
	return d.Message
}

// ErrAssertion matches every AssertionError with errors.Is.
var ErrAssertion = errors.New("optparse: assertion failed")

// AssertionError reports a broken calling contract, such as assigning an
// option the cursor does not point at. It is never caused by user input.
type AssertionError struct {
	Message string
}

func (e *AssertionError) Error() string {
	return "optparse: " + e.Message
}

func (e *AssertionError) Is(target error) bool {
	return target == ErrAssertion
}

func assertf(format string, args ...any) *AssertionError {
	return &AssertionError{Message: fmt.Sprintf(format, args...)}
}

// Reporter formats a registry's diagnostics for the end user.
type Reporter struct {
	suggest bool
	prefix  string
}

// NewReporter creates a reporter with suggestions disabled.
func NewReporter() *Reporter {
	return &Reporter{prefix: "Error: "}
}

// Suggest enables or disables "Did you mean" hints.
func (r *Reporter) Suggest(enabled bool) *Reporter {
	r.suggest = enabled
	return r
}

// Prefix sets the text written before every diagnostic message.
func (r *Reporter) Prefix(prefix string) *Reporter {
	r.prefix = prefix
	return r
}

// Lines returns one entry per diagnostic, with the suggestion appended on a
// second indented line when enabled.
func (r *Reporter) Lines(reg *Registry) []string {
	lines := make([]string, 0, len(reg.diagnostics))
	for _, d := range reg.diagnostics {
		lines = append(lines, r.format(d))
	}
	return lines
}

// Format renders all diagnostics as a single block of text.
func (r *Reporter) Format(reg *Registry) string {
	return strings.Join(r.Lines(reg), "\n")
}

func (r *Reporter) format(d *Diagnostic) string {
	var b strings.Builder
	b.WriteString(r.prefix)
	b.WriteString(d.Message)
	if r.suggest && d.Suggestion != "" {
		fmt.Fprintf(&b, "\n  Did you mean '--%s'?", d.Suggestion)
	}
	return b.String()
}
