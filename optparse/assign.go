package optparse

import (
	"fmt"
	"strings"

	"github.com/dzonerzy/go-optparse/internal/intern"
)

// parseStatus is the state of one assignment attempt.
type parseStatus int

const (
	statusIdle        parseStatus = iota // no value pending
	statusNameMatched                    // name consumed, value decision pending
	statusCollecting                     // following words are values
)

// assigner carries one Assign call. It is discarded when Assign returns, so no
// status leaks between calls.
type assigner struct {
	opt  *Option
	reg  *Registry
	word string // raw text of the word being dispatched
}

// Assign consumes the word under the cursor, which must name opt, and as many
// following words as belong to opt. Malformed input is recorded on the
// option's registry. A word naming any registered option, or the "--"
// terminator, ends the assignment and is left on the cursor for the caller.
//
// The returned error is always an *AssertionError and signals a programming
// mistake, never bad user input.
func Assign(cur Cursor, opt *Option) error {
	if opt == nil {
		return assertf("nil option")
	}
	if opt.registry == nil {
		return assertf("option %s is not part of a registry", opt.DisplayName())
	}
	if cur == nil || !cur.HasNext() {
		return assertf("no word to assign to %s", opt.DisplayName())
	}
	first := cur.Peek()
	named, long := opt.registry.match(first.Text)
	if named != opt {
		return assertf("word %q does not name %s", first.Text, opt.DisplayName())
	}
	opt.usedLongForm = long
	cur.Next()

	a := assigner{opt: opt, reg: opt.registry}
	before := opt.assigned()

	status := a.dispatch(statusIdle, first)
	multi := opt.HasMultipleValues()
	for cur.HasNext() && (multi || status == statusCollecting) {
		if next := cur.Peek().Text; next == "--" || a.reg.Names(next) {
			break
		}
		word := cur.Next()
		// words after the first never carry the option name
		if status == statusIdle {
			status = statusCollecting
		}
		status = a.dispatch(status, word)
	}

	if status == statusCollecting && opt.assigned() == before {
		a.report(DiagMissingValue, first.Text, "option %s requires a value", opt.DisplayName())
	}
	return nil
}

func (a *assigner) dispatch(status parseStatus, word Word) parseStatus {
	a.word = word.Text
	switch status {
	case statusCollecting:
		if a.opt.IsProperty() {
			return a.processProperty(word.Text, "")
		}
		return a.addValue(word.Text)
	case statusIdle:
		return a.resolveName(word.Text)
	case statusNameMatched:
		return status
	default:
		panic(assertf("unknown parse status %d", status))
	}
}

// resolveName decides between an exact name, a name with inline content and
// a bare flag.
func (a *assigner) resolveName(raw string) parseStatus {
	prefix, name := 1, string(a.opt.ShortName)
	if a.opt.usedLongForm {
		prefix, name = 2, a.opt.LongName
	}
	if len(raw) < prefix {
		return statusIdle
	}

	var status parseStatus
	switch {
	case len(raw)-prefix != len(name):
		status = a.processInline(raw[prefix:], name)
	case a.opt.Kind == KindBoolean:
		a.opt.addValue("true")
		return statusIdle
	default:
		status = statusNameMatched
	}

	if status == statusNameMatched {
		if a.opt.HasValue() {
			return statusCollecting
		}
		return statusIdle
	}
	return status
}

// processInline handles the text following the prefix when it is longer than
// the option name.
func (a *assigner) processInline(remainder, name string) parseStatus {
	if a.opt.IsProperty() {
		// --define=key=value
		if pair, ok := strings.CutPrefix(remainder, name+"="); ok && strings.Contains(pair, "=") {
			return a.processProperty(pair, "")
		}
		return a.processProperty(remainder, name)
	}
	// The invalid-operator reports below are not reachable through Assign:
	// match only accepts words that start with the option's name, long-prefix
	// words are lists or properties, and text after a short name is a value or
	// a group.
	rest, ok := strings.CutPrefix(remainder, name)
	if !ok {
		a.report(DiagInvalidOperator, a.word, "option %s must be followed by a valid operator", a.opt.DisplayName())
		return statusIdle
	}
	if a.opt.Kind == KindList {
		return a.processList(rest)
	}

	if !strings.Contains(rest, "=") {
		if rest != "" && !a.opt.usedLongForm {
			if a.opt.HasValue() {
				// -nvalue
				return a.addValue(rest)
			}
			a.opt.addValue("true")
			a.processGroup(rest)
			return statusIdle
		}
		a.report(DiagInvalidOperator, a.word, "option %s must be followed by a valid operator", a.opt.DisplayName())
		return statusIdle
	}

	_, value, _ := strings.Cut(remainder, "=")
	return a.addValue(value)
}

// processGroup resolves grouped short flags such as the "bc" of "-abc".
func (a *assigner) processGroup(group string) {
	for _, c := range group {
		name := intern.Rune(c)
		sibling := a.reg.FindByName(name)
		switch {
		case sibling == nil:
			a.report(DiagUnknownGroupedOption, "-"+name, "option -%s was not found", name)
		case sibling.HasValue():
			a.report(DiagGroupedNeedsValue, "-"+name,
				"option -%s can not be grouped with other options since it needs a value", name)
		default:
			sibling.usedLongForm = false
			sibling.addValue("true")
		}
	}
}

// addValue stores text as one value or, for multi-valued options, as the
// separator-split pieces of text.
func (a *assigner) addValue(text string) parseStatus {
	if a.opt.HasMultipleValues() {
		if strings.ContainsRune(text, a.opt.ValueSeparator()) {
			a.appendSplit(text)
			return statusIdle
		}
		a.opt.addValue(text)
		return statusCollecting
	}
	a.opt.addValue(text)
	return statusIdle
}

// processList handles the inline part of a list option. Without a leading '='
// nothing is assigned; a following word supplies the values instead.
func (a *assigner) processList(rest string) parseStatus {
	if len(rest) <= 1 || rest[0] != '=' {
		return statusIdle
	}
	value := rest[1:]
	if strings.ContainsRune(value, a.opt.ValueSeparator()) {
		a.appendSplit(value)
	} else {
		a.opt.addValue(value)
	}
	return statusIdle
}

// appendSplit appends the trimmed pieces of text. Trailing empty pieces are
// dropped and a trailing separator leaves the list open.
func (a *assigner) appendSplit(text string) {
	sep := string(a.opt.ValueSeparator())
	pieces := strings.Split(text, sep)
	for len(pieces) > 0 && pieces[len(pieces)-1] == "" {
		pieces = pieces[:len(pieces)-1]
	}
	for _, piece := range pieces {
		a.opt.addValue(strings.TrimSpace(piece))
	}
	if strings.HasSuffix(text, sep) {
		a.opt.endsWithSeparator = true
	}
}

// processProperty stores the key=value pair found after name in raw.
func (a *assigner) processProperty(raw, name string) parseStatus {
	eq := strings.IndexByte(raw, '=')
	if len(raw) < 1+len(name) || eq < 0 || eq <= len(name) || !strings.HasPrefix(raw, name) {
		a.report(DiagMalformedProperty, a.word, "option %s must be part of a property", a.opt.DisplayName())
		return statusIdle
	}
	key, value := raw[len(name):eq], raw[eq+1:]
	if value == "" {
		a.report(DiagEmptyPropertyValue, a.word, "option %s must have a value", a.opt.DisplayName())
		return statusIdle
	}
	a.opt.addProperty(key, value)
	return statusIdle
}

func (a *assigner) report(typ DiagnosticType, word, format string, args ...any) {
	a.reg.AddDiagnostic(&Diagnostic{
		Type:    typ,
		Message: fmt.Sprintf(format, args...),
		Option:  a.opt.DisplayName(),
		Word:    word,
	})
}
