package optparse

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dzonerzy/go-optparse/internal/intern"
)

// Registry is the option set of one command. It resolves words to options and
// collects the diagnostics recorded while assigning values.
type Registry struct {
	name        string
	options     []*Option
	longs       map[string]*Option
	shorts      map[rune]*Option
	diagnostics []*Diagnostic
}

// NewRegistry creates an empty option set.
func NewRegistry(name string) *Registry {
	return &Registry{
		name:   name,
		longs:  make(map[string]*Option),
		shorts: make(map[rune]*Option),
	}
}

// Name returns the command name the registry was created for.
func (r *Registry) Name() string { return r.name }

// Declare adds an option. Either long or short may be empty/zero, not both.
func (r *Registry) Declare(long string, short rune, kind Kind) (*Option, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("option %q: unknown kind %q", long, kind)
	}
	if long == "" && short == 0 {
		return nil, errors.New("option must have a long or a short name")
	}
	if strings.HasPrefix(long, "-") || strings.ContainsRune(long, '=') {
		return nil, fmt.Errorf("option %q: name must not start with '-' or contain '='", long)
	}
	if long != "" {
		if _, exists := r.longs[long]; exists {
			return nil, fmt.Errorf("option --%s declared twice", long)
		}
	}
	if short != 0 {
		if err := r.checkShort(short); err != nil {
			return nil, err
		}
	}

	opt := &Option{
		LongName: intern.Intern(long),
		Kind:     kind,
		registry: r,
	}
	if long != "" {
		r.longs[opt.LongName] = opt
	}
	if short != 0 {
		opt.ShortName = short
		r.shorts[short] = opt
	}
	r.options = append(r.options, opt)
	return opt, nil
}

func (r *Registry) mustDeclare(long string, kind Kind) *Option {
	opt, err := r.Declare(long, 0, kind)
	if err != nil {
		panic(err)
	}
	return opt
}

// Bool declares a value-less flag.
func (r *Registry) Bool(long string) *Option { return r.mustDeclare(long, KindBoolean) }

// String declares an option taking a single value.
func (r *Registry) String(long string) *Option { return r.mustDeclare(long, KindSingle) }

// List declares an option whose value is split on its separator.
func (r *Registry) List(long string) *Option { return r.mustDeclare(long, KindList) }

// Property declares an option whose values are key=value pairs.
func (r *Registry) Property(long string) *Option { return r.mustDeclare(long, KindProperty) }

func (r *Registry) checkShort(short rune) error {
	if short == '-' || short == '=' || short == utf8.RuneError {
		return fmt.Errorf("invalid short option name %q", short)
	}
	if _, exists := r.shorts[short]; exists {
		return fmt.Errorf("option -%c declared twice", short)
	}
	return nil
}

func (r *Registry) mustAddShort(short rune, opt *Option) {
	if opt.ShortName == short {
		return
	}
	if err := r.checkShort(short); err != nil {
		panic(err)
	}
	if opt.ShortName != 0 {
		delete(r.shorts, opt.ShortName)
	}
	opt.ShortName = short
	r.shorts[short] = opt
}

// Options returns the declared options in declaration order.
func (r *Registry) Options() []*Option {
	out := make([]*Option, len(r.options))
	copy(out, r.options)
	return out
}

// LongNames returns every declared long name.
func (r *Registry) LongNames() []string {
	names := make([]string, 0, len(r.longs))
	for _, opt := range r.options {
		if opt.LongName != "" {
			names = append(names, opt.LongName)
		}
	}
	return names
}

// FindByName resolves a bare option name. One-character names are tried as
// short aliases first.
func (r *Registry) FindByName(name string) *Option {
	if c, size := utf8.DecodeRuneInString(name); size > 0 && size == len(name) {
		if opt := r.shorts[c]; opt != nil {
			return opt
		}
	}
	return r.longs[name]
}

// Lookup resolves a raw word such as "--name=value" or "-abc" to the option it
// names and records the naming convention on the option. It returns nil when
// the word names no option.
func (r *Registry) Lookup(word string) *Option {
	opt, long := r.match(word)
	if opt != nil {
		opt.usedLongForm = long
	}
	return opt
}

// Names reports whether word names any declared option.
func (r *Registry) Names(word string) bool {
	opt, _ := r.match(word)
	return opt != nil
}

// match is the read-only part of Lookup.
func (r *Registry) match(word string) (opt *Option, long bool) {
	switch {
	case len(word) > 2 && word[0] == '-' && word[1] == '-':
		body := word[2:]
		name := body
		if eq := strings.IndexByte(body, '='); eq >= 0 {
			name = body[:eq]
		}
		if opt := r.longs[name]; opt != nil {
			return opt, true
		}
		return r.matchLongPrefix(body), true
	case len(word) > 1 && word[0] == '-' && word[1] != '-':
		c, _ := utf8.DecodeRuneInString(word[1:])
		if opt := r.shorts[c]; opt != nil {
			return opt, false
		}
	}
	return nil, false
}

// matchLongPrefix finds the list or property option whose long name is the
// longest prefix of body, supporting the "--namevalue" and "--definekey=value"
// forms.
func (r *Registry) matchLongPrefix(body string) *Option {
	var best *Option
	for _, opt := range r.options {
		if opt.LongName == "" || (opt.Kind != KindList && opt.Kind != KindProperty) {
			continue
		}
		if !strings.HasPrefix(body, opt.LongName) {
			continue
		}
		if best == nil || len(opt.LongName) > len(best.LongName) {
			best = opt
		}
	}
	return best
}

// AddDiagnostic appends a diagnostic for later batch reporting.
func (r *Registry) AddDiagnostic(d *Diagnostic) {
	r.diagnostics = append(r.diagnostics, d)
}

// Diagnostics returns the recorded diagnostics in the order they occurred.
func (r *Registry) Diagnostics() []*Diagnostic {
	out := make([]*Diagnostic, len(r.diagnostics))
	copy(out, r.diagnostics)
	return out
}

// HasDiagnostics reports whether any diagnostic was recorded.
func (r *Registry) HasDiagnostics() bool { return len(r.diagnostics) > 0 }

// Err joins every diagnostic into one error, or returns nil.
func (r *Registry) Err() error {
	if len(r.diagnostics) == 0 {
		return nil
	}
	errs := make([]error, len(r.diagnostics))
	for i, d := range r.diagnostics {
		errs[i] = d
	}
	return errors.Join(errs...)
}

// Reset clears all assigned values and diagnostics so the registry can be
// reused for another command line.
func (r *Registry) Reset() {
	for _, opt := range r.options {
		opt.Reset()
	}
	r.diagnostics = r.diagnostics[:0]
}
