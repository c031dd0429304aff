package optparse

import "strings"

// Kind is the value arity of an option.
type Kind string

const (
	KindBoolean  Kind = "boolean"
	KindSingle   Kind = "single"
	KindList     Kind = "list"
	KindProperty Kind = "property"
)

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindBoolean, KindSingle, KindList, KindProperty:
		return true
	default:
		return false
	}
}

// DefaultSeparator splits list values when no separator is configured.
const DefaultSeparator = ','

// Option is the declared shape of one command-line option together with the
// values assigned to it during a parse.
type Option struct {
	LongName    string
	ShortName   rune // 0 when the option has no short alias
	Kind        Kind
	Description string

	multi     bool
	separator rune

	usedLongForm      bool
	values            []string
	properties        map[string]string
	propertyKeys      []string // insertion order of properties
	endsWithSeparator bool

	// non-owning; the registry outlives all of its options
	registry *Registry
}

// Short sets the one-character alias of the option.
func (o *Option) Short(r rune) *Option {
	o.registry.mustAddShort(r, o)
	return o
}

// Multi marks the option as accepting several values across words.
func (o *Option) Multi() *Option {
	o.multi = true
	return o
}

// Separator sets the character used to split inline lists.
func (o *Option) Separator(r rune) *Option {
	o.separator = r
	return o
}

// Describe sets the option description shown by reporting tools.
func (o *Option) Describe(description string) *Option {
	o.Description = description
	return o
}

// Back returns the registry the option belongs to, for chaining declarations.
func (o *Option) Back() *Registry {
	return o.registry
}

// HasValue reports whether the option needs a value after its name.
func (o *Option) HasValue() bool {
	return o.Kind != KindBoolean
}

// HasMultipleValues reports whether the option collects more than one value.
func (o *Option) HasMultipleValues() bool {
	if o.Kind == KindBoolean {
		return false
	}
	return o.Kind == KindList || o.multi
}

// IsMulti reports whether Multi was set on the option.
func (o *Option) IsMulti() bool { return o.multi }

// IsProperty reports whether values are key=value pairs.
func (o *Option) IsProperty() bool {
	return o.Kind == KindProperty
}

// ValueSeparator returns the configured list separator.
func (o *Option) ValueSeparator() rune {
	if o.separator == 0 {
		return DefaultSeparator
	}
	return o.separator
}

// UsedLongForm reports whether the option was last named with its long form.
func (o *Option) UsedLongForm() bool { return o.usedLongForm }

// SetUsedLongForm records which naming convention resolved the option.
func (o *Option) SetUsedLongForm(long bool) { o.usedLongForm = long }

// Values returns a copy of the assigned values in insertion order.
func (o *Option) Values() []string {
	out := make([]string, len(o.values))
	copy(out, o.values)
	return out
}

// Value returns the first assigned value.
func (o *Option) Value() (string, bool) {
	if len(o.values) == 0 {
		return "", false
	}
	return o.values[0], true
}

// Properties returns a copy of the assigned properties.
func (o *Option) Properties() map[string]string {
	out := make(map[string]string, len(o.properties))
	for k, v := range o.properties {
		out[k] = v
	}
	return out
}

// PropertyKeys returns property names in the order they were first assigned.
func (o *Option) PropertyKeys() []string {
	out := make([]string, len(o.propertyKeys))
	copy(out, o.propertyKeys)
	return out
}

// EndsWithSeparator reports whether the last inline list ended with the
// separator, meaning more values are expected in a following word.
func (o *Option) EndsWithSeparator() bool { return o.endsWithSeparator }

// IsSet reports whether any value or property was assigned.
func (o *Option) IsSet() bool {
	return len(o.values) > 0 || len(o.properties) > 0
}

// DisplayName returns the option as a user would type it.
func (o *Option) DisplayName() string {
	if o.LongName != "" {
		return "--" + o.LongName
	}
	return "-" + string(o.ShortName)
}

// Reset clears everything assigned during a parse.
func (o *Option) Reset() {
	o.values = o.values[:0]
	o.properties = nil
	o.propertyKeys = o.propertyKeys[:0]
	o.endsWithSeparator = false
	o.usedLongForm = false
}

func (o *Option) String() string {
	var b strings.Builder
	b.WriteString(o.DisplayName())
	if o.LongName != "" && o.ShortName != 0 {
		b.WriteString(", -")
		b.WriteRune(o.ShortName)
	}
	b.WriteString(" (")
	b.WriteString(string(o.Kind))
	if o.multi {
		b.WriteString(", multi")
	}
	b.WriteString(")")
	return b.String()
}

func (o *Option) addValue(v string) {
	o.values = append(o.values, v)
}

func (o *Option) addProperty(key, value string) {
	if o.properties == nil {
		o.properties = make(map[string]string)
	}
	if _, ok := o.properties[key]; !ok {
		o.propertyKeys = append(o.propertyKeys, key)
	}
	o.properties[key] = value
}

// assigned counts stored values and properties.
func (o *Option) assigned() int {
	return len(o.values) + len(o.properties)
}
