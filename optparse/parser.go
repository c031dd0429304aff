package optparse

import (
	"strconv"
	"strings"

	"github.com/dzonerzy/go-optparse/internal/fuzzy"
	"github.com/dzonerzy/go-optparse/internal/pool"
)

var wordPool = pool.NewSlicePool[Word](16)

// Parser walks a whole command line, handing option words to Assign and
// collecting everything else as positional arguments.
type Parser struct {
	registry *Registry
	matcher  *fuzzy.Matcher
}

// Result holds what a Parser found besides option values, which stay on the
// registry's options.
type Result struct {
	Args []string

	registry *Registry
}

// NewParser creates a parser over reg.
func NewParser(reg *Registry) *Parser {
	return &Parser{
		registry: reg,
		matcher:  fuzzy.NewMatcher(2),
	}
}

// MaxDistance sets the edit distance used to suggest option names.
func (p *Parser) MaxDistance(distance int) *Parser {
	p.matcher = fuzzy.NewMatcher(distance)
	return p
}

// ParseArgs parses process-style arguments.
func (p *Parser) ParseArgs(args []string) (*Result, error) {
	words := wordPool.Get()
	defer wordPool.Put(words)
	*words = appendWords(*words, args)
	return p.Parse(NewCursor(*words))
}

// Parse resets the registry and drains cur. Malformed input ends up in the
// registry's diagnostics; the returned error only reports contract violations.
func (p *Parser) Parse(cur Cursor) (*Result, error) {
	p.registry.Reset()
	result := &Result{registry: p.registry}

	terminated := false
	for cur.HasNext() {
		word := cur.Peek()

		if terminated {
			cur.Next()
			result.Args = append(result.Args, word.Text)
			continue
		}
		// "--" ends option processing
		if word.Text == "--" {
			cur.Next()
			terminated = true
			continue
		}

		if opt := p.registry.Lookup(word.Text); opt != nil {
			if err := Assign(cur, opt); err != nil {
				return nil, err
			}
			continue
		}

		cur.Next()
		if len(word.Text) > 1 && word.Text[0] == '-' && !isNumber(word.Text) {
			p.unknownOption(word.Text)
			continue
		}
		result.Args = append(result.Args, word.Text)
	}
	return result, nil
}

// isNumber reports whether word is a negative number such as "-5" or "-0.5".
func isNumber(word string) bool {
	if len(word) < 2 || (word[1] != '.' && (word[1] < '0' || word[1] > '9')) {
		return false
	}
	_, err := strconv.ParseFloat(word, 64)
	return err == nil
}

func (p *Parser) unknownOption(word string) {
	name := strings.TrimLeft(word, "-")
	if eq := strings.IndexByte(name, '='); eq >= 0 {
		name = name[:eq]
	}
	p.registry.AddDiagnostic(&Diagnostic{
		Type:       DiagUnknownOption,
		Message:    "unknown option: " + word,
		Word:       word,
		Suggestion: p.matcher.FindBest(name, p.registry.LongNames()),
	})
}

// Option returns the named option of the parsed registry.
func (r *Result) Option(name string) *Option {
	return r.registry.FindByName(name)
}

// Diagnostics returns what went wrong while parsing.
func (r *Result) Diagnostics() []*Diagnostic {
	return r.registry.Diagnostics()
}

// Err joins the diagnostics into one error, or returns nil.
func (r *Result) Err() error {
	return r.registry.Err()
}
