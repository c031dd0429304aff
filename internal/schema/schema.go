// Package schema loads option sets declared in HCL files.
//
//	option "tags" {
//	  short     = "t"
//	  kind      = kind.list
//	  separator = ":"
//	}
//
// The kind attribute accepts a plain string or one of the kind.* variables.
package schema

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/dzonerzy/go-optparse/optparse"
)

// hclFile is the top-level structure of a schema file.
type hclFile struct {
	Name    string       `hcl:"name,optional"`
	Options []*hclOption `hcl:"option,block"`
}

type hclOption struct {
	Name        string `hcl:"name,label"`
	Short       string `hcl:"short,optional"`
	Kind        string `hcl:"kind"`
	Multi       bool   `hcl:"multi,optional"`
	Separator   string `hcl:"separator,optional"`
	Description string `hcl:"description,optional"`
}

// Load parses the schema file at path.
func Load(path string) (*optparse.Registry, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse schema %s: %w", path, diags)
	}
	return decode(file, path)
}

// Parse parses schema source; filename is used for the registry name and in
// error messages.
func Parse(src []byte, filename string) (*optparse.Registry, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse schema %s: %w", filename, diags)
	}
	return decode(file, filename)
}

func decode(file *hcl.File, filename string) (*optparse.Registry, error) {
	var parsed hclFile
	if diags := gohcl.DecodeBody(file.Body, evalContext(), &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode schema %s: %w", filename, diags)
	}

	name := parsed.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	reg := optparse.NewRegistry(name)
	for _, block := range parsed.Options {
		if err := declare(reg, block); err != nil {
			return nil, fmt.Errorf("schema %s: %w", filename, err)
		}
	}
	return reg, nil
}

func declare(reg *optparse.Registry, block *hclOption) error {
	short, err := singleRune(block.Short, "short")
	if err != nil {
		return fmt.Errorf("option %q: %w", block.Name, err)
	}
	sep, err := singleRune(block.Separator, "separator")
	if err != nil {
		return fmt.Errorf("option %q: %w", block.Name, err)
	}

	kind := optparse.Kind(strings.ToLower(block.Kind))
	if kind == optparse.KindBoolean && (block.Multi || sep != 0) {
		return fmt.Errorf("option %q: boolean options take no values", block.Name)
	}

	opt, err := reg.Declare(block.Name, short, kind)
	if err != nil {
		return err
	}
	if block.Multi {
		opt.Multi()
	}
	if sep != 0 {
		opt.Separator(sep)
	}
	opt.Describe(block.Description)
	return nil
}

func singleRune(s, attr string) (rune, error) {
	if s == "" {
		return 0, nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%s must be a single character, got %q", attr, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// evalContext exposes kind.boolean, kind.single, kind.list and kind.property.
func evalContext() *hcl.EvalContext {
	kinds := map[string]cty.Value{}
	for _, k := range []optparse.Kind{
		optparse.KindBoolean, optparse.KindSingle, optparse.KindList, optparse.KindProperty,
	} {
		kinds[string(k)] = cty.StringVal(string(k))
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"kind": cty.ObjectVal(kinds),
		},
	}
}
