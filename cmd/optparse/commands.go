package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	optio "github.com/dzonerzy/go-optparse/io"
	"github.com/dzonerzy/go-optparse/internal/schema"
	"github.com/dzonerzy/go-optparse/optparse"
)

// Exit codes
const (
	exitDiagnostics = 1
	exitUsage       = 2
)

// exitError carries the process exit code for a failed command. reported is
// set once the failure has already been written to the user.
type exitError struct {
	code     int
	err      error
	reported bool
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func usageError(err error) error {
	return &exitError{code: exitUsage, err: err}
}

// exitStatus maps err to an exit code and tells whether it was already shown.
func exitStatus(err error) (int, bool) {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code, ee.reported
	}
	return exitDiagnostics, false
}

type rootOptions struct {
	noColor bool
}

func newRootCmd(streams *optio.IOManager) *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "optparse",
		Short:         "Assign command-line words to declared options",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if opts.noColor {
				streams.NoColor()
			}
		},
	}
	root.SetIn(streams.In())
	root.SetOut(streams.Out())
	root.SetErr(streams.Err())
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable coloured output")

	root.AddCommand(newParseCmd(streams), newCheckCmd(streams))
	return root
}

// declarations collects options declared through repeatable flags. Each value
// is "name" or "name/s" where s is the one-character short alias.
type declarations struct {
	bools      []string
	singles    []string
	lists      []string
	multis     []string
	properties []string
	separator  string
}

func (d *declarations) bind(fs *pflag.FlagSet) {
	fs.StringArrayVar(&d.bools, "bool", nil, "declare a boolean option (name or name/s)")
	fs.StringArrayVar(&d.singles, "single", nil, "declare a single-valued option")
	fs.StringArrayVar(&d.lists, "list", nil, "declare a list option")
	fs.StringArrayVar(&d.multis, "multi", nil, "declare a single-valued option that accepts many values")
	fs.StringArrayVar(&d.properties, "property", nil, "declare a key=value property option")
	fs.StringVar(&d.separator, "separator", "", "value separator for list and multi options")
}

func (d *declarations) empty() bool {
	return len(d.bools)+len(d.singles)+len(d.lists)+len(d.multis)+len(d.properties) == 0
}

// apply declares every collected option on reg.
func (d *declarations) apply(reg *optparse.Registry) error {
	var sep rune
	if d.separator != "" {
		if utf8.RuneCountInString(d.separator) != 1 {
			return fmt.Errorf("separator must be a single character, got %q", d.separator)
		}
		sep, _ = utf8.DecodeRuneInString(d.separator)
	}

	groups := []struct {
		kind  optparse.Kind
		multi bool
		decls []string
	}{
		{optparse.KindBoolean, false, d.bools},
		{optparse.KindSingle, false, d.singles},
		{optparse.KindList, false, d.lists},
		{optparse.KindSingle, true, d.multis},
		{optparse.KindProperty, false, d.properties},
	}
	for _, g := range groups {
		for _, decl := range g.decls {
			long, short, err := splitDeclaration(decl)
			if err != nil {
				return err
			}
			opt, err := reg.Declare(long, short, g.kind)
			if err != nil {
				return err
			}
			if g.multi {
				opt.Multi()
			}
			if sep != 0 && opt.HasMultipleValues() {
				opt.Separator(sep)
			}
		}
	}
	return nil
}

func splitDeclaration(decl string) (string, rune, error) {
	long, short, found := strings.Cut(decl, "/")
	if !found {
		return long, 0, nil
	}
	if utf8.RuneCountInString(short) != 1 {
		return "", 0, fmt.Errorf("invalid declaration %q: short name must be a single character", decl)
	}
	r, _ := utf8.DecodeRuneInString(short)
	return long, r, nil
}

type parseOptions struct {
	decls      declarations
	schemaPath string
	json       bool
	suggest    bool
}

func newParseCmd(streams *optio.IOManager) *cobra.Command {
	opts := &parseOptions{}
	cmd := &cobra.Command{
		Use:   "parse [declarations] -- words...",
		Short: "Assign words to declared options and print the outcome",
		Example: `  optparse parse --bool verbose/v --list tags/t -- -v --tags=a,b, c file
  optparse parse --schema build.hcl --json -- -DDEBUG=1 main.c`,
		RunE: func(_ *cobra.Command, args []string) error {
			return runParse(streams, opts, args)
		},
	}
	opts.decls.bind(cmd.Flags())
	cmd.Flags().StringVar(&opts.schemaPath, "schema", "", "load declarations from an HCL schema file")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the outcome as JSON")
	cmd.Flags().BoolVar(&opts.suggest, "suggest", true, "suggest option names for unknown options")
	return cmd
}

func runParse(streams *optio.IOManager, opts *parseOptions, words []string) error {
	reg, err := buildRegistry(opts)
	if err != nil {
		return usageError(err)
	}

	res, err := optparse.NewParser(reg).ParseArgs(words)
	if err != nil {
		return err
	}

	if opts.json {
		err = writeJSON(streams, reg, res)
	} else {
		writeText(streams, reg, res, opts.suggest)
	}
	if err != nil {
		return err
	}

	if res.Err() != nil {
		return &exitError{code: exitDiagnostics, err: res.Err(), reported: true}
	}
	return nil
}

func buildRegistry(opts *parseOptions) (*optparse.Registry, error) {
	var reg *optparse.Registry
	if opts.schemaPath != "" {
		loaded, err := schema.Load(opts.schemaPath)
		if err != nil {
			return nil, err
		}
		reg = loaded
	} else {
		if opts.decls.empty() {
			return nil, errors.New("no options declared: use --schema or the declaration flags")
		}
		reg = optparse.NewRegistry("optparse")
	}
	if err := opts.decls.apply(reg); err != nil {
		return nil, fmt.Errorf("failed to declare options: %w", err)
	}
	return reg, nil
}

func writeText(streams *optio.IOManager, reg *optparse.Registry, res *optparse.Result, suggest bool) {
	out := optio.NewLogger(streams).WithFormat(optio.LogFormatPlain)
	for _, opt := range reg.Options() {
		if !opt.IsSet() {
			continue
		}
		line := opt.DisplayName() + " = " + formatValue(opt)
		if opt.EndsWithSeparator() {
			line += " (open)"
		}
		out.Info("%s", line)
	}
	if len(res.Args) > 0 {
		out.Info("args = %v", res.Args)
	}

	log := optio.NewLogger(streams)
	for _, line := range optparse.NewReporter().Prefix("").Suggest(suggest).Lines(reg) {
		log.Error("%s", line)
	}
}

func formatValue(opt *optparse.Option) string {
	if !opt.IsProperty() {
		return fmt.Sprintf("%v", opt.Values())
	}
	props := opt.Properties()
	pairs := make([]string, 0, len(props))
	for _, key := range opt.PropertyKeys() {
		pairs = append(pairs, key+"="+props[key])
	}
	return "{" + strings.Join(pairs, " ") + "}"
}

type jsonOption struct {
	Name       string            `json:"name"`
	Kind       optparse.Kind     `json:"kind"`
	Values     []string          `json:"values,omitempty"`
	Properties map[string]string `json:"properties,omitempty"`
	Open       bool              `json:"open,omitempty"`
}

type jsonReport struct {
	Options     []jsonOption           `json:"options"`
	Args        []string               `json:"args"`
	Diagnostics []*optparse.Diagnostic `json:"diagnostics"`
}

func writeJSON(streams *optio.IOManager, reg *optparse.Registry, res *optparse.Result) error {
	report := jsonReport{
		Options:     []jsonOption{},
		Args:        append([]string{}, res.Args...),
		Diagnostics: append([]*optparse.Diagnostic{}, res.Diagnostics()...),
	}
	for _, opt := range reg.Options() {
		if !opt.IsSet() {
			continue
		}
		entry := jsonOption{Name: opt.DisplayName(), Kind: opt.Kind, Open: opt.EndsWithSeparator()}
		if opt.IsProperty() {
			entry.Properties = opt.Properties()
		} else {
			entry.Values = opt.Values()
		}
		report.Options = append(report.Options, entry)
	}

	enc := json.NewEncoder(streams.Out())
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func newCheckCmd(streams *optio.IOManager) *cobra.Command {
	return &cobra.Command{
		Use:   "check <schema.hcl>",
		Short: "Validate an option schema and list what it declares",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			reg, err := schema.Load(args[0])
			if err != nil {
				return usageError(err)
			}

			out := optio.NewLogger(streams).WithFormat(optio.LogFormatPlain)
			for _, opt := range reg.Options() {
				if opt.Description != "" {
					out.Info("%s\t%s", opt, opt.Description)
					continue
				}
				out.Info("%s", opt)
			}
			optio.NewLogger(streams).Success("%s declares %d options", reg.Name(), len(reg.Options()))
			return nil
		},
	}
}
