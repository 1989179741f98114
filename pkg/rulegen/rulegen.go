// Package rulegen turns rule descriptions into Go source.
// It compiles a description's automaton at build time and writes it out as a
// state table, so programs embedding the rule skip the YAML and the builder.
package rulegen

import (
	"fmt"
	"path/filepath"

	"github.com/KromDaniel/soundnfa/internal/codegen"
	"github.com/KromDaniel/soundnfa/internal/describe"
	"github.com/KromDaniel/soundnfa/internal/logging"
)

// Options configures the generation process.
type Options struct {
	// DescriptionFile is the YAML rule description to compile
	DescriptionFile string

	// Name overrides the description's rule name for the generated variable
	Name string

	// OutputFile is the path where generated code will be written
	OutputFile string

	// Package is the Go package name for the generated code. Defaults to the
	// description's package.
	Package string

	// GenerateTestFile writes a test file next to the output checking the
	// description's cases (default: true if the description has cases)
	GenerateTestFile bool

	// NoTestFile suppresses the test file even when the description has cases
	NoTestFile bool

	// Logger receives verbose analysis output. Nil disables it.
	Logger *logging.Logger
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	if o.DescriptionFile == "" {
		return fmt.Errorf("description file cannot be empty")
	}
	if o.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}
	if o.GenerateTestFile && o.NoTestFile {
		return fmt.Errorf("test file both requested and suppressed")
	}
	return nil
}

// Compile generates Go code for the rule described in opts.DescriptionFile.
func Compile(opts Options) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	doc, err := describe.Load(opts.DescriptionFile)
	if err != nil {
		return err
	}

	name := doc.Name
	if opts.Name != "" {
		name = opts.Name
	}
	pkg := doc.Package
	if opts.Package != "" {
		pkg = opts.Package
	}
	if pkg == "" {
		return fmt.Errorf("invalid options: package cannot be empty (set it in %s or pass one)", opts.DescriptionFile)
	}

	a, err := doc.Compile()
	if err != nil {
		return fmt.Errorf("failed to build automaton: %w", err)
	}

	generateTestFile := opts.GenerateTestFile || (len(doc.Cases) > 0 && !opts.NoTestFile)

	cases := make([]codegen.TestCase, 0, len(doc.Cases))
	for _, c := range doc.Cases {
		cases = append(cases, codegen.TestCase{
			Input:    c.Input,
			Mode:     c.Mode,
			Matched:  c.Matched,
			Consumed: c.Consumed,
			Captured: c.Captured,
		})
	}

	g := codegen.New(codegen.Config{
		Name:             name,
		Package:          pkg,
		OutputFile:       opts.OutputFile,
		Source:           filepath.Base(opts.DescriptionFile),
		Automaton:        a,
		GenerateTestFile: generateTestFile,
		TestCases:        cases,
	})
	if opts.Logger != nil {
		g.SetLogger(opts.Logger)
	}

	if err := g.Generate(); err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}
	return nil
}
