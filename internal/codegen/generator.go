package codegen

import (
	"fmt"
	"go/format"
	"os"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/KromDaniel/soundnfa/internal/logging"
	"github.com/KromDaniel/soundnfa/pkg/nfa"
)

// TestCase is an expected result baked into the generated test file.
type TestCase struct {
	Input    []string
	Mode     string // "prefix" (default), "longest" or "scan"
	Matched  bool
	Consumed []string
	Captured []int
}

// Config holds the configuration for code generation.
type Config struct {
	Name             string         // Exported variable name of the automaton
	Package          string         // Package of the generated file
	OutputFile       string         // Path of the generated file
	Source           string         // Description the rule came from, for the header
	Automaton        *nfa.Automaton // Compiled rule
	GenerateTestFile bool           // Also write <output>_test.go
	TestCases        []TestCase     // Cases for the generated test file
	Verbose          bool           // Log analysis decisions
}

// Generator writes a Go file that rebuilds a rule automaton from its state
// table at package initialization.
type Generator struct {
	config Config
	file   *jen.File
	logger *logging.Logger
}

// New creates a new generator instance.
func New(config Config) *Generator {
	return &Generator{
		config: config,
		file:   jen.NewFile(config.Package),
		logger: logging.New(config.Verbose),
	}
}

// SetLogger replaces the generator's logger.
func (g *Generator) SetLogger(l *logging.Logger) {
	g.logger = l
}

func (g *Generator) analyzeAndLog() {
	a := g.config.Automaton
	g.logger.Section("Rule Analysis")
	g.logger.Log("Rule: %s", g.config.Name)
	g.logger.Log("States: %d", a.NumStates())
	g.logger.Log("Cyclic: %v", a.Cyclic())

	captures, consuming := 0, 0
	for _, r := range a.Table() {
		switch {
		case r.Consumes:
			consuming++
		case r.Capture:
			captures++
		}
	}
	g.logger.Log("Consuming states: %d", consuming)
	g.logger.Log("Capture groups: %d", captures/2)
}

// Generate generates the Go code and writes it to the output file.
func (g *Generator) Generate() error {
	if g.config.Automaton == nil {
		return fmt.Errorf("no automaton to generate")
	}
	if g.config.Name == "" || g.config.Package == "" || g.config.OutputFile == "" {
		return fmt.Errorf("name, package and output file are required")
	}
	g.analyzeAndLog()
	g.logger.Section("Code Generation")

	header := fmt.Sprintf("Code generated by soundnfa for rule %s. DO NOT EDIT.", g.config.Name)
	if g.config.Source != "" {
		header = fmt.Sprintf("Code generated by soundnfa from %s. DO NOT EDIT.", g.config.Source)
	}
	g.file.HeaderComment(header)

	tableName := TableName(g.config.Name)
	table := g.config.Automaton.Table()
	g.logger.Log("Emitting %s with %d records", tableName, len(table))

	records := make([]jen.Code, 0, len(table))
	for _, r := range table {
		records = append(records, stateRecordLiteral(r))
	}

	g.file.Commentf("%s is the state table of the %s rule. Index 0 is the entry state.", tableName, g.config.Name)
	g.file.Var().Id(tableName).Op("=").Index().Qual(NFAPath, StateRecordName).Custom(multiline, records...)
	g.file.Line()

	g.file.Commentf("%s is the compiled automaton of the %s rule.", g.config.Name, g.config.Name)
	g.file.Var().Id(g.config.Name).Op("=").Qual(NFAPath, MustFromTableName).Call(jen.Id(tableName))

	if err := g.file.Save(g.config.OutputFile); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	if err := formatFile(g.config.OutputFile); err != nil {
		return fmt.Errorf("failed to format file: %w", err)
	}

	if g.config.GenerateTestFile {
		if err := g.generateTestFile(); err != nil {
			return fmt.Errorf("failed to generate test file: %w", err)
		}
	}
	return nil
}

var multiline = jen.Options{Open: "{", Close: "}", Separator: ",", Multi: true}

func stateRecordLiteral(r nfa.StateRecord) jen.Code {
	fields := jen.Dict{}
	if r.Consumes {
		fields[jen.Id("Consumes")] = jen.True()
		fields[jen.Id("Symbol")] = jen.Lit(r.Symbol)
		fields[jen.Id("Next")] = jen.Lit(r.Next)
		return jen.Values(fields)
	}
	if len(r.Epsilon) > 0 {
		fields[jen.Id("Epsilon")] = jen.Index().Int().ValuesFunc(func(grp *jen.Group) {
			for _, t := range r.Epsilon {
				grp.Lit(t)
			}
		})
	}
	if r.Capture {
		fields[jen.Id("Capture")] = jen.True()
	}
	return jen.Values(fields)
}

// TestFileName returns the path of the test file generated next to output.
func TestFileName(output string) string {
	return strings.TrimSuffix(output, ".go") + "_test.go"
}

// generateTestFile writes one subtest per case, each calling the query the
// case names and comparing all three result fields.
func (g *Generator) generateTestFile() error {
	name := g.config.Name
	tf := jen.NewFile(g.config.Package)
	tf.HeaderComment(fmt.Sprintf("Code generated by soundnfa for rule %s. DO NOT EDIT.", name))

	g.logger.Log("Emitting %s with %d cases", TestName(name), len(g.config.TestCases))

	body := make([]jen.Code, 0, len(g.config.TestCases))
	for i, c := range g.config.TestCases {
		method := "MatchPrefix"
		switch c.Mode {
		case "longest":
			method = "LongestPrefix"
		case "scan":
			method = "ScanAll"
		}

		r := jen.Id(ResultName)
		body = append(body, jen.Id("t").Dot("Run").Call(
			jen.Lit(fmt.Sprintf("case %d", i)),
			jen.Func().Params(jen.Id("t").Op("*").Qual("testing", "T")).Block(
				jen.List(r.Clone(), jen.Err()).Op(":=").Id(name).Dot(method).Call(stringSlice(c.Input)),
				jen.If(jen.Err().Op("!=").Nil()).Block(
					jen.Id("t").Dot("Fatalf").Call(jen.Lit("%s: %v"), jen.Lit(method), jen.Err()),
				),
				jen.If(r.Clone().Dot("Matched").Op("!=").Lit(c.Matched)).Block(
					jen.Id("t").Dot("Errorf").Call(jen.Lit("matched = %v, want %v"), r.Clone().Dot("Matched"), jen.Lit(c.Matched)),
				),
				jen.If(jen.Op("!").Qual("slices", "Equal").Call(r.Clone().Dot("Consumed"), stringSlice(c.Consumed))).Block(
					jen.Id("t").Dot("Errorf").Call(jen.Lit("consumed = %v, want %v"), r.Clone().Dot("Consumed"), stringSlice(c.Consumed)),
				),
				jen.If(jen.Op("!").Qual("slices", "Equal").Call(r.Clone().Dot("CapturedIndexes"), intSlice(c.Captured))).Block(
					jen.Id("t").Dot("Errorf").Call(jen.Lit("captured = %v, want %v"), r.Clone().Dot("CapturedIndexes"), intSlice(c.Captured)),
				),
			),
		))
	}

	tf.Func().Id(TestName(name)).Params(jen.Id("t").Op("*").Qual("testing", "T")).Block(body...)

	path := TestFileName(g.config.OutputFile)
	if err := tf.Save(path); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	return formatFile(path)
}

func stringSlice(s []string) jen.Code {
	return jen.Index().String().ValuesFunc(func(grp *jen.Group) {
		for _, v := range s {
			grp.Lit(v)
		}
	})
}

func intSlice(s []int) jen.Code {
	return jen.Index().Int().ValuesFunc(func(grp *jen.Group) {
		for _, v := range s {
			grp.Lit(v)
		}
	})
}

// formatFile reads a file, formats it with go/format, and writes it back.
func formatFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	formatted, err := format.Source(src)
	if err != nil {
		return err
	}

	return os.WriteFile(path, formatted, 0644)
}
