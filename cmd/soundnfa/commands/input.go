package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KromDaniel/soundnfa/internal/describe"
	"github.com/KromDaniel/soundnfa/pkg/nfa"
)

// ruleFlags are shared by every command that loads a description.
type ruleFlags struct {
	file string
}

func (f *ruleFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "rule description (YAML)")
	_ = cmd.MarkFlagRequired("file")
}

func (f *ruleFlags) load() (*describe.Document, *nfa.Automaton, error) {
	doc, err := describe.Load(f.file)
	if err != nil {
		return nil, nil, err
	}
	a, err := doc.Compile()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build %s: %w", doc.Name, err)
	}
	return doc, a, nil
}

// symbolsFromArgs turns arguments into symbols. With chars set every
// argument is split into its characters, so "akit" reads as a, k, i, t.
func symbolsFromArgs(args []string, chars bool) []nfa.Symbol {
	if !chars {
		return args
	}
	var out []nfa.Symbol
	for _, arg := range args {
		for _, r := range arg {
			out = append(out, string(r))
		}
	}
	return out
}

// matchOutput is the JSON shape of a match or scan result.
type matchOutput struct {
	Rule     string       `json:"rule"`
	Input    []nfa.Symbol `json:"input"`
	Matched  bool         `json:"matched"`
	Consumed []nfa.Symbol `json:"consumed"`
	Captured []int        `json:"captured"`
}

func printResult(w io.Writer, rule string, input []nfa.Symbol, r nfa.MatchResult) error {
	if jsonOutput {
		return writeJSON(w, matchOutput{
			Rule:     rule,
			Input:    input,
			Matched:  r.Matched,
			Consumed: nonNil(r.Consumed),
			Captured: nonNil(r.CapturedIndexes),
		})
	}
	if !r.Matched {
		_, err := fmt.Fprintf(w, "%s: no match\n", rule)
		return err
	}
	_, err := fmt.Fprintf(w, "%s: matched [%s] captured %v\n", rule, strings.Join(r.Consumed, " "), nonNil(r.CapturedIndexes))
	return err
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
