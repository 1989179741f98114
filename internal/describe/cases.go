package describe

import (
	"fmt"
	"slices"

	"github.com/KromDaniel/soundnfa/pkg/nfa"
)

// Case modes.
const (
	ModePrefix  = "prefix"
	ModeLongest = "longest"
	ModeScan    = "scan"
)

// Case is an expected query result recorded next to a rule.
type Case struct {
	Input    []string `yaml:"input" validate:"min=1,dive,min=1"`
	Mode     string   `yaml:"mode,omitempty" validate:"omitempty,oneof=prefix longest scan"`
	Matched  bool     `yaml:"matched"`
	Consumed []string `yaml:"consumed,omitempty"`
	Captured []int    `yaml:"captured,omitempty"`
}

// Run executes the case's query against a.
func (c Case) Run(a *nfa.Automaton) (nfa.MatchResult, error) {
	switch c.Mode {
	case "", ModePrefix:
		return a.MatchPrefix(c.Input)
	case ModeLongest:
		return a.LongestPrefix(c.Input)
	case ModeScan:
		return a.ScanAll(c.Input)
	default:
		return nfa.MatchResult{}, fmt.Errorf("unknown mode %q: %w", c.Mode, nfa.ErrInvalidArgument)
	}
}

// Check compares a result with the expectation and describes the first
// difference.
func (c Case) Check(r nfa.MatchResult) error {
	if r.Matched != c.Matched {
		return fmt.Errorf("matched = %v, want %v", r.Matched, c.Matched)
	}
	if !slices.Equal(r.Consumed, c.Consumed) {
		return fmt.Errorf("consumed = %v, want %v", r.Consumed, c.Consumed)
	}
	if !slices.Equal(r.CapturedIndexes, c.Captured) {
		return fmt.Errorf("captured = %v, want %v", r.CapturedIndexes, c.Captured)
	}
	return nil
}

// CaseResult is the outcome of one case.
type CaseResult struct {
	Index  int
	Case   Case
	Result nfa.MatchResult
	Err    error
}

// Passed reports whether the case ran and matched its expectation.
func (r CaseResult) Passed() bool {
	return r.Err == nil
}

// RunCases compiles the document and runs every case.
func (d *Document) RunCases() ([]CaseResult, error) {
	a, err := d.Compile()
	if err != nil {
		return nil, err
	}
	out := make([]CaseResult, 0, len(d.Cases))
	for i, c := range d.Cases {
		res := CaseResult{Index: i, Case: c}
		res.Result, res.Err = c.Run(a)
		if res.Err == nil {
			res.Err = c.Check(res.Result)
		}
		out = append(out, res)
	}
	return out, nil
}
