package nfa

import "fmt"

// Mode selects how a split state chooses among its successful alternatives.
type Mode uint8

const (
	// FirstMatch takes the first alternative that succeeds, in the order the
	// epsilon edges were registered. Greedy and lazy operators behave as
	// built.
	FirstMatch Mode = iota

	// LongestMatch tries every alternative and keeps the one that consumes
	// the most symbols. Ties keep the earliest edge.
	LongestMatch
)

func (m Mode) String() string {
	switch m {
	case FirstMatch:
		return "first"
	case LongestMatch:
		return "longest"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// MatchPrefix matches the automaton against a prefix of symbols using
// first-success backtracking.
//
// The search is exhaustive and not memoized: pathological automata can take
// time exponential in the input length.
func (a *Automaton) MatchPrefix(symbols []Symbol) (MatchResult, error) {
	return a.MatchAt(symbols, 0, FirstMatch)
}

// LongestPrefix is like MatchPrefix but prefers the alternative consuming the
// most symbols at every branch point.
func (a *Automaton) LongestPrefix(symbols []Symbol) (MatchResult, error) {
	return a.MatchAt(symbols, 0, LongestMatch)
}

// MatchAt runs an anchored match starting at symbols[start]. Captured indexes
// are positions in symbols, not relative to start.
func (a *Automaton) MatchAt(symbols []Symbol, start int, mode Mode) (MatchResult, error) {
	if len(symbols) == 0 {
		return MatchResult{}, fmt.Errorf("empty symbol sequence: %w", ErrInvalidArgument)
	}
	if start < 0 || start > len(symbols) {
		return MatchResult{}, fmt.Errorf("start %d outside [0, %d]: %w", start, len(symbols), ErrInvalidArgument)
	}
	return a.matchAt(symbols, start, mode), nil
}

func (a *Automaton) matchAt(symbols []Symbol, start int, mode Mode) MatchResult {
	m := matcher{g: a.g, input: symbols, longest: mode == LongestMatch}
	p, ok := m.walk(0, start, 0)
	if !ok {
		return MatchResult{}
	}
	consumed := make([]Symbol, p.end-start)
	copy(consumed, symbols[start:p.end])
	return MatchResult{Matched: true, Consumed: consumed, CapturedIndexes: p.caps}
}

// path is a successful walk: where it stopped and the positions recorded on
// the way back up.
type path struct {
	end  int
	caps []int
}

type matcher struct {
	g       *graph
	input   []Symbol
	longest bool

	// run holds the split states entered since the last consumed symbol.
	// Re-entering one of them means an epsilon-only loop, which can never
	// make progress.
	run []StateID
}

func (m *matcher) walk(id StateID, pos, runStart int) (path, bool) {
	s := &m.g.states[id]
	if s.isFinal() {
		p := path{end: pos}
		if s.capture {
			p.caps = []int{pos}
		}
		return p, true
	}

	switch s.kind {
	case kindConsume:
		if pos >= len(m.input) || m.input[pos] != s.symbol {
			return path{}, false
		}
		return m.walk(s.next, pos+1, len(m.run))

	case kindSplit:
		for _, seen := range m.run[runStart:] {
			if seen == id {
				return path{}, false
			}
		}
		m.run = append(m.run, id)

		var best path
		found := false
		for _, t := range s.epsilon {
			p, ok := m.walk(t, pos, runStart)
			if !ok {
				continue
			}
			if !m.longest {
				best, found = p, true
				break
			}
			if !found || p.end > best.end {
				best, found = p, true
			}
		}
		m.run = m.run[:len(m.run)-1]

		if found && s.capture {
			best.caps = append(best.caps, pos)
		}
		return best, found
	}
	return path{}, false
}
