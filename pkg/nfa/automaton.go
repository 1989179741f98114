package nfa

import "fmt"

// Automaton is a finished, immutable automaton. The entry state is always 0.
// All query methods are safe for concurrent use.
type Automaton struct {
	g      *graph
	cyclic bool
}

func newAutomaton(src *graph, entry StateID) *Automaton {
	g := &graph{}
	g.copyFrom(src, entry)
	return &Automaton{g: g, cyclic: g.hasCycle(0)}
}

// NumStates returns the number of states in the automaton.
func (a *Automaton) NumStates() int {
	return len(a.g.states)
}

// Cyclic reports whether the automaton contains a loop, in which case it
// accepts infinitely many sequences.
func (a *Automaton) Cyclic() bool {
	return a.cyclic
}

// StateRecord is the flat form of one state. Consuming records use Symbol and
// Next; split records use Epsilon and Capture.
type StateRecord struct {
	Consumes bool
	Symbol   Symbol
	Next     int
	Epsilon  []int
	Capture  bool
}

// Table exports the automaton as a state table whose index 0 is the entry.
func (a *Automaton) Table() []StateRecord {
	out := make([]StateRecord, len(a.g.states))
	for i, s := range a.g.states {
		if s.kind == kindConsume {
			out[i] = StateRecord{Consumes: true, Symbol: s.symbol, Next: int(s.next)}
			continue
		}
		r := StateRecord{Capture: s.capture}
		if len(s.epsilon) > 0 {
			r.Epsilon = make([]int, len(s.epsilon))
			for j, t := range s.epsilon {
				r.Epsilon[j] = int(t)
			}
		}
		out[i] = r
	}
	return out
}

// FromTable rebuilds an automaton from a state table produced by Table.
func FromTable(records []StateRecord) (*Automaton, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("empty state table: %w", ErrInvalidArgument)
	}
	inRange := func(i int) bool { return i >= 0 && i < len(records) }

	g := &graph{states: make([]state, len(records))}
	for i, r := range records {
		if r.Consumes {
			if len(r.Epsilon) > 0 || r.Capture {
				return nil, fmt.Errorf("state %d: consuming state with split fields: %w", i, ErrInvalidArgument)
			}
			if !inRange(r.Next) {
				return nil, fmt.Errorf("state %d: next %d out of range: %w", i, r.Next, ErrInvalidArgument)
			}
			g.states[i] = state{kind: kindConsume, symbol: r.Symbol, next: StateID(r.Next)}
			continue
		}
		s := state{kind: kindSplit, capture: r.Capture}
		for _, t := range r.Epsilon {
			if !inRange(t) {
				return nil, fmt.Errorf("state %d: epsilon target %d out of range: %w", i, t, ErrInvalidArgument)
			}
			s.epsilon = append(s.epsilon, StateID(t))
		}
		g.states[i] = s
	}
	return &Automaton{g: g, cyclic: g.hasCycle(0)}, nil
}

// MustFromTable is like FromTable but panics on error. It is meant for
// generated package-level variables.
func MustFromTable(records []StateRecord) *Automaton {
	a, err := FromTable(records)
	if err != nil {
		panic(err)
	}
	return a
}
