package nfa

// Symbol is the atomic token an automaton consumes. Symbols are compared by
// equality only; their contents are never interpreted.
type Symbol = string

// StateID addresses a state inside a graph arena.
type StateID int

type stateKind uint8

const (
	kindSplit stateKind = iota
	kindConsume
)

// state is a tagged union of the two node kinds.
//
// A consuming state owns exactly one labeled edge (symbol -> next).
// A split state owns an ordered list of epsilon targets and is final iff
// that list is empty. Edge order encodes greedy/lazy preference.
type state struct {
	kind    stateKind
	symbol  Symbol
	next    StateID
	epsilon []StateID
	capture bool // record the scan position when traversed (split only)
}

func (s *state) isFinal() bool {
	return s.kind == kindSplit && len(s.epsilon) == 0
}

// graph is an arena of states. Back edges are plain indexes so cycles need no
// special ownership handling.
type graph struct {
	states []state
}

func (g *graph) newSplit(capture bool) StateID {
	g.states = append(g.states, state{kind: kindSplit, capture: capture})
	return StateID(len(g.states) - 1)
}

func (g *graph) newConsume(symbol Symbol, next StateID) StateID {
	g.states = append(g.states, state{kind: kindConsume, symbol: symbol, next: next})
	return StateID(len(g.states) - 1)
}

func (g *graph) addEpsilon(from, to StateID) {
	g.states[from].epsilon = append(g.states[from].epsilon, to)
}

// successors calls fn for every outgoing edge of id in registration order.
func (g *graph) successors(id StateID, fn func(StateID)) {
	s := &g.states[id]
	if s.kind == kindConsume {
		fn(s.next)
		return
	}
	for _, t := range s.epsilon {
		fn(t)
	}
}

// reachable returns the states reachable from entry in depth-first
// pre-order, entry first.
func (g *graph) reachable(entry StateID) []StateID {
	seen := make(map[StateID]bool)
	order := make([]StateID, 0, 16)
	stack := []StateID{entry}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[id] {
			continue
		}
		seen[id] = true
		order = append(order, id)

		// Push in reverse so the first edge is visited first.
		s := &g.states[id]
		if s.kind == kindConsume {
			stack = append(stack, s.next)
			continue
		}
		for i := len(s.epsilon) - 1; i >= 0; i-- {
			stack = append(stack, s.epsilon[i])
		}
	}
	return order
}

// copyFrom appends the subgraph of src reachable from entry to g and returns
// the mapping from src ids to the new ids.
func (g *graph) copyFrom(src *graph, entry StateID) map[StateID]StateID {
	order := src.reachable(entry)
	remap := make(map[StateID]StateID, len(order))
	base := len(g.states)
	for i, id := range order {
		remap[id] = StateID(base + i)
	}
	for _, id := range order {
		s := src.states[id]
		n := state{kind: s.kind, symbol: s.symbol, capture: s.capture}
		if s.kind == kindConsume {
			n.next = remap[s.next]
		} else if len(s.epsilon) > 0 {
			n.epsilon = make([]StateID, len(s.epsilon))
			for i, t := range s.epsilon {
				n.epsilon[i] = remap[t]
			}
		}
		g.states = append(g.states, n)
	}
	return remap
}

// hasCycle reports whether any cycle is reachable from entry.
func (g *graph) hasCycle(entry StateID) bool {
	const (
		white = iota
		grey
		black
	)
	color := make([]uint8, len(g.states))

	var visit func(id StateID) bool
	visit = func(id StateID) bool {
		color[id] = grey
		found := false
		g.successors(id, func(t StateID) {
			if found {
				return
			}
			switch color[t] {
			case grey:
				found = true
			case white:
				found = visit(t)
			}
		})
		color[id] = black
		return found
	}
	return visit(entry)
}
