package nfa

import "errors"

var (
	// ErrInvalidArgument is returned for caller errors such as an empty
	// symbol sequence or a malformed state table.
	ErrInvalidArgument = errors.New("nfa: invalid argument")

	// ErrCyclic is returned when unbounded generation is requested on an
	// automaton that accepts infinitely many sequences.
	ErrCyclic = errors.New("nfa: automaton is cyclic")
)
