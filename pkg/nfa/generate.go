package nfa

import (
	"fmt"
	"strconv"
	"strings"
)

// GenerateAll returns every symbol sequence the automaton accepts end to end,
// in depth-first edge order with duplicates removed.
//
// A cyclic automaton accepts infinitely many sequences; GenerateAll returns
// ErrCyclic for it instead of diverging. Use GenerateBounded to enumerate a
// cyclic automaton up to a length.
func (a *Automaton) GenerateAll() ([][]Symbol, error) {
	if a.cyclic {
		return nil, ErrCyclic
	}
	return a.generate(-1), nil
}

// GenerateBounded returns every accepted sequence of at most maxLen symbols.
func (a *Automaton) GenerateBounded(maxLen int) ([][]Symbol, error) {
	if maxLen < 0 {
		return nil, fmt.Errorf("negative max length %d: %w", maxLen, ErrInvalidArgument)
	}
	return a.generate(maxLen), nil
}

func (a *Automaton) generate(maxLen int) [][]Symbol {
	gen := generator{g: a.g, maxLen: maxLen, seen: make(map[string]bool)}
	gen.walk(0, 0)
	return gen.out
}

type generator struct {
	g      *graph
	maxLen int // negative means unbounded
	path   []Symbol
	run    []StateID
	seen   map[string]bool
	out    [][]Symbol
}

func (gen *generator) walk(id StateID, runStart int) {
	s := &gen.g.states[id]
	if s.isFinal() {
		gen.emit()
		return
	}

	switch s.kind {
	case kindConsume:
		if gen.maxLen >= 0 && len(gen.path) >= gen.maxLen {
			return
		}
		gen.path = append(gen.path, s.symbol)
		gen.walk(s.next, len(gen.run))
		gen.path = gen.path[:len(gen.path)-1]

	case kindSplit:
		for _, seen := range gen.run[runStart:] {
			if seen == id {
				return
			}
		}
		gen.run = append(gen.run, id)
		for _, t := range s.epsilon {
			gen.walk(t, runStart)
		}
		gen.run = gen.run[:len(gen.run)-1]
	}
}

func (gen *generator) emit() {
	key := sequenceKey(gen.path)
	if gen.seen[key] {
		return
	}
	gen.seen[key] = true
	seq := make([]Symbol, len(gen.path))
	copy(seq, gen.path)
	gen.out = append(gen.out, seq)
}

// sequenceKey length-prefixes each symbol so that no two distinct sequences
// share a key.
func sequenceKey(seq []Symbol) string {
	var sb strings.Builder
	for _, s := range seq {
		sb.WriteString(strconv.Itoa(len(s)))
		sb.WriteByte(':')
		sb.WriteString(s)
	}
	return sb.String()
}
