// Package nfa implements the nondeterministic finite automata that
// sound-change rules compile to.
//
// Automata are assembled bottom-up from fragments with a Builder, using
// Thompson-style combinators (Symbol, Concat, Union, KleeneStar, Optional,
// OneOrMore, CaptureGroup), and frozen with Builder.Compile:
//
//	b := nfa.NewBuilder()
//	f := b.Concat(b.Symbol("k"), b.CaptureGroup(b.Union(b.Symbol("i"), b.Symbol("e"))))
//	a := b.Compile(f)
//	r, _ := a.ScanAll([]nfa.Symbol{"a", "k", "i", "t"})
//
// Matching is depth-first backtracking over epsilon edges in the order they
// were added, so greedy and lazy repetition differ only in edge order. The
// engine does not memoize; some automaton/input pairs take exponential time.
//
// Symbols are opaque strings compared by equality.
package nfa
