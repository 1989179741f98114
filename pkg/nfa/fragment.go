package nfa

import "fmt"

// Builder owns the state arena that fragments are assembled in.
// A Builder is not safe for concurrent use.
type Builder struct {
	g *graph
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{g: &graph{}}
}

// Fragment is a partially built automaton, exposed only through its entry and
// exit states. The exit is a split state with no outgoing edges until the
// fragment is spliced into a larger one.
//
// A fragment may be passed to at most one combinator (or to Compile). Copies
// of a Fragment value share the same ownership marker, so handing a copy to a
// second combinator panics as well.
type Fragment struct {
	g     *graph
	entry StateID
	exit  StateID
	spent *bool
}

func (b *Builder) fragment(entry, exit StateID) Fragment {
	return Fragment{g: b.g, entry: entry, exit: exit, spent: new(bool)}
}

// take marks f as consumed. Reusing a fragment would alias states between two
// parents and break the "exit has no outgoing edges" invariant.
func (b *Builder) take(f Fragment) Fragment {
	if f.spent == nil {
		panic("nfa: zero Fragment")
	}
	if f.g != b.g {
		panic("nfa: fragment belongs to a different Builder")
	}
	if *f.spent {
		panic(fmt.Sprintf("nfa: fragment (entry %d) already consumed", f.entry))
	}
	*f.spent = true
	return f
}

// Symbol returns a fragment that accepts exactly s.
func (b *Builder) Symbol(s Symbol) Fragment {
	end := b.g.newSplit(false)
	start := b.g.newConsume(s, end)
	return b.fragment(start, end)
}

// Epsilon returns a fragment that accepts the empty sequence.
func (b *Builder) Epsilon() Fragment {
	start := b.g.newSplit(false)
	end := b.g.newSplit(false)
	b.g.addEpsilon(start, end)
	return b.fragment(start, end)
}

// Concat accepts x followed by y.
func (b *Builder) Concat(x, y Fragment) Fragment {
	x, y = b.take(x), b.take(y)
	b.g.addEpsilon(x.exit, y.entry)
	return b.fragment(x.entry, y.exit)
}

// ConcatAll folds fragments left to right with Concat. It panics on an empty
// list.
func (b *Builder) ConcatAll(fs ...Fragment) Fragment {
	if len(fs) == 0 {
		panic("nfa: ConcatAll of nothing")
	}
	acc := fs[0]
	for _, f := range fs[1:] {
		acc = b.Concat(acc, f)
	}
	return acc
}

// Union accepts x or y, preferring x.
func (b *Builder) Union(x, y Fragment) Fragment {
	x, y = b.take(x), b.take(y)
	start := b.g.newSplit(false)
	end := b.g.newSplit(false)
	b.g.addEpsilon(start, x.entry)
	b.g.addEpsilon(start, y.entry)
	b.g.addEpsilon(x.exit, end)
	b.g.addEpsilon(y.exit, end)
	return b.fragment(start, end)
}

// UnionAll folds fragments left to right with Union. It panics on an empty
// list.
func (b *Builder) UnionAll(fs ...Fragment) Fragment {
	if len(fs) == 0 {
		panic("nfa: UnionAll of nothing")
	}
	acc := fs[0]
	for _, f := range fs[1:] {
		acc = b.Union(acc, f)
	}
	return acc
}

// KleeneStar accepts zero or more repetitions of x. Greedy stars try another
// repetition before leaving; lazy stars leave first.
func (b *Builder) KleeneStar(x Fragment, lazy bool) Fragment {
	x = b.take(x)
	start, end := b.choice(x, lazy)
	b.g.addEpsilon(x.exit, x.entry)
	b.g.addEpsilon(x.exit, end)
	return b.fragment(start, end)
}

// Optional accepts x or nothing.
func (b *Builder) Optional(x Fragment, lazy bool) Fragment {
	x = b.take(x)
	start, end := b.choice(x, lazy)
	b.g.addEpsilon(x.exit, end)
	return b.fragment(start, end)
}

// OneOrMore accepts one or more repetitions of x. The repeated half is built
// from a private copy of x's states.
func (b *Builder) OneOrMore(x Fragment, lazy bool) Fragment {
	rest := b.clone(x)
	return b.Concat(x, b.KleeneStar(rest, lazy))
}

// CaptureGroup wraps x between two position-recording split states.
func (b *Builder) CaptureGroup(x Fragment) Fragment {
	x = b.take(x)
	start := b.g.newSplit(true)
	end := b.g.newSplit(true)
	b.g.addEpsilon(start, x.entry)
	b.g.addEpsilon(x.exit, end)
	return b.fragment(start, end)
}

// Compile consumes f and freezes its reachable states into an Automaton.
func (b *Builder) Compile(f Fragment) *Automaton {
	f = b.take(f)
	return newAutomaton(b.g, f.entry)
}

// choice creates the start/end pair shared by star and optional. The order of
// start's edges is the whole greedy/lazy distinction.
func (b *Builder) choice(x Fragment, lazy bool) (start, end StateID) {
	start = b.g.newSplit(false)
	end = b.g.newSplit(false)
	if lazy {
		b.g.addEpsilon(start, end)
		b.g.addEpsilon(start, x.entry)
	} else {
		b.g.addEpsilon(start, x.entry)
		b.g.addEpsilon(start, end)
	}
	return start, end
}

// clone duplicates an unconsumed fragment without consuming it.
func (b *Builder) clone(x Fragment) Fragment {
	if x.spent == nil || x.g != b.g || *x.spent {
		// Let take produce the diagnostic.
		b.take(x)
	}
	remap := b.g.copyFrom(b.g, x.entry)
	return b.fragment(remap[x.entry], remap[x.exit])
}
