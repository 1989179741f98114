package describe

import (
	"fmt"

	"github.com/KromDaniel/soundnfa/pkg/nfa"
)

// Build calls the combinators the node describes, children first.
func (n Node) Build(b *nfa.Builder) (nfa.Fragment, error) {
	if c := n.operators(); c != 1 {
		return nfa.Fragment{}, fmt.Errorf("node must set exactly one combinator, found %d", c)
	}

	switch {
	case n.Symbol != nil:
		return b.Symbol(*n.Symbol), nil
	case n.Epsilon:
		return b.Epsilon(), nil
	case len(n.Concat) > 0:
		parts, err := buildAll(b, n.Concat)
		if err != nil {
			return nfa.Fragment{}, fmt.Errorf("concat: %w", err)
		}
		return b.ConcatAll(parts...), nil
	case len(n.Union) > 0:
		parts, err := buildAll(b, n.Union)
		if err != nil {
			return nfa.Fragment{}, fmt.Errorf("union: %w", err)
		}
		return b.UnionAll(parts...), nil
	case n.Star != nil:
		f, err := n.Star.Of.Build(b)
		if err != nil {
			return nfa.Fragment{}, fmt.Errorf("star: %w", err)
		}
		return b.KleeneStar(f, n.Star.Lazy), nil
	case n.Optional != nil:
		f, err := n.Optional.Of.Build(b)
		if err != nil {
			return nfa.Fragment{}, fmt.Errorf("optional: %w", err)
		}
		return b.Optional(f, n.Optional.Lazy), nil
	case n.Plus != nil:
		f, err := n.Plus.Of.Build(b)
		if err != nil {
			return nfa.Fragment{}, fmt.Errorf("plus: %w", err)
		}
		return b.OneOrMore(f, n.Plus.Lazy), nil
	default:
		f, err := n.Capture.Build(b)
		if err != nil {
			return nfa.Fragment{}, fmt.Errorf("capture: %w", err)
		}
		return b.CaptureGroup(f), nil
	}
}

func buildAll(b *nfa.Builder, nodes []Node) ([]nfa.Fragment, error) {
	out := make([]nfa.Fragment, 0, len(nodes))
	for i, n := range nodes {
		f, err := n.Build(b)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		out = append(out, f)
	}
	return out, nil
}
