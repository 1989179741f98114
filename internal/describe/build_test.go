package describe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KromDaniel/soundnfa/pkg/nfa"
)

func sym(s string) Node { return Node{Symbol: &s} }

func TestNodeBuild(t *testing.T) {
	tests := []struct {
		name     string
		node     Node
		input    []nfa.Symbol
		consumed []nfa.Symbol
	}{
		{"symbol", sym("a"), []nfa.Symbol{"a"}, []nfa.Symbol{"a"}},
		{"concat", Node{Concat: []Node{sym("a"), sym("b")}}, []nfa.Symbol{"a", "b"}, []nfa.Symbol{"a", "b"}},
		{"union", Node{Union: []Node{sym("a"), sym("b")}}, []nfa.Symbol{"b"}, []nfa.Symbol{"b"}},
		{"star", Node{Star: &Repeat{Of: sym("a")}}, []nfa.Symbol{"a", "a", "b"}, []nfa.Symbol{"a", "a"}},
		{"plus", Node{Plus: &Repeat{Of: sym("a")}}, []nfa.Symbol{"a", "a"}, []nfa.Symbol{"a", "a"}},
		{"optional", Node{Optional: &Repeat{Of: sym("a")}}, []nfa.Symbol{"a"}, []nfa.Symbol{"a"}},
		{"capture", Node{Capture: ptr(sym("a"))}, []nfa.Symbol{"a"}, []nfa.Symbol{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := nfa.NewBuilder()
			f, err := tt.node.Build(b)
			require.NoError(t, err)

			got, err := b.Compile(f).MatchPrefix(tt.input)
			require.NoError(t, err)
			assert.True(t, got.Matched)
			assert.Equal(t, tt.consumed, got.Consumed)
		})
	}
}

func TestNodeBuildRejectsInvalid(t *testing.T) {
	b := nfa.NewBuilder()

	_, err := Node{}.Build(b)
	assert.Error(t, err)

	_, err = Node{Concat: []Node{sym("a"), {}}}.Build(b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "concat: [1]")
}

func ptr(n Node) *Node { return &n }
