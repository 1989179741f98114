package describe

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	doc, err := Load(filepath.Join("testdata", "palatalization.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "Palatalization", doc.Name)
	assert.Equal(t, "rules", doc.Package)
	require.Len(t, doc.Pattern.Concat, 2)
	require.NotNil(t, doc.Pattern.Concat[1].Capture)
	assert.Len(t, doc.Pattern.Concat[1].Capture.Union, 2)
	assert.Len(t, doc.Cases, 3)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "empty",
			yaml:    "",
			wantErr: "empty description",
		},
		{
			name:    "unknown key",
			yaml:    "name: R\npattern: {symbol: a}\nextra: 1\n",
			wantErr: "field extra not found",
		},
		{
			name:    "missing name",
			yaml:    "pattern: {symbol: a}\n",
			wantErr: "Name: required",
		},
		{
			name:    "bad identifier",
			yaml:    "name: 1rule\npattern: {symbol: a}\n",
			wantErr: "is not a Go identifier",
		},
		{
			name:    "missing pattern",
			yaml:    "name: R\n",
			wantErr: "Pattern: node must set exactly one combinator, found 0",
		},
		{
			name:    "two combinators",
			yaml:    "name: R\npattern: {symbol: a, epsilon: true}\n",
			wantErr: "found 2",
		},
		{
			name:    "nested empty node",
			yaml:    "name: R\npattern:\n  concat:\n    - symbol: a\n    - {}\n",
			wantErr: "Pattern.Concat[1]: node must set exactly one combinator",
		},
		{
			name:    "empty symbol",
			yaml:    "name: R\npattern: {symbol: \"\"}\n",
			wantErr: "Symbol: failed min=1",
		},
		{
			name:    "bad mode",
			yaml:    "name: R\npattern: {symbol: a}\ncases:\n  - input: [a]\n    mode: fuzzy\n",
			wantErr: "must be one of [prefix longest scan]",
		},
		{
			name:    "empty case input",
			yaml:    "name: R\npattern: {symbol: a}\ncases:\n  - input: []\n",
			wantErr: "Cases[0].Input: failed min=1",
		},
		{
			name:    "bad package",
			yaml:    "name: R\npackage: My-Rules\npattern: {symbol: a}\n",
			wantErr: "Package",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRunCases(t *testing.T) {
	for _, name := range []string{"palatalization.yaml", "lenition.yaml"} {
		t.Run(name, func(t *testing.T) {
			doc, err := Load(filepath.Join("testdata", name))
			require.NoError(t, err)

			results, err := doc.RunCases()
			require.NoError(t, err)
			require.Len(t, results, len(doc.Cases))
			for _, r := range results {
				assert.True(t, r.Passed(), "case %d: %v", r.Index, r.Err)
			}
		})
	}
}

func TestRunCasesReportsMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rule.yaml")
	data := "name: R\npattern: {symbol: a}\ncases:\n  - input: [a]\n    matched: true\n    consumed: [b]\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	doc, err := Load(path)
	require.NoError(t, err)

	results, err := doc.RunCases()
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Passed())
	assert.EqualError(t, results[0].Err, "consumed = [a], want [b]")
}
