package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const palatalization = `name: Palatalization
package: rules
pattern:
  concat:
    - symbol: k
    - capture:
        union:
          - symbol: i
          - symbol: e
cases:
  - input: [k, e]
    matched: true
    consumed: [k, e]
    captured: [2, 1]
  - input: [k, a]
    matched: false
`

const vowels = `name: Vowels
pattern:
  plus:
    of:
      union: [{symbol: a}, {symbol: e}]
`

func writeRule(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rule.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	verbose, jsonOutput = false, false

	var out bytes.Buffer
	cmd := newRootCommand("test", "none")
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestMatchCommand(t *testing.T) {
	rule := writeRule(t, palatalization)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"symbols", []string{"k", "i", "t"}, "Palatalization: matched [k i] captured [2 1]\n"},
		{"chars", []string{"--chars", "ket"}, "Palatalization: matched [k e] captured [2 1]\n"},
		{"no match", []string{"t", "k", "i"}, "Palatalization: no match\n"},
		{"start", []string{"--start", "1", "t", "k", "i"}, "Palatalization: matched [k i] captured [3 2]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append([]string{"match", "-f", rule}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestMatchCommandJSON(t *testing.T) {
	rule := writeRule(t, palatalization)

	out, err := run(t, "--json", "match", "-f", rule, "x")
	require.NoError(t, err)

	var got matchOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Palatalization", got.Rule)
	assert.False(t, got.Matched)
	assert.Empty(t, got.Consumed)
	assert.NotNil(t, got.Captured)
}

func TestMatchCommandErrors(t *testing.T) {
	rule := writeRule(t, palatalization)

	_, err := run(t, "match", "-f", rule, "--start", "5", "k")
	assert.Error(t, err)

	_, err = run(t, "match", "k")
	assert.Error(t, err, "--file is required")

	_, err = run(t, "match", "-f", writeRule(t, "name: Broken\npattern: {}\n"), "k")
	assert.Error(t, err)
}

func TestScanCommand(t *testing.T) {
	rule := writeRule(t, palatalization)

	out, err := run(t, "scan", "-f", rule, "--chars", "akitke")
	require.NoError(t, err)
	assert.Equal(t, "Palatalization: matched [k i k e] captured [3 2 6 5]\n", out)

	out, err = run(t, "scan", "-f", rule, "--chars", "--each", "akitke")
	require.NoError(t, err)
	assert.Equal(t, "1: [k i] captured [3 2]\n4: [k e] captured [6 5]\n", out)
}

func TestScanCommandEachJSON(t *testing.T) {
	rule := writeRule(t, vowels)

	out, err := run(t, "--json", "scan", "-f", rule, "--longest", "--advance", "--each", "--chars", "taet")
	require.NoError(t, err)

	var got []scanOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Start)
	assert.Equal(t, []string{"a", "e"}, got[0].Consumed)
}

func TestGenerateCommand(t *testing.T) {
	out, err := run(t, "generate", "-f", writeRule(t, palatalization))
	require.NoError(t, err)
	assert.Equal(t, "k i\nk e\n", out)

	_, err = run(t, "generate", "-f", writeRule(t, vowels))
	assert.ErrorContains(t, err, "--max-length")

	out, err = run(t, "--json", "generate", "-f", writeRule(t, vowels), "--max-length", "1")
	require.NoError(t, err)
	var got [][]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.ElementsMatch(t, [][]string{{"a"}, {"e"}}, got)
}

func TestCheckCommand(t *testing.T) {
	out, err := run(t, "check", "-f", writeRule(t, palatalization))
	require.NoError(t, err)
	assert.Contains(t, out, "case 0 [k e]: ok")
	assert.Contains(t, out, "case 1 [k a]: ok")

	failing := palatalization + `  - input: [k, i]
    matched: false
`
	out, err = run(t, "check", "-f", writeRule(t, failing))
	assert.ErrorContains(t, err, "1 of 3 cases failed")
	assert.Contains(t, out, "case 2 [k i]: FAIL matched = true, want false")
}

func TestCodegenCommand(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "palatalization.go")

	_, err := run(t, "codegen", "-f", writeRule(t, palatalization), "-o", output)
	require.NoError(t, err)

	src, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(src), "package rules")
	assert.Contains(t, string(src), "var Palatalization = nfa.MustFromTable(")
	assert.FileExists(t, filepath.Join(dir, "palatalization_test.go"))

	_, err = run(t, "codegen", "-f", writeRule(t, vowels), "-o", filepath.Join(dir, "vowels.go"))
	assert.ErrorContains(t, err, "package cannot be empty")

	_, err = run(t, "codegen", "-f", writeRule(t, vowels), "-o", filepath.Join(dir, "vowels.go"), "--package", "rules", "--name", "Vowel")
	require.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "vowels_test.go"))
}
