// Package codegen emits Go source that embeds compiled rule automata.
package codegen

import (
	"unicode"
	"unicode/utf8"
)

// NFAPath is the import path of the automaton package referenced by
// generated code.
const NFAPath = "github.com/KromDaniel/soundnfa/pkg/nfa"

// Identifiers used in generated code.
const (
	StateRecordName   = "StateRecord"
	MustFromTableName = "MustFromTable"
	ResultName        = "r"
)

// TableName returns the unexported name of a rule's state table variable.
func TableName(rule string) string {
	return LowerFirst(rule) + "States"
}

// TestName returns the name of the generated test function for a rule.
func TestName(rule string) string {
	return "Test" + UpperFirst(rule) + "Cases"
}

// LowerFirst converts the first character of a string to lowercase.
func LowerFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[n:]
}

// UpperFirst converts the first character of a string to uppercase.
func UpperFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}
