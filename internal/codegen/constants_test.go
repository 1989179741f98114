package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableName(t *testing.T) {
	tests := []struct {
		rule string
		want string
	}{
		{"Palatalization", "palatalizationStates"},
		{"vowelHarmony", "vowelHarmonyStates"},
		{"_Tmp", "_TmpStates"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TableName(tt.rule), tt.rule)
	}
}

func TestTestName(t *testing.T) {
	assert.Equal(t, "TestLenitionCases", TestName("lenition"))
}

func TestLowerFirst(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"A", "a"},
		{"ABC", "aBC"},
		{"Hello", "hello"},
		{"hello", "hello"},
		{"_x", "_x"},
		{"Ékavian", "ékavian"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LowerFirst(tt.input), tt.input)
	}
}

func TestUpperFirst(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"a", "A"},
		{"abc", "Abc"},
		{"Hello", "Hello"},
		{"x", "X"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, UpperFirst(tt.input), tt.input)
	}
}
