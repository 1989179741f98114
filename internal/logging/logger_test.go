package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerDisabled(t *testing.T) {
	var buf bytes.Buffer
	l := New(false)
	l.SetOutput(&buf)

	l.Section("Analysis")
	l.Log("states: %d", 4)

	assert.False(t, l.Enabled())
	assert.Empty(t, buf.String())
}

func TestLoggerEnabled(t *testing.T) {
	var buf bytes.Buffer
	l := New(true)
	l.SetOutput(&buf)

	l.Section("Analysis")
	l.Log("states: %d", 4)

	out := buf.String()
	assert.True(t, l.Enabled())
	assert.Contains(t, out, "section=Analysis")
	assert.Contains(t, out, "states: 4")
	assert.Contains(t, out, "component=soundnfa")
}
