package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel("debug"))
	assert.Equal(t, WarnLevel, ParseLevel(" WARN "))
	assert.Equal(t, InfoLevel, ParseLevel(""))
	assert.Equal(t, InfoLevel, ParseLevel("loud"))
}

func TestLogger_FieldsAndLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&Config{Level: InfoLevel, Output: &buf}).
		With("run_id", "run-42").
		WithFields(map[string]interface{}{"command": "appointments"})

	log.Debug("hidden")
	assert.Empty(t, buf.String())

	log.Info("inserted appointments", "inserted", 12)
	out := buf.String()
	assert.Contains(t, out, "inserted appointments")
	assert.Contains(t, out, "run-42")
	assert.Contains(t, out, "appointments")
	assert.Contains(t, out, "12")
}
