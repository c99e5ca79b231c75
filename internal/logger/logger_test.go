package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withCapturedOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetVerbose(false)
	})
	return &buf
}

func TestDebugSilentByDefault(t *testing.T) {
	buf := withCapturedOutput(t)

	Debug("cache refreshed with %d snippets", 3)

	assert.Empty(t, buf.String())
}

func TestVerboseEnablesLevels(t *testing.T) {
	buf := withCapturedOutput(t)
	SetVerbose(true)

	assert.True(t, IsVerbose())

	Debug("parsed query")
	Info("settings reloaded")
	Warn("config watch error")

	out := buf.String()
	assert.Contains(t, out, "[DEBUG] parsed query")
	assert.Contains(t, out, "[INFO] settings reloaded")
	assert.Contains(t, out, "[WARN] config watch error")
}

func TestErrorAlwaysPrinted(t *testing.T) {
	buf := withCapturedOutput(t)

	Error("clipboard read failed: %v", "no display")

	assert.Contains(t, buf.String(), "[ERROR] clipboard read failed: no display")
}
