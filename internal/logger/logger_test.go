package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLevel(t *testing.T) {
	prev := defaultLogger
	t.Cleanup(func() { defaultLogger = prev })

	var buf bytes.Buffer
	require.NoError(t, Setup(Options{Level: "info", Output: &buf}))

	Debugf("hidden %d", 1)
	Infof("shown %d", 2)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown 2")
}

func TestSetupInvalidLevel(t *testing.T) {
	assert.Error(t, Setup(Options{Level: "loud"}))
}

func TestSetupFile(t *testing.T) {
	prev := defaultLogger
	t.Cleanup(func() { defaultLogger = prev })

	path := filepath.Join(t.TempDir(), "logs", "granola.log")
	var buf bytes.Buffer
	require.NoError(t, Setup(Options{Level: "warn", File: path, Output: &buf}))

	Warnf("cache looks odd")
	Errorf("watcher failed: %s", "closed")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "cache looks odd")
	assert.Contains(t, string(data), "watcher failed: closed")
	assert.Contains(t, buf.String(), "cache looks odd")
}
