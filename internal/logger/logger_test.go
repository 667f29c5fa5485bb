package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetup_DebugWritesToOut(t *testing.T) {
	var buf bytes.Buffer
	cleanup := Setup(Config{Out: &buf, Debug: true})
	defer cleanup()

	L().Info("greeting.emitted", "channel", "console")

	out := buf.String()
	assert.Contains(t, out, "logger.initialized")
	assert.Contains(t, out, "greeting.emitted")
	assert.Contains(t, out, "channel=console")
}

func TestSetup_NoDebugDiscards(t *testing.T) {
	var buf bytes.Buffer
	cleanup := Setup(Config{Out: &buf})
	defer cleanup()

	L().Warn("dropped")
	assert.Empty(t, buf.String())
}

func TestCleanup_RestoresDiscard(t *testing.T) {
	var buf bytes.Buffer
	cleanup := Setup(Config{Out: &buf, Debug: true})
	cleanup()
	buf.Reset()

	L().Error("after cleanup")
	assert.Empty(t, buf.String())
}
