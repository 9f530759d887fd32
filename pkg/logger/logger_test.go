package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"":        LevelInfo,
		"debug":   LevelDebug,
		"DEBUG":   LevelDebug,
		"warning": LevelWarn,
		"warn":    LevelWarn,
		"error":   LevelError,
		"bogus":   LevelInfo,
	}
	for input, want := range tests {
		assert.Equal(t, want, ParseLevel(input), "ParseLevel(%q)", input)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(LevelWarn, &buf)

	log.Infof("hidden %d", 1)
	log.Warnf("shown %d", 2)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARN] ")
	assert.Contains(t, out, "shown 2")
}

func TestWithPrefix(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(LevelDebug, &buf).WithPrefix("OMDb")

	log.Info("searching")

	assert.Contains(t, buf.String(), "[OMDb] searching")
}

func TestIsKnownLevel(t *testing.T) {
	assert.True(t, IsKnownLevel("Warning"))
	assert.False(t, IsKnownLevel("verbose"))
}
