package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"trace":   LevelTrace,
		"DEBUG":   LevelDebug,
		"info":    LevelInfo,
		"warning": LevelWarn,
		"Error":   LevelError,
	}
	for in, want := range tests {
		lvl, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, lvl, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
	assert.Error(t, InitLogger("loud"))
}

func captureRoot(t *testing.T, lvl slog.Level) *bytes.Buffer {
	t.Helper()
	prev := Root()
	t.Cleanup(func() { SetDefault(prev) })
	buf := &bytes.Buffer{}
	SetDefault(slog.New(NewTerminalHandler(buf, lvl)))
	return buf
}

func TestDebugIsGatedByModule(t *testing.T) {
	buf := captureRoot(t, LevelTrace)
	t.Cleanup(func() { DisableModule(SearchModule) })

	Debug(SearchModule, "hidden")
	assert.Empty(t, buf.String())

	EnableModules(" search_mod ,")
	Debug(SearchModule, "scanning noun", "noun", 3)
	Trace(SearchModule, "fine")
	out := buf.String()
	assert.Contains(t, out, "scanning noun")
	assert.Contains(t, out, "module=search_mod")
	assert.Contains(t, out, "noun=3")
	assert.Contains(t, out, "level=TRACE")
}

func TestInfoIgnoresModules(t *testing.T) {
	buf := captureRoot(t, LevelInfo)

	Info(VMModule, "started")
	Debug(VMModule, "dropped")
	Warn(VMModule, "careful")
	Error(VMModule, "broken")
	out := buf.String()
	assert.Contains(t, out, "started")
	assert.Contains(t, out, "careful")
	assert.Contains(t, out, "broken")
	assert.NotContains(t, out, "dropped")
}

func TestLevelFilter(t *testing.T) {
	buf := captureRoot(t, LevelWarn)
	Info(SolverModule, "quiet")
	assert.Empty(t, buf.String())
}
