package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"trace":   TRACE,
		"DEBUG":   DEBUG,
		"":        INFO,
		"warning": WARN,
		" error ": ERROR,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestWriterLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger("world", &buf, WARN)

	l.Debug("не должно попасть")
	l.Info("тоже нет")
	l.Warn("очередь %d", 5)
	l.Error("сбой")

	out := buf.String()
	assert.NotContains(t, out, "не должно")
	assert.Contains(t, out, "[WARN] [world] очередь 5")
	assert.Contains(t, out, "[ERROR] [world] сбой")
	assert.False(t, l.Enabled(INFO))
	assert.True(t, l.Enabled(ERROR))
}

func TestNewLogger_WritesFile(t *testing.T) {
	dir := t.TempDir()
	Configure(Options{Dir: dir, MinConsoleLevel: ERROR, MinFileLevel: DEBUG})
	defer Configure(Options{MinConsoleLevel: INFO, MinFileLevel: DEBUG})

	l, err := NewLogger("meshing")
	require.NoError(t, err)

	l.Debug("квадов %d", 6)
	require.NoError(t, l.Close())

	files, err := filepath.Glob(filepath.Join(dir, "meshing_*.log"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "квадов 6"))
}

func TestLoggerManager_ReusesComponent(t *testing.T) {
	lm := NewLoggerManager()

	a := lm.MustGetLogger("world")
	b := lm.MustGetLogger("world")
	assert.Same(t, a, b)
	assert.Equal(t, []string{"world"}, lm.ListComponents())

	require.NoError(t, lm.SetLogLevel("world", WARN, ERROR))
	assert.False(t, a.Enabled(INFO))
	assert.Error(t, lm.SetLogLevel("unknown", INFO, INFO))

	require.NoError(t, lm.CloseAll())
	assert.Empty(t, lm.ListComponents())
}
