package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func drain(w *PaneWriter) []string {
	var out []string
	for {
		select {
		case l := <-w.Lines():
			out = append(out, l)
		default:
			return out
		}
	}
}

func TestLevelOf(t *testing.T) {
	require.Equal(t, zapcore.DebugLevel, LevelOf("debug"))
	require.Equal(t, zapcore.ErrorLevel, LevelOf("error"))
	require.Equal(t, zapcore.InfoLevel, LevelOf("loud"))
}

func TestPaneGetsInfoAndAbove(t *testing.T) {
	pane := NewPaneWriter(16)
	log, closeFn, err := New(Options{Level: "debug", Pane: pane})
	require.NoError(t, err)
	defer closeFn()

	log.Debug("hidden")
	log.Infof("move %d", 1)
	log.Warn("careful")

	lines := drain(pane)
	require.Len(t, lines, 2)
	require.True(t, strings.HasSuffix(lines[0], "move 1"), lines[0])
	require.True(t, strings.HasSuffix(lines[1], "careful"), lines[1])
}

func TestFileGetsConfiguredLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "gomoku.log")
	log, closeFn, err := New(Options{Level: "warn", Path: path})
	require.NoError(t, err)

	log.Info("skip me")
	log.Errorw("boom", "game", "abc")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), "skip me")
	require.Contains(t, string(data), `"msg":"boom"`)
	require.Contains(t, string(data), `"game":"abc"`)
}

func TestPaneWriterDropsWhenFull(t *testing.T) {
	pane := NewPaneWriter(1)
	_, err := pane.Write([]byte("a\nb\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"a"}, drain(pane))
	require.Equal(t, int64(1), pane.Dropped())
}

func TestNoSinksIsNop(t *testing.T) {
	log, closeFn, err := New(Options{})
	require.NoError(t, err)
	log.Info("nothing")
	require.NoError(t, closeFn())
}
