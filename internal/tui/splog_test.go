package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplog(t *testing.T) {
	t.Parallel()

	t.Run("writes bare messages with warning and error prefixes", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		splog, err := NewSplogWithConfig(&buf, "")
		require.NoError(t, err)

		splog.Info("plain %s", "info")
		splog.Warn("Git repository already initialized")
		splog.Error("broken")
		splog.Newline()

		require.Equal(t, "plain info\n⚠️  Git repository already initialized\n❌ broken\n\n", buf.String())
	})

	t.Run("quiet suppresses console output", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		splog, err := NewSplogWithConfig(&buf, "")
		require.NoError(t, err)

		splog.SetQuiet(true)
		splog.Info("hidden")
		splog.Newline()
		require.Empty(t, buf.String())
	})

	t.Run("file log receives debug lines", func(t *testing.T) {
		t.Parallel()
		logPath := filepath.Join(t.TempDir(), "logs", "gitstrap.log")
		var buf bytes.Buffer
		splog, err := NewSplogWithConfig(&buf, logPath)
		require.NoError(t, err)

		splog.Debug("$ git init")
		splog.Info("visible")
		require.NoError(t, splog.Close())

		data, err := os.ReadFile(logPath)
		require.NoError(t, err)
		require.Contains(t, string(data), "$ git init")
		require.Contains(t, string(data), "visible")
		require.NotContains(t, buf.String(), "$ git init")
	})
}
