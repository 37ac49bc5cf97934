package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/backmassage/frameseq/internal/config"
)

func TestNewLoggerNoFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LogFile = ""
	l, err := NewLogger(&cfg)
	require.NoError(t, err)
	defer l.Close()
	l.Info("test message")
}

func TestNewLoggerWithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.LogFile = filepath.Join(dir, "frameseq.log")
	l, err := NewLogger(&cfg)
	require.NoError(t, err)

	l.Info("to file")
	l.Warn("careful")
	require.NoError(t, l.Close())

	b, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	require.True(t, bytes.Contains(b, []byte("INFO")), "log file content: %s", b)
	require.True(t, bytes.Contains(b, []byte("to file")), "log file content: %s", b)
	require.True(t, bytes.Contains(b, []byte("WARN")), "log file content: %s", b)
}

func TestDebugRespectsVerbose(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.LogFile = filepath.Join(dir, "frameseq.log")

	l, err := NewLogger(&cfg)
	require.NoError(t, err)
	l.Debug("hidden")
	require.NoError(t, l.Close())

	b, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	require.False(t, bytes.Contains(b, []byte("hidden")))

	cfg.Verbose = true
	l, err = NewLogger(&cfg)
	require.NoError(t, err)
	l.Debug("shown")
	require.NoError(t, l.Close())

	b, err = os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	require.True(t, bytes.Contains(b, []byte("shown")))
}
