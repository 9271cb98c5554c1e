package logger

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_WritesJSONWithFields(t *testing.T) {
	out := filepath.Join(t.TempDir(), "run.log")
	l, err := New(Config{Level: "info", OutputPaths: []string{out}})
	require.NoError(t, err)

	child := l.With(String("platform", "LinkedIn"))
	child.Debug("hidden")
	child.Warn("load failed", Int("step", 2), Error(errors.New("timeout")))
	require.NoError(t, l.Sync())

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	s := string(b)
	assert.NotContains(t, s, "hidden")
	assert.Contains(t, s, `"msg":"load failed"`)
	assert.Contains(t, s, `"platform":"LinkedIn"`)
	assert.Contains(t, s, `"step":2`)
	assert.Contains(t, s, `"error":"timeout"`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel(" DEBUG "))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warning"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(""))
}

func TestNop(t *testing.T) {
	l := NewNop().With(String("k", "v"))
	l.Info("dropped")
	assert.NoError(t, l.Sync())
}
